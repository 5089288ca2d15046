package employee

import (
	"errors"

	"github.com/cmlabs-hris/hris-gateway/internal/domain/user"
)

var (
	ErrInvalidRequest   = errors.New("invalid request")
	ErrPermissionDenied = user.ErrPermissionDenied

	ErrEmailExists               = errors.New("An account with this email already exists")
	ErrEmailCheckFailed          = errors.New("Error while validating new user info")
	ErrInvalidEmailFormat        = errors.New("Invalid email format")
	ErrInvalidPasswordLength     = errors.New("Password must be between 4 and 20 characters")
	ErrInvalidName               = errors.New("Invalid name")
	ErrInvalidSalary             = errors.New("Invalid salary")
	ErrInvalidTotalWorkDays      = errors.New("Invalid totalDayOfWork")
	ErrInvalidAvailablePaidLeave = errors.New("Invalid AvailablePaidLeave")
	ErrInvalidUpdateValue        = errors.New("value must not be negative")

	ErrCreateFailed     = errors.New("An error occurred while creating the user")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrBackendFailure   = errors.New("employee store unavailable")
)

// ErrorKind classifies why a gateway call did not succeed.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindAuthentication
	KindAuthorization
	KindValidation
	KindNotFound
	KindBackend
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindAuthentication:
		return "authentication"
	case KindAuthorization:
		return "authorization"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindBackend:
		return "backend"
	default:
		return "unknown"
	}
}

var validationErrors = []error{
	ErrEmailExists,
	ErrInvalidEmailFormat,
	ErrInvalidPasswordLength,
	ErrInvalidName,
	ErrInvalidSalary,
	ErrInvalidTotalWorkDays,
	ErrInvalidAvailablePaidLeave,
	ErrInvalidUpdateValue,
}

// KindOf maps an error returned by EmployeeService to its kind. Errors that
// are not gateway sentinels are reported as KindBackend.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindNone
	}

	switch {
	case errors.Is(err, ErrInvalidRequest):
		return KindAuthentication
	case errors.Is(err, ErrPermissionDenied):
		return KindAuthorization
	case errors.Is(err, ErrEmployeeNotFound):
		return KindNotFound
	}

	for _, v := range validationErrors {
		if errors.Is(err, v) {
			return KindValidation
		}
	}

	return KindBackend
}
