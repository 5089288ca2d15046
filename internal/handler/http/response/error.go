package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/hris-gateway/internal/domain/auth"
	"github.com/cmlabs-hris/hris-gateway/internal/domain/employee"
	"github.com/cmlabs-hris/hris-gateway/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())
		return
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, err.Error())
		return
	}

	// Employee gateway errors
	switch employee.KindOf(err) {
	case employee.KindAuthentication:
		Unauthorized(w, err.Error())
	case employee.KindAuthorization:
		Forbidden(w, err.Error())
	case employee.KindValidation:
		UnprocessableEntity(w, err.Error())
	case employee.KindNotFound:
		NotFound(w, "Employee not found")
	default:
		if isReportedBackendError(err) {
			InternalServerError(w, err.Error())
			return
		}
		InternalServerError(w, "An unexpected error occurred")
	}
}

// HandleOutcome writes a creating call's outcome: 201 with its message on
// success, otherwise the error response for its kind.
func HandleOutcome(w http.ResponseWriter, outcome employee.Outcome) {
	if outcome.Success() {
		Created(w, outcome.Message, nil)
		return
	}
	HandleError(w, outcome.Err())
}

func isReportedBackendError(err error) bool {
	return errors.Is(err, employee.ErrEmailCheckFailed) ||
		errors.Is(err, employee.ErrCreateFailed) ||
		errors.Is(err, employee.ErrBackendFailure)
}
