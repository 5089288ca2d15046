package employee

import (
	"math"

	"github.com/cmlabs-hris/hris-gateway/internal/pkg/validator"
)

const (
	MinPasswordLength = 4
	MaxPasswordLength = 20
)

// CreateUserRequest represents request to create an account with its employee record
type CreateUserRequest struct {
	Email    string  `json:"email"`
	Role     string  `json:"role"`
	Password string  `json:"password"`
	Name     string  `json:"name"`
	Salary   float64 `json:"salary"`
}

// Profile returns the employee record seeded for this request. Work days and
// paid leave always start from the policy defaults.
func (r *CreateUserRequest) Profile() Employee {
	return Employee{
		Name:               r.Name,
		Salary:             r.Salary,
		TotalWorkDays:      DefaultTotalWorkDays,
		AvailablePaidLeave: DefaultAvailablePaidLeave,
	}
}

// Validate applies the local creation rules in order and returns the first
// failure. The duplicate email rule needs the store and is checked by the
// service before Validate runs.
func (r *CreateUserRequest) Validate() error {
	profile := r.Profile()

	switch {
	case !validator.IsValidEmail(r.Email):
		return ErrInvalidEmailFormat
	case !validator.IsLengthBetween(r.Password, MinPasswordLength, MaxPasswordLength):
		return ErrInvalidPasswordLength
	case r.Name == "":
		return ErrInvalidName
	case !IsValidAmount(profile.Salary):
		return ErrInvalidSalary
	case profile.TotalWorkDays < 0:
		return ErrInvalidTotalWorkDays
	case profile.AvailablePaidLeave < 0:
		return ErrInvalidAvailablePaidLeave
	}

	return nil
}

// IsValidAmount reports whether v is a finite, non-negative number.
func IsValidAmount(v float64) bool {
	return v >= 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

// UpdateValueRequest carries the new value for a single-field update
type UpdateValueRequest struct {
	Value *float64 `json:"value"`
}

func (r *UpdateValueRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Value == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "value",
			Message: "value is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// IntValue returns the value as a whole number, reporting false when it has
// a fractional part.
func (r *UpdateValueRequest) IntValue() (int, bool) {
	v := *r.Value
	if v != float64(int(v)) {
		return 0, false
	}
	return int(v), true
}
