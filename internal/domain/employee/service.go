package employee

import (
	"context"
)

// EmployeeService mediates every call between a token holder and the store.
// Each method authenticates the token, authorizes the operation and only then
// touches the store.
type EmployeeService interface {
	// CreateUser creates an account and its employee record (HR only)
	CreateUser(ctx context.Context, token string, req CreateUserRequest) Outcome

	// RetrieveEmployeeInfo returns a single record (HR, or the record's owner)
	RetrieveEmployeeInfo(ctx context.Context, token string, userID int64) (Employee, error)

	// UpdateAvailablePaidLeave replaces the paid leave balance (HR only)
	UpdateAvailablePaidLeave(ctx context.Context, token string, userID int64, value int) error

	// UpdateSalary replaces the salary (HR only)
	UpdateSalary(ctx context.Context, token string, userID int64, value float64) error

	// UpdateTotalWorkDays replaces the work-day count (HR only)
	UpdateTotalWorkDays(ctx context.Context, token string, userID int64, value int) error

	// RetrieveAllEmployees lists every record (HR only)
	RetrieveAllEmployees(ctx context.Context, token string) ([]Employee, error)
}
