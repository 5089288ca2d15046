package employee

import (
	"context"

	"github.com/cmlabs-hris/hris-gateway/internal/domain/user"
)

type EmployeeRepository interface {
	// Create stores a new account together with its employee record and
	// returns the record with the store-assigned ID.
	Create(ctx context.Context, account user.User, profile Employee) (Employee, error)
	// GetByID returns ErrEmployeeNotFound when no record exists.
	GetByID(ctx context.Context, id int64) (Employee, error)
	// Update overwrites the whole record identified by emp.ID.
	Update(ctx context.Context, emp Employee) error
	List(ctx context.Context) ([]Employee, error)
}
