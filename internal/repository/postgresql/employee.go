package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hris-gateway/internal/domain/employee"
	"github.com/cmlabs-hris/hris-gateway/internal/domain/user"
	"github.com/cmlabs-hris/hris-gateway/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

type employeeRepositoryImpl struct {
	db database.Pool
}

func NewEmployeeRepository(db database.Pool) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.EmployeeRepository. The account row and the
// employee row are written in one transaction; the employee shares the
// account's ID.
func (e *employeeRepositoryImpl) Create(ctx context.Context, account user.User, profile employee.Employee) (employee.Employee, error) {
	created := profile

	err := WithTransaction(ctx, e.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, e.db)

		userQuery := `
			INSERT INTO users (email, password_hash, status, role)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`
		if err := q.QueryRow(ctx, userQuery,
			account.Email,
			account.PasswordHash,
			string(account.Status),
			string(account.Role),
		).Scan(&created.ID); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
				return user.ErrUserEmailExists
			}
			return fmt.Errorf("insert user: %w", err)
		}

		employeeQuery := `
			INSERT INTO employees (user_id, name, salary, total_work_days, available_paid_leave)
			VALUES ($1, $2, $3, $4, $5)
		`
		if _, err := q.Exec(ctx, employeeQuery,
			created.ID,
			created.Name,
			decimal.NewFromFloat(created.Salary),
			created.TotalWorkDays,
			created.AvailablePaidLeave,
		); err != nil {
			return fmt.Errorf("insert employee: %w", err)
		}

		return nil
	})
	if err != nil {
		return employee.Employee{}, err
	}

	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT user_id, name, salary, total_work_days, available_paid_leave
		FROM employees
		WHERE user_id = $1
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}

	return emp, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET name = $1, salary = $2, total_work_days = $3, available_paid_leave = $4, updated_at = NOW()
		WHERE user_id = $5
	`

	tag, err := q.Exec(ctx, query,
		emp.Name,
		decimal.NewFromFloat(emp.Salary),
		emp.TotalWorkDays,
		emp.AvailablePaidLeave,
		emp.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee with id %d: %w", emp.ID, err)
	}

	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT user_id, name, salary, total_work_days, available_paid_leave
		FROM employees
		ORDER BY user_id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var (
		emp    employee.Employee
		salary decimal.Decimal
	)

	err := row.Scan(
		&emp.ID,
		&emp.Name,
		&salary,
		&emp.TotalWorkDays,
		&emp.AvailablePaidLeave,
	)
	if err != nil {
		return employee.Employee{}, err
	}

	emp.Salary = salary.InexactFloat64()
	return emp, nil
}
