package employee

import (
	"context"
	"errors"
	"log/slog"

	"github.com/cmlabs-hris/hris-gateway/internal/domain/auth"
	"github.com/cmlabs-hris/hris-gateway/internal/domain/employee"
	"github.com/cmlabs-hris/hris-gateway/internal/domain/user"
	"github.com/cmlabs-hris/hris-gateway/internal/pkg/metrics"
	"github.com/samber/oops"
)

type sessionVerifier interface {
	Verify(ctx context.Context, token string) (auth.Session, error)
}

type passwordHasher interface {
	Hash(plain string) (string, error)
}

// EmployeeServiceImpl is the gateway between token holders and the employee
// store. Every call runs authenticate, authorize, validate and execute in
// that order and stops at the first failing step.
type EmployeeServiceImpl struct {
	logger       *slog.Logger
	verifier     sessionVerifier
	userRepo     user.UserRepository
	employeeRepo employee.EmployeeRepository
	hasher       passwordHasher
	metrics      *metrics.Metrics
}

func NewEmployeeService(
	logger *slog.Logger,
	verifier sessionVerifier,
	userRepo user.UserRepository,
	employeeRepo employee.EmployeeRepository,
	hasher passwordHasher,
	m *metrics.Metrics,
) employee.EmployeeService {
	if logger == nil {
		logger = slog.Default()
	}
	return &EmployeeServiceImpl{
		logger:       logger,
		verifier:     verifier,
		userRepo:     userRepo,
		employeeRepo: employeeRepo,
		hasher:       hasher,
		metrics:      m,
	}
}

// CreateUser implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateUser(ctx context.Context, token string, req employee.CreateUserRequest) (outcome employee.Outcome) {
	op := user.OperationCreateUser
	defer func() { s.record(op, outcome.Err()) }()

	session, err := s.authenticate(ctx, op, token)
	if err != nil {
		return employee.Failed(err)
	}

	if err := s.authorize(ctx, op, session, 0); err != nil {
		return employee.Failed(err)
	}

	count, err := s.userRepo.CountByEmail(ctx, req.Email)
	if err != nil {
		s.logBackendFailure(ctx, op, 0, err)
		return employee.Failed(employee.ErrEmailCheckFailed)
	}
	if count > 0 {
		return employee.Failed(employee.ErrEmailExists)
	}

	if err := req.Validate(); err != nil {
		return employee.Failed(err)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logBackendFailure(ctx, op, 0, err)
		return employee.Failed(employee.ErrCreateFailed)
	}

	account := user.User{
		Email:        req.Email,
		PasswordHash: hash,
		Status:       user.StatusActive,
		Role:         user.Role(req.Role),
	}

	created, err := s.employeeRepo.Create(ctx, account, req.Profile())
	if err != nil {
		if errors.Is(err, user.ErrUserEmailExists) {
			return employee.Failed(employee.ErrEmailExists)
		}
		s.logBackendFailure(ctx, op, 0, err)
		return employee.Failed(employee.ErrCreateFailed)
	}

	s.logger.InfoContext(ctx, "user created",
		"subject_id", session.SubjectID,
		"user_id", created.ID,
		"role", account.Role,
	)

	return employee.Succeeded(employee.MessageUserCreated)
}

// RetrieveEmployeeInfo implements employee.EmployeeService. A caller who may
// not see the record gets the same error as for a missing record.
func (s *EmployeeServiceImpl) RetrieveEmployeeInfo(ctx context.Context, token string, userID int64) (emp employee.Employee, err error) {
	op := user.OperationViewEmployee
	defer func() { s.record(op, err) }()

	session, err := s.authenticate(ctx, op, token)
	if err != nil {
		return employee.Employee{}, err
	}

	if err := s.authorize(ctx, op, session, userID); err != nil {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}

	emp, err = s.employeeRepo.GetByID(ctx, userID)
	if err != nil {
		return employee.Employee{}, s.storeError(ctx, op, userID, err)
	}

	return emp, nil
}

// UpdateAvailablePaidLeave implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateAvailablePaidLeave(ctx context.Context, token string, userID int64, value int) error {
	return s.updateField(ctx, user.OperationUpdateAvailablePaidLeave, token, userID, value < 0,
		func(emp employee.Employee) employee.Employee {
			return emp.WithAvailablePaidLeave(value)
		})
}

// UpdateSalary implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateSalary(ctx context.Context, token string, userID int64, value float64) error {
	return s.updateField(ctx, user.OperationUpdateSalary, token, userID, !employee.IsValidAmount(value),
		func(emp employee.Employee) employee.Employee {
			return emp.WithSalary(value)
		})
}

// UpdateTotalWorkDays implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateTotalWorkDays(ctx context.Context, token string, userID int64, value int) error {
	return s.updateField(ctx, user.OperationUpdateTotalWorkDays, token, userID, value < 0,
		func(emp employee.Employee) employee.Employee {
			return emp.WithTotalWorkDays(value)
		})
}

// RetrieveAllEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) RetrieveAllEmployees(ctx context.Context, token string) (list []employee.Employee, err error) {
	op := user.OperationViewAllEmployees
	defer func() { s.record(op, err) }()

	session, err := s.authenticate(ctx, op, token)
	if err != nil {
		return nil, err
	}

	if err := s.authorize(ctx, op, session, 0); err != nil {
		return nil, err
	}

	list, err = s.employeeRepo.List(ctx)
	if err != nil {
		return nil, s.storeError(ctx, op, 0, err)
	}

	return list, nil
}

// updateField reads the record once, applies one field change and writes the
// whole record back. Concurrent updates to the same record are last-writer-wins.
func (s *EmployeeServiceImpl) updateField(
	ctx context.Context,
	op user.Operation,
	token string,
	userID int64,
	invalid bool,
	apply func(employee.Employee) employee.Employee,
) (err error) {
	defer func() { s.record(op, err) }()

	session, err := s.authenticate(ctx, op, token)
	if err != nil {
		return err
	}

	if err := s.authorize(ctx, op, session, userID); err != nil {
		return err
	}

	if invalid {
		return employee.ErrInvalidUpdateValue
	}

	current, err := s.employeeRepo.GetByID(ctx, userID)
	if err != nil {
		return s.storeError(ctx, op, userID, err)
	}

	if err := s.employeeRepo.Update(ctx, apply(current)); err != nil {
		return s.storeError(ctx, op, userID, err)
	}

	s.logger.InfoContext(ctx, "employee updated",
		"operation", string(op),
		"subject_id", session.SubjectID,
		"user_id", userID,
	)

	return nil
}

func (s *EmployeeServiceImpl) authenticate(ctx context.Context, op user.Operation, token string) (auth.Session, error) {
	session, err := s.verifier.Verify(ctx, token)
	if err != nil {
		s.logger.WarnContext(ctx, "Invalid or expired token", "operation", string(op))
		return auth.Session{}, employee.ErrInvalidRequest
	}
	return session, nil
}

func (s *EmployeeServiceImpl) authorize(ctx context.Context, op user.Operation, session auth.Session, targetID int64) error {
	if err := user.Authorize(op, session.Role, session.SubjectID, targetID); err != nil {
		s.logger.WarnContext(ctx, "permission denied",
			"operation", string(op),
			"subject_id", session.SubjectID,
			"role", session.Role,
			"target_id", targetID,
		)
		return employee.ErrPermissionDenied
	}
	return nil
}

// storeError turns a store failure into the error returned to the caller.
// Missing records stay ErrEmployeeNotFound; anything else is logged and
// reported as ErrBackendFailure.
func (s *EmployeeServiceImpl) storeError(ctx context.Context, op user.Operation, targetID int64, err error) error {
	if errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.ErrEmployeeNotFound
	}
	s.logBackendFailure(ctx, op, targetID, err)
	return employee.ErrBackendFailure
}

func (s *EmployeeServiceImpl) logBackendFailure(ctx context.Context, op user.Operation, targetID int64, err error) {
	wrapped := oops.
		Code("BACKEND_FAILURE").
		In("employee-service").
		With("operation", string(op)).
		With("target_id", targetID).
		Wrap(err)

	s.logger.ErrorContext(ctx, "employee store failure", "error", wrapped)
}

func (s *EmployeeServiceImpl) record(op user.Operation, err error) {
	result := metrics.ResultSuccess
	if err != nil {
		result = employee.KindOf(err).String()
	}
	s.metrics.RecordOperation(string(op), result)
}
