package employee

import (
	"context"
	"sync"

	"github.com/cmlabs-hris/hris-gateway/internal/domain/auth"
	"github.com/cmlabs-hris/hris-gateway/internal/domain/employee"
	"github.com/cmlabs-hris/hris-gateway/internal/domain/user"
)

var (
	_ sessionVerifier             = &sessionVerifierMock{}
	_ passwordHasher              = &passwordHasherMock{}
	_ user.UserRepository         = &userRepositoryMock{}
	_ employee.EmployeeRepository = &employeeRepositoryMock{}
)

type sessionVerifierMock struct {
	VerifyFunc func(ctx context.Context, token string) (auth.Session, error)

	calls struct {
		Verify []struct {
			Token string
		}
	}
	lockVerify sync.RWMutex
}

func (mock *sessionVerifierMock) Verify(ctx context.Context, token string) (auth.Session, error) {
	if mock.VerifyFunc == nil {
		panic("sessionVerifierMock.VerifyFunc: method is nil but sessionVerifier.Verify was just called")
	}
	mock.lockVerify.Lock()
	mock.calls.Verify = append(mock.calls.Verify, struct{ Token string }{Token: token})
	mock.lockVerify.Unlock()
	return mock.VerifyFunc(ctx, token)
}

func (mock *sessionVerifierMock) VerifyCalls() []struct{ Token string } {
	mock.lockVerify.RLock()
	calls := mock.calls.Verify
	mock.lockVerify.RUnlock()
	return calls
}

type passwordHasherMock struct {
	HashFunc func(plain string) (string, error)

	calls struct {
		Hash []struct {
			Plain string
		}
	}
	lockHash sync.RWMutex
}

func (mock *passwordHasherMock) Hash(plain string) (string, error) {
	if mock.HashFunc == nil {
		panic("passwordHasherMock.HashFunc: method is nil but passwordHasher.Hash was just called")
	}
	mock.lockHash.Lock()
	mock.calls.Hash = append(mock.calls.Hash, struct{ Plain string }{Plain: plain})
	mock.lockHash.Unlock()
	return mock.HashFunc(plain)
}

func (mock *passwordHasherMock) HashCalls() []struct{ Plain string } {
	mock.lockHash.RLock()
	calls := mock.calls.Hash
	mock.lockHash.RUnlock()
	return calls
}

type userRepositoryMock struct {
	GetByEmailFunc   func(ctx context.Context, email string) (user.User, error)
	CountByEmailFunc func(ctx context.Context, email string) (int, error)

	calls struct {
		GetByEmail []struct {
			Email string
		}
		CountByEmail []struct {
			Email string
		}
	}
	lockGetByEmail   sync.RWMutex
	lockCountByEmail sync.RWMutex
}

func (mock *userRepositoryMock) GetByEmail(ctx context.Context, email string) (user.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("userRepositoryMock.GetByEmailFunc: method is nil but UserRepository.GetByEmail was just called")
	}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, struct{ Email string }{Email: email})
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *userRepositoryMock) GetByEmailCalls() []struct{ Email string } {
	mock.lockGetByEmail.RLock()
	calls := mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
	return calls
}

func (mock *userRepositoryMock) CountByEmail(ctx context.Context, email string) (int, error) {
	if mock.CountByEmailFunc == nil {
		panic("userRepositoryMock.CountByEmailFunc: method is nil but UserRepository.CountByEmail was just called")
	}
	mock.lockCountByEmail.Lock()
	mock.calls.CountByEmail = append(mock.calls.CountByEmail, struct{ Email string }{Email: email})
	mock.lockCountByEmail.Unlock()
	return mock.CountByEmailFunc(ctx, email)
}

func (mock *userRepositoryMock) CountByEmailCalls() []struct{ Email string } {
	mock.lockCountByEmail.RLock()
	calls := mock.calls.CountByEmail
	mock.lockCountByEmail.RUnlock()
	return calls
}

type employeeRepositoryMock struct {
	CreateFunc  func(ctx context.Context, account user.User, profile employee.Employee) (employee.Employee, error)
	GetByIDFunc func(ctx context.Context, id int64) (employee.Employee, error)
	UpdateFunc  func(ctx context.Context, emp employee.Employee) error
	ListFunc    func(ctx context.Context) ([]employee.Employee, error)

	calls struct {
		Create []struct {
			Account user.User
			Profile employee.Employee
		}
		GetByID []struct {
			ID int64
		}
		Update []struct {
			Emp employee.Employee
		}
		List []struct{}
	}
	lockCreate  sync.RWMutex
	lockGetByID sync.RWMutex
	lockUpdate  sync.RWMutex
	lockList    sync.RWMutex
}

func (mock *employeeRepositoryMock) Create(ctx context.Context, account user.User, profile employee.Employee) (employee.Employee, error) {
	if mock.CreateFunc == nil {
		panic("employeeRepositoryMock.CreateFunc: method is nil but EmployeeRepository.Create was just called")
	}
	callInfo := struct {
		Account user.User
		Profile employee.Employee
	}{Account: account, Profile: profile}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, account, profile)
}

func (mock *employeeRepositoryMock) CreateCalls() []struct {
	Account user.User
	Profile employee.Employee
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *employeeRepositoryMock) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	if mock.GetByIDFunc == nil {
		panic("employeeRepositoryMock.GetByIDFunc: method is nil but EmployeeRepository.GetByID was just called")
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID int64 }{ID: id})
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *employeeRepositoryMock) GetByIDCalls() []struct{ ID int64 } {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *employeeRepositoryMock) Update(ctx context.Context, emp employee.Employee) error {
	if mock.UpdateFunc == nil {
		panic("employeeRepositoryMock.UpdateFunc: method is nil but EmployeeRepository.Update was just called")
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, struct{ Emp employee.Employee }{Emp: emp})
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, emp)
}

func (mock *employeeRepositoryMock) UpdateCalls() []struct{ Emp employee.Employee } {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *employeeRepositoryMock) List(ctx context.Context) ([]employee.Employee, error) {
	if mock.ListFunc == nil {
		panic("employeeRepositoryMock.ListFunc: method is nil but EmployeeRepository.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct{}{})
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *employeeRepositoryMock) ListCalls() []struct{} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
