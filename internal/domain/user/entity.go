package user

type Role string

// Role is stored as given at account creation. Any role other than HR is
// treated as a regular employee.
const (
	RoleHR       Role = "HR"       // Manages accounts and employee records
	RoleEmployee Role = "Employee" // Can only read own record
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// User is an account as held by the store. ID is assigned by the store on
// creation; a zero ID means the value has not been persisted yet.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Status       Status
	Role         Role
}

// IsActive checks if the account may sign in
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}
