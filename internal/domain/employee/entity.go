package employee

// Policy defaults seeded into every new employee record.
const (
	DefaultTotalWorkDays      = 20
	DefaultAvailablePaidLeave = 10
)

// Employee is the record owned by the store. The gateway only ever holds a
// copy fetched within the current call.
type Employee struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	Salary             float64 `json:"salary"`
	TotalWorkDays      int     `json:"total_work_days"`
	AvailablePaidLeave int     `json:"available_paid_leave"`
}

// WithSalary returns a copy of e with the salary replaced
func (e Employee) WithSalary(salary float64) Employee {
	e.Salary = salary
	return e
}

// WithTotalWorkDays returns a copy of e with the work-day count replaced
func (e Employee) WithTotalWorkDays(days int) Employee {
	e.TotalWorkDays = days
	return e
}

// WithAvailablePaidLeave returns a copy of e with the paid leave balance replaced
func (e Employee) WithAvailablePaidLeave(days int) Employee {
	e.AvailablePaidLeave = days
	return e
}
