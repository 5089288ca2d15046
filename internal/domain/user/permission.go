package user

type Operation string

const (
	OperationCreateUser               Operation = "user.create"
	OperationViewEmployee             Operation = "employee.view"
	OperationViewAllEmployees         Operation = "employee.view_all"
	OperationUpdateAvailablePaidLeave Operation = "employee.update_paid_leave"
	OperationUpdateSalary             Operation = "employee.update_salary"
	OperationUpdateTotalWorkDays      Operation = "employee.update_work_days"
)

// Rule describes who may perform an operation.
type Rule struct {
	// Roles allowed to perform the operation on any record.
	Roles []Role
	// SelfOnly restricts subjects outside Roles to their own record.
	SelfOnly bool
}

// OperationRules maps operations to their access rule
var OperationRules = map[Operation]Rule{
	OperationCreateUser:               {Roles: []Role{RoleHR}},
	OperationViewEmployee:             {Roles: []Role{RoleHR}, SelfOnly: true},
	OperationViewAllEmployees:         {Roles: []Role{RoleHR}},
	OperationUpdateAvailablePaidLeave: {Roles: []Role{RoleHR}},
	OperationUpdateSalary:             {Roles: []Role{RoleHR}},
	OperationUpdateTotalWorkDays:      {Roles: []Role{RoleHR}},
}

// HasRole checks if the rule grants role unrestricted access
func (r Rule) HasRole(role Role) bool {
	for _, allowed := range r.Roles {
		if allowed == role {
			return true
		}
	}
	return false
}

// Authorize decides whether a subject with the given role may perform op on
// the record identified by targetID. It never touches the store.
func Authorize(op Operation, role Role, subjectID, targetID int64) error {
	rule, exists := OperationRules[op]
	if !exists {
		return ErrUnknownOperation
	}

	if role == "" {
		return ErrPermissionDenied
	}

	if rule.HasRole(role) {
		return nil
	}

	if rule.SelfOnly && subjectID == targetID {
		return nil
	}

	return ErrPermissionDenied
}
