package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-gateway/internal/domain/employee"
	"github.com/cmlabs-hris/hris-gateway/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-gateway/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
)

type EmployeeHandler interface {
	CreateUser(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	ListEmployees(w http.ResponseWriter, r *http.Request)
	UpdateAvailablePaidLeave(w http.ResponseWriter, r *http.Request)
	UpdateSalary(w http.ResponseWriter, r *http.Request)
	UpdateTotalWorkDays(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
	}
}

// CreateUser implements EmployeeHandler
func (h *employeeHandlerImpl) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateUser decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	outcome := h.employeeService.CreateUser(r.Context(), jwtauth.TokenFromHeader(r), req)
	response.HandleOutcome(w, outcome)
}

// GetEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := validator.ParseID(chi.URLParam(r, "id"))
	if !ok {
		response.BadRequest(w, "Invalid employee ID", nil)
		return
	}

	emp, err := h.employeeService.RetrieveEmployeeInfo(r.Context(), jwtauth.TokenFromHeader(r), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, emp)
}

// ListEmployees implements EmployeeHandler
func (h *employeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeService.RetrieveAllEmployees(r.Context(), jwtauth.TokenFromHeader(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}

// UpdateAvailablePaidLeave implements EmployeeHandler
func (h *employeeHandlerImpl) UpdateAvailablePaidLeave(w http.ResponseWriter, r *http.Request) {
	id, value, ok := decodeWholeUpdate(w, r)
	if !ok {
		return
	}

	err := h.employeeService.UpdateAvailablePaidLeave(r.Context(), jwtauth.TokenFromHeader(r), id, value)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Available paid leave updated successfully", nil)
}

// UpdateSalary implements EmployeeHandler
func (h *employeeHandlerImpl) UpdateSalary(w http.ResponseWriter, r *http.Request) {
	id, req, ok := decodeUpdate(w, r)
	if !ok {
		return
	}

	err := h.employeeService.UpdateSalary(r.Context(), jwtauth.TokenFromHeader(r), id, *req.Value)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary updated successfully", nil)
}

// UpdateTotalWorkDays implements EmployeeHandler
func (h *employeeHandlerImpl) UpdateTotalWorkDays(w http.ResponseWriter, r *http.Request) {
	id, value, ok := decodeWholeUpdate(w, r)
	if !ok {
		return
	}

	err := h.employeeService.UpdateTotalWorkDays(r.Context(), jwtauth.TokenFromHeader(r), id, value)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Total work days updated successfully", nil)
}

// decodeUpdate reads the {id} path parameter and the {"value": n} body,
// writing the error response itself when either is unusable.
func decodeUpdate(w http.ResponseWriter, r *http.Request) (int64, employee.UpdateValueRequest, bool) {
	var req employee.UpdateValueRequest

	id, ok := validator.ParseID(chi.URLParam(r, "id"))
	if !ok {
		response.BadRequest(w, "Invalid employee ID", nil)
		return 0, req, false
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return 0, req, false
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return 0, req, false
	}

	return id, req, true
}

func decodeWholeUpdate(w http.ResponseWriter, r *http.Request) (int64, int, bool) {
	id, req, ok := decodeUpdate(w, r)
	if !ok {
		return 0, 0, false
	}

	value, ok := req.IntValue()
	if !ok {
		response.HandleError(w, validator.ValidationErrors{{
			Field:   "value",
			Message: "value must be a whole number",
		}})
		return 0, 0, false
	}

	return id, value, true
}
