package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cmlabs-hris/hris-gateway/internal/domain/auth"
	"github.com/cmlabs-hris/hris-gateway/internal/domain/employee"
	"github.com/cmlabs-hris/hris-gateway/internal/handler/http/response"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeService struct {
	token   string
	userID  int64
	value   float64
	created employee.CreateUserRequest

	outcome employee.Outcome
	emp     employee.Employee
	list    []employee.Employee
	err     error
}

func (f *fakeEmployeeService) CreateUser(ctx context.Context, token string, req employee.CreateUserRequest) employee.Outcome {
	f.token, f.created = token, req
	return f.outcome
}

func (f *fakeEmployeeService) RetrieveEmployeeInfo(ctx context.Context, token string, userID int64) (employee.Employee, error) {
	f.token, f.userID = token, userID
	return f.emp, f.err
}

func (f *fakeEmployeeService) UpdateAvailablePaidLeave(ctx context.Context, token string, userID int64, value int) error {
	f.token, f.userID, f.value = token, userID, float64(value)
	return f.err
}

func (f *fakeEmployeeService) UpdateSalary(ctx context.Context, token string, userID int64, value float64) error {
	f.token, f.userID, f.value = token, userID, value
	return f.err
}

func (f *fakeEmployeeService) UpdateTotalWorkDays(ctx context.Context, token string, userID int64, value int) error {
	f.token, f.userID, f.value = token, userID, float64(value)
	return f.err
}

func (f *fakeEmployeeService) RetrieveAllEmployees(ctx context.Context, token string) ([]employee.Employee, error) {
	f.token = token
	return f.list, f.err
}

type fakeAuthService struct {
	loginReq     auth.LoginRequest
	loggedOut    string
	tokenResp    auth.TokenResponse
	loginErr     error
	logoutCalled bool
}

func (f *fakeAuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	f.loginReq = req
	return f.tokenResp, f.loginErr
}

func (f *fakeAuthService) Logout(ctx context.Context, token string) error {
	f.logoutCalled = true
	f.loggedOut = token
	return nil
}

func newTestRouter(t *testing.T, emp *fakeEmployeeService, authSvc *fakeAuthService) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(
		RouterConfig{Logger: logger, AllowedOrigins: []string{"*"}, Gatherer: prometheus.NewRegistry()},
		NewAuthHandler(authSvc),
		NewEmployeeHandler(emp),
	)
}

func doRequest(t *testing.T, h http.Handler, method, path, token, body string) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var resp response.Response
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

func TestCreateUser_StatusByOutcome(t *testing.T) {
	cases := []struct {
		name    string
		outcome employee.Outcome
		status  int
	}{
		{"created", employee.Succeeded(employee.MessageUserCreated), http.StatusCreated},
		{"bad token", employee.Failed(employee.ErrInvalidRequest), http.StatusUnauthorized},
		{"not hr", employee.Failed(employee.ErrPermissionDenied), http.StatusForbidden},
		{"duplicate", employee.Failed(employee.ErrEmailExists), http.StatusUnprocessableEntity},
		{"bad password", employee.Failed(employee.ErrInvalidPasswordLength), http.StatusUnprocessableEntity},
		{"store down", employee.Failed(employee.ErrCreateFailed), http.StatusInternalServerError},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			svc := &fakeEmployeeService{outcome: c.outcome}
			h := newTestRouter(t, svc, &fakeAuthService{})

			rec, resp := doRequest(t, h, http.MethodPost, "/api/v1/users", "tok",
				`{"email":"a@b.com","role":"Employee","password":"abcd","name":"Jane","salary":1000}`)

			assert.Equal(t, c.status, rec.Code)
			assert.Equal(t, c.outcome.Message, resp.Message)
			assert.Equal(t, c.outcome.Success(), resp.Success)
			assert.Equal(t, "tok", svc.token)
			assert.Equal(t, employee.CreateUserRequest{
				Email: "a@b.com", Role: "Employee", Password: "abcd", Name: "Jane", Salary: 1000,
			}, svc.created)
		})
	}
}

func TestCreateUser_MalformedBody(t *testing.T) {
	svc := &fakeEmployeeService{}
	h := newTestRouter(t, svc, &fakeAuthService{})

	rec, _ := doRequest(t, h, http.MethodPost, "/api/v1/users", "tok", `{"email":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, svc.token)
}

func TestGetEmployee(t *testing.T) {
	svc := &fakeEmployeeService{emp: employee.Employee{ID: 5, Name: "John Doe", Salary: 50000, TotalWorkDays: 20, AvailablePaidLeave: 10}}
	h := newTestRouter(t, svc, &fakeAuthService{})

	rec, resp := doRequest(t, h, http.MethodGet, "/api/v1/employees/5", "tok", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, int64(5), svc.userID)
	assert.Contains(t, rec.Body.String(), `"name":"John Doe"`)
}

func TestGetEmployee_ErrorStatus(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{employee.ErrInvalidRequest, http.StatusUnauthorized},
		{employee.ErrEmployeeNotFound, http.StatusNotFound},
		{employee.ErrBackendFailure, http.StatusInternalServerError},
	}

	for _, c := range cases {
		svc := &fakeEmployeeService{err: c.err}
		h := newTestRouter(t, svc, &fakeAuthService{})

		rec, resp := doRequest(t, h, http.MethodGet, "/api/v1/employees/9", "tok", "")

		assert.Equal(t, c.status, rec.Code, c.err.Error())
		assert.False(t, resp.Success)
	}
}

func TestGetEmployee_InvalidID(t *testing.T) {
	for _, id := range []string{"abc", "0", "-3"} {
		svc := &fakeEmployeeService{}
		h := newTestRouter(t, svc, &fakeAuthService{})

		rec, _ := doRequest(t, h, http.MethodGet, "/api/v1/employees/"+id, "tok", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code, id)
		assert.Empty(t, svc.token)
	}
}

func TestListEmployees(t *testing.T) {
	svc := &fakeEmployeeService{list: []employee.Employee{{ID: 1, Name: "John Doe"}, {ID: 2, Name: "Jane"}}}
	h := newTestRouter(t, svc, &fakeAuthService{})

	rec, _ := doRequest(t, h, http.MethodGet, "/api/v1/employees", "tok", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Jane"`)

	svc.err = employee.ErrPermissionDenied
	rec, resp := doRequest(t, h, http.MethodGet, "/api/v1/employees", "tok", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "You do not have permission to perform this action", resp.Message)
}

func TestUpdateRoutes(t *testing.T) {
	cases := []struct {
		path  string
		body  string
		value float64
	}{
		{"/api/v1/employees/5/salary", `{"value": 55000.5}`, 55000.5},
		{"/api/v1/employees/5/paid-leave", `{"value": 15}`, 15},
		{"/api/v1/employees/5/work-days", `{"value": 22}`, 22},
	}

	for _, c := range cases {
		svc := &fakeEmployeeService{}
		h := newTestRouter(t, svc, &fakeAuthService{})

		rec, resp := doRequest(t, h, http.MethodPut, c.path, "tok", c.body)

		assert.Equal(t, http.StatusOK, rec.Code, c.path)
		assert.True(t, resp.Success, c.path)
		assert.Equal(t, int64(5), svc.userID)
		assert.Equal(t, c.value, svc.value)
		assert.Equal(t, "tok", svc.token)
	}
}

func TestUpdateRoutes_RejectBadBodies(t *testing.T) {
	cases := []struct {
		name   string
		path   string
		body   string
		status int
	}{
		{"missing value", "/api/v1/employees/5/salary", `{}`, http.StatusUnprocessableEntity},
		{"fractional days", "/api/v1/employees/5/work-days", `{"value": 1.5}`, http.StatusUnprocessableEntity},
		{"fractional leave", "/api/v1/employees/5/paid-leave", `{"value": 0.25}`, http.StatusUnprocessableEntity},
		{"malformed", "/api/v1/employees/5/salary", `nope`, http.StatusBadRequest},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			svc := &fakeEmployeeService{}
			h := newTestRouter(t, svc, &fakeAuthService{})

			rec, _ := doRequest(t, h, http.MethodPut, c.path, "tok", c.body)

			assert.Equal(t, c.status, rec.Code)
			assert.Empty(t, svc.token)
		})
	}
}

func TestUpdate_NegativeValueFromService(t *testing.T) {
	svc := &fakeEmployeeService{err: employee.ErrInvalidUpdateValue}
	h := newTestRouter(t, svc, &fakeAuthService{})

	rec, resp := doRequest(t, h, http.MethodPut, "/api/v1/employees/5/salary", "tok", `{"value": -1}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "value must not be negative", resp.Message)
}

func TestLogin(t *testing.T) {
	authSvc := &fakeAuthService{tokenResp: auth.TokenResponse{AccessToken: "jwt", AccessTokenExpiresIn: 3600, TokenType: "Bearer"}}
	h := newTestRouter(t, &fakeEmployeeService{}, authSvc)

	rec, resp := doRequest(t, h, http.MethodPost, "/api/v1/auth/login", "", `{"email":"hr@example.com","password":"password123"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "hr@example.com", authSvc.loginReq.Email)
	assert.Contains(t, rec.Body.String(), `"access_token":"jwt"`)
}

func TestLogin_Errors(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{"bad credentials", `{"email":"hr@example.com","password":"x"}`, auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"inactive", `{"email":"hr@example.com","password":"x"}`, auth.ErrAccountInactive, http.StatusForbidden},
		{"missing fields", `{}`, nil, http.StatusUnprocessableEntity},
		{"malformed", `{`, nil, http.StatusBadRequest},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := newTestRouter(t, &fakeEmployeeService{}, &fakeAuthService{loginErr: c.err})

			rec, _ := doRequest(t, h, http.MethodPost, "/api/v1/auth/login", "", c.body)

			assert.Equal(t, c.status, rec.Code)
		})
	}
}

func TestLogout(t *testing.T) {
	authSvc := &fakeAuthService{}
	h := newTestRouter(t, &fakeEmployeeService{}, authSvc)

	rec, _ := doRequest(t, h, http.MethodPost, "/api/v1/auth/logout", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, authSvc.logoutCalled)

	rec, _ = doRequest(t, h, http.MethodPost, "/api/v1/auth/logout", "jwt", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "jwt", authSvc.loggedOut)
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestRouter(t, &fakeEmployeeService{}, &fakeAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
