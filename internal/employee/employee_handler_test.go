package employee_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"safety-api/internal/employee"
	employeeerrors "safety-api/internal/employee/errors"
	"safety-api/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	createFn  func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	listFn    func(ctx context.Context, skip, limit int) ([]employee.EmployeeResponse, error)
	getByIDFn func(ctx context.Context, id int) (employee.EmployeeResponse, error)
	updateFn  func(ctx context.Context, id int, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	deleteFn  func(ctx context.Context, id int) error
}

func (f *fakeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.createFn(ctx, req)
}
func (f *fakeService) List(ctx context.Context, skip, limit int) ([]employee.EmployeeResponse, error) {
	return f.listFn(ctx, skip, limit)
}
func (f *fakeService) GetByID(ctx context.Context, id int) (employee.EmployeeResponse, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeService) Update(ctx context.Context, id int, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.updateFn(ctx, id, req)
}
func (f *fakeService) Delete(ctx context.Context, id int) error {
	return f.deleteFn(ctx, id)
}

func init() {
	apperror.Init()
}

func newJSONContext(w *httptest.ResponseRecorder, method, target, body string) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c
}

func TestHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		createFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
			assert.Equal(t, "EMP001", req.EmployeeCode)
			return employee.EmployeeResponse{
				EmployeeID:   1,
				Name:         req.EmployeeName,
				EmployeeName: req.EmployeeName,
				EmployeeCode: req.EmployeeCode,
			}, nil
		},
	}
	h := employee.NewHandler(svc)

	w := httptest.NewRecorder()
	c := newJSONContext(w, http.MethodPost, "/employees",
		`{"employee_name":"John Smith","employee_code":"EMP001"}`)
	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"employee_id":1`)
	assert.Contains(t, w.Body.String(), `"name":"John Smith"`)
}

func TestHandler_Create_MissingCode(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := employee.NewHandler(&fakeService{})

	w := httptest.NewRecorder()
	c := newJSONContext(w, http.MethodPost, "/employees", `{"employee_name":"John Smith"}`)
	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "required")
}

func TestHandler_Create_DuplicateCode(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		createFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
			return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeCodeExists
		},
	}
	h := employee.NewHandler(svc)

	w := httptest.NewRecorder()
	c := newJSONContext(w, http.MethodPost, "/employees",
		`{"employee_name":"Jane Doe","employee_code":"EMP001"}`)
	h.Create(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		deleteFn: func(ctx context.Context, id int) error { return nil },
	}
	h := employee.NewHandler(svc)

	w := httptest.NewRecorder()
	c := newJSONContext(w, http.MethodDelete, "/employees/1", "")
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	h.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Employee deleted successfully"}`, w.Body.String())
}

func TestHandler_GetByID_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		getByIDFn: func(ctx context.Context, id int) (employee.EmployeeResponse, error) {
			return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		},
	}
	h := employee.NewHandler(svc)

	w := httptest.NewRecorder()
	c := newJSONContext(w, http.MethodGet, "/employees/999999", "")
	c.Params = gin.Params{{Key: "id", Value: "999999"}}
	h.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Employee not found")
}
