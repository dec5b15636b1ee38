package incident_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"safety-api/internal/incident"
	incidenterrors "safety-api/internal/incident/errors"
	"safety-api/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	createFn  func(ctx context.Context, req incident.CreateIncidentRequest) (incident.IncidentResponse, error)
	listFn    func(ctx context.Context, skip, limit int) ([]incident.IncidentResponse, error)
	getByIDFn func(ctx context.Context, id int) (incident.IncidentResponse, error)
	updateFn  func(ctx context.Context, id int, req incident.UpdateIncidentRequest) (incident.IncidentResponse, error)
	deleteFn  func(ctx context.Context, id int) error
}

func (f *fakeService) Create(ctx context.Context, req incident.CreateIncidentRequest) (incident.IncidentResponse, error) {
	return f.createFn(ctx, req)
}
func (f *fakeService) List(ctx context.Context, skip, limit int) ([]incident.IncidentResponse, error) {
	return f.listFn(ctx, skip, limit)
}
func (f *fakeService) GetByID(ctx context.Context, id int) (incident.IncidentResponse, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeService) Update(ctx context.Context, id int, req incident.UpdateIncidentRequest) (incident.IncidentResponse, error) {
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
		createFn: func(ctx context.Context, req incident.CreateIncidentRequest) (incident.IncidentResponse, error) {
			assert.Equal(t, "Slip and Fall", req.IncidentType)
			return incident.IncidentResponse{IncidentID: 1, IncidentType: req.IncidentType, Status: "Open"}, nil
		},
	}
	h := incident.NewHandler(svc)

	w := httptest.NewRecorder()
	c := newJSONContext(w, http.MethodPost, "/incidents",
		`{"date_time":"2025-09-01T08:30:00Z","location_id":1,"incident_type":"Slip and Fall"}`)
	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"Open"`)
}

func TestHandler_Create_MissingFields(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := incident.NewHandler(&fakeService{})

	w := httptest.NewRecorder()
	c := newJSONContext(w, http.MethodPost, "/incidents", `{"location_id":1}`)
	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "required")
}

func TestHandler_Create_InvalidDateTime(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		createFn: func(ctx context.Context, req incident.CreateIncidentRequest) (incident.IncidentResponse, error) {
			return incident.IncidentResponse{}, incidenterrors.ErrInvalidDateTime
		},
	}
	h := incident.NewHandler(svc)

	w := httptest.NewRecorder()
	c := newJSONContext(w, http.MethodPost, "/incidents",
		`{"date_time":"yesterday","location_id":1,"incident_type":"Slip and Fall"}`)
	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "RFC 3339")
}

func TestHandler_List_AllowsLargeLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var gotLimit int
	svc := &fakeService{
		listFn: func(ctx context.Context, skip, limit int) ([]incident.IncidentResponse, error) {
			gotLimit = limit
			return nil, nil
		},
	}
	h := incident.NewHandler(svc)

	// Incidents allow limits up to 1000.
	w := httptest.NewRecorder()
	c := newJSONContext(w, http.MethodGet, "/incidents?limit=1000", "")
	h.List(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1000, gotLimit)

	w2 := httptest.NewRecorder()
	c2 := newJSONContext(w2, http.MethodGet, "/incidents?limit=1001", "")
	h.List(c2)
	assert.Equal(t, http.StatusBadRequest, w2.Code)
}

func TestHandler_GetByID_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		getByIDFn: func(ctx context.Context, id int) (incident.IncidentResponse, error) {
			assert.Equal(t, 999999, id)
			return incident.IncidentResponse{}, incidenterrors.ErrIncidentNotFound
		},
	}
	h := incident.NewHandler(svc)

	w := httptest.NewRecorder()
	c := newJSONContext(w, http.MethodGet, "/incidents/999999", "")
	c.Params = gin.Params{{Key: "id", Value: "999999"}}
	h.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Incident not found")
}

func TestHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		deleteFn: func(ctx context.Context, id int) error { return nil },
	}
	h := incident.NewHandler(svc)

	w := httptest.NewRecorder()
	c := newJSONContext(w, http.MethodDelete, "/incidents/1", "")
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	h.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Incident deleted successfully"}`, w.Body.String())
}
