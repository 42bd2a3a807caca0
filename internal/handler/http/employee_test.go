package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Se02246/OrderMaster/internal/domain/employee"
	"github.com/Se02246/OrderMaster/internal/query"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeService struct {
	employees  []employee.EmployeeResponse
	nextID     int64
	lastQuery  string
	listCalls  int
	deletedIDs []int64
	err        error
}

func (f *fakeEmployeeService) ListEmployees(ctx context.Context, query string) ([]employee.EmployeeResponse, error) {
	f.listCalls++
	f.lastQuery = query
	if f.err != nil {
		return nil, f.err
	}
	return f.employees, nil
}

func (f *fakeEmployeeService) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if f.err != nil {
		return employee.EmployeeResponse{}, f.err
	}

	f.nextID++
	created := employee.EmployeeResponse{
		ID:        f.nextID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	f.employees = append(f.employees, created)
	return created, nil
}

func (f *fakeEmployeeService) DeleteEmployee(ctx context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

func newEmployeeRouter(service employee.EmployeeService) (*chi.Mux, *query.Store) {
	caches := query.NewStore(time.Minute)
	handler := NewEmployeeHandler(service, caches)

	r := chi.NewRouter()
	r.Route("/api/v1/employees", func(r chi.Router) {
		r.Get("/", handler.ListEmployees)
		r.Post("/", handler.CreateEmployee)
		r.Delete("/{id}", handler.DeleteEmployee)
	})
	return r, caches
}

// ===== EMPLOYEE HANDLER TESTS =====

func TestEmployeeHandler_List_PassesTrimmedQuery(t *testing.T) {
	service := &fakeEmployeeService{
		employees: []employee.EmployeeResponse{
			{ID: 1, FirstName: "Maria", LastName: "Rossi", AssignmentCount: 9},
		},
	}
	router, _ := newEmployeeRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/employees?q=%20maria%20", nil)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "maria", service.lastQuery)

	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.True(t, resp["success"].(bool))

	data := resp["data"].([]interface{})
	require.Len(t, data, 1)
	first := data[0].(map[string]interface{})
	assert.Equal(t, "Maria", first["first_name"])
	assert.Equal(t, float64(9), first["assignment_count"])
}

func TestEmployeeHandler_List_CachesPerQuery(t *testing.T) {
	service := &fakeEmployeeService{}
	router, _ := newEmployeeRouter(service)

	get := func(target string) {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	// Same query twice is one service call; a different query is another.
	get("/api/v1/employees?q=maria")
	get("/api/v1/employees?q=maria")
	assert.Equal(t, 1, service.listCalls)

	get("/api/v1/employees?q=luca")
	assert.Equal(t, 2, service.listCalls)
}

func TestEmployeeHandler_Create_Success(t *testing.T) {
	service := &fakeEmployeeService{}
	router, _ := newEmployeeRouter(service)

	body, _ := json.Marshal(employee.CreateEmployeeRequest{FirstName: "Luca", LastName: "Bianchi"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/employees", bytes.NewReader(body))
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Employee created successfully", resp["message"])

	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "Luca", data["first_name"])
	assert.Equal(t, "Bianchi", data["last_name"])
}

func TestEmployeeHandler_Create_ValidationError(t *testing.T) {
	service := &fakeEmployeeService{}
	router, _ := newEmployeeRouter(service)

	body, _ := json.Marshal(employee.CreateEmployeeRequest{FirstName: "Luca"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/employees", bytes.NewReader(body))
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	errDetail := resp["error"].(map[string]interface{})
	details := errDetail["details"].(map[string]interface{})
	assert.Contains(t, details, "last_name")
	assert.Empty(t, service.employees)
}

func TestEmployeeHandler_Delete_FlushesEmployeeCache(t *testing.T) {
	service := &fakeEmployeeService{}
	router, _ := newEmployeeRouter(service)

	get := func() {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/employees", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
	}

	get()
	assert.Equal(t, 1, service.listCalls)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/employees/3", nil)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []int64{3}, service.deletedIDs)

	get()
	assert.Equal(t, 2, service.listCalls)
}

func TestEmployeeHandler_Delete_NotFound(t *testing.T) {
	service := &fakeEmployeeService{err: employee.ErrEmployeeNotFound}
	router, _ := newEmployeeRouter(service)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/employees/99", nil)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	errDetail := resp["error"].(map[string]interface{})
	assert.Equal(t, "Employee not found", errDetail["message"])
}

func TestEmployeeHandler_Delete_InvalidID(t *testing.T) {
	service := &fakeEmployeeService{}
	router, _ := newEmployeeRouter(service)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/employees/abc", nil)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, service.deletedIDs)
}
