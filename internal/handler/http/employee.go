package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/Se02246/OrderMaster/internal/domain/employee"
	"github.com/Se02246/OrderMaster/internal/handler/http/response"
	"github.com/Se02246/OrderMaster/internal/query"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	ListEmployees(w http.ResponseWriter, r *http.Request)
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	DeleteEmployee(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
	caches          *query.Store
}

func NewEmployeeHandler(employeeService employee.EmployeeService, caches *query.Store) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
		caches:          caches,
	}
}

// ListEmployees implements EmployeeHandler - name search via the q parameter
func (h *employeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))

	results, err := h.caches.Employees.Fetch(r.Context(), "q:"+q, func(ctx context.Context) ([]employee.EmployeeResponse, error) {
		return h.employeeService.ListEmployees(ctx, q)
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// CreateEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.employeeService.CreateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.caches.Flush()
	response.Created(w, "Employee created successfully", result)
}

// DeleteEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid employee ID", nil)
		return
	}

	if err := h.employeeService.DeleteEmployee(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	h.caches.Flush()
	response.SuccessWithMessage(w, "Employee deleted successfully", nil)
}
