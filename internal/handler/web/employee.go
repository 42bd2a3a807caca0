package web

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/Se02246/OrderMaster/internal/domain/employee"
	"github.com/Se02246/OrderMaster/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type employeesPage struct {
	page
	Query      string
	Employees  []employee.EmployeeResponse
	LoadFailed bool
	Errors     map[string]string
	FirstName  string
	LastName   string
	Notice     string
}

// Employees renders the employee cards with the optional name search.
func (h *PageHandler) Employees(w http.ResponseWriter, r *http.Request) {
	h.renderEmployees(w, r, employeesPage{
		page:  page{Title: "Dipendenti", Active: "employees"},
		Query: strings.TrimSpace(r.URL.Query().Get("q")),
	})
}

// CreateEmployee handles the dedicated creation form. Validation failures
// re-render the page with the entered names preserved.
func (h *PageHandler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	req := employee.CreateEmployeeRequest{
		FirstName: r.FormValue("first_name"),
		LastName:  r.FormValue("last_name"),
	}

	if _, err := h.employeeService.CreateEmployee(r.Context(), req); err != nil {
		data := employeesPage{
			page:      page{Title: "Dipendenti", Active: "employees"},
			FirstName: req.FirstName,
			LastName:  req.LastName,
		}

		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			data.Errors = validationErrs.ToMap()
		} else {
			data.Notice = "Impossibile creare il dipendente."
		}
		h.renderEmployees(w, r, data)
		return
	}

	h.caches.Flush()
	http.Redirect(w, r, "/employees", http.StatusSeeOther)
}

// DeleteEmployee removes an employee; their assignments disappear with them.
func (h *PageHandler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid employee id", http.StatusBadRequest)
		return
	}

	if err := h.employeeService.DeleteEmployee(r.Context(), id); err != nil && !errors.Is(err, employee.ErrEmployeeNotFound) {
		http.Error(w, "failed to delete employee", http.StatusInternalServerError)
		return
	}

	h.caches.Flush()
	http.Redirect(w, r, "/employees", http.StatusSeeOther)
}

func (h *PageHandler) renderEmployees(w http.ResponseWriter, r *http.Request, data employeesPage) {
	results, err := h.caches.Employees.Fetch(r.Context(), "q:"+data.Query, func(ctx context.Context) ([]employee.EmployeeResponse, error) {
		return h.employeeService.ListEmployees(ctx, data.Query)
	})
	if err != nil {
		data.LoadFailed = true
		h.render(w, "employees", data)
		return
	}

	data.Employees = results
	h.render(w, "employees", data)
}
