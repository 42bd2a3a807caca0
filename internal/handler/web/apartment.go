package web

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/Se02246/OrderMaster/internal/domain/apartment"
	"github.com/Se02246/OrderMaster/internal/domain/employee"
	"github.com/Se02246/OrderMaster/internal/form"
	"github.com/Se02246/OrderMaster/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type apartmentsPage struct {
	page
	Apartments []apartment.ApartmentResponse
	LoadFailed bool
}

// Apartments renders the job board.
func (h *PageHandler) Apartments(w http.ResponseWriter, r *http.Request) {
	data := apartmentsPage{page: page{Title: "Appartamenti", Active: "apartments"}}

	results, err := h.caches.Apartments.Fetch(r.Context(), "all", h.apartmentService.ListApartments)
	if err != nil {
		data.LoadFailed = true
		h.render(w, "apartments", data)
		return
	}

	data.Apartments = results
	h.render(w, "apartments", data)
}

type apartmentFormPage struct {
	page
	Form            *form.ApartmentForm
	Visible         []employee.EmployeeResponse
	Statuses        []string
	PaymentStatuses []string
	InlineCreate    bool
	EmployeesFailed bool
	Errors          map[string]string
	Notice          string
}

// NewApartment opens the form in create mode.
func (h *PageHandler) NewApartment(w http.ResponseWriter, r *http.Request) {
	f := h.sessions.Create()
	h.renderForm(w, r, f, nil, "")
}

// EditApartment opens the form pre-populated from an existing apartment.
func (h *PageHandler) EditApartment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid apartment id", http.StatusBadRequest)
		return
	}

	target, err := h.apartmentService.GetApartment(r.Context(), id)
	if err != nil {
		if errors.Is(err, apartment.ErrApartmentNotFound) {
			http.Error(w, "apartment not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to load apartment", http.StatusInternalServerError)
		return
	}

	f := h.sessions.Create()
	f.SetTarget(&target)
	h.renderForm(w, r, f, nil, "")
}

// DeleteApartment removes a job from the board. Deleting one that is
// already gone still lands back on the board.
func (h *PageHandler) DeleteApartment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid apartment id", http.StatusBadRequest)
		return
	}

	if err := h.apartmentService.DeleteApartment(r.Context(), id); err != nil && !errors.Is(err, apartment.ErrApartmentNotFound) {
		http.Error(w, "failed to delete apartment", http.StatusInternalServerError)
		return
	}

	h.caches.Flush()
	http.Redirect(w, r, "/apartments", http.StatusSeeOther)
}

// SubmitApartmentForm handles every main-form action. The submitted inputs
// are synced into the session first, so a filter round-trip keeps values the
// user typed but never saved.
func (h *PageHandler) SubmitApartmentForm(w http.ResponseWriter, r *http.Request) {
	f, ok := h.formSession(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	h.syncFields(f, r)

	switch r.FormValue("action") {
	case "cancel":
		h.sessions.Drop(f.ID)
		http.Redirect(w, r, "/apartments", http.StatusSeeOther)
	case "save":
		h.saveApartment(w, r, f)
	default:
		// Filter submits just re-render the synced state.
		h.renderForm(w, r, f, nil, "")
	}
}

// InlineCreateEmployee handles the sub-form inside the apartment form. On
// failure the entered names stay in place; on success the sub-form resets
// and the new employee comes back already checked.
func (h *PageHandler) InlineCreateEmployee(w http.ResponseWriter, r *http.Request) {
	f, ok := h.formSession(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	f.InlineOpen = true
	f.InlineFirstName = r.FormValue("first_name")
	f.InlineLastName = r.FormValue("last_name")

	created, err := h.employeeService.CreateEmployee(r.Context(), f.InlineRequest())
	if err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			h.renderForm(w, r, f, validationErrs.ToMap(), "")
			return
		}
		h.renderForm(w, r, f, nil, "Impossibile creare il dipendente.")
		return
	}

	h.caches.Flush()
	f.ResetInline()
	f.InlineOpen = false
	f.ToggleEmployee(created.ID)
	h.renderForm(w, r, f, nil, "Dipendente creato.")
}

func (h *PageHandler) saveApartment(w http.ResponseWriter, r *http.Request, f *form.ApartmentForm) {
	req := f.Values()

	var err error
	if f.EditMode() {
		_, err = h.apartmentService.UpdateApartment(r.Context(), *f.TargetID, req)
	} else {
		_, err = h.apartmentService.CreateApartment(r.Context(), req)
	}
	if err != nil {
		var validationErrs validator.ValidationErrors
		switch {
		case errors.As(err, &validationErrs):
			h.renderForm(w, r, f, validationErrs.ToMap(), "")
		case errors.Is(err, apartment.ErrAssignedEmployeeMissing):
			h.renderForm(w, r, f, nil, "Uno o più dipendenti selezionati non esistono più.")
		case errors.Is(err, apartment.ErrApartmentNotFound):
			h.renderForm(w, r, f, nil, "L'appartamento non esiste più.")
		default:
			h.renderForm(w, r, f, nil, "Impossibile salvare l'appartamento.")
		}
		return
	}

	h.caches.Flush()
	h.sessions.Drop(f.ID)
	http.Redirect(w, r, "/apartments", http.StatusSeeOther)
}

// syncFields copies the submitted inputs into the session before the action
// runs. Checkboxes are reconciled against the checklist as it was rendered,
// which is the one the previous filter value produced.
func (h *PageHandler) syncFields(f *form.ApartmentForm, r *http.Request) {
	if all, err := h.employeeList(r); err == nil {
		f.SyncChecklist(f.VisibleEmployees(all), checkedIDs(r))
	}

	f.Name = r.FormValue("name")
	f.CleaningDate = r.FormValue("cleaning_date")
	f.StartTime = r.FormValue("start_time")
	f.EndTime = r.FormValue("end_time")
	f.Status = r.FormValue("status")
	f.PaymentStatus = r.FormValue("payment_status")
	f.Notes = r.FormValue("notes")
	f.Filter = r.FormValue("filter")
}

func (h *PageHandler) renderForm(w http.ResponseWriter, r *http.Request, f *form.ApartmentForm, fieldErrors map[string]string, notice string) {
	title := "Nuovo appartamento"
	if f.EditMode() {
		title = "Modifica appartamento"
	}

	data := apartmentFormPage{
		page:            page{Title: title, Active: "apartments"},
		Form:            f,
		Statuses:        apartment.StatusValues,
		PaymentStatuses: apartment.PaymentStatusValues,
		InlineCreate:    h.inlineCreate,
		Errors:          fieldErrors,
		Notice:          notice,
	}

	all, err := h.employeeList(r)
	if err != nil {
		data.EmployeesFailed = true
	} else {
		data.Visible = f.VisibleEmployees(all)
	}

	h.render(w, "apartment_form", data)
}

func (h *PageHandler) employeeList(r *http.Request) ([]employee.EmployeeResponse, error) {
	return h.caches.Employees.Fetch(r.Context(), "q:", func(ctx context.Context) ([]employee.EmployeeResponse, error) {
		return h.employeeService.ListEmployees(ctx, "")
	})
}

func (h *PageHandler) formSession(w http.ResponseWriter, r *http.Request) (*form.ApartmentForm, bool) {
	sessionID, err := uuid.Parse(chi.URLParam(r, "sessionID"))
	if err != nil {
		http.Error(w, "invalid form session", http.StatusBadRequest)
		return nil, false
	}

	f, ok := h.sessions.Get(sessionID)
	if !ok {
		// The session expired; send the user back to start over.
		http.Redirect(w, r, "/apartments", http.StatusSeeOther)
		return nil, false
	}
	return f, true
}

func checkedIDs(r *http.Request) []int64 {
	values := r.Form["employee_ids"]
	ids := make([]int64, 0, len(values))
	for _, value := range values {
		if id, err := strconv.ParseInt(value, 10, 64); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}
