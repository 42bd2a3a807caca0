package form

import (
	"slices"
	"strings"

	"github.com/Se02246/OrderMaster/internal/domain/apartment"
	"github.com/Se02246/OrderMaster/internal/domain/employee"
	"github.com/google/uuid"
)

// ApartmentForm carries the field state of one apartment editing session,
// create or edit mode. All mutation goes through methods so the checkbox
// set and the inline sub-form keep their invariants.
type ApartmentForm struct {
	ID uuid.UUID

	// TargetID is nil in create mode and the edited apartment's id in
	// edit mode.
	TargetID *int64

	Name          string
	CleaningDate  string
	StartTime     string
	EndTime       string
	Status        string
	PaymentStatus string
	Notes         string
	EmployeeIDs   []int64

	// Filter narrows the employee checklist; it never changes the set of
	// checked ids.
	Filter string

	InlineOpen      bool
	InlineFirstName string
	InlineLastName  string
}

func NewApartmentForm() *ApartmentForm {
	f := &ApartmentForm{ID: uuid.New()}
	f.SetTarget(nil)
	return f
}

// SetTarget points the form at an apartment to edit, or at nil for create
// mode, and resets every field to the target's values or the defaults.
// Switching targets can therefore never leak a field value from the
// previous record.
func (f *ApartmentForm) SetTarget(target *apartment.ApartmentResponse) {
	f.TargetID = nil
	f.Name = ""
	f.CleaningDate = ""
	f.StartTime = ""
	f.EndTime = ""
	f.Status = string(apartment.StatusToDo)
	f.PaymentStatus = string(apartment.PaymentStatusUnpaid)
	f.Notes = ""
	f.EmployeeIDs = []int64{}
	f.Filter = ""
	f.ResetInline()
	f.InlineOpen = false

	if target == nil {
		return
	}

	id := target.ID
	f.TargetID = &id
	f.Name = target.Name
	f.CleaningDate = target.CleaningDate
	if target.StartTime != nil {
		f.StartTime = *target.StartTime
	}
	if target.EndTime != nil {
		f.EndTime = *target.EndTime
	}
	f.Status = target.Status
	f.PaymentStatus = target.PaymentStatus
	if target.Notes != nil {
		f.Notes = *target.Notes
	}
	f.EmployeeIDs = slices.Clone(target.EmployeeIDs)
}

// EditMode reports whether the form is re-submitting an existing apartment.
func (f *ApartmentForm) EditMode() bool {
	return f.TargetID != nil
}

// ToggleEmployee checks or unchecks one employee. Checking adds the id
// exactly once, unchecking removes every occurrence, so toggling twice
// always restores the original set.
func (f *ApartmentForm) ToggleEmployee(id int64) {
	if f.Checked(id) {
		f.EmployeeIDs = slices.DeleteFunc(f.EmployeeIDs, func(existing int64) bool {
			return existing == id
		})
		return
	}
	f.EmployeeIDs = append(f.EmployeeIDs, id)
}

// Checked reports whether an employee's checkbox is currently on.
func (f *ApartmentForm) Checked(id int64) bool {
	return slices.Contains(f.EmployeeIDs, id)
}

// SyncChecklist reconciles the checkbox set with one submitted page of the
// checklist. Only employees that were visible on that page can change
// state; ids the filter was hiding keep whatever state they had, so a
// filtered submit never silently unchecks them.
func (f *ApartmentForm) SyncChecklist(visible []employee.EmployeeResponse, submitted []int64) {
	visibleSet := make(map[int64]bool, len(visible))
	for _, emp := range visible {
		visibleSet[emp.ID] = true
	}

	kept := make([]int64, 0, len(f.EmployeeIDs))
	for _, id := range f.EmployeeIDs {
		if !visibleSet[id] {
			kept = append(kept, id)
		}
	}
	f.EmployeeIDs = kept

	for _, id := range submitted {
		if visibleSet[id] && !f.Checked(id) {
			f.EmployeeIDs = append(f.EmployeeIDs, id)
		}
	}
}

// VisibleEmployees filters the checklist by a case-insensitive substring
// match against "first last". An empty filter shows everyone.
func (f *ApartmentForm) VisibleEmployees(all []employee.EmployeeResponse) []employee.EmployeeResponse {
	needle := strings.ToLower(strings.TrimSpace(f.Filter))
	if needle == "" {
		return all
	}

	var visible []employee.EmployeeResponse
	for _, emp := range all {
		fullName := strings.ToLower(emp.FirstName + " " + emp.LastName)
		if strings.Contains(fullName, needle) {
			visible = append(visible, emp)
		}
	}
	return visible
}

// InlineRequest builds the create-employee request from the sub-form. The
// caller validates it; on failure the entered values stay in place.
func (f *ApartmentForm) InlineRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		FirstName: f.InlineFirstName,
		LastName:  f.InlineLastName,
	}
}

// ResetInline clears the sub-form after a successful inline create.
func (f *ApartmentForm) ResetInline() {
	f.InlineFirstName = ""
	f.InlineLastName = ""
}

// Values assembles the submitted form object. Blank optional fields become
// absent values rather than empty strings.
func (f *ApartmentForm) Values() apartment.SaveApartmentRequest {
	return apartment.SaveApartmentRequest{
		Name:          f.Name,
		CleaningDate:  f.CleaningDate,
		StartTime:     optional(f.StartTime),
		EndTime:       optional(f.EndTime),
		Status:        f.Status,
		PaymentStatus: f.PaymentStatus,
		Notes:         optional(f.Notes),
		EmployeeIDs:   slices.Clone(f.EmployeeIDs),
	}
}

func optional(value string) *string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return &value
}
