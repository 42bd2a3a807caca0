package apartment

import (
	"strings"

	"github.com/Se02246/OrderMaster/internal/pkg/validator"
)

// SaveApartmentRequest is the form object submitted on both create and
// update. Times and notes are free text; the employee id list is treated as
// a set.
type SaveApartmentRequest struct {
	Name          string  `json:"name"`
	CleaningDate  string  `json:"cleaning_date"`
	StartTime     *string `json:"start_time,omitempty"`
	EndTime       *string `json:"end_time,omitempty"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
	Notes         *string `json:"notes,omitempty"`
	EmployeeIDs   []int64 `json:"employee_ids"`
}

func (r *SaveApartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.CleaningDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "cleaning_date",
			Message: "cleaning_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.CleaningDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "cleaning_date",
			Message: "cleaning_date must be a valid date in YYYY-MM-DD format",
		})
	}
	if !validator.IsInSlice(r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(StatusValues, ", "),
		})
	}
	if !validator.IsInSlice(r.PaymentStatus, PaymentStatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "payment_status",
			Message: "payment_status must be one of: " + strings.Join(PaymentStatusValues, ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ApartmentResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	CleaningDate  string  `json:"cleaning_date"`
	StartTime     *string `json:"start_time,omitempty"`
	EndTime       *string `json:"end_time,omitempty"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
	Notes         *string `json:"notes,omitempty"`
	EmployeeIDs   []int64 `json:"employee_ids"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}
