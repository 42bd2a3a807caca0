package response

import (
	"errors"
	"net/http"

	"github.com/Se02246/OrderMaster/internal/domain/apartment"
	"github.com/Se02246/OrderMaster/internal/domain/employee"
	"github.com/Se02246/OrderMaster/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Apartment domain errors
	case errors.Is(err, apartment.ErrApartmentNotFound):
		NotFound(w, "Apartment not found")
	case errors.Is(err, apartment.ErrAssignedEmployeeMissing):
		Conflict(w, "One or more assigned employees no longer exist")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
