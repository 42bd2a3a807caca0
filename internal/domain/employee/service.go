package employee

import (
	"context"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// ListEmployees lists employees with assignment counts; query filters by
	// a case-insensitive substring of the full name, empty query returns all
	ListEmployees(ctx context.Context, query string) ([]EmployeeResponse, error)

	// CreateEmployee creates a new employee (dedicated flow or inline from
	// the apartment form)
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee removes an employee; assignments are detached
	DeleteEmployee(ctx context.Context, id int64) error
}
