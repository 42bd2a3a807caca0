package employee

import "context"

type EmployeeRepository interface {
	// List returns employees with assignment counts, filtered by a
	// case-insensitive substring match on "first last" when query is
	// non-empty.
	List(ctx context.Context, query string) ([]EmployeeWithCount, error)
	GetByID(ctx context.Context, id int64) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Delete(ctx context.Context, id int64) error
	// MissingIDs reports which of the given ids have no employee row.
	MissingIDs(ctx context.Context, ids []int64) ([]int64, error)
}
