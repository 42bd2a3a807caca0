package postgresql

import (
	"context"
	"fmt"

	"github.com/Se02246/OrderMaster/internal/domain/employee"
	"github.com/Se02246/OrderMaster/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context, search string) ([]employee.EmployeeWithCount, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT e.id, e.first_name, e.last_name, e.created_at, e.updated_at,
			COUNT(ae.apartment_id) AS assignment_count
		FROM employees e
		LEFT JOIN apartment_employees ae ON ae.employee_id = e.id
	`
	args := []interface{}{}

	if search != "" {
		query += ` WHERE (e.first_name || ' ' || e.last_name) ILIKE $1`
		args = append(args, "%"+search+"%")
	}

	query += `
		GROUP BY e.id
		ORDER BY e.first_name ASC, e.last_name ASC, e.id ASC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.EmployeeWithCount
	for rows.Next() {
		var emp employee.EmployeeWithCount
		err := rows.Scan(
			&emp.ID, &emp.FirstName, &emp.LastName,
			&emp.CreatedAt, &emp.UpdatedAt, &emp.AssignmentCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, first_name, last_name, created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var found employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID, &found.FirstName, &found.LastName, &found.CreatedAt, &found.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return found, nil
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (first_name, last_name)
		VALUES ($1, $2)
		RETURNING id, first_name, last_name, created_at, updated_at
	`

	var created employee.Employee
	err := q.QueryRow(ctx, query, newEmployee.FirstName, newEmployee.LastName).Scan(
		&created.ID, &created.FirstName, &created.LastName, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

// Delete implements employee.EmployeeRepository. Assignment rows referencing
// the employee are removed by the junction table's cascade.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, e.db)

	query := `DELETE FROM employees WHERE id = $1 RETURNING id`

	var deletedID int64
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	return nil
}

// MissingIDs implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) MissingIDs(ctx context.Context, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	q := GetQuerier(ctx, e.db)

	query := `
		SELECT wanted.id
		FROM unnest($1::bigint[]) AS wanted(id)
		LEFT JOIN employees e ON e.id = wanted.id
		WHERE e.id IS NULL
		ORDER BY wanted.id
	`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to check employee ids: %w", err)
	}
	defer rows.Close()

	var missing []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan employee id: %w", err)
		}
		missing = append(missing, id)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return missing, nil
}
