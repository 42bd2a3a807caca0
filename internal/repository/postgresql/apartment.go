package postgresql

import (
	"context"
	"fmt"
	"slices"

	"github.com/Se02246/OrderMaster/internal/domain/apartment"
	"github.com/Se02246/OrderMaster/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type apartmentRepositoryImpl struct {
	db *database.DB
}

func NewApartmentRepository(db *database.DB) apartment.ApartmentRepository {
	return &apartmentRepositoryImpl{db: db}
}

// List implements apartment.ApartmentRepository.
func (a *apartmentRepositoryImpl) List(ctx context.Context) ([]apartment.Apartment, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.name, a.cleaning_date, a.start_time, a.end_time, a.status, a.payment_status, a.notes,
			a.created_at, a.updated_at,
			COALESCE(array_agg(ae.employee_id ORDER BY ae.employee_id) FILTER (WHERE ae.employee_id IS NOT NULL), '{}') AS employee_ids
		FROM apartments a
		LEFT JOIN apartment_employees ae ON ae.apartment_id = a.id
		GROUP BY a.id
		ORDER BY a.cleaning_date DESC, a.id DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list apartments: %w", err)
	}
	defer rows.Close()

	var apartments []apartment.Apartment
	for rows.Next() {
		var apt apartment.Apartment
		err := rows.Scan(
			&apt.ID, &apt.Name, &apt.CleaningDate, &apt.StartTime, &apt.EndTime,
			&apt.Status, &apt.PaymentStatus, &apt.Notes,
			&apt.CreatedAt, &apt.UpdatedAt, &apt.EmployeeIDs,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan apartment: %w", err)
		}
		apartments = append(apartments, apt)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return apartments, nil
}

// GetByID implements apartment.ApartmentRepository.
func (a *apartmentRepositoryImpl) GetByID(ctx context.Context, id int64) (apartment.Apartment, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.name, a.cleaning_date, a.start_time, a.end_time, a.status, a.payment_status, a.notes,
			a.created_at, a.updated_at,
			COALESCE(array_agg(ae.employee_id ORDER BY ae.employee_id) FILTER (WHERE ae.employee_id IS NOT NULL), '{}') AS employee_ids
		FROM apartments a
		LEFT JOIN apartment_employees ae ON ae.apartment_id = a.id
		WHERE a.id = $1
		GROUP BY a.id
	`

	var apt apartment.Apartment
	err := q.QueryRow(ctx, query, id).Scan(
		&apt.ID, &apt.Name, &apt.CleaningDate, &apt.StartTime, &apt.EndTime,
		&apt.Status, &apt.PaymentStatus, &apt.Notes,
		&apt.CreatedAt, &apt.UpdatedAt, &apt.EmployeeIDs,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apartment.Apartment{}, apartment.ErrApartmentNotFound
		}
		return apartment.Apartment{}, fmt.Errorf("failed to get apartment: %w", err)
	}

	return apt, nil
}

// Create implements apartment.ApartmentRepository.
func (a *apartmentRepositoryImpl) Create(ctx context.Context, newApartment apartment.Apartment) (apartment.Apartment, error) {
	var created apartment.Apartment

	err := WithTransaction(ctx, a.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, a.db)

		query := `
			INSERT INTO apartments (name, cleaning_date, start_time, end_time, status, payment_status, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id, name, cleaning_date, start_time, end_time, status, payment_status, notes, created_at, updated_at
		`

		err := q.QueryRow(ctx, query,
			newApartment.Name, newApartment.CleaningDate, newApartment.StartTime, newApartment.EndTime,
			newApartment.Status, newApartment.PaymentStatus, newApartment.Notes,
		).Scan(
			&created.ID, &created.Name, &created.CleaningDate, &created.StartTime, &created.EndTime,
			&created.Status, &created.PaymentStatus, &created.Notes,
			&created.CreatedAt, &created.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert apartment: %w", err)
		}

		created.EmployeeIDs, err = replaceAssignments(ctx, q, created.ID, newApartment.EmployeeIDs)
		return err
	})
	if err != nil {
		return apartment.Apartment{}, err
	}

	return created, nil
}

// Update implements apartment.ApartmentRepository.
func (a *apartmentRepositoryImpl) Update(ctx context.Context, id int64, updated apartment.Apartment) (apartment.Apartment, error) {
	var result apartment.Apartment

	err := WithTransaction(ctx, a.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, a.db)

		query := `
			UPDATE apartments
			SET name = $1, cleaning_date = $2, start_time = $3, end_time = $4, status = $5,
				payment_status = $6, notes = $7, updated_at = NOW()
			WHERE id = $8
			RETURNING id, name, cleaning_date, start_time, end_time, status, payment_status, notes, created_at, updated_at
		`

		err := q.QueryRow(ctx, query,
			updated.Name, updated.CleaningDate, updated.StartTime, updated.EndTime,
			updated.Status, updated.PaymentStatus, updated.Notes, id,
		).Scan(
			&result.ID, &result.Name, &result.CleaningDate, &result.StartTime, &result.EndTime,
			&result.Status, &result.PaymentStatus, &result.Notes,
			&result.CreatedAt, &result.UpdatedAt,
		)
		if err != nil {
			if err == pgx.ErrNoRows {
				return apartment.ErrApartmentNotFound
			}
			return fmt.Errorf("failed to update apartment: %w", err)
		}

		if _, err := q.Exec(ctx, `DELETE FROM apartment_employees WHERE apartment_id = $1`, id); err != nil {
			return fmt.Errorf("failed to clear assignments: %w", err)
		}

		result.EmployeeIDs, err = replaceAssignments(ctx, q, id, updated.EmployeeIDs)
		return err
	})
	if err != nil {
		return apartment.Apartment{}, err
	}

	return result, nil
}

// Delete implements apartment.ApartmentRepository.
func (a *apartmentRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, a.db)

	query := `DELETE FROM apartments WHERE id = $1 RETURNING id`

	var deletedID int64
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apartment.ErrApartmentNotFound
		}
		return fmt.Errorf("failed to delete apartment: %w", err)
	}

	return nil
}

// replaceAssignments inserts the assignment set for an apartment and returns
// the stored ids in ascending order. The caller clears old rows first when
// updating; the junction primary key rejects duplicates.
func replaceAssignments(ctx context.Context, q database.Querier, apartmentID int64, employeeIDs []int64) ([]int64, error) {
	if len(employeeIDs) == 0 {
		return []int64{}, nil
	}

	query := `
		INSERT INTO apartment_employees (apartment_id, employee_id)
		SELECT $1, unnest($2::bigint[])
		RETURNING employee_id
	`

	rows, err := q.Query(ctx, query, apartmentID, employeeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to insert assignments: %w", err)
	}
	defer rows.Close()

	var stored []int64
	for rows.Next() {
		var employeeID int64
		if err := rows.Scan(&employeeID); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		stored = append(stored, employeeID)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	slices.Sort(stored)
	return stored, nil
}
