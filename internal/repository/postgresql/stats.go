package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/Se02246/OrderMaster/internal/domain/stats"
	"github.com/Se02246/OrderMaster/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type statsRepositoryImpl struct {
	db *database.DB
}

func NewStatsRepository(db *database.DB) stats.StatsRepository {
	return &statsRepositoryImpl{db: db}
}

// CountOrders implements stats.StatsRepository.
func (r *statsRepositoryImpl) CountOrders(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM apartments`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return total, nil
}

// TopEmployee implements stats.StatsRepository.
func (r *statsRepositoryImpl) TopEmployee(ctx context.Context) (*stats.EmployeeCount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.first_name || ' ' || e.last_name AS name, COUNT(*) AS assignment_count
		FROM apartment_employees ae
		JOIN employees e ON e.id = ae.employee_id
		GROUP BY e.id, e.first_name, e.last_name
		ORDER BY assignment_count DESC, name ASC
		LIMIT 1
	`

	var top stats.EmployeeCount
	err := q.QueryRow(ctx, query).Scan(&top.Name, &top.Count)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get top employee: %w", err)
	}
	return &top, nil
}

// CountByStatus implements stats.StatsRepository.
func (r *statsRepositoryImpl) CountByStatus(ctx context.Context) ([]stats.StatusCount, error) {
	return r.countGroupedBy(ctx, `SELECT status, COUNT(*) FROM apartments GROUP BY status`)
}

// CountByPaymentStatus implements stats.StatsRepository.
func (r *statsRepositoryImpl) CountByPaymentStatus(ctx context.Context) ([]stats.StatusCount, error) {
	return r.countGroupedBy(ctx, `SELECT payment_status, COUNT(*) FROM apartments GROUP BY payment_status`)
}

func (r *statsRepositoryImpl) countGroupedBy(ctx context.Context, query string) ([]stats.StatusCount, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count by status: %w", err)
	}
	defer rows.Close()

	var counts []stats.StatusCount
	for rows.Next() {
		var sc stats.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts = append(counts, sc)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

// CountByMonth implements stats.StatsRepository.
func (r *statsRepositoryImpl) CountByMonth(ctx context.Context, from, to time.Time) ([]stats.MonthCount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT to_char(cleaning_date, 'YYYY-MM') AS month, COUNT(*)
		FROM apartments
		WHERE cleaning_date >= $1 AND cleaning_date < $2
		GROUP BY month
		ORDER BY month ASC
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to count by month: %w", err)
	}
	defer rows.Close()

	var counts []stats.MonthCount
	for rows.Next() {
		var mc stats.MonthCount
		if err := rows.Scan(&mc.Month, &mc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan month count: %w", err)
		}
		counts = append(counts, mc)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

// BusiestDay implements stats.StatsRepository.
func (r *statsRepositoryImpl) BusiestDay(ctx context.Context) (*stats.DayCount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT cleaning_date, COUNT(*) AS jobs
		FROM apartments
		GROUP BY cleaning_date
		ORDER BY jobs DESC, cleaning_date ASC
		LIMIT 1
	`

	var day stats.DayCount
	err := q.QueryRow(ctx, query).Scan(&day.Date, &day.Count)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get busiest day: %w", err)
	}
	return &day, nil
}
