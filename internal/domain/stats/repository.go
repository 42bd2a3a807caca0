package stats

import (
	"context"
	"time"
)

// StatusCount is a raw GROUP BY row keyed by a status value.
type StatusCount struct {
	Status string
	Count  int64
}

// MonthCount is a raw GROUP BY row keyed by "YYYY-MM".
type MonthCount struct {
	Month string
	Count int64
}

// DayCount is the busiest-day row.
type DayCount struct {
	Date  time.Time
	Count int64
}

// EmployeeCount is the top-performer row.
type EmployeeCount struct {
	Name  string
	Count int64
}

// StatsRepository defines the aggregate queries behind the snapshot. Each
// method is a single query; rows for statuses or months with no orders are
// simply absent and get zero-filled by the service.
type StatsRepository interface {
	CountOrders(ctx context.Context) (int64, error)

	// TopEmployee returns the employee with the most assignments, ties
	// broken by name; nil when no assignment exists.
	TopEmployee(ctx context.Context) (*EmployeeCount, error)

	CountByStatus(ctx context.Context) ([]StatusCount, error)
	CountByPaymentStatus(ctx context.Context) ([]StatusCount, error)

	// CountByMonth groups cleaning dates into "YYYY-MM" buckets within
	// [from, to).
	CountByMonth(ctx context.Context, from, to time.Time) ([]MonthCount, error)

	// BusiestDay returns the cleaning date with the most jobs, ties broken
	// by the earlier date; nil when there are no jobs.
	BusiestDay(ctx context.Context) (*DayCount, error)
}
