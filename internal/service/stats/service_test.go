package stats

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Se02246/OrderMaster/internal/domain/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStatsRepository serves canned aggregate rows and records the month
// window it was queried with.
type fakeStatsRepository struct {
	total       int64
	top         *stats.EmployeeCount
	statusRows  []stats.StatusCount
	paymentRows []stats.StatusCount
	monthRows   []stats.MonthCount
	busiest     *stats.DayCount
	err         error

	gotFrom time.Time
	gotTo   time.Time
}

func (f *fakeStatsRepository) CountOrders(ctx context.Context) (int64, error) {
	return f.total, f.err
}

func (f *fakeStatsRepository) TopEmployee(ctx context.Context) (*stats.EmployeeCount, error) {
	return f.top, f.err
}

func (f *fakeStatsRepository) CountByStatus(ctx context.Context) ([]stats.StatusCount, error) {
	return f.statusRows, f.err
}

func (f *fakeStatsRepository) CountByPaymentStatus(ctx context.Context) ([]stats.StatusCount, error) {
	return f.paymentRows, f.err
}

func (f *fakeStatsRepository) CountByMonth(ctx context.Context, from, to time.Time) ([]stats.MonthCount, error) {
	f.gotFrom, f.gotTo = from, to
	return f.monthRows, f.err
}

func (f *fakeStatsRepository) BusiestDay(ctx context.Context) (*stats.DayCount, error) {
	return f.busiest, f.err
}

// currentWindow mirrors the service's window arithmetic so assertions stay
// valid whatever month the suite runs in.
func currentWindow(months int) (time.Time, time.Time) {
	now := time.Now()
	to := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return to.AddDate(0, -months, 0), to
}

// ===== STATS SERVICE TESTS =====

func TestStatsService_GetSnapshot_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	from, _ := currentWindow(6)
	firstMonth := from.Format("2006-01")

	repo := &fakeStatsRepository{
		total: 42,
		top:   &stats.EmployeeCount{Name: "Maria Rossi", Count: 9},
		statusRows: []stats.StatusCount{
			{Status: "Done", Count: 30},
			{Status: "To Do", Count: 12},
		},
		paymentRows: []stats.StatusCount{
			{Status: "Paid", Count: 25},
			{Status: "Unpaid", Count: 17},
		},
		monthRows: []stats.MonthCount{
			{Month: firstMonth, Count: 7},
		},
		busiest: &stats.DayCount{Date: time.Date(2024, 5, 14, 0, 0, 0, 0, time.UTC), Count: 4},
	}
	service := NewStatsService(repo, 6)

	// Act
	snapshot, err := service.GetSnapshot(ctx, 0)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(42), snapshot.TotalOrders)
	assert.Equal(t, stats.TopEmployee{Name: "Maria Rossi", Count: 9}, snapshot.TopEmployee)
	assert.Equal(t, stats.BusiestDay{Date: "2024-05-14", Count: 4}, snapshot.BusiestDay)

	// Statuses come back in board order with zero fill for absent rows
	assert.Equal(t, []stats.NameValue{
		{Name: "To Do", Value: 12},
		{Name: "In Progress", Value: 0},
		{Name: "Done", Value: 30},
	}, snapshot.OrderStatusCounts)
	assert.Equal(t, []stats.NameValue{
		{Name: "Unpaid", Value: 17},
		{Name: "Paid", Value: 25},
	}, snapshot.PaymentStatusCounts)

	// Six buckets, oldest first, zero-filled except the seeded one
	require.Len(t, snapshot.OrdersByMonth, 6)
	assert.Equal(t, stats.MonthTotal{Name: firstMonth, Total: 7}, snapshot.OrdersByMonth[0])
	for _, bucket := range snapshot.OrdersByMonth[1:] {
		assert.Zero(t, bucket.Total)
	}
}

func TestStatsService_GetSnapshot_EmptyDatabase(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	service := NewStatsService(&fakeStatsRepository{}, 6)

	// Act
	snapshot, err := service.GetSnapshot(ctx, 0)

	// Assert
	require.NoError(t, err)
	assert.Zero(t, snapshot.TotalOrders)
	assert.Equal(t, stats.TopEmployee{Name: "N/A", Count: 0}, snapshot.TopEmployee)
	assert.Equal(t, stats.BusiestDay{Date: "N/A", Count: 0}, snapshot.BusiestDay)

	for _, slice := range snapshot.OrderStatusCounts {
		assert.Zero(t, slice.Value)
	}
	require.Len(t, snapshot.OrdersByMonth, 6)
	for _, bucket := range snapshot.OrdersByMonth {
		assert.Zero(t, bucket.Total)
	}
}

func TestStatsService_GetSnapshot_MonthsBucketNames(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := &fakeStatsRepository{}
	service := NewStatsService(repo, 6)

	// Act
	snapshot, err := service.GetSnapshot(ctx, 3)

	// Assert - bucket names walk the window month by month
	require.NoError(t, err)
	from, to := currentWindow(3)
	assert.True(t, repo.gotFrom.Equal(from), "from: got %v want %v", repo.gotFrom, from)
	assert.True(t, repo.gotTo.Equal(to), "to: got %v want %v", repo.gotTo, to)

	require.Len(t, snapshot.OrdersByMonth, 3)
	for i, bucket := range snapshot.OrdersByMonth {
		assert.Equal(t, from.AddDate(0, i, 0).Format("2006-01"), bucket.Name)
	}
}

func TestStatsService_GetSnapshot_WindowClamped(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	service := NewStatsService(&fakeStatsRepository{}, 6)

	// Act
	snapshot, err := service.GetSnapshot(ctx, 99)

	// Assert
	require.NoError(t, err)
	assert.Len(t, snapshot.OrdersByMonth, maxWindowMonths)
}

func TestStatsService_GetSnapshot_DefaultWindow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	service := NewStatsService(&fakeStatsRepository{}, 12)

	// Act - months <= 0 falls back to the configured default
	snapshot, err := service.GetSnapshot(ctx, -1)

	// Assert
	require.NoError(t, err)
	assert.Len(t, snapshot.OrdersByMonth, 12)
}

func TestStatsService_GetSnapshot_RepositoryError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	wantErr := errors.New("connection refused")
	service := NewStatsService(&fakeStatsRepository{err: wantErr}, 6)

	// Act
	_, err := service.GetSnapshot(ctx, 0)

	// Assert
	assert.ErrorIs(t, err, wantErr)
}
