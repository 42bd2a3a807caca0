package stats

import (
	"context"
	"time"

	"github.com/Se02246/OrderMaster/internal/domain/apartment"
	"github.com/Se02246/OrderMaster/internal/domain/stats"
	"golang.org/x/sync/errgroup"
)

// maxWindowMonths caps the trailing window a caller may request.
const maxWindowMonths = 24

type StatsServiceImpl struct {
	stats.StatsRepository

	defaultMonths int
}

func NewStatsService(repo stats.StatsRepository, defaultMonths int) stats.StatsService {
	if defaultMonths <= 0 || defaultMonths > maxWindowMonths {
		defaultMonths = 6
	}
	return &StatsServiceImpl{
		StatsRepository: repo,
		defaultMonths:   defaultMonths,
	}
}

// GetSnapshot returns the combined statistics snapshot using parallel
// goroutines, one aggregate query each.
func (s *StatsServiceImpl) GetSnapshot(ctx context.Context, months int) (*stats.Snapshot, error) {
	if months <= 0 {
		months = s.defaultMonths
	}
	if months > maxWindowMonths {
		months = maxWindowMonths
	}

	// The window ends after the current month and reaches months-1 back,
	// so the newest bar is always the running month.
	now := time.Now()
	to := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	from := to.AddDate(0, -months, 0)

	var (
		totalOrders   int64
		topEmployee   *stats.EmployeeCount
		statusCounts  []stats.StatusCount
		paymentCounts []stats.StatusCount
		monthCounts   []stats.MonthCount
		busiestDay    *stats.DayCount
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		totalOrders, err = s.CountOrders(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		topEmployee, err = s.TopEmployee(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		statusCounts, err = s.CountByStatus(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		paymentCounts, err = s.CountByPaymentStatus(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		monthCounts, err = s.CountByMonth(gCtx, from, to)
		return err
	})

	g.Go(func() error {
		var err error
		busiestDay, err = s.BusiestDay(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	snapshot := &stats.Snapshot{
		TotalOrders:         totalOrders,
		TopEmployee:         stats.TopEmployee{Name: "N/A", Count: 0},
		OrderStatusCounts:   fillStatusCounts(apartment.StatusValues, statusCounts),
		PaymentStatusCounts: fillStatusCounts(apartment.PaymentStatusValues, paymentCounts),
		OrdersByMonth:       fillMonths(from, months, monthCounts),
		BusiestDay:          stats.BusiestDay{Date: "N/A", Count: 0},
	}

	if topEmployee != nil {
		snapshot.TopEmployee = stats.TopEmployee{
			Name:  topEmployee.Name,
			Count: topEmployee.Count,
		}
	}
	if busiestDay != nil {
		snapshot.BusiestDay = stats.BusiestDay{
			Date:  busiestDay.Date.Format("2006-01-02"),
			Count: busiestDay.Count,
		}
	}

	return snapshot, nil
}

// fillStatusCounts maps GROUP BY rows onto the closed status set, keeping
// the set's order and zero for statuses with no orders.
func fillStatusCounts(ordered []string, rows []stats.StatusCount) []stats.NameValue {
	byStatus := make(map[string]int64, len(rows))
	for _, row := range rows {
		byStatus[row.Status] = row.Count
	}

	counts := make([]stats.NameValue, 0, len(ordered))
	for _, name := range ordered {
		counts = append(counts, stats.NameValue{Name: name, Value: byStatus[name]})
	}
	return counts
}

// fillMonths expands the GROUP BY rows into one bucket per month of the
// window, oldest first, with zero totals for empty months.
func fillMonths(from time.Time, months int, rows []stats.MonthCount) []stats.MonthTotal {
	byMonth := make(map[string]int64, len(rows))
	for _, row := range rows {
		byMonth[row.Month] = row.Count
	}

	totals := make([]stats.MonthTotal, 0, months)
	for i := 0; i < months; i++ {
		name := from.AddDate(0, i, 0).Format("2006-01")
		totals = append(totals, stats.MonthTotal{Name: name, Total: byMonth[name]})
	}
	return totals
}
