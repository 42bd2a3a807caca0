package view

import (
	"strconv"

	"github.com/Se02246/OrderMaster/internal/domain/apartment"
	"github.com/Se02246/OrderMaster/internal/domain/stats"
)

// statusColors is the closed color table for job statuses. Coverage of the
// full status set is checked at package init, so a status added without a
// color fails at startup instead of rendering an uncolored slice.
var statusColors = map[string]string{
	string(apartment.StatusToDo):       "#f59e0b",
	string(apartment.StatusInProgress): "#3b82f6",
	string(apartment.StatusDone):       "#22c55e",
}

var paymentColors = map[string]string{
	string(apartment.PaymentStatusUnpaid): "#ef4444",
	string(apartment.PaymentStatusPaid):   "#22c55e",
}

func init() {
	mustCoverAll(statusColors, apartment.StatusValues)
	mustCoverAll(paymentColors, apartment.PaymentStatusValues)
}

func mustCoverAll(colors map[string]string, values []string) {
	for _, value := range values {
		if _, ok := colors[value]; !ok {
			panic("view: no color defined for status " + strconv.Quote(value))
		}
	}
}

// StatusColor returns the fixed color for a job status value.
func StatusColor(status string) string {
	return statusColors[status]
}

// PaymentColor returns the fixed color for a payment status value.
func PaymentColor(status string) string {
	return paymentColors[status]
}

// StatCard is one scalar metric tile on the dashboard.
type StatCard struct {
	Title    string `json:"title"`
	Value    string `json:"value"`
	Subtitle string `json:"subtitle,omitempty"`
}

// ChartSlice is one colored slice of a status pie chart.
type ChartSlice struct {
	Label string `json:"label"`
	Value int64  `json:"value"`
	Color string `json:"color"`
}

// ChartBar is one bar of the monthly orders chart, labeled in Italian.
// Percent is the bar length relative to the tallest month, 0 to 100.
type ChartBar struct {
	Label   string `json:"label"`
	Total   int64  `json:"total"`
	Percent int    `json:"percent"`
}

// Dashboard is the complete view model behind the statistics page.
type Dashboard struct {
	TotalOrders  StatCard     `json:"total_orders"`
	TopEmployee  StatCard     `json:"top_employee"`
	BusiestDay   StatCard     `json:"busiest_day"`
	StatusChart  []ChartSlice `json:"status_chart"`
	PaymentChart []ChartSlice `json:"payment_chart"`
	MonthlyChart []ChartBar   `json:"monthly_chart"`
}

// BuildDashboard maps a statistics snapshot onto the dashboard view model.
// Slice names arrive from the closed status sets, so the color lookups
// checked at init can never miss.
func BuildDashboard(snapshot *stats.Snapshot) Dashboard {
	topEmployee := StatCard{
		Title: "Miglior dipendente",
		Value: snapshot.TopEmployee.Name,
	}
	if snapshot.TopEmployee.Name != "N/A" {
		topEmployee.Subtitle = PluralizeOrders(snapshot.TopEmployee.Count)
	}

	busiestDay := StatCard{
		Title: "Giorno più impegnato",
		Value: "N/A",
	}
	if snapshot.BusiestDay.Date != "N/A" {
		busiestDay.Value = FormatDay(snapshot.BusiestDay.Date)
		busiestDay.Subtitle = PluralizeOrders(snapshot.BusiestDay.Count)
	}

	return Dashboard{
		TotalOrders: StatCard{
			Title: "Ordini totali",
			Value: strconv.FormatInt(snapshot.TotalOrders, 10),
		},
		TopEmployee:  topEmployee,
		BusiestDay:   busiestDay,
		StatusChart:  buildSlices(snapshot.OrderStatusCounts, statusColors),
		PaymentChart: buildSlices(snapshot.PaymentStatusCounts, paymentColors),
		MonthlyChart: buildBars(snapshot.OrdersByMonth),
	}
}

func buildSlices(counts []stats.NameValue, colors map[string]string) []ChartSlice {
	slices := make([]ChartSlice, 0, len(counts))
	for _, count := range counts {
		slices = append(slices, ChartSlice{
			Label: count.Name,
			Value: count.Value,
			Color: colors[count.Name],
		})
	}
	return slices
}

func buildBars(totals []stats.MonthTotal) []ChartBar {
	var max int64
	for _, total := range totals {
		if total.Total > max {
			max = total.Total
		}
	}

	bars := make([]ChartBar, 0, len(totals))
	for _, total := range totals {
		bar := ChartBar{
			Label: FormatMonth(total.Name),
			Total: total.Total,
		}
		if max > 0 {
			bar.Percent = int(total.Total * 100 / max)
		}
		bars = append(bars, bar)
	}
	return bars
}
