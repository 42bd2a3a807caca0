package web

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Se02246/OrderMaster/internal/domain/stats"
	"github.com/Se02246/OrderMaster/internal/view"
)

// windowOptions are the trailing windows offered by the period selector.
var windowOptions = []int{3, 6, 12, 24}

type dashboardPage struct {
	page
	Months        int
	WindowOptions []int
	Dashboard     view.Dashboard
	LoadFailed    bool
}

// Dashboard renders the statistics page. A failed snapshot load renders the
// page with a static error message instead of partial data.
func (h *PageHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	months := monthsParam(r)

	data := dashboardPage{
		page:          page{Title: "Statistiche", Active: "dashboard"},
		Months:        months,
		WindowOptions: windowOptions,
	}
	if data.Months <= 0 {
		data.Months = h.defaultMonths
	}

	snapshot, err := h.caches.Stats.Fetch(r.Context(), strconv.Itoa(months), func(ctx context.Context) (*stats.Snapshot, error) {
		return h.statsService.GetSnapshot(ctx, months)
	})
	if err != nil {
		data.LoadFailed = true
		h.render(w, "dashboard", data)
		return
	}

	data.Dashboard = view.BuildDashboard(snapshot)
	h.render(w, "dashboard", data)
}
