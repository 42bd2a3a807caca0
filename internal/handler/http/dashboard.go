package http

import (
	"net/http"

	"github.com/Se02246/OrderMaster/internal/domain/stats"
	"github.com/Se02246/OrderMaster/internal/handler/http/response"
	"github.com/Se02246/OrderMaster/internal/query"
	"github.com/Se02246/OrderMaster/internal/view"
)

type DashboardHandler interface {
	// GetDashboard returns the localized, render-ready dashboard model
	GetDashboard(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	statsService stats.StatsService
	caches       *query.Store
}

func NewDashboardHandler(statsService stats.StatsService, caches *query.Store) DashboardHandler {
	return &dashboardHandlerImpl{
		statsService: statsService,
		caches:       caches,
	}
}

// GetDashboard handles GET /dashboard. It reads the same cached snapshot as
// the stats endpoint and decorates it with labels and colors.
func (h *dashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	months := parseMonths(r)

	snapshot, err := fetchSnapshot(r.Context(), h.caches, h.statsService, months)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, view.BuildDashboard(snapshot))
}
