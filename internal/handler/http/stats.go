package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Se02246/OrderMaster/internal/domain/stats"
	"github.com/Se02246/OrderMaster/internal/handler/http/response"
	"github.com/Se02246/OrderMaster/internal/query"
)

type StatsHandler interface {
	GetStats(w http.ResponseWriter, r *http.Request)
}

type statsHandlerImpl struct {
	statsService stats.StatsService
	caches       *query.Store
}

func NewStatsHandler(statsService stats.StatsService, caches *query.Store) StatsHandler {
	return &statsHandlerImpl{
		statsService: statsService,
		caches:       caches,
	}
}

// GetStats implements StatsHandler. The snapshot is a fixed external
// contract and goes out without the response envelope; only error paths use
// the enveloped helpers.
func (h *statsHandlerImpl) GetStats(w http.ResponseWriter, r *http.Request) {
	months := parseMonths(r)

	snapshot, err := fetchSnapshot(r.Context(), h.caches, h.statsService, months)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(snapshot); err != nil {
		slog.Error("Failed to encode stats snapshot", "error", err)
	}
}

// parseMonths reads the months query parameter. Absent or malformed values
// fall back to 0, which selects the configured default window.
func parseMonths(r *http.Request) int {
	months := 0
	if m := r.URL.Query().Get("months"); m != "" {
		if parsed, err := strconv.Atoi(m); err == nil {
			months = parsed
		}
	}
	return months
}

// fetchSnapshot serves the snapshot through the stats cache, keyed by the
// requested window so each window expires independently.
func fetchSnapshot(ctx context.Context, caches *query.Store, statsService stats.StatsService, months int) (*stats.Snapshot, error) {
	return caches.Stats.Fetch(ctx, strconv.Itoa(months), func(ctx context.Context) (*stats.Snapshot, error) {
		return statsService.GetSnapshot(ctx, months)
	})
}
