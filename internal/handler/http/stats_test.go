package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Se02246/OrderMaster/internal/domain/stats"
	"github.com/Se02246/OrderMaster/internal/query"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStatsService struct {
	snapshot  *stats.Snapshot
	err       error
	gotMonths []int
	calls     int
}

func (f *fakeStatsService) GetSnapshot(ctx context.Context, months int) (*stats.Snapshot, error) {
	f.calls++
	f.gotMonths = append(f.gotMonths, months)
	if f.err != nil {
		return nil, f.err
	}
	return f.snapshot, nil
}

func fixtureSnapshot() *stats.Snapshot {
	return &stats.Snapshot{
		TotalOrders: 42,
		TopEmployee: stats.TopEmployee{Name: "Maria", Count: 9},
		OrderStatusCounts: []stats.NameValue{
			{Name: "To Do", Value: 12},
			{Name: "In Progress", Value: 0},
			{Name: "Done", Value: 30},
		},
		PaymentStatusCounts: []stats.NameValue{
			{Name: "Unpaid", Value: 17},
			{Name: "Paid", Value: 25},
		},
		OrdersByMonth: []stats.MonthTotal{
			{Name: "2024-05", Total: 12},
		},
		BusiestDay: stats.BusiestDay{Date: "2024-05-20", Count: 7},
	}
}

func newStatsRouter(service stats.StatsService) *chi.Mux {
	caches := query.NewStore(time.Minute)

	r := chi.NewRouter()
	r.Get("/api/v1/stats", NewStatsHandler(service, caches).GetStats)
	r.Get("/api/v1/dashboard", NewDashboardHandler(service, caches).GetDashboard)
	return r
}

// ===== STATS HANDLER TESTS =====

func TestStatsHandler_GetStats_ServesFixedContract(t *testing.T) {
	service := &fakeStatsService{snapshot: fixtureSnapshot()}
	router := newStatsRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

	// The snapshot goes out bare, not wrapped in the response envelope.
	assert.NotContains(t, resp, "success")
	assert.NotContains(t, resp, "data")

	assert.Equal(t, float64(42), resp["totalOrders"])
	topEmployee := resp["topEmployee"].(map[string]interface{})
	assert.Equal(t, "Maria", topEmployee["name"])
	assert.Equal(t, float64(9), topEmployee["count"])

	ordersByMonth := resp["ordersByMonth"].([]interface{})
	require.Len(t, ordersByMonth, 1)
	firstMonth := ordersByMonth[0].(map[string]interface{})
	assert.Equal(t, "2024-05", firstMonth["name"])
	assert.Equal(t, float64(12), firstMonth["total"])

	busiestDay := resp["busiestDay"].(map[string]interface{})
	assert.Equal(t, "2024-05-20", busiestDay["date"])
	assert.Equal(t, float64(7), busiestDay["count"])
}

func TestStatsHandler_GetStats_MonthsParam(t *testing.T) {
	service := &fakeStatsService{snapshot: fixtureSnapshot()}
	router := newStatsRouter(service)

	// An explicit window passes through; garbage falls back to the
	// configured default (months = 0).
	for _, target := range []string{
		"/api/v1/stats?months=12",
		"/api/v1/stats?months=abc",
		"/api/v1/stats",
	} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	// "abc" and the bare URL share the months=0 cache entry.
	assert.Equal(t, []int{12, 0}, service.gotMonths)
}

func TestStatsHandler_GetStats_CachesPerWindow(t *testing.T) {
	service := &fakeStatsService{snapshot: fixtureSnapshot()}
	router := newStatsRouter(service)

	get := func(target string) {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	get("/api/v1/stats?months=6")
	get("/api/v1/stats?months=6")
	assert.Equal(t, 1, service.calls)

	get("/api/v1/stats?months=12")
	assert.Equal(t, 2, service.calls)
}

func TestStatsHandler_GetStats_Error(t *testing.T) {
	service := &fakeStatsService{err: errors.New("window exceeded")}
	router := newStatsRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert - errors do use the envelope
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.False(t, resp["success"].(bool))
}

// ===== DASHBOARD HANDLER TESTS =====

func TestDashboardHandler_GetDashboard_Success(t *testing.T) {
	service := &fakeStatsService{snapshot: fixtureSnapshot()}
	router := newStatsRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.True(t, resp["success"].(bool))

	data := resp["data"].(map[string]interface{})
	totalOrders := data["total_orders"].(map[string]interface{})
	assert.Equal(t, "42", totalOrders["value"])

	topEmployee := data["top_employee"].(map[string]interface{})
	assert.Equal(t, "Maria", topEmployee["value"])
	assert.Equal(t, "9 ordini", topEmployee["subtitle"])

	statusChart := data["status_chart"].([]interface{})
	require.Len(t, statusChart, 3)
	firstSlice := statusChart[0].(map[string]interface{})
	assert.NotEmpty(t, firstSlice["color"])
}

func TestDashboardHandler_SharesSnapshotCacheWithStats(t *testing.T) {
	service := &fakeStatsService{snapshot: fixtureSnapshot()}
	router := newStatsRouter(service)

	for _, target := range []string{"/api/v1/stats?months=6", "/api/v1/dashboard?months=6"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	// Both endpoints read the same cached snapshot.
	assert.Equal(t, 1, service.calls)
}
