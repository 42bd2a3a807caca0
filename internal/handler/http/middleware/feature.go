package middleware

import (
	"net/http"

	"github.com/Se02246/OrderMaster/internal/handler/http/response"
)

// FeatureEnabled hides a route behind a configuration flag. Disabled
// features answer 404 so the route looks like it was never registered.
func FeatureEnabled(enabled bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !enabled {
				response.NotFound(w, "Feature not available")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
