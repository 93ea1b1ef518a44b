package delivery_http

import (
	"net/http"
	"strconv"
	"time"

	chi_middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/quantity-digital/qd-post/internal/metrics"
)

// MetricsMiddleware records request counts and durations per method/status.
func MetricsMiddleware(provider metrics.MetricsProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chi_middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := strconv.Itoa(ww.Status())
			provider.IncrementHTTPRequests(r.Method, status)
			provider.RecordHTTPRequestDuration(r.Method, status, time.Since(start))
		})
	}
}
