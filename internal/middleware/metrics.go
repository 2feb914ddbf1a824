package middleware

import (
	"net/http"
	"time"
)

type httpMetrics interface {
	RecordHTTPRequest(method string, status int, duration time.Duration)
}

// Metrics records response counts and latency for every request.
func Metrics(collector httpMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			wrapped := &responseWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			collector.RecordHTTPRequest(r.Method, wrapped.status, time.Since(started))
		})
	}
}
