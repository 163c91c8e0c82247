package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"rental-server/obs"
)

// MetricsMiddleware records request counts and latencies labelled with the
// route template, so /v1/listings/{id} is one series rather than one per id.
func MetricsMiddleware(m *obs.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, Status: http.StatusOK}

			next.ServeHTTP(rec, r)

			status := strconv.Itoa(rec.Status)
			path := routeTemplate(r)
			m.IncHTTPRequestsTotal(r.Method, path, status)
			m.ObserveHTTPRequestDuration(r.Method, path, status, time.Since(start).Seconds())
		}

		return http.HandlerFunc(fn)
	}
}

func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}
