package server

import (
	"net/http"
	"time"

	"github.com/alexisbeaulieu97/workflowdeck/internal/ports"
)

// RequestIDHeader carries the correlation ID in and out of the server.
const RequestIDHeader = "X-Request-ID"

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// instrument attaches a correlation ID, logs the request and counts it.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()

		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = ports.GenerateCorrelationID()
		}
		w.Header().Set(RequestIDHeader, id)
		ctx := ports.WithCorrelationID(r.Context(), id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		r = r.WithContext(ctx)
		next.ServeHTTP(rec, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		s.metrics.observeRequest(route, rec.status)
		s.log.Debug(ctx, "request served",
			"method", r.Method,
			"path", r.URL.Path,
			"route", route,
			"status", rec.status,
			"duration_ms", time.Since(started).Milliseconds(),
		)
	})
}
