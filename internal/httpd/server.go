// Package httpd is the HTTP hosting boundary of msttrace: it marshals the
// textual graph description in and the JSON trace out, exactly the adapter
// contract the core leaves to its callers. Every request builds its own
// Graph — the handler holds no shared mutable computation state.
package httpd

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/katalvlaran/msttrace/graphtext"
)

// NewHandler wires the router: the trace endpoint, a health probe, and the
// metrics exposition.
func NewHandler(cfg Config, logger *slog.Logger, metrics *Metrics) http.Handler {
	s := &server{cfg: cfg, logger: logger, metrics: metrics}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)

	r.Post("/v1/trace", s.handleTrace)
	r.Get("/healthz", s.handleHealthz)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	return r
}

type server struct {
	cfg     Config
	logger  *slog.Logger
	metrics *Metrics
}

// handleTrace accepts the textual graph format as the request body and
// responds with the JSON trace. Malformed input is the client's fault: 400
// with the parse error as plain text, nothing partial.
func (s *server) handleTrace(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes))
	if err != nil {
		s.metrics.Traces.WithLabelValues("parse_error").Inc()
		http.Error(w, "request body too large or unreadable", http.StatusBadRequest)

		return
	}

	out, err := graphtext.RunJSON(string(body))
	if err != nil {
		s.metrics.Traces.WithLabelValues("parse_error").Inc()
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	s.metrics.Traces.WithLabelValues("ok").Inc()
	s.metrics.Duration.Observe(time.Since(start).Seconds())

	w.Header().Set("Content-Type", "application/json")
	if _, err = io.WriteString(w, out); err != nil {
		s.logger.Warn("write response", "error", err)
	}
}

func (s *server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "ok")
}

// logRequests emits one structured line per request.
func (s *server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
			"request_id", w.Header().Get("X-Request-Id"),
		)
	})
}

// requestID tags every response with a fresh UUID so a trace computation can
// be correlated across client logs and server logs.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Request-Id", uuid.NewString())
		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the status code for the request log.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
