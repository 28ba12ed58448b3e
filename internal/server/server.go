// Package server exposes the dashboard over HTTP: HTML pages, a JSON
// API for sessions, PNG chart endpoints and a WebSocket push channel.
package server

import (
	"log"
	"net/http"
	"sync"
	"time"

	"crypto-volatility-lab/internal/observability"
	"crypto-volatility-lab/internal/reporting"
	"crypto-volatility-lab/internal/session"
)

// Options configures a Server.
type Options struct {
	Manager *session.Manager
	Hub     *Hub
	Reports *reporting.Generator
	Logger  *log.Logger
}

// Server holds the HTTP layer state. All domain work is delegated to
// the session manager.
type Server struct {
	manager *session.Manager
	hub     *Hub
	reports *reporting.Generator
	logger  *log.Logger

	mu             sync.Mutex
	started        time.Time
	reportsWritten int
}

// New creates a server. The hub must be the same instance wired into
// the manager's notifier.
func New(opts Options) *Server {
	return &Server{
		manager: opts.Manager,
		hub:     opts.Hub,
		reports: opts.Reports,
		logger:  opts.Logger,
		started: time.Now(),
	}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Pages
	mux.HandleFunc("GET /{$}", s.instrument("/", s.handleWelcome))
	mux.HandleFunc("GET /entry", s.instrument("/entry", s.handleEntry))
	mux.HandleFunc("POST /sessions", s.instrument("/sessions", s.handleCreateSessionForm))
	mux.HandleFunc("GET /dashboard/{id}", s.instrument("/dashboard", s.handleDashboard))

	// JSON API
	mux.HandleFunc("POST /api/sessions", s.instrument("/api/sessions", s.handleCreateSession))
	mux.HandleFunc("GET /api/sessions", s.instrument("/api/sessions", s.handleListSessions))
	mux.HandleFunc("GET /api/sessions/{id}", s.instrument("/api/sessions/{id}", s.handleGetSession))
	mux.HandleFunc("DELETE /api/sessions/{id}", s.instrument("/api/sessions/{id}", s.handleDeleteSession))
	mux.HandleFunc("GET /api/sessions/{id}/series", s.instrument("/api/sessions/{id}/series", s.handleGetSeries))
	mux.HandleFunc("GET /api/sessions/{id}/metrics", s.instrument("/api/sessions/{id}/metrics", s.handleGetMetrics))
	mux.HandleFunc("PUT /api/sessions/{id}/params", s.instrument("/api/sessions/{id}/params", s.handleUpdateParams))
	mux.HandleFunc("POST /api/sessions/{id}/regenerate", s.instrument("/api/sessions/{id}/regenerate", s.handleRegenerate))
	mux.HandleFunc("POST /api/sessions/{id}/report", s.instrument("/api/sessions/{id}/report", s.handleWriteReport))

	// Charts
	mux.HandleFunc("GET /charts/{id}/{chart}", s.instrument("/charts", s.handleChart))

	// WebSocket
	mux.HandleFunc("GET /ws/{id}", s.handleWS)

	// Operational endpoints
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("GET /status", s.handleStatus)
	mux.Handle("GET /metrics", observability.Handler())

	return mux
}

// instrument wraps a handler with request latency recording.
func (s *Server) instrument(route string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		h(w, r)
		observability.RecordHTTPRequest(route, time.Since(start).Seconds())
	}
}
