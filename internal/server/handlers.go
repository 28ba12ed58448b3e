package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"crypto-volatility-lab/internal/charts"
	"crypto-volatility-lab/internal/domain"
	"crypto-volatility-lab/internal/storage"
)

// CreateSessionRequest is the JSON body for POST /api/sessions.
type CreateSessionRequest struct {
	UserName  string `json:"user_name"`
	ProjectID string `json:"project_id"`
}

// ErrorResponse is the JSON body for all error replies.
type ErrorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	sess, err := s.manager.Create(r.Context(), req.UserName, req.ProjectID)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	s.logger.Printf("Session %s created for %q", sess.SessionID, sess.UserName)
	writeJSON(w, http.StatusCreated, toSessionPayload(sess))
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := s.manager.List(r.Context())
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	payload := make([]SessionPayload, len(sessions))
	for i, sess := range sessions {
		payload[i] = toSessionPayload(sess)
	}
	writeJSON(w, http.StatusOK, payload)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.manager.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionPayload(sess))
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.manager.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetSeries(w http.ResponseWriter, r *http.Request) {
	rec, err := s.manager.Series(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSeriesPayload(rec))
}

func (s *Server) handleGetMetrics(w http.ResponseWriter, r *http.Request) {
	m, err := s.manager.Metrics(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toMetricsPayload(m))
}

func (s *Server) handleUpdateParams(w http.ResponseWriter, r *http.Request) {
	var pl ParamsPayload
	if err := json.NewDecoder(r.Body).Decode(&pl); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	sess, err := s.manager.UpdateParams(r.Context(), r.PathValue("id"), pl.toDomain())
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionPayload(sess))
}

func (s *Server) handleRegenerate(w http.ResponseWriter, r *http.Request) {
	sess, err := s.manager.Regenerate(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionPayload(sess))
}

// WriteReportResponse is the JSON body returned after report generation.
type WriteReportResponse struct {
	ReportPath string `json:"report_path"`
	CSVPath    string `json:"csv_path"`
}

func (s *Server) handleWriteReport(w http.ResponseWriter, r *http.Request) {
	sess, err := s.manager.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	rec, err := s.manager.Series(r.Context(), sess.SessionID)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	reportPath, csvPath, err := s.reports.Write(rec, sess.UserName, sess.ProjectID)
	if err != nil {
		s.logger.Printf("Report write failed for session %s: %v", sess.SessionID, err)
		writeError(w, http.StatusInternalServerError, "report generation failed")
		return
	}

	s.mu.Lock()
	s.reportsWritten++
	s.mu.Unlock()

	s.logger.Printf("Report written for session %s: %s", sess.SessionID, reportPath)
	writeJSON(w, http.StatusCreated, WriteReportResponse{ReportPath: reportPath, CSVPath: csvPath})
}

// handleChart serves /charts/{id}/{price|range|volume}.png.
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	kind, ok := strings.CutSuffix(r.PathValue("chart"), ".png")
	if !ok {
		writeError(w, http.StatusNotFound, "unknown chart")
		return
	}

	rec, err := s.manager.Series(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	img, err := charts.Render(kind, rec)
	if err != nil {
		if errors.Is(err, charts.ErrUnknownKind) {
			writeError(w, http.StatusNotFound, "unknown chart")
			return
		}
		s.logger.Printf("Chart render failed: %v", err)
		writeError(w, http.StatusInternalServerError, "chart rendering failed")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	// Chart content is keyed by series ID, which changes on every
	// regeneration, so clients must not cache across updates.
	w.Header().Set("Cache-Control", "no-store")
	w.Write(img)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")
	if _, err := s.manager.Get(r.Context(), sessionID); err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.hub.HandleWS(w, r, sessionID)
}

// StatusResponse is the JSON response for the /status endpoint.
type StatusResponse struct {
	Status         string `json:"status"`
	Uptime         string `json:"uptime"`
	Sessions       int    `json:"sessions"`
	WSClients      int    `json:"ws_clients"`
	ReportsWritten int    `json:"reports_written"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	sessions, err := s.manager.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "status unavailable")
		return
	}

	s.mu.Lock()
	resp := StatusResponse{
		Status:         "running",
		Uptime:         time.Since(s.started).String(),
		Sessions:       len(sessions),
		WSClients:      s.hub.ClientCount(),
		ReportsWritten: s.reportsWritten,
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, resp)
}

// writeDomainError maps domain and storage errors to HTTP status codes.
func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		writeError(w, http.StatusNotFound, "session not found")
	case errors.Is(err, domain.ErrInvalidParams):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		s.logger.Printf("Internal error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
