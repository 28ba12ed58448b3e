package server

import (
	"embed"
	"html/template"
	"net/http"

	"crypto-volatility-lab/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// dashboardData feeds the dashboard template.
type dashboardData struct {
	Session SessionPayload
	Metrics *MetricsPayload

	// Slider bounds
	AmplitudeMin float64
	AmplitudeMax float64
	FrequencyMin float64
	FrequencyMax float64
	DriftMin     float64
	DriftMax     float64
	NoiseMin     float64
	NoiseMax     float64
	LengthMin    int
	LengthMax    int
}

func (s *Server) handleWelcome(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, "welcome.html", nil)
}

func (s *Server) handleEntry(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, "entry.html", nil)
}

// handleCreateSessionForm handles the entry form post and redirects to
// the new session's dashboard.
func (s *Server) handleCreateSessionForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form")
		return
	}

	sess, err := s.manager.Create(r.Context(), r.FormValue("user_name"), r.FormValue("project_id"))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	s.logger.Printf("Session %s created for %q", sess.SessionID, sess.UserName)
	http.Redirect(w, r, "/dashboard/"+sess.SessionID, http.StatusSeeOther)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	sess, err := s.manager.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	m, err := s.manager.Metrics(r.Context(), sess.SessionID)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	s.renderPage(w, "dashboard.html", dashboardData{
		Session:      toSessionPayload(sess),
		Metrics:      toMetricsPayload(m),
		AmplitudeMin: domain.AmplitudeMin,
		AmplitudeMax: domain.AmplitudeMax,
		FrequencyMin: domain.FrequencyMin,
		FrequencyMax: domain.FrequencyMax,
		DriftMin:     domain.DriftMin,
		DriftMax:     domain.DriftMax,
		NoiseMin:     domain.NoiseMin,
		NoiseMax:     domain.NoiseMax,
		LengthMin:    domain.LengthMin,
		LengthMax:    domain.LengthMax,
	})
}

func (s *Server) renderPage(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplates.ExecuteTemplate(w, name, data); err != nil {
		s.logger.Printf("Template %s failed: %v", name, err)
	}
}
