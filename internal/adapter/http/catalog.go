package http

import (
	"net/http"

	"github.com/Vexa12/climexa/internal/climate"
	"github.com/Vexa12/climexa/internal/recommend"
)

func (s *Server) handleAstronomy(w http.ResponseWriter, _ *http.Request) {
	events, err := s.deps.Astro.List()
	if err != nil {
		s.storeError(w, "list astronomical events", err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

// handleRecommendations serves the static catalog. Unknown activities get
// the default activity's table rather than an error or an empty list.
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	activity := r.URL.Query().Get("activity")
	if activity == "" {
		activity = recommend.DefaultActivity
	}
	writeJSON(w, http.StatusOK, s.deps.Catalog.For(activity))
}

func (s *Server) handleClimateNormals(w http.ResponseWriter, r *http.Request) {
	body := map[string]any{
		"normals": climate.Normals(),
		"current": climate.CurrentNormal(),
	}
	if activity := r.URL.Query().Get("activity"); activity != "" {
		body["bestMonths"] = climate.BestMonths(activity)
	}
	writeJSON(w, http.StatusOK, body)
}

func (s *Server) handleClimateAlerts(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, climate.Alerts())
}
