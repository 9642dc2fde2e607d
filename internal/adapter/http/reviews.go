package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Vexa12/climexa/internal/domain"
)

type createReviewRequest struct {
	LocationID string   `json:"locationId"`
	Lat        *float64 `json:"lat"`
	Lng        *float64 `json:"lng"`
	Rating     int      `json:"rating"`
	Comment    string   `json:"comment"`
	Photos     []string `json:"photos"`
}

// handleListReviews returns reviews, optionally filtered by location_id.
func (s *Server) handleListReviews(w http.ResponseWriter, r *http.Request) {
	var (
		reviews []domain.Review
		err     error
	)
	if loc := r.URL.Query().Get("location_id"); loc != "" {
		reviews, err = s.deps.Reviews.ForLocation(loc)
	} else {
		reviews, err = s.deps.Reviews.List()
	}
	if err != nil {
		s.storeError(w, "list reviews", err)
		return
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}
	writeJSON(w, http.StatusOK, reviews)
}

// handleCreateReview posts a review as the session user. The location may
// arrive as a place name or as map-click coordinates; coordinates are
// reverse-geocoded, falling back to a "lat, lng" string when that fails.
func (s *Server) handleCreateReview(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w)
	if !ok {
		return
	}

	var req createReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	locationID := strings.TrimSpace(req.LocationID)
	if locationID == "" {
		if req.Lat == nil || req.Lng == nil {
			writeError(w, http.StatusBadRequest, "locationId or lat/lng is required")
			return
		}
		locationID = domain.ResolveLocationID(r.Context(), *req.Lat, *req.Lng, s.deps.Geocoder, s.logger)
	}

	review := domain.Review{
		ID:         domain.NewID(),
		UserID:     user.ID,
		UserName:   user.Name,
		LocationID: locationID,
		Rating:     clampRating(req.Rating),
		Comment:    req.Comment,
		Date:       domain.Now(),
		Photos:     req.Photos,
	}

	if err := s.deps.Reviews.Add(review); err != nil {
		s.storeError(w, "add review", err)
		return
	}

	s.logger.Info("review posted", "review_id", review.ID, "location", locationID)
	writeJSON(w, http.StatusCreated, review)
}

// handleReviewStats aggregates reviews for the comma-separated locations.
func (s *Server) handleReviewStats(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("locations")
	if raw == "" {
		writeError(w, http.StatusBadRequest, "locations parameter is required")
		return
	}

	var locations []string
	for _, loc := range strings.Split(raw, ",") {
		if loc = strings.TrimSpace(loc); loc != "" {
			locations = append(locations, loc)
		}
	}

	stats, err := s.deps.Reviews.StatsForLocations(locations)
	if err != nil {
		s.storeError(w, "review stats", err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func clampRating(rating int) int {
	if rating < 1 {
		return 1
	}
	if rating > 5 {
		return 5
	}
	return rating
}
