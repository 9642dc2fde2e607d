package repository

import (
	"strings"

	"github.com/Vexa12/climexa/internal/domain"
	"github.com/Vexa12/climexa/internal/store"
)

// Reviews accesses the community review collection. Reviews are append-only;
// no update or delete path exists.
type Reviews struct {
	store *store.Store
}

// NewReviews creates the review repository.
func NewReviews(s *store.Store) *Reviews {
	return &Reviews{store: s}
}

// List returns all reviews in insertion order.
func (r *Reviews) List() ([]domain.Review, error) {
	return readAll[domain.Review](r.store, store.KeyReviews)
}

// Add appends a review to the collection.
func (r *Reviews) Add(review domain.Review) error {
	return mutate(r.store, store.KeyReviews, func(reviews []domain.Review) []domain.Review {
		return append(reviews, review)
	})
}

// ForLocation returns the reviews for one location ID, preserving insertion order.
func (r *Reviews) ForLocation(locationID string) ([]domain.Review, error) {
	reviews, err := r.List()
	if err != nil {
		return nil, err
	}
	var matched []domain.Review
	for _, rv := range reviews {
		if rv.LocationID == locationID {
			matched = append(matched, rv)
		}
	}
	return matched, nil
}

// LocationStats aggregates the reviews of one location for display.
type LocationStats struct {
	Name         string  `json:"name"`
	ReviewCount  int     `json:"reviewCount"`
	AvgRating    float64 `json:"avgRating"`
	WindMentions int     `json:"windMentions"`
	TopComment   string  `json:"topComment"`
}

// StatsForLocations computes per-location aggregates over the full review
// collection: count, average rating, how many comments mention wind, and the
// earliest comment as the featured one.
func (r *Reviews) StatsForLocations(locations []string) ([]LocationStats, error) {
	reviews, err := r.List()
	if err != nil {
		return nil, err
	}

	stats := make([]LocationStats, 0, len(locations))
	for _, loc := range locations {
		s := LocationStats{Name: loc, TopComment: "Sin comentarios aún"}
		var ratingSum int
		for _, rv := range reviews {
			if rv.LocationID != loc {
				continue
			}
			if s.ReviewCount == 0 {
				s.TopComment = rv.Comment
			}
			s.ReviewCount++
			ratingSum += rv.Rating
			if strings.Contains(strings.ToLower(rv.Comment), "viento") {
				s.WindMentions++
			}
		}
		if s.ReviewCount > 0 {
			s.AvgRating = float64(ratingSum) / float64(s.ReviewCount)
		}
		stats = append(stats, s)
	}
	return stats, nil
}
