// Package recommend serves the static activity recommendation catalog. The
// entries are illustrative, design-fixed content for the Cochabamba region,
// not computed from any live data source.
package recommend

import (
	"sort"

	"github.com/Vexa12/climexa/internal/domain"
	"github.com/Vexa12/climexa/internal/observability"
)

// DefaultActivity is served for unrecognized activity keys, so lookups never
// come back empty.
const DefaultActivity = "senderismo"

// Catalog answers recommendation lookups by activity key.
type Catalog struct {
	metrics *observability.Metrics
}

// NewCatalog creates the catalog.
func NewCatalog(metrics *observability.Metrics) *Catalog {
	return &Catalog{metrics: metrics}
}

// For returns the recommendations for the given activity, falling back to
// the default activity's table for unknown keys.
func (c *Catalog) For(activity string) []domain.Recommendation {
	recs, ok := catalog[activity]
	if !ok {
		recs = catalog[DefaultActivity]
	}
	if c.metrics != nil {
		result := "known"
		if !ok {
			result = "fallback"
		}
		c.metrics.RecommendationLookups.WithLabelValues(result).Inc()
	}
	out := make([]domain.Recommendation, len(recs))
	copy(out, recs)
	return out
}

// Activities lists the known activity keys in sorted order.
func (c *Catalog) Activities() []string {
	keys := make([]string, 0, len(catalog))
	for k := range catalog {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
