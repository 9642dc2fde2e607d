package domain

import (
	"context"
	"fmt"
	"log/slog"
)

// ResolveLocationID turns a map click into the free-text location identifier
// stored on reviews. If a geocoder is available and returns a place name,
// that name is used; otherwise the coordinates themselves become the
// identifier in "lat, lon" form (graceful degradation, never an error).
func ResolveLocationID(ctx context.Context, lat, lon float64, geocoder Geocoder, logger *slog.Logger) string {
	fallback := fmt.Sprintf("%.4f, %.4f", lat, lon)

	if geocoder == nil {
		return fallback
	}

	result, err := geocoder.ReverseGeocode(ctx, lat, lon)
	if err != nil {
		logger.Warn("reverse geocoding failed",
			"lat", lat,
			"lon", lon,
			"error", err,
		)
		return fallback
	}
	if result.PlaceName == "" {
		return fallback
	}
	return result.PlaceName
}
