package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the service.
type Metrics struct {
	// Record store metrics.
	StoreOps *prometheus.CounterVec // labels: op={read,write,update,clear}, collection, outcome={success,absent,error}

	// Forecast gateway metrics.
	ForecastRequests *prometheus.CounterVec // labels: outcome={success,error}
	ForecastDuration prometheus.Histogram

	// Recommendation catalog metrics.
	RecommendationLookups *prometheus.CounterVec // labels: result={known,fallback}

	// Geocoding metrics.
	GeocodeRequests *prometheus.CounterVec   // labels: outcome={success,error,empty}
	GeocodeCache    *prometheus.CounterVec   // labels: result={hit,miss}
	GeocodeDuration prometheus.Histogram

	SessionActive prometheus.Gauge
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		StoreOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "climexa",
			Name:      "store_ops_total",
			Help:      "Record store operations by op, collection, and outcome.",
		}, []string{"op", "collection", "outcome"}),
		ForecastRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "climexa",
			Name:      "forecast_requests_total",
			Help:      "Generative forecast requests by outcome.",
		}, []string{"outcome"}),
		ForecastDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "climexa",
			Name:      "forecast_duration_seconds",
			Help:      "Generative forecast request duration in seconds.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
		}),
		RecommendationLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "climexa",
			Name:      "recommendation_lookups_total",
			Help:      "Activity recommendation lookups by result.",
		}, []string{"result"}),
		GeocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "climexa",
			Name:      "geocode_requests_total",
			Help:      "Reverse geocoding API requests by outcome.",
		}, []string{"outcome"}),
		GeocodeCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "climexa",
			Name:      "geocode_cache_total",
			Help:      "Reverse geocoding cache lookups by result.",
		}, []string{"result"}),
		GeocodeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "climexa",
			Name:      "geocode_duration_seconds",
			Help:      "Mapbox API request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		SessionActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "climexa",
			Name:      "session_active",
			Help:      "1 when a user is logged in, 0 otherwise.",
		}),
	}

	prometheus.MustRegister(
		m.StoreOps,
		m.ForecastRequests,
		m.ForecastDuration,
		m.RecommendationLookups,
		m.GeocodeRequests,
		m.GeocodeCache,
		m.GeocodeDuration,
		m.SessionActive,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		StoreOps:              prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "climexa", Name: "store_ops_total"}, []string{"op", "collection", "outcome"}),
		ForecastRequests:      prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "climexa", Name: "forecast_requests_total"}, []string{"outcome"}),
		ForecastDuration:      prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "climexa", Name: "forecast_duration_seconds"}),
		RecommendationLookups: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "climexa", Name: "recommendation_lookups_total"}, []string{"result"}),
		GeocodeRequests:       prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "climexa", Name: "geocode_requests_total"}, []string{"outcome"}),
		GeocodeCache:          prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "climexa", Name: "geocode_cache_total"}, []string{"result"}),
		GeocodeDuration:       prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "climexa", Name: "geocode_duration_seconds"}),
		SessionActive:         prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "climexa", Name: "session_active"}),
	}
}
