package domain

import "context"

// Forecaster produces a weather forecast for a planned event. Implementations
// return an error on any network, parse, or schema failure; callers are
// expected to substitute their own fallback prediction.
type Forecaster interface {
	EventForecast(ctx context.Context, date, location, activity string) (EventForecast, error)
}
