// Package domain models the records persisted by the climexa service:
// users, the single login session, planned outdoor events, community
// reviews, and astronomical events.
//
// # Identity
//
// Record IDs are Unix-millisecond timestamps rendered as decimal strings.
// This matches the data already written by earlier builds of the app and is
// unique enough for a single local instance, which is the only deployment
// shape this service supports. There is no collision handling.
//
// # Denormalization
//
// Reviews carry a copy of the author's name (UserName) and events carry a
// forecast snapshot (WeatherPrediction) taken at creation time. Neither is
// ever re-joined against fresh data: renaming a user leaves old reviews
// untouched, and an event's forecast is never refreshed. This is a
// deliberate simplicity-over-consistency trade for a local-only store.
//
// # Time
//
// All time-dependent values (IDs, CreatedAt, the "current month" used by the
// climate package) flow through a package-level clockwork clock so tests can
// freeze time via [SetClock].
package domain
