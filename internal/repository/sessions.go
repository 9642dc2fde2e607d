package repository

import (
	"errors"

	"github.com/Vexa12/climexa/internal/domain"
	"github.com/Vexa12/climexa/internal/observability"
	"github.com/Vexa12/climexa/internal/store"
)

// Sessions tracks the single logged-in identity. The session is a full
// denormalized copy of the user record under its own key, not an index into
// the users collection, and nothing validates that the referenced user still
// exists there.
type Sessions struct {
	store   *store.Store
	metrics *observability.Metrics
}

// NewSessions creates the session manager.
func NewSessions(s *store.Store, metrics *observability.Metrics) *Sessions {
	return &Sessions{store: s, metrics: metrics}
}

// Current returns the logged-in user, if any.
func (r *Sessions) Current() (domain.User, bool, error) {
	var user domain.User
	if err := r.store.Read(store.KeyCurrentUser, &user); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, false, nil
		}
		return domain.User{}, false, err
	}
	return user, true, nil
}

// Set overwrites the session with a copy of the given user.
func (r *Sessions) Set(user domain.User) error {
	if err := r.store.Write(store.KeyCurrentUser, user); err != nil {
		return err
	}
	if r.metrics != nil {
		r.metrics.SessionActive.Set(1)
	}
	return nil
}

// Clear removes the session key. Clearing an absent session is a no-op.
func (r *Sessions) Clear() error {
	if err := r.store.Clear(store.KeyCurrentUser); err != nil {
		return err
	}
	if r.metrics != nil {
		r.metrics.SessionActive.Set(0)
	}
	return nil
}
