package repository

import (
	"github.com/Vexa12/climexa/internal/domain"
	"github.com/Vexa12/climexa/internal/store"
)

// Events accesses the planned-event collection.
type Events struct {
	store *store.Store
}

// NewEvents creates the event repository.
func NewEvents(s *store.Store) *Events {
	return &Events{store: s}
}

// List returns all events in insertion order.
func (r *Events) List() ([]domain.Event, error) {
	return readAll[domain.Event](r.store, store.KeyEvents)
}

// Add appends an event to the collection.
func (r *Events) Add(event domain.Event) error {
	return mutate(r.store, store.KeyEvents, func(events []domain.Event) []domain.Event {
		return append(events, event)
	})
}

// Update replaces the stored event with the same ID. Unknown IDs are a no-op.
func (r *Events) Update(event domain.Event) error {
	return mutate(r.store, store.KeyEvents, func(events []domain.Event) []domain.Event {
		for i := range events {
			if events[i].ID == event.ID {
				events[i] = event
				break
			}
		}
		return events
	})
}

// Remove deletes the event with the given ID. Unknown IDs are a no-op.
func (r *Events) Remove(id string) error {
	return mutate(r.store, store.KeyEvents, func(events []domain.Event) []domain.Event {
		filtered := events[:0]
		for _, e := range events {
			if e.ID != id {
				filtered = append(filtered, e)
			}
		}
		return filtered
	})
}

// ForUser returns the events owned by userID, preserving insertion order.
func (r *Events) ForUser(userID string) ([]domain.Event, error) {
	events, err := r.List()
	if err != nil {
		return nil, err
	}
	var owned []domain.Event
	for _, e := range events {
		if e.UserID == userID {
			owned = append(owned, e)
		}
	}
	return owned, nil
}
