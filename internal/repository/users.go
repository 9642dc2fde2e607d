package repository

import (
	"github.com/Vexa12/climexa/internal/domain"
	"github.com/Vexa12/climexa/internal/store"
)

// Users accesses the registered-user collection.
//
// The repository performs no email uniqueness enforcement; the auth flow is
// expected to call FindByEmail before Add and refuse duplicates itself.
type Users struct {
	store *store.Store
}

// NewUsers creates the user repository.
func NewUsers(s *store.Store) *Users {
	return &Users{store: s}
}

// List returns all users in insertion order.
func (r *Users) List() ([]domain.User, error) {
	return readAll[domain.User](r.store, store.KeyUsers)
}

// Add appends a user to the collection.
func (r *Users) Add(user domain.User) error {
	return mutate(r.store, store.KeyUsers, func(users []domain.User) []domain.User {
		return append(users, user)
	})
}

// FindByEmail returns the first user with the given email, if any.
func (r *Users) FindByEmail(email string) (domain.User, bool, error) {
	users, err := r.List()
	if err != nil {
		return domain.User{}, false, err
	}
	for _, u := range users {
		if u.Email == email {
			return u, true, nil
		}
	}
	return domain.User{}, false, nil
}
