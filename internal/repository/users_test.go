package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vexa12/climexa/internal/domain"
	"github.com/Vexa12/climexa/internal/repository"
)

func TestUsers_EmptyList(t *testing.T) {
	users := repository.NewUsers(newTestStore(t))

	got, err := users.List()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUsers_AddPreservesInsertionOrder(t *testing.T) {
	users := repository.NewUsers(newTestStore(t))

	require.NoError(t, users.Add(domain.User{ID: "1", Email: "a@x.com", Name: "Ana"}))
	require.NoError(t, users.Add(domain.User{ID: "2", Email: "b@x.com", Name: "Beto"}))

	got, err := users.List()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a@x.com", got[0].Email)
	assert.Equal(t, "b@x.com", got[1].Email)
}

func TestUsers_FindByEmail(t *testing.T) {
	users := repository.NewUsers(newTestStore(t))
	require.NoError(t, users.Add(domain.User{ID: "1", Email: "a@x.com", Name: "Ana"}))

	user, found, err := users.FindByEmail("a@x.com")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Ana", user.Name)

	_, found, err = users.FindByEmail("nobody@x.com")
	require.NoError(t, err)
	assert.False(t, found)
}

// The duplicate-registration guard is a caller-level check: the auth flow
// must see the email as taken before it would add a second copy.
func TestUsers_DuplicateCheckBeforeAdd(t *testing.T) {
	users := repository.NewUsers(newTestStore(t))
	require.NoError(t, users.Add(domain.User{ID: "1", Email: "a@x.com", Name: "Ana"}))

	_, found, err := users.FindByEmail("a@x.com")
	require.NoError(t, err)
	assert.True(t, found, "registration flow must refuse when the email is already present")
}
