package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vexa12/climexa/internal/domain"
	"github.com/Vexa12/climexa/internal/observability"
	"github.com/Vexa12/climexa/internal/repository"
)

func TestSessions_AbsentOnFreshStore(t *testing.T) {
	sessions := repository.NewSessions(newTestStore(t), observability.NewMetricsForTesting())

	_, ok, err := sessions.Current()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessions_SetThenCurrent(t *testing.T) {
	sessions := repository.NewSessions(newTestStore(t), observability.NewMetricsForTesting())

	user := domain.User{ID: "1", Email: "a@x.com", Name: "Ana", CreatedAt: "2025-10-01T00:00:00Z"}
	require.NoError(t, sessions.Set(user))

	got, ok, err := sessions.Current()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, user, got)
}

func TestSessions_SetOverwrites(t *testing.T) {
	sessions := repository.NewSessions(newTestStore(t), observability.NewMetricsForTesting())

	require.NoError(t, sessions.Set(domain.User{ID: "1", Name: "Ana"}))
	require.NoError(t, sessions.Set(domain.User{ID: "2", Name: "Beto"}))

	got, ok, err := sessions.Current()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Beto", got.Name)
}

func TestSessions_ClearIsIdempotent(t *testing.T) {
	sessions := repository.NewSessions(newTestStore(t), observability.NewMetricsForTesting())

	require.NoError(t, sessions.Set(domain.User{ID: "1", Name: "Ana"}))
	require.NoError(t, sessions.Clear())

	_, ok, err := sessions.Current()
	require.NoError(t, err)
	assert.False(t, ok)

	// Clearing again with no active session is still fine.
	require.NoError(t, sessions.Clear())
}

// The session is a denormalized copy, not an index: setting a user that was
// never added to the users collection succeeds.
func TestSessions_NoExistenceValidation(t *testing.T) {
	sessions := repository.NewSessions(newTestStore(t), observability.NewMetricsForTesting())

	require.NoError(t, sessions.Set(domain.User{ID: "ghost", Email: "ghost@x.com", Name: "Ghost"}))

	got, ok, err := sessions.Current()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "ghost", got.ID)
}
