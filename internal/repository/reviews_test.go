package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vexa12/climexa/internal/domain"
	"github.com/Vexa12/climexa/internal/repository"
)

func TestReviews_AddAndList(t *testing.T) {
	reviews := repository.NewReviews(newTestStore(t))

	require.NoError(t, reviews.Add(domain.Review{ID: "r1", LocationID: "Parque Tunari", Rating: 4}))
	require.NoError(t, reviews.Add(domain.Review{ID: "r2", LocationID: "Toro Toro", Rating: 5}))

	got, err := reviews.List()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "r1", got[0].ID)
	assert.Equal(t, "r2", got[1].ID)
}

func TestReviews_ForLocation(t *testing.T) {
	reviews := repository.NewReviews(newTestStore(t))

	require.NoError(t, reviews.Add(domain.Review{ID: "r1", LocationID: "Parque Tunari"}))
	require.NoError(t, reviews.Add(domain.Review{ID: "r2", LocationID: "Toro Toro"}))
	require.NoError(t, reviews.Add(domain.Review{ID: "r3", LocationID: "Parque Tunari"}))

	got, err := reviews.ForLocation("Parque Tunari")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "r1", got[0].ID)
	assert.Equal(t, "r3", got[1].ID)
}

func TestReviews_StatsForLocations(t *testing.T) {
	reviews := repository.NewReviews(newTestStore(t))

	require.NoError(t, reviews.Add(domain.Review{
		ID: "r1", LocationID: "Parque Tunari", Rating: 4,
		Comment: "Mucho viento por la tarde",
	}))
	require.NoError(t, reviews.Add(domain.Review{
		ID: "r2", LocationID: "Parque Tunari", Rating: 5,
		Comment: "Hermoso paisaje",
	}))
	require.NoError(t, reviews.Add(domain.Review{
		ID: "r3", LocationID: "Toro Toro", Rating: 3,
		Comment: "Camino difícil",
	}))

	stats, err := reviews.StatsForLocations([]string{"Parque Tunari", "Toro Toro", "Laguna Alalay"})
	require.NoError(t, err)
	require.Len(t, stats, 3)

	tunari := stats[0]
	assert.Equal(t, "Parque Tunari", tunari.Name)
	assert.Equal(t, 2, tunari.ReviewCount)
	assert.InDelta(t, 4.5, tunari.AvgRating, 0.001)
	assert.Equal(t, 1, tunari.WindMentions)
	assert.Equal(t, "Mucho viento por la tarde", tunari.TopComment)

	toro := stats[1]
	assert.Equal(t, 1, toro.ReviewCount)
	assert.InDelta(t, 3.0, toro.AvgRating, 0.001)
	assert.Zero(t, toro.WindMentions)

	empty := stats[2]
	assert.Zero(t, empty.ReviewCount)
	assert.Zero(t, empty.AvgRating)
	assert.Equal(t, "Sin comentarios aún", empty.TopComment)
}
