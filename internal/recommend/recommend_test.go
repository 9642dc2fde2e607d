package recommend_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vexa12/climexa/internal/observability"
	"github.com/Vexa12/climexa/internal/recommend"
)

func newCatalog() *recommend.Catalog {
	return recommend.NewCatalog(observability.NewMetricsForTesting())
}

func TestFor_KnownActivity(t *testing.T) {
	c := newCatalog()

	recs := c.For("camping")
	require.Len(t, recs, 3)
	assert.Equal(t, "Lago Angostura", recs[0].Location)
	assert.InDelta(t, 9.0, recs[0].Score, 0.001)
}

func TestFor_UnknownActivityFallsBackToDefault(t *testing.T) {
	c := newCatalog()

	fallback := c.For("unknown-activity-xyz")
	def := c.For(recommend.DefaultActivity)

	require.NotEmpty(t, fallback)
	if diff := cmp.Diff(def, fallback); diff != "" {
		t.Errorf("fallback differs from default table (-default +fallback):\n%s", diff)
	}
}

func TestFor_ReturnsACopy(t *testing.T) {
	c := newCatalog()

	recs := c.For("camping")
	recs[0].Location = "mutated"

	again := c.For("camping")
	assert.Equal(t, "Lago Angostura", again[0].Location)
}

func TestActivities_SortedAndComplete(t *testing.T) {
	c := newCatalog()

	activities := c.Activities()
	require.Len(t, activities, 15)
	assert.IsIncreasing(t, activities)
	assert.Contains(t, activities, "senderismo")
	assert.Contains(t, activities, "banos_bosque")
}
