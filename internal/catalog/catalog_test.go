package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/catalog"
	"github.com/pkordes/trip-planner/internal/domain"
)

func TestList_DefinitionOrder(t *testing.T) {
	got := catalog.List()

	require.Len(t, got, 3)
	assert.Equal(t, "paris-france", got[0].ID)
	assert.Equal(t, "tokyo-japan", got[1].ID)
	assert.Equal(t, "new-york-usa", got[2].ID)
}

func TestGet_Paris(t *testing.T) {
	got, err := catalog.Get("paris-france")

	require.NoError(t, err)
	assert.Equal(t, "Paris", got.Name)
	assert.Equal(t, "France", got.Country)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, got.DayNumbers())
	assert.Equal(t, 14, got.ActivityCount())
}

func TestGet_Unknown(t *testing.T) {
	_, err := catalog.Get("atlantis")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestTemplatesAreValid checks every template the way a seeded activity is
// validated: 1-based day keys, non-empty title and location, zero-padded
// times with start not after end, and coordinates given as a pair.
func TestTemplatesAreValid(t *testing.T) {
	for _, tpl := range catalog.List() {
		t.Run(tpl.ID, func(t *testing.T) {
			assert.NotEmpty(t, tpl.Name)
			assert.NotEmpty(t, tpl.Country)
			assert.NotEmpty(t, tpl.Description)
			require.NotEmpty(t, tpl.Itinerary)

			for _, d := range tpl.DayNumbers() {
				assert.GreaterOrEqual(t, d, 1)
				for _, a := range tpl.Itinerary[d] {
					assert.NotEmpty(t, a.Title)
					assert.NotEmpty(t, a.Location)
					assert.Regexp(t, `^([01]\d|2[0-3]):[0-5]\d$`, a.StartTime)
					assert.Regexp(t, `^([01]\d|2[0-3]):[0-5]\d$`, a.EndTime)
					assert.LessOrEqual(t, a.StartTime, a.EndTime, a.Title)
					assert.Equal(t, a.Latitude == nil, a.Longitude == nil, a.Title)
				}
			}
		})
	}
}

func TestGet_ReturnsIndependentCopies(t *testing.T) {
	first, err := catalog.Get("tokyo-japan")
	require.NoError(t, err)

	first.Name = "Osaka"
	first.Itinerary[1][1].Title = "changed"
	*first.Itinerary[1][1].Latitude = 0
	delete(first.Itinerary, 7)

	second, err := catalog.Get("tokyo-japan")
	require.NoError(t, err)
	assert.Equal(t, "Tokyo", second.Name)
	assert.Equal(t, "Shibuya Crossing Experience", second.Itinerary[1][1].Title)
	assert.Equal(t, 35.6598, *second.Itinerary[1][1].Latitude)
	assert.Len(t, second.Itinerary, 7)
}
