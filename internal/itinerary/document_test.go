package itinerary_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/itinerary"
)

func TestNewDocument_HeaderAndSections(t *testing.T) {
	trip := tripFixture(date(2024, time.March, 1), date(2024, time.March, 3))
	trip.Name = "Paris Adventure"
	trip.Destination = "Paris, France"

	louvre := activityFixture(2, "09:00", "Louvre Museum")
	louvre.EndTime = "13:00"
	louvre.Location = "Louvre Museum, Paris"
	louvre.Notes = "  See the Mona Lisa  "
	louvre.Latitude, louvre.Longitude = ptr(48.8606), ptr(2.3376)
	cafe := activityFixture(2, "08:00", "Breakfast")
	cafe.EndTime = "08:45"

	doc := itinerary.NewDocument(itinerary.Build(trip, []domain.Activity{louvre, cafe}))

	assert.Equal(t, "Paris Adventure", doc.Title)
	assert.Equal(t, "Paris Adventure", doc.Header.TripName)
	assert.Equal(t, "Paris, France", doc.Header.Destination)
	assert.Equal(t, "Mar 1, 2024 - Mar 3, 2024", doc.Header.DateRange)
	assert.Equal(t, "3 days", doc.Header.Duration)
	assert.Equal(t, itinerary.DocumentFooter, doc.Footer)
	assert.Equal(t, "paris_adventure_itinerary", doc.FileName)

	require.Len(t, doc.Sections, 3)

	day1 := doc.Sections[0]
	assert.Equal(t, "Day 1", day1.Heading)
	assert.Equal(t, "Friday, Mar 1", day1.DateLabel)
	assert.Equal(t, "2024-03-01", day1.Date)
	assert.Empty(t, day1.Items)
	assert.Equal(t, itinerary.EmptyDayPlaceholder, day1.Placeholder)

	day2 := doc.Sections[1]
	assert.Empty(t, day2.Placeholder)
	require.Len(t, day2.Items, 2)
	assert.Equal(t, "08:00 - 08:45", day2.Items[0].TimeRange)
	assert.Empty(t, day2.Items[0].MapURL)
	assert.Equal(t, "Louvre Museum", day2.Items[1].Title)
	assert.Equal(t, "Louvre Museum, Paris", day2.Items[1].Location)
	assert.Equal(t, "See the Mona Lisa", day2.Items[1].Notes)
	assert.Equal(t, "https://www.google.com/maps?q=48.8606,2.3376", day2.Items[1].MapURL)
}

func TestNewDocument_OneDayTrip(t *testing.T) {
	trip := tripFixture(date(2024, time.March, 1), date(2024, time.March, 1))

	doc := itinerary.NewDocument(itinerary.Build(trip, nil))

	assert.Equal(t, "1 day", doc.Header.Duration)
	require.Len(t, doc.Sections, 1)
}

func TestNewDocument_HalfCoordinatesGetNoMapLink(t *testing.T) {
	trip := tripFixture(date(2024, time.March, 1), date(2024, time.March, 1))
	a := activityFixture(1, "09:00", "only lat")
	a.Latitude = ptr(10.0)

	doc := itinerary.NewDocument(itinerary.Build(trip, []domain.Activity{a}))

	assert.Empty(t, doc.Sections[0].Items[0].MapURL)
}

func TestNewDocument_MatchesItineraryGrouping(t *testing.T) {
	trip := tripFixture(date(2024, time.May, 1), date(2024, time.May, 4))
	acts := []domain.Activity{
		activityFixture(3, "18:00", "c"),
		activityFixture(1, "07:00", "a"),
		activityFixture(3, "06:00", "b"),
		activityFixture(4, "12:00", "d"),
	}
	it := itinerary.Build(trip, acts)

	doc := itinerary.NewDocument(it)

	require.Len(t, doc.Sections, len(it.Days))
	for i, d := range it.Days {
		require.Len(t, doc.Sections[i].Items, len(d.Activities))
		for j, a := range d.Activities {
			assert.Equal(t, a.Title, doc.Sections[i].Items[j].Title)
		}
	}
}

func TestNewDocument_JSONShape(t *testing.T) {
	trip := tripFixture(date(2024, time.March, 1), date(2024, time.March, 1))

	b, err := json.Marshal(itinerary.NewDocument(itinerary.Build(trip, nil)))
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Contains(t, got, "header")
	assert.Contains(t, got, "sections")
	assert.Equal(t, "spring_break_itinerary", got["file_name"])
}

func TestFileStem(t *testing.T) {
	assert.Equal(t, "new_york_city_adventure_itinerary", itinerary.FileStem("New York City Adventure"))
	assert.Equal(t, "caf____crawl_itinerary", itinerary.FileStem("Café & Crawl"))
}
