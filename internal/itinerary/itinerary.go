package itinerary

import (
	"slices"
	"sort"
	"time"

	"github.com/pkordes/trip-planner/internal/domain"
)

// Itinerary is a snapshot of a trip and its activities grouped by day.
// Days always has one entry per calendar day of the trip, in order, even
// when a day has no activities.
type Itinerary struct {
	Trip domain.Trip
	Days []Day

	// Unscheduled holds activities whose day number falls outside the trip's
	// date range, ordered by day number then start time.
	Unscheduled []domain.Activity
}

// Day is one calendar day of an itinerary.
type Day struct {
	DayNumber  int
	Date       time.Time
	Activities []domain.Activity
}

// Build binds trip to its activities. The result shares no slices with the
// arguments, so later changes to activities or trip.Preferences do not
// affect it.
func Build(trip domain.Trip, activities []domain.Activity) Itinerary {
	trip.Preferences = slices.Clone(trip.Preferences)

	buckets := GroupByDay(activities)
	n := max(TripDurationDays(trip.StartDate, trip.EndDate), 0)

	it := Itinerary{Trip: trip, Days: make([]Day, n)}
	for i := range n {
		dayNumber := i + 1
		acts := buckets[dayNumber]
		if acts == nil {
			acts = []domain.Activity{}
		}
		it.Days[i] = Day{
			DayNumber:  dayNumber,
			Date:       DayDate(trip.StartDate, dayNumber),
			Activities: acts,
		}
		delete(buckets, dayNumber)
	}

	if len(buckets) > 0 {
		stray := make([]int, 0, len(buckets))
		for d := range buckets {
			stray = append(stray, d)
		}
		sort.Ints(stray)
		for _, d := range stray {
			it.Unscheduled = append(it.Unscheduled, buckets[d]...)
		}
	}
	return it
}

// Day returns the entry for dayNumber, or false when it is out of range.
func (it Itinerary) Day(dayNumber int) (Day, bool) {
	if dayNumber < 1 || dayNumber > len(it.Days) {
		return Day{}, false
	}
	return it.Days[dayNumber-1], true
}

// ActivityCount is the number of activities placed on a day of the trip.
// Unscheduled activities are not counted.
func (it Itinerary) ActivityCount() int {
	n := 0
	for _, d := range it.Days {
		n += len(d.Activities)
	}
	return n
}
