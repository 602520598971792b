// Package itinerary derives the day-by-day view of a trip from its stored
// activities and assembles the export document and map view from that view.
// Every function here is pure: no I/O, no hidden state, and inputs are never
// mutated.
package itinerary

import (
	"math"
	"time"

	"github.com/pkordes/trip-planner/internal/domain"
)

const day = 24 * time.Hour

// DayDate returns the calendar date of dayNumber, where day 1 is start.
func DayDate(start time.Time, dayNumber int) time.Time {
	return domain.Date(start).AddDate(0, 0, dayNumber-1)
}

// TripDurationDays returns the number of calendar days from start to end,
// counting both endpoints. A partial day rounds up.
func TripDurationDays(start, end time.Time) int {
	span := domain.Date(end).Sub(domain.Date(start))
	return int(math.Ceil(float64(span)/float64(day))) + 1
}
