// Package domain contains the core data types for the trip planner.
// It has no dependencies on the store, the HTTP layer, or any collaborator
// and is imported by every other internal package.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip is a user-owned plan with a destination and an inclusive date range.
// StartDate and EndDate carry calendar dates only; the time-of-day part is
// always midnight UTC.
type Trip struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	Preferences []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DefaultTripSpan is the number of days added to the start date when a trip
// is created without an explicit end date (a fixed 7-day window).
const DefaultTripSpan = 6

// Date truncates t to a calendar date at midnight UTC.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TripDraft carries the user-supplied fields of a custom trip.
// Blank fields are replaced by defaults when the trip is seeded.
type TripDraft struct {
	Name        string
	Destination string
	StartDate   *time.Time
	EndDate     *time.Time
	Preferences []string
}

// SeededTrip is the result of a successful seeding operation.
type SeededTrip struct {
	Trip       Trip
	Activities []Activity
}
