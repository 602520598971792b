package domain

import (
	"time"

	"github.com/google/uuid"
)

// Activity is a single scheduled item within a trip.
// DayNumber is 1-based and relative to the trip's start date.
// StartTime and EndTime are zero-padded 24-hour "HH:MM" strings, so plain
// string comparison orders them chronologically.
type Activity struct {
	ID        uuid.UUID
	TripID    uuid.UUID
	DayNumber int
	Title     string
	Location  string
	StartTime string
	EndTime   string
	Notes     string
	Latitude  *float64
	Longitude *float64
	PlaceID   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Coordinates returns the activity position. ok is false unless both
// latitude and longitude are set; a lone value counts as no position.
func (a Activity) Coordinates() (lat, lng float64, ok bool) {
	if a.Latitude == nil || a.Longitude == nil {
		return 0, 0, false
	}
	return *a.Latitude, *a.Longitude, true
}
