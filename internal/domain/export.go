package domain

import (
	"time"

	"github.com/google/uuid"
)

// ExportRow is a single row of the flat itinerary export.
// It is a denormalized view: one row per activity, with trip and day fields
// repeated on every row. A day with no activities yields one row whose
// activity fields are empty.
type ExportRow struct {
	TripID      uuid.UUID
	TripName    string
	Destination string
	DayNumber   int
	Date        time.Time // calendar date, midnight UTC

	Title     string
	Location  string
	StartTime string
	EndTime   string
	Notes     string
	Latitude  *float64
	Longitude *float64
}
