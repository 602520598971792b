package itinerary

import "github.com/pkordes/trip-planner/internal/domain"

// ExportRows flattens an itinerary into one row per activity, day by day.
// A day without activities contributes a single row with empty activity
// fields so that every day of the trip is present in the export.
func ExportRows(it Itinerary) []domain.ExportRow {
	trip := it.Trip
	rows := make([]domain.ExportRow, 0, max(it.ActivityCount(), len(it.Days)))

	for _, d := range it.Days {
		base := domain.ExportRow{
			TripID:      trip.ID,
			TripName:    trip.Name,
			Destination: trip.Destination,
			DayNumber:   d.DayNumber,
			Date:        d.Date,
		}
		if len(d.Activities) == 0 {
			rows = append(rows, base)
			continue
		}
		for _, a := range d.Activities {
			row := base
			row.Title = a.Title
			row.Location = a.Location
			row.StartTime = a.StartTime
			row.EndTime = a.EndTime
			row.Notes = a.Notes
			if lat, lng, ok := a.Coordinates(); ok {
				row.Latitude, row.Longitude = &lat, &lng
			}
			rows = append(rows, row)
		}
	}
	return rows
}
