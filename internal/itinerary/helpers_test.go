package itinerary_test

import (
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func tripFixture(start, end time.Time) domain.Trip {
	return domain.Trip{
		ID:          uuid.New(),
		OwnerID:     uuid.New(),
		Name:        "Spring Break",
		Destination: "Lisbon, Portugal",
		StartDate:   start,
		EndDate:     end,
		Preferences: []string{"food"},
	}
}

func activityFixture(day int, start, title string) domain.Activity {
	return domain.Activity{
		ID:        uuid.New(),
		DayNumber: day,
		Title:     title,
		Location:  title + " location",
		StartTime: start,
		EndTime:   "23:00",
	}
}

func ptr[T any](v T) *T { return &v }
