package itinerary

import (
	"slices"
	"strings"

	"github.com/pkordes/trip-planner/internal/domain"
)

// GroupByDay partitions activities into buckets keyed by day number.
// Each bucket is ordered by start time; activities with equal start times
// keep their relative input order. Only days that have at least one activity
// get a bucket. The returned slices never alias the input.
func GroupByDay(activities []domain.Activity) map[int][]domain.Activity {
	buckets := make(map[int][]domain.Activity)
	for _, a := range activities {
		buckets[a.DayNumber] = append(buckets[a.DayNumber], cloneActivity(a))
	}
	for _, bucket := range buckets {
		sortByStartTime(bucket)
	}
	return buckets
}

func sortByStartTime(acts []domain.Activity) {
	slices.SortStableFunc(acts, func(a, b domain.Activity) int {
		return strings.Compare(a.StartTime, b.StartTime)
	})
}

// cloneActivity copies the coordinate pointers so the copy shares no memory
// with the original.
func cloneActivity(a domain.Activity) domain.Activity {
	if a.Latitude != nil {
		lat := *a.Latitude
		a.Latitude = &lat
	}
	if a.Longitude != nil {
		lng := *a.Longitude
		a.Longitude = &lng
	}
	return a
}
