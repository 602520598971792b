package domain

import "sort"

// Template is a prebuilt multi-day itinerary used to seed a new trip.
// Itinerary keys are 1-based day numbers matching Activity.DayNumber.
type Template struct {
	ID          string
	Name        string
	Country     string
	Description string
	Itinerary   map[int][]TemplateActivity
}

// TemplateActivity is one entry of a template day.
type TemplateActivity struct {
	Title     string
	Location  string
	StartTime string
	EndTime   string
	Notes     string
	Latitude  *float64
	Longitude *float64
}

// DayNumbers returns the template's day keys in ascending order.
func (t Template) DayNumbers() []int {
	days := make([]int, 0, len(t.Itinerary))
	for d := range t.Itinerary {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}

// ActivityCount returns the number of template activities across all days.
func (t Template) ActivityCount() int {
	n := 0
	for _, acts := range t.Itinerary {
		n += len(acts)
	}
	return n
}
