package itinerary

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Labels used in the assembled document.
const (
	EmptyDayPlaceholder = "No activities planned"
	DocumentFooter      = "Created by TriP"

	rangeDateLayout = "Jan 2, 2006"
	dayDateLayout   = "Monday, Jan 2"
	isoDateLayout   = "2006-01-02"
)

// Document is the flattened content of a printable or shareable itinerary.
// It is what the rendering collaborator draws; it carries no styling.
type Document struct {
	Title    string            `json:"title"`
	Header   DocumentHeader    `json:"header"`
	Sections []DocumentSection `json:"sections"`
	Footer   string            `json:"footer"`
	FileName string            `json:"file_name"`
}

// DocumentHeader is the block shown above the day sections.
type DocumentHeader struct {
	TripName    string `json:"trip_name"`
	Destination string `json:"destination"`
	DateRange   string `json:"date_range"`
	Duration    string `json:"duration"`
}

// DocumentSection is one day of the document. Placeholder is set only when
// Items is empty.
type DocumentSection struct {
	DayNumber   int            `json:"day_number"`
	Heading     string         `json:"heading"`
	DateLabel   string         `json:"date_label"`
	Date        string         `json:"date"`
	Items       []DocumentItem `json:"items"`
	Placeholder string         `json:"placeholder,omitempty"`
}

// DocumentItem is one activity line.
type DocumentItem struct {
	TimeRange string `json:"time_range"`
	Title     string `json:"title"`
	Location  string `json:"location"`
	Notes     string `json:"notes,omitempty"`
	MapURL    string `json:"map_url,omitempty"`
}

// NewDocument assembles the export content from an already built itinerary.
// Grouping and ordering come from it unchanged, so the document always
// matches the interactive view.
func NewDocument(it Itinerary) Document {
	trip := it.Trip
	days := len(it.Days)

	doc := Document{
		Title: trip.Name,
		Header: DocumentHeader{
			TripName:    trip.Name,
			Destination: trip.Destination,
			DateRange:   trip.StartDate.Format(rangeDateLayout) + " - " + trip.EndDate.Format(rangeDateLayout),
			Duration:    durationLabel(days),
		},
		Sections: make([]DocumentSection, 0, days),
		Footer:   DocumentFooter,
		FileName: FileStem(trip.Name),
	}

	for _, d := range it.Days {
		sec := DocumentSection{
			DayNumber: d.DayNumber,
			Heading:   fmt.Sprintf("Day %d", d.DayNumber),
			DateLabel: d.Date.Format(dayDateLayout),
			Date:      d.Date.Format(isoDateLayout),
			Items:     make([]DocumentItem, 0, len(d.Activities)),
		}
		for _, a := range d.Activities {
			item := DocumentItem{
				TimeRange: a.StartTime + " - " + a.EndTime,
				Title:     a.Title,
				Location:  a.Location,
				Notes:     strings.TrimSpace(a.Notes),
			}
			if lat, lng, ok := a.Coordinates(); ok {
				item.MapURL = MapsURL(lat, lng)
			}
			sec.Items = append(sec.Items, item)
		}
		if len(sec.Items) == 0 {
			sec.Placeholder = EmptyDayPlaceholder
		}
		doc.Sections = append(doc.Sections, sec)
	}
	return doc
}

func durationLabel(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]`)

// FileStem turns a trip name into the base name of a downloaded export,
// e.g. "Paris Adventure" → "paris_adventure_itinerary".
func FileStem(name string) string {
	return nonAlnum.ReplaceAllString(strings.ToLower(name), "_") + "_itinerary"
}

// MapsURL links to a map centred on the given position.
func MapsURL(lat, lng float64) string {
	return fmt.Sprintf("https://www.google.com/maps?q=%s,%s", formatCoord(lat), formatCoord(lng))
}

// DirectionsURL links to directions ending at the given position.
func DirectionsURL(lat, lng float64) string {
	return fmt.Sprintf("https://www.google.com/maps/dir/?api=1&destination=%s,%s", formatCoord(lat), formatCoord(lng))
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
