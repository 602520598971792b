package itinerary

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// AllDays selects every day of the trip in NewMapView.
const AllDays = 0

// MapView is the coordinate-based view of an itinerary: one marker per
// activity with a full position, a suggested walking route through them in
// itinerary order, and the centre of their bounding box.
type MapView struct {
	Day     int
	Markers []Marker
	// Route is nil when fewer than two markers exist.
	Route *geom.LineString
	// Center is nil when there are no markers.
	Center *geom.Point
}

// Marker is a single activity placed on the map.
type Marker struct {
	ActivityID    uuid.UUID
	DayNumber     int
	Title         string
	Location      string
	TimeRange     string
	Point         *geom.Point
	DirectionsURL string
}

// NewMapView collects the positioned activities of one day (or of the whole
// trip when day is AllDays). Activities with only one coordinate are skipped.
func NewMapView(it Itinerary, day int) MapView {
	mv := MapView{Day: day, Markers: []Marker{}}

	var flat []float64
	for _, d := range it.Days {
		if day != AllDays && d.DayNumber != day {
			continue
		}
		for _, a := range d.Activities {
			lat, lng, ok := a.Coordinates()
			if !ok {
				continue
			}
			// GeoJSON axis order is longitude, latitude.
			mv.Markers = append(mv.Markers, Marker{
				ActivityID:    a.ID,
				DayNumber:     d.DayNumber,
				Title:         a.Title,
				Location:      a.Location,
				TimeRange:     a.StartTime + " - " + a.EndTime,
				Point:         geom.NewPointFlat(geom.XY, []float64{lng, lat}),
				DirectionsURL: DirectionsURL(lat, lng),
			})
			flat = append(flat, lng, lat)
		}
	}

	if len(mv.Markers) == 0 {
		return mv
	}
	b := geom.NewMultiPointFlat(geom.XY, flat).Bounds()
	mv.Center = geom.NewPointFlat(geom.XY, []float64{
		(b.Min(0) + b.Max(0)) / 2,
		(b.Min(1) + b.Max(1)) / 2,
	})
	if len(mv.Markers) >= 2 {
		mv.Route = geom.NewLineStringFlat(geom.XY, flat)
	}
	return mv
}

// FeatureCollection converts the view into GeoJSON features: a Point per
// marker followed by the route LineString when present.
func (mv MapView) FeatureCollection() *geojson.FeatureCollection {
	fc := &geojson.FeatureCollection{Features: make([]*geojson.Feature, 0, len(mv.Markers)+1)}
	for i, m := range mv.Markers {
		fc.Features = append(fc.Features, &geojson.Feature{
			ID:       m.ActivityID.String(),
			Geometry: m.Point,
			Properties: map[string]any{
				"kind":           "activity",
				"order":          i + 1,
				"day_number":     m.DayNumber,
				"title":          m.Title,
				"location":       m.Location,
				"time_range":     m.TimeRange,
				"directions_url": m.DirectionsURL,
			},
		})
	}
	if mv.Route != nil {
		fc.Features = append(fc.Features, &geojson.Feature{
			ID:         fmt.Sprintf("route-%d", mv.Day),
			Geometry:   mv.Route,
			Properties: map[string]any{"kind": "route", "travel_mode": "walking"},
		})
	}
	return fc
}

// GeoJSON encodes the view as a GeoJSON FeatureCollection.
func (mv MapView) GeoJSON() ([]byte, error) {
	b, err := json.Marshal(mv.FeatureCollection())
	if err != nil {
		return nil, fmt.Errorf("itinerary.MapView.GeoJSON: %w", err)
	}
	return b, nil
}
