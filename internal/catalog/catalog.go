// Package catalog holds the prebuilt destination templates used to seed new
// trips. The data is defined once at package initialisation and never
// mutated; every accessor hands out deep copies.
package catalog

import (
	"fmt"
	"maps"
	"slices"

	"github.com/pkordes/trip-planner/internal/domain"
)

// List returns every template in catalog definition order.
func List() []domain.Template {
	out := make([]domain.Template, len(templates))
	for i, t := range templates {
		out[i] = clone(t)
	}
	return out
}

// Get returns the template with the given slug.
// Returns domain.ErrNotFound when the slug is unknown.
func Get(id string) (domain.Template, error) {
	i, ok := index[id]
	if !ok {
		return domain.Template{}, fmt.Errorf("catalog.Get %q: %w", id, domain.ErrNotFound)
	}
	return clone(templates[i]), nil
}

var index = func() map[string]int {
	m := make(map[string]int, len(templates))
	for i, t := range templates {
		m[t.ID] = i
	}
	return m
}()

func clone(t domain.Template) domain.Template {
	t.Itinerary = maps.Clone(t.Itinerary)
	for d, acts := range t.Itinerary {
		acts = slices.Clone(acts)
		for i := range acts {
			if acts[i].Latitude != nil {
				lat := *acts[i].Latitude
				acts[i].Latitude = &lat
			}
			if acts[i].Longitude != nil {
				lng := *acts[i].Longitude
				acts[i].Longitude = &lng
			}
		}
		t.Itinerary[d] = acts
	}
	return t
}

// at builds a template activity with a position.
func at(title, location, start, end, notes string, lat, lng float64) domain.TemplateActivity {
	return domain.TemplateActivity{
		Title: title, Location: location, StartTime: start, EndTime: end, Notes: notes,
		Latitude: &lat, Longitude: &lng,
	}
}

// plain builds a template activity without a position.
func plain(title, location, start, end, notes string) domain.TemplateActivity {
	return domain.TemplateActivity{
		Title: title, Location: location, StartTime: start, EndTime: end, Notes: notes,
	}
}
