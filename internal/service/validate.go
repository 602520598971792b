package service

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/pkordes/trip-planner/internal/domain"
)

// textPolicy detects markup in user-supplied free text. The planner stores
// plain text exactly as typed; the rendering collaborator draws it verbatim.
var textPolicy = bluemonday.StrictPolicy()

// plainText trims s and rejects it with domain.ErrValidation when it carries
// markup. Text is never shortened: a "<" the sanitizer would read as the
// start of a tag makes the whole value invalid. bluemonday escapes entities
// on the way out, so both sides are compared unescaped.
func plainText(field, s string) (string, error) {
	s = strings.TrimSpace(s)
	if html.UnescapeString(textPolicy.Sanitize(s)) != html.UnescapeString(s) {
		return "", fmt.Errorf("%w: %s must not contain markup", domain.ErrValidation, field)
	}
	return s, nil
}

// plainTags checks each tag and drops the ones left blank.
// The result is never nil.
func plainTags(field string, tags []string) ([]string, error) {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		c, err := plainText(field, t)
		if err != nil {
			return nil, err
		}
		if c != "" {
			out = append(out, c)
		}
	}
	return out, nil
}

var clock = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// normalizeTrip trims the free-text fields of a trip in place and
// truncates its dates to calendar days.
func normalizeTrip(t *domain.Trip) error {
	var err error
	if t.Name, err = plainText("name", t.Name); err != nil {
		return err
	}
	if t.Destination, err = plainText("destination", t.Destination); err != nil {
		return err
	}
	if t.Preferences, err = plainTags("preferences", t.Preferences); err != nil {
		return err
	}
	t.StartDate = domain.Date(t.StartDate)
	t.EndDate = domain.Date(t.EndDate)
	return nil
}

// validateTrip enforces business rules common to every trip write.
//   - Name must be non-empty.
//   - StartDate must be set.
//   - EndDate must not be before StartDate.
func validateTrip(t domain.Trip) error {
	if t.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if t.StartDate.IsZero() {
		return fmt.Errorf("%w: start_date is required", domain.ErrValidation)
	}
	if t.EndDate.Before(t.StartDate) {
		return fmt.Errorf("%w: end_date must not be before start_date", domain.ErrValidation)
	}
	return nil
}

// normalizeActivity trims the free-text fields of an activity in place.
func normalizeActivity(a *domain.Activity) error {
	var err error
	if a.Title, err = plainText("title", a.Title); err != nil {
		return err
	}
	if a.Location, err = plainText("location", a.Location); err != nil {
		return err
	}
	if a.Notes, err = plainText("notes", a.Notes); err != nil {
		return err
	}
	a.PlaceID = strings.TrimSpace(a.PlaceID)
	a.StartTime = strings.TrimSpace(a.StartTime)
	a.EndTime = strings.TrimSpace(a.EndTime)
	return nil
}

// validateActivity enforces business rules common to Create and Update.
// A start time after the end time is accepted, as is a day number beyond
// the end of the trip; the itinerary tolerates both.
func validateActivity(a domain.Activity) error {
	switch {
	case a.DayNumber < 1:
		return fmt.Errorf("%w: day_number must be at least 1", domain.ErrValidation)
	case a.Title == "":
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	case a.Location == "":
		return fmt.Errorf("%w: location is required", domain.ErrValidation)
	case !clock.MatchString(a.StartTime):
		return fmt.Errorf("%w: start_time must be HH:MM", domain.ErrValidation)
	case !clock.MatchString(a.EndTime):
		return fmt.Errorf("%w: end_time must be HH:MM", domain.ErrValidation)
	case a.Latitude != nil && (*a.Latitude < -90 || *a.Latitude > 90):
		return fmt.Errorf("%w: latitude must be between -90 and 90", domain.ErrValidation)
	case a.Longitude != nil && (*a.Longitude < -180 || *a.Longitude > 180):
		return fmt.Errorf("%w: longitude must be between -180 and 180", domain.ErrValidation)
	}
	return nil
}
