package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/catalog"
	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/repo"
)

// Defaults applied by SeedService.
const (
	DefaultTripName    = "My Custom Trip"
	DefaultDestination = "Custom Destination"
)

// templatePreferences are attached to every trip seeded from a template.
var templatePreferences = []string{"sightseeing", "culture", "food"}

// SeedService creates new trips, either from a catalog template or from
// user-supplied fields. Seeding is two sequential writes (trip, then its
// activities) without a surrounding transaction.
type SeedService struct {
	trips      repo.TripRepo
	activities repo.ActivityRepo
	now        func() time.Time
}

// NewSeedService constructs a SeedService. now supplies "today"; nil means
// time.Now.
func NewSeedService(trips repo.TripRepo, activities repo.ActivityRepo, now func() time.Time) *SeedService {
	if now == nil {
		now = time.Now
	}
	return &SeedService{trips: trips, activities: activities, now: now}
}

// FromTemplate creates a trip named after the template, starting today and
// spanning seven days. When withActivities is true every template activity
// is copied onto the new trip.
//
// Errors:
//   - domain.ErrNotFound if templateID is unknown (nothing is written).
//   - *domain.SeedError with Stage SeedStageTrip if the trip insert fails.
//   - *domain.SeedError with Stage SeedStageActivities and the new trip's ID
//     if the activity insert fails. The trip is left in place.
func (s *SeedService) FromTemplate(ctx context.Context, ownerID uuid.UUID, templateID string, withActivities bool) (domain.SeededTrip, error) {
	tpl, err := catalog.Get(templateID)
	if err != nil {
		return domain.SeededTrip{}, fmt.Errorf("service.SeedService.FromTemplate: %w", err)
	}

	start := domain.Date(s.now())
	trip := domain.Trip{
		OwnerID:     ownerID,
		Name:        tpl.Name + " Adventure",
		Destination: tpl.Name + ", " + tpl.Country,
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, domain.DefaultTripSpan),
		Preferences: append([]string(nil), templatePreferences...),
	}

	var build func(tripID uuid.UUID) []domain.Activity
	if withActivities {
		build = func(tripID uuid.UUID) []domain.Activity { return ExpandTemplate(tpl, tripID) }
	}
	seeded, err := s.seed(ctx, trip, build)
	if err != nil {
		return domain.SeededTrip{}, fmt.Errorf("service.SeedService.FromTemplate: %w", err)
	}
	return seeded, nil
}

// Custom creates an empty trip from user input, filling in defaults for
// whatever was left blank. Validation runs after the defaults are applied.
func (s *SeedService) Custom(ctx context.Context, ownerID uuid.UUID, draft domain.TripDraft) (domain.SeededTrip, error) {
	trip := domain.Trip{
		OwnerID:     ownerID,
		Name:        draft.Name,
		Destination: draft.Destination,
		Preferences: draft.Preferences,
	}
	if draft.StartDate != nil {
		trip.StartDate = *draft.StartDate
	} else {
		trip.StartDate = s.now()
	}
	if draft.EndDate != nil {
		trip.EndDate = *draft.EndDate
	} else {
		trip.EndDate = domain.Date(trip.StartDate).AddDate(0, 0, domain.DefaultTripSpan)
	}
	if err := normalizeTrip(&trip); err != nil {
		return domain.SeededTrip{}, fmt.Errorf("service.SeedService.Custom: %w", err)
	}
	if trip.Name == "" {
		trip.Name = DefaultTripName
	}
	if trip.Destination == "" {
		trip.Destination = DefaultDestination
	}

	if err := validateTrip(trip); err != nil {
		return domain.SeededTrip{}, fmt.Errorf("service.SeedService.Custom: %w", err)
	}
	seeded, err := s.seed(ctx, trip, nil)
	if err != nil {
		return domain.SeededTrip{}, fmt.Errorf("service.SeedService.Custom: %w", err)
	}
	return seeded, nil
}

// seed writes the trip, then the activities build returns for it.
// The activity write only starts once the trip insert has returned its ID.
func (s *SeedService) seed(ctx context.Context, trip domain.Trip, build func(uuid.UUID) []domain.Activity) (domain.SeededTrip, error) {
	created, err := s.trips.Create(ctx, trip)
	if err != nil {
		return domain.SeededTrip{}, &domain.SeedError{Stage: domain.SeedStageTrip, Err: err}
	}

	out := domain.SeededTrip{Trip: created, Activities: []domain.Activity{}}
	if build == nil {
		return out, nil
	}
	acts := build(created.ID)
	if len(acts) == 0 {
		return out, nil
	}
	stored, err := s.activities.CreateBatch(ctx, acts)
	if err != nil {
		return domain.SeededTrip{}, &domain.SeedError{Stage: domain.SeedStageActivities, TripID: created.ID, Err: err}
	}
	out.Activities = stored
	return out, nil
}

// ExpandTemplate turns a template into activities for tripID: one per
// template activity, days ascending, entries of a day in template order.
// The day key is copied verbatim even if it exceeds the trip's length.
// Coordinates are copied only when both are present.
func ExpandTemplate(tpl domain.Template, tripID uuid.UUID) []domain.Activity {
	out := make([]domain.Activity, 0, tpl.ActivityCount())
	for _, day := range tpl.DayNumbers() {
		for _, ta := range tpl.Itinerary[day] {
			a := domain.Activity{
				TripID:    tripID,
				DayNumber: day,
				Title:     ta.Title,
				Location:  ta.Location,
				StartTime: ta.StartTime,
				EndTime:   ta.EndTime,
				Notes:     ta.Notes,
			}
			if ta.Latitude != nil && ta.Longitude != nil {
				lat, lng := *ta.Latitude, *ta.Longitude
				a.Latitude, a.Longitude = &lat, &lng
			}
			out = append(out, a)
		}
	}
	return out
}
