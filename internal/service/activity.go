package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/repo"
)

// ActivityService implements business logic for Activity operations.
// Every call first checks that the parent trip belongs to the caller.
type ActivityService struct {
	trips      repo.TripRepo
	activities repo.ActivityRepo
}

// NewActivityService constructs an ActivityService backed by the provided repos.
func NewActivityService(trips repo.TripRepo, activities repo.ActivityRepo) *ActivityService {
	return &ActivityService{trips: trips, activities: activities}
}

// Create validates the activity, verifies the parent trip, then persists.
// Returns domain.ErrNotFound if the trip does not exist for this owner and
// domain.ErrValidation if the input violates business rules.
func (s *ActivityService) Create(ctx context.Context, ownerID uuid.UUID, activity domain.Activity) (domain.Activity, error) {
	if err := s.checkTrip(ctx, ownerID, activity.TripID); err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	if err := normalizeActivity(&activity); err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	if err := validateActivity(activity); err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	created, err := s.activities.Create(ctx, activity)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	return created, nil
}

// GetByID returns a single activity of an owned trip.
func (s *ActivityService) GetByID(ctx context.Context, ownerID, tripID, activityID uuid.UUID) (domain.Activity, error) {
	if err := s.checkTrip(ctx, ownerID, tripID); err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.GetByID: %w", err)
	}
	a, err := s.activities.GetByID(ctx, tripID, activityID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.GetByID: %w", err)
	}
	return a, nil
}

// ListByTripID returns the activities of an owned trip in store order
// (day_number, start_time, insertion). Always non-nil.
func (s *ActivityService) ListByTripID(ctx context.Context, ownerID, tripID uuid.UUID) ([]domain.Activity, error) {
	if err := s.checkTrip(ctx, ownerID, tripID); err != nil {
		return nil, fmt.Errorf("service.ActivityService.ListByTripID: %w", err)
	}
	acts, err := s.activities.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.ListByTripID: %w", err)
	}
	if acts == nil {
		return []domain.Activity{}, nil
	}
	return acts, nil
}

// Update validates and persists changes to an existing activity.
func (s *ActivityService) Update(ctx context.Context, ownerID uuid.UUID, activity domain.Activity) (domain.Activity, error) {
	if err := s.checkTrip(ctx, ownerID, activity.TripID); err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Update: %w", err)
	}
	if err := normalizeActivity(&activity); err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Update: %w", err)
	}
	if err := validateActivity(activity); err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Update: %w", err)
	}
	updated, err := s.activities.Update(ctx, activity)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes a single activity of an owned trip.
func (s *ActivityService) Delete(ctx context.Context, ownerID, tripID, activityID uuid.UUID) error {
	if err := s.checkTrip(ctx, ownerID, tripID); err != nil {
		return fmt.Errorf("service.ActivityService.Delete: %w", err)
	}
	if err := s.activities.Delete(ctx, tripID, activityID); err != nil {
		return fmt.Errorf("service.ActivityService.Delete: %w", err)
	}
	return nil
}

func (s *ActivityService) checkTrip(ctx context.Context, ownerID, tripID uuid.UUID) error {
	_, err := s.trips.GetByID(ctx, ownerID, tripID)
	return err
}
