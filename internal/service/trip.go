// Package service contains the business logic for the trip planner.
// Services validate inputs, enforce ownership, and orchestrate repo calls and
// the pure itinerary functions. No SQL lives here — services depend on repo
// interfaces, not implementations.
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/repo"
)

// TripService implements business logic for reading, editing, and deleting
// trips. Trips are created through SeedService.
type TripService struct {
	trips      repo.TripRepo
	activities repo.ActivityRepo
}

// NewTripService constructs a TripService. The activity repo is needed
// because deleting a trip deletes its activities first.
func NewTripService(trips repo.TripRepo, activities repo.ActivityRepo) *TripService {
	return &TripService{trips: trips, activities: activities}
}

// GetByID returns a single trip owned by ownerID.
// Returns domain.ErrNotFound if it does not exist or belongs to someone else.
func (s *TripService) GetByID(ctx context.Context, ownerID, id uuid.UUID) (domain.Trip, error) {
	trip, err := s.trips.GetByID(ctx, ownerID, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return trip, nil
}

// List returns all trips of ownerID, newest first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) List(ctx context.Context, ownerID uuid.UUID) ([]domain.Trip, error) {
	trips, err := s.trips.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	if trips == nil {
		return []domain.Trip{}, nil
	}
	return trips, nil
}

// ListPaged returns one page of the owner's trips and the total count.
func (s *TripService) ListPaged(ctx context.Context, ownerID uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	trips, total, err := s.trips.ListPaged(ctx, ownerID, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.TripService.ListPaged: %w", err)
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	return trips, total, nil
}

// Update validates and persists changes to an existing trip.
// trip.OwnerID must be the caller; someone else's trip reads as not found.
func (s *TripService) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := normalizeTrip(&trip); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	updated, err := s.trips.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes a trip and all of its activities. Activities go first so
// no activity ever references a missing trip. If the second step fails the
// trip survives without activities and the error is returned.
func (s *TripService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if _, err := s.trips.GetByID(ctx, ownerID, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	if _, err := s.activities.DeleteByTripID(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: activities: %w", err)
	}
	if err := s.trips.Delete(ctx, ownerID, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}
