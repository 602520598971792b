package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/itinerary"
	"github.com/pkordes/trip-planner/internal/repo"
)

// ItineraryService builds the derived views of a trip. Nothing is cached:
// every call reads the trip and its activities again and rebuilds.
type ItineraryService struct {
	trips      repo.TripRepo
	activities repo.ActivityRepo
}

// NewItineraryService constructs an ItineraryService backed by the provided repos.
func NewItineraryService(trips repo.TripRepo, activities repo.ActivityRepo) *ItineraryService {
	return &ItineraryService{trips: trips, activities: activities}
}

// Itinerary returns the day-grouped snapshot of an owned trip.
func (s *ItineraryService) Itinerary(ctx context.Context, ownerID, tripID uuid.UUID) (itinerary.Itinerary, error) {
	it, err := loadItinerary(ctx, s.trips, s.activities, ownerID, tripID)
	if err != nil {
		return itinerary.Itinerary{}, fmt.Errorf("service.ItineraryService.Itinerary: %w", err)
	}
	return it, nil
}

// Document returns the export content of an owned trip.
func (s *ItineraryService) Document(ctx context.Context, ownerID, tripID uuid.UUID) (itinerary.Document, error) {
	it, err := loadItinerary(ctx, s.trips, s.activities, ownerID, tripID)
	if err != nil {
		return itinerary.Document{}, fmt.Errorf("service.ItineraryService.Document: %w", err)
	}
	return itinerary.NewDocument(it), nil
}

// MapView returns the map of one day, or of the whole trip when day is
// itinerary.AllDays. A day outside the trip is a validation error.
func (s *ItineraryService) MapView(ctx context.Context, ownerID, tripID uuid.UUID, day int) (itinerary.MapView, error) {
	it, err := loadItinerary(ctx, s.trips, s.activities, ownerID, tripID)
	if err != nil {
		return itinerary.MapView{}, fmt.Errorf("service.ItineraryService.MapView: %w", err)
	}
	if day < itinerary.AllDays || day > len(it.Days) {
		return itinerary.MapView{}, fmt.Errorf("service.ItineraryService.MapView: %w: day must be between 1 and %d", domain.ErrValidation, len(it.Days))
	}
	return itinerary.NewMapView(it, day), nil
}

// loadItinerary fetches an owned trip with its activities and builds the
// itinerary. Shared by ItineraryService and ExportService.
func loadItinerary(ctx context.Context, trips repo.TripRepo, activities repo.ActivityRepo, ownerID, tripID uuid.UUID) (itinerary.Itinerary, error) {
	trip, err := trips.GetByID(ctx, ownerID, tripID)
	if err != nil {
		return itinerary.Itinerary{}, err
	}
	acts, err := activities.ListByTripID(ctx, tripID)
	if err != nil {
		return itinerary.Itinerary{}, err
	}
	return itinerary.Build(trip, acts), nil
}
