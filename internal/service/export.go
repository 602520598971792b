package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/itinerary"
	"github.com/pkordes/trip-planner/internal/repo"
)

// Renderer turns an assembled document into image bytes.
// render.Client is the production implementation.
type Renderer interface {
	Render(ctx context.Context, doc itinerary.Document) ([]byte, error)
}

// ExportService produces the exportable forms of a trip's itinerary.
type ExportService struct {
	trips      repo.TripRepo
	activities repo.ActivityRepo
	renderer   Renderer
}

// NewExportService constructs an ExportService. renderer may be nil, in
// which case Image always fails with domain.ErrRender.
func NewExportService(trips repo.TripRepo, activities repo.ActivityRepo, renderer Renderer) *ExportService {
	return &ExportService{trips: trips, activities: activities, renderer: renderer}
}

// Rows returns the flat export of an owned trip: one ExportRow per activity,
// and one row with empty activity fields for each day without activities.
func (s *ExportService) Rows(ctx context.Context, ownerID, tripID uuid.UUID) ([]domain.ExportRow, error) {
	it, err := loadItinerary(ctx, s.trips, s.activities, ownerID, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Rows: %w", err)
	}
	return itinerary.ExportRows(it), nil
}

// Image renders the itinerary of an owned trip. The document is returned
// alongside the bytes so callers can name the download after it.
// Rendering failures wrap domain.ErrRender; stored data is never touched.
func (s *ExportService) Image(ctx context.Context, ownerID, tripID uuid.UUID) (itinerary.Document, []byte, error) {
	it, err := loadItinerary(ctx, s.trips, s.activities, ownerID, tripID)
	if err != nil {
		return itinerary.Document{}, nil, fmt.Errorf("service.ExportService.Image: %w", err)
	}
	doc := itinerary.NewDocument(it)

	if s.renderer == nil {
		return itinerary.Document{}, nil, fmt.Errorf("service.ExportService.Image: %w: no renderer configured", domain.ErrRender)
	}
	img, err := s.renderer.Render(ctx, doc)
	if err != nil {
		if !errors.Is(err, domain.ErrRender) {
			err = fmt.Errorf("%w: %w", domain.ErrRender, err)
		}
		return itinerary.Document{}, nil, fmt.Errorf("service.ExportService.Image: %w", err)
	}
	return doc, img, nil
}
