package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrNotFound is returned by repo and service functions when the requested
// trip, activity, or template does not exist (or is not owned by the caller).
// Handlers map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing title, end date before start date).
// Handlers map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrUnauthorized is returned when a request carries no valid owner identity.
var ErrUnauthorized = errors.New("unauthorized")

// ErrRender is wrapped by every failure of the document rendering
// collaborator. It never implies that itinerary data was changed.
var ErrRender = errors.New("render failed")

// SeedStage identifies which write of the two-step seeding flow failed.
type SeedStage string

const (
	// SeedStageTrip means the trip insert failed; nothing was persisted.
	SeedStageTrip SeedStage = "trip"
	// SeedStageActivities means the trip exists but its activities could
	// not be written. TripID on the error names the partially seeded trip.
	SeedStageActivities SeedStage = "activities"
)

// SeedError reports a failed seeding operation.
type SeedError struct {
	Stage  SeedStage
	TripID uuid.UUID
	Err    error
}

func (e *SeedError) Error() string {
	if e.Stage == SeedStageActivities {
		return fmt.Sprintf("seed %s for trip %s: %v", e.Stage, e.TripID, e.Err)
	}
	return fmt.Sprintf("seed %s: %v", e.Stage, e.Err)
}

func (e *SeedError) Unwrap() error { return e.Err }
