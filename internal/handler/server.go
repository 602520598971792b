// Package handler implements the HTTP handlers for the trip planner API.
// All handlers are methods on Server. Methods are split into resource files
// (trip.go, activity.go, etc.) but share the same Server struct so they can
// access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/itinerary"
)

// TripServicer defines the trip operations the handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the database or service layer.
type TripServicer interface {
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (domain.Trip, error)
	ListPaged(ctx context.Context, ownerID uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// SeedServicer creates trips.
type SeedServicer interface {
	FromTemplate(ctx context.Context, ownerID uuid.UUID, templateID string, withActivities bool) (domain.SeededTrip, error)
	Custom(ctx context.Context, ownerID uuid.UUID, draft domain.TripDraft) (domain.SeededTrip, error)
}

// ActivityServicer defines the activity operations the handlers depend on.
type ActivityServicer interface {
	Create(ctx context.Context, ownerID uuid.UUID, a domain.Activity) (domain.Activity, error)
	GetByID(ctx context.Context, ownerID, tripID, activityID uuid.UUID) (domain.Activity, error)
	ListByTripID(ctx context.Context, ownerID, tripID uuid.UUID) ([]domain.Activity, error)
	Update(ctx context.Context, ownerID uuid.UUID, a domain.Activity) (domain.Activity, error)
	Delete(ctx context.Context, ownerID, tripID, activityID uuid.UUID) error
}

// ItineraryServicer builds the derived views of a trip.
type ItineraryServicer interface {
	Itinerary(ctx context.Context, ownerID, tripID uuid.UUID) (itinerary.Itinerary, error)
	Document(ctx context.Context, ownerID, tripID uuid.UUID) (itinerary.Document, error)
	MapView(ctx context.Context, ownerID, tripID uuid.UUID, day int) (itinerary.MapView, error)
}

// ExportServicer produces downloadable exports.
type ExportServicer interface {
	Rows(ctx context.Context, ownerID, tripID uuid.UUID) ([]domain.ExportRow, error)
	Image(ctx context.Context, ownerID, tripID uuid.UUID) (itinerary.Document, []byte, error)
}

// PlaceSearcher looks up places by free text.
type PlaceSearcher interface {
	Search(ctx context.Context, query string) ([]domain.Place, error)
}

// Services bundles the dependencies of Server. Tests that exercise one
// resource may leave the other services nil.
type Services struct {
	Trips      TripServicer
	Seeds      SeedServicer
	Activities ActivityServicer
	Itinerary  ItineraryServicer
	Export     ExportServicer
	Places     PlaceSearcher
	Logger     *slog.Logger
}

// Server serves every API endpoint.
type Server struct {
	trips      TripServicer
	seeds      SeedServicer
	activities ActivityServicer
	itinerary  ItineraryServicer
	export     ExportServicer
	places     PlaceSearcher
	log        *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(svc Services) *Server {
	log := svc.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		trips:      svc.Trips,
		seeds:      svc.Seeds,
		activities: svc.Activities,
		itinerary:  svc.Itinerary,
		export:     svc.Export,
		places:     svc.Places,
		log:        log,
	}
}

// Routes returns the API router. requireOwner guards every route that acts
// on a user's data; it must put the owner ID into the request context.
func (s *Server) Routes(requireOwner func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)
	r.Get("/templates", s.ListTemplates)
	r.Get("/templates/{templateId}", s.GetTemplate)

	r.Group(func(r chi.Router) {
		r.Use(requireOwner)

		r.Get("/places", s.SearchPlaces)

		r.Route("/trips", func(r chi.Router) {
			r.Get("/", s.ListTrips)
			r.Post("/", s.CreateTrip)
			r.Post("/from-template", s.CreateTripFromTemplate)

			r.Route("/{tripId}", func(r chi.Router) {
				r.Get("/", s.GetTrip)
				r.Put("/", s.UpdateTrip)
				r.Delete("/", s.DeleteTrip)

				r.Get("/itinerary", s.GetItinerary)
				r.Get("/document", s.GetDocument)
				r.Get("/map", s.GetMap)
				r.Get("/export", s.GetExport)

				r.Route("/activities", func(r chi.Router) {
					r.Get("/", s.ListActivities)
					r.Post("/", s.CreateActivity)
					r.Get("/{activityId}", s.GetActivity)
					r.Put("/{activityId}", s.UpdateActivity)
					r.Delete("/{activityId}", s.DeleteActivity)
				})
			})
		})
	})

	return r
}
