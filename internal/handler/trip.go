package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
)

// ListTrips handles GET /trips.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
// The total count is also sent in the X-Total-Count header.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := owner(w, r)
	if !ok {
		return
	}
	page, ok := queryInt(w, r, "page")
	if !ok {
		return
	}
	limit, ok := queryInt(w, r, "limit")
	if !ok {
		return
	}

	params := domain.NewPaginationParams(page, limit)
	trips, total, err := s.trips.ListPaged(r.Context(), ownerID, params)
	if err != nil {
		s.respondError(w, r, err, "trip not found")
		return
	}

	data := make([]Trip, len(trips))
	for i, t := range trips {
		data[i] = tripToResponse(t)
	}
	w.Header().Set("X-Total-Count", strconv.FormatInt(total, 10))
	writeJSON(w, http.StatusOK, TripList{
		Data: data,
		Pagination: Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(total),
		},
	})
}

// CreateTrip handles POST /trips: a custom trip with defaults for
// whatever the body leaves blank. An empty body is allowed.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := owner(w, r)
	if !ok {
		return
	}
	var body CreateTripRequest
	if !decodeOptionalBody(w, r, &body) {
		return
	}

	draft := domain.TripDraft{
		Name:        body.Name,
		Destination: body.Destination,
		Preferences: body.Preferences,
	}
	if body.StartDate != nil {
		d := body.StartDate.Time
		draft.StartDate = &d
	}
	if body.EndDate != nil {
		d := body.EndDate.Time
		draft.EndDate = &d
	}

	seeded, err := s.seeds.Custom(r.Context(), ownerID, draft)
	if err != nil {
		s.respondError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusCreated, seededToResponse(seeded))
}

// CreateTripFromTemplate handles POST /trips/from-template.
func (s *Server) CreateTripFromTemplate(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := owner(w, r)
	if !ok {
		return
	}
	var body FromTemplateRequest
	if !decodeBody(w, r, &body) {
		return
	}
	if body.TemplateID == "" {
		writeError(w, http.StatusUnprocessableEntity, codeValidation, "template_id is required")
		return
	}
	withActivities := body.WithActivities == nil || *body.WithActivities

	seeded, err := s.seeds.FromTemplate(r.Context(), ownerID, body.TemplateID, withActivities)
	if err != nil {
		s.respondError(w, r, err, "template not found")
		return
	}
	writeJSON(w, http.StatusCreated, seededToResponse(seeded))
}

// GetTrip handles GET /trips/{tripId}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	ownerID, tripID, ok := ownerAndTrip(w, r)
	if !ok {
		return
	}
	trip, err := s.trips.GetByID(r.Context(), ownerID, tripID)
	if err != nil {
		s.respondError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// UpdateTrip handles PUT /trips/{tripId}.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	ownerID, tripID, ok := ownerAndTrip(w, r)
	if !ok {
		return
	}
	var body UpdateTripRequest
	if !decodeBody(w, r, &body) {
		return
	}

	updated, err := s.trips.Update(r.Context(), domain.Trip{
		ID:          tripID,
		OwnerID:     ownerID,
		Name:        body.Name,
		Destination: body.Destination,
		StartDate:   body.StartDate.Time,
		EndDate:     body.EndDate.Time,
		Preferences: body.Preferences,
	})
	if err != nil {
		s.respondError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, tripToResponse(updated))
}

// DeleteTrip handles DELETE /trips/{tripId}. The trip's activities are
// deleted with it.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	ownerID, tripID, ok := ownerAndTrip(w, r)
	if !ok {
		return
	}
	if err := s.trips.Delete(r.Context(), ownerID, tripID); err != nil {
		s.respondError(w, r, err, "trip not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ownerAndTrip reads the caller and the {tripId} path parameter.
func ownerAndTrip(w http.ResponseWriter, r *http.Request) (ownerID, tripID uuid.UUID, ok bool) {
	if ownerID, ok = owner(w, r); !ok {
		return
	}
	tripID, ok = pathUUID(w, r, "tripId")
	return
}

// queryInt reads an optional integer query parameter. A malformed value is
// answered with 400.
func queryInt(w http.ResponseWriter, r *http.Request, name string) (*int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, name+" must be an integer")
		return nil, false
	}
	return &v, true
}
