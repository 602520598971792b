package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
)

// ListActivities handles GET /trips/{tripId}/activities.
// Activities come in store order: day, start time, then creation order.
func (s *Server) ListActivities(w http.ResponseWriter, r *http.Request) {
	ownerID, tripID, ok := ownerAndTrip(w, r)
	if !ok {
		return
	}
	acts, err := s.activities.ListByTripID(r.Context(), ownerID, tripID)
	if err != nil {
		s.respondError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, activitiesToResponse(acts))
}

// CreateActivity handles POST /trips/{tripId}/activities.
func (s *Server) CreateActivity(w http.ResponseWriter, r *http.Request) {
	ownerID, tripID, ok := ownerAndTrip(w, r)
	if !ok {
		return
	}
	var body ActivityRequest
	if !decodeBody(w, r, &body) {
		return
	}

	created, err := s.activities.Create(r.Context(), ownerID, requestToActivity(tripID, uuid.Nil, body))
	if err != nil {
		s.respondError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusCreated, activityToResponse(created))
}

// GetActivity handles GET /trips/{tripId}/activities/{activityId}.
func (s *Server) GetActivity(w http.ResponseWriter, r *http.Request) {
	ownerID, tripID, activityID, ok := ownerTripActivity(w, r)
	if !ok {
		return
	}
	a, err := s.activities.GetByID(r.Context(), ownerID, tripID, activityID)
	if err != nil {
		s.respondError(w, r, err, "activity not found")
		return
	}
	writeJSON(w, http.StatusOK, activityToResponse(a))
}

// UpdateActivity handles PUT /trips/{tripId}/activities/{activityId}.
func (s *Server) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	ownerID, tripID, activityID, ok := ownerTripActivity(w, r)
	if !ok {
		return
	}
	var body ActivityRequest
	if !decodeBody(w, r, &body) {
		return
	}

	updated, err := s.activities.Update(r.Context(), ownerID, requestToActivity(tripID, activityID, body))
	if err != nil {
		s.respondError(w, r, err, "activity not found")
		return
	}
	writeJSON(w, http.StatusOK, activityToResponse(updated))
}

// DeleteActivity handles DELETE /trips/{tripId}/activities/{activityId}.
func (s *Server) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	ownerID, tripID, activityID, ok := ownerTripActivity(w, r)
	if !ok {
		return
	}
	if err := s.activities.Delete(r.Context(), ownerID, tripID, activityID); err != nil {
		s.respondError(w, r, err, "activity not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func ownerTripActivity(w http.ResponseWriter, r *http.Request) (ownerID, tripID, activityID uuid.UUID, ok bool) {
	if ownerID, tripID, ok = ownerAndTrip(w, r); !ok {
		return
	}
	activityID, ok = pathUUID(w, r, "activityId")
	return
}

// requestToActivity builds a domain.Activity from the body, taking the IDs
// from the path.
func requestToActivity(tripID, activityID uuid.UUID, body ActivityRequest) domain.Activity {
	return domain.Activity{
		ID:        activityID,
		TripID:    tripID,
		DayNumber: body.DayNumber,
		Title:     body.Title,
		Location:  body.Location,
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
		Notes:     body.Notes,
		Latitude:  body.Latitude,
		Longitude: body.Longitude,
		PlaceID:   body.PlaceID,
	}
}
