package handler

import (
	"net/http"
	"strconv"

	"github.com/pkordes/trip-planner/internal/itinerary"
)

// GetItinerary handles GET /trips/{tripId}/itinerary: the trip with its
// activities grouped by day, every day of the trip present.
func (s *Server) GetItinerary(w http.ResponseWriter, r *http.Request) {
	ownerID, tripID, ok := ownerAndTrip(w, r)
	if !ok {
		return
	}
	it, err := s.itinerary.Itinerary(r.Context(), ownerID, tripID)
	if err != nil {
		s.respondError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, itineraryToResponse(it))
}

// GetDocument handles GET /trips/{tripId}/document: the assembled export
// content, ready for printing or the rendering service.
func (s *Server) GetDocument(w http.ResponseWriter, r *http.Request) {
	ownerID, tripID, ok := ownerAndTrip(w, r)
	if !ok {
		return
	}
	doc, err := s.itinerary.Document(r.Context(), ownerID, tripID)
	if err != nil {
		s.respondError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// GetMap handles GET /trips/{tripId}/map?day=N and answers a GeoJSON
// FeatureCollection. Without ?day the whole trip is shown.
func (s *Server) GetMap(w http.ResponseWriter, r *http.Request) {
	ownerID, tripID, ok := ownerAndTrip(w, r)
	if !ok {
		return
	}
	day := itinerary.AllDays
	if raw := r.URL.Query().Get("day"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeBadRequest, "day must be an integer")
			return
		}
		day = n
	}

	mv, err := s.itinerary.MapView(r.Context(), ownerID, tripID, day)
	if err != nil {
		s.respondError(w, r, err, "trip not found")
		return
	}
	body, err := mv.GeoJSON()
	if err != nil {
		s.respondError(w, r, err, "trip not found")
		return
	}
	w.Header().Set("Content-Type", "application/geo+json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
