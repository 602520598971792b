package handler

import (
	"errors"
	"net/http"

	"github.com/pkordes/trip-planner/internal/domain"
)

// SearchPlaces handles GET /places?q=. It proxies the mapping collaborator
// so the planner can attach coordinates to an activity.
func (s *Server) SearchPlaces(w http.ResponseWriter, r *http.Request) {
	if _, ok := owner(w, r); !ok {
		return
	}
	places, err := s.places.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			s.respondError(w, r, err, "")
			return
		}
		s.log.WarnContext(r.Context(), "place search failed", "error", err)
		writeError(w, http.StatusBadGateway, codeUpstreamFailure, "place search is unavailable")
		return
	}

	out := make([]Place, len(places))
	for i, p := range places {
		out[i] = Place(p)
	}
	writeJSON(w, http.StatusOK, out)
}
