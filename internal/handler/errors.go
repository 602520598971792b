package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/middleware"
)

// Error codes used in ErrorDetail.Code.
const (
	codeNotFound        = "not_found"
	codeValidation      = "validation_error"
	codeBadRequest      = "bad_request"
	codeUnauthorized    = "unauthorized"
	codeTooLarge        = "payload_too_large"
	codeSeedFailed      = "seed_failed"
	codeRenderFailed    = "render_failed"
	codeUpstreamFailure = "upstream_error"
	codeInternal        = "internal_error"
)

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// respondError maps a service error onto the API's error envelope.
// notFound is the message used for domain.ErrNotFound, because the handler
// is the layer that knows what was being looked up.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	var seedErr *domain.SeedError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, notFound)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusUnprocessableEntity, codeValidation, unwrapMessage(err))
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, codeUnauthorized, "authentication required")
	case errors.As(err, &seedErr):
		s.log.ErrorContext(r.Context(), "seeding failed",
			"stage", seedErr.Stage, "trip_id", seedErr.TripID, "error", err)
		detail := ErrorDetail{Code: codeSeedFailed, Message: "trip could not be created"}
		if seedErr.Stage == domain.SeedStageActivities {
			id := seedErr.TripID
			detail.Message = "trip was created but its activities could not be saved"
			detail.TripID = &id
		}
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: detail})
	case errors.Is(err, domain.ErrRender):
		s.log.WarnContext(r.Context(), "rendering failed", "error", err)
		writeError(w, http.StatusBadGateway, codeRenderFailed, "the itinerary image could not be rendered")
	default:
		s.log.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, codeInternal, "internal server error")
	}
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "service.TripService.Update: validation error: name is required" → "name is required"
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	const marker = "validation error: "
	if i := strings.LastIndex(msg, marker); i >= 0 && i+len(marker) < len(msg) {
		return msg[i+len(marker):]
	}
	return msg
}

// decodeBody decodes the JSON request body into v and answers the error
// itself when that fails. Returns false if the handler should stop.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	return decode(w, r, v, false)
}

// decodeOptionalBody is decodeBody for endpoints where an empty body means
// "all defaults".
func decodeOptionalBody(w http.ResponseWriter, r *http.Request, v any) bool {
	return decode(w, r, v, true)
}

func decode(w http.ResponseWriter, r *http.Request, v any, optional bool) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if optional && errors.Is(err, io.EOF) {
			return true
		}
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, codeTooLarge, "request body too large")
			return false
		}
		writeError(w, http.StatusUnprocessableEntity, codeValidation, "request body must be valid JSON")
		return false
	}
	return true
}

// owner returns the authenticated owner, answering 401 when there is none.
func owner(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := middleware.OwnerFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, codeUnauthorized, "authentication required")
	}
	return id, ok
}

// pathUUID parses a UUID path parameter, answering 400 when it is malformed.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
