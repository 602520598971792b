// Package middleware provides the HTTP middleware of the trip planner API:
// request logging, CORS, body size limits, and bearer-token identity.
package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// preflightMaxAge is how long browsers may cache a preflight answer, in seconds.
const preflightMaxAge = 600

// NewCORSHandler returns a middleware that applies CORS headers based on allowedOrigins.
// Each entry in allowedOrigins must be a full origin (scheme + host, no trailing slash).
// Content-Disposition and X-Total-Count are exposed so the planner can name
// downloaded exports and page through trips.
func NewCORSHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		ExposedHeaders: []string{"Content-Disposition", "X-Total-Count"},
		MaxAge:         preflightMaxAge,
	})
	return c.Handler
}
