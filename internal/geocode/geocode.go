// Package geocode is the place-search client used by the planner's map.
// It speaks the Nominatim search API (OpenStreetMap or a compatible
// self-hosted instance).
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/pkordes/trip-planner/internal/domain"
)

// DefaultLimit caps the number of places returned by Search.
const DefaultLimit = 5

// userAgent identifies this service; the public Nominatim instance rejects
// anonymous clients.
const userAgent = "trip-planner/1.0"

// Client searches places by free text.
type Client struct {
	client *resty.Client
	limit  int
}

// New creates a Client for the Nominatim instance at baseURL.
func New(baseURL string) *Client {
	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent).
		SetTimeout(10 * time.Second)

	return &Client{client: c, limit: DefaultLimit}
}

// searchResult is one element of the Nominatim JSON response.
// Coordinates arrive as decimal strings.
type searchResult struct {
	PlaceID     json.Number `json:"place_id"`
	DisplayName string      `json:"display_name"`
	Lat         string      `json:"lat"`
	Lon         string      `json:"lon"`
}

// Search returns the places matching query, best match first.
// An empty query is a validation error; a non-2xx answer is an error.
func (c *Client) Search(ctx context.Context, query string) ([]domain.Place, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("geocode.Search: %w: query is required", domain.ErrValidation)
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":      query,
			"format": "json",
			"limit":  strconv.Itoa(c.limit),
		}).
		Get("/search")
	if err != nil {
		return nil, fmt.Errorf("geocode.Search: request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("geocode.Search: status %d: %s", resp.StatusCode(), resp.String())
	}

	var results []searchResult
	if err := json.Unmarshal(resp.Body(), &results); err != nil {
		return nil, fmt.Errorf("geocode.Search: decode response: %w", err)
	}

	places := make([]domain.Place, 0, len(results))
	for _, r := range results {
		lat, errLat := strconv.ParseFloat(r.Lat, 64)
		lng, errLng := strconv.ParseFloat(r.Lon, 64)
		if errLat != nil || errLng != nil {
			continue
		}
		places = append(places, domain.Place{
			Name:      r.DisplayName,
			Latitude:  lat,
			Longitude: lng,
			PlaceID:   r.PlaceID.String(),
		})
	}
	return places, nil
}
