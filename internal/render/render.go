// Package render is the client of the document rendering service, which
// turns an assembled itinerary document into a PNG image.
package render

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/itinerary"
)

// pngMagic is the signature every PNG file starts with.
var pngMagic = []byte("\x89PNG\r\n\x1a\n")

// Client posts documents to the rendering service.
type Client struct {
	client *resty.Client
}

// New creates a Client for the rendering service at baseURL.
func New(baseURL string) *Client {
	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "image/png").
		SetTimeout(30 * time.Second)

	return &Client{client: c}
}

// Render sends doc to POST /render and returns the PNG bytes.
// Every failure wraps domain.ErrRender.
func (c *Client) Render(ctx context.Context, doc itinerary.Document) ([]byte, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(&doc).
		Post("/render")
	if err != nil {
		return nil, fmt.Errorf("render.Render: %w: %w", domain.ErrRender, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("render.Render: %w: status %d: %s", domain.ErrRender, resp.StatusCode(), resp.String())
	}
	body := resp.Body()
	if !bytes.HasPrefix(body, pngMagic) {
		return nil, fmt.Errorf("render.Render: %w: response is not a PNG image", domain.ErrRender)
	}
	return body, nil
}
