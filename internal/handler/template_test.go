package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/handler"
)

func TestListTemplates(t *testing.T) {
	rec := do(t, newRouter(handler.Services{}), http.MethodGet, "/templates", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeJSON[[]handler.TemplateSummary](t, rec)
	require.Len(t, got, 3)
	assert.Equal(t, "paris-france", got[0].ID)
	assert.Equal(t, 7, got[0].Days)
	assert.Equal(t, 14, got[0].ActivityCount)
}

func TestGetTemplate(t *testing.T) {
	rec := do(t, newRouter(handler.Services{}), http.MethodGet, "/templates/paris-france", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeJSON[handler.Template](t, rec)
	assert.Equal(t, "Paris", got.Name)
	require.Len(t, got.Itinerary, 7)
	assert.Equal(t, 1, got.Itinerary[0].DayNumber)
	assert.Equal(t, "Arrive & Check-in", got.Itinerary[0].Activities[0].Title)
	assert.Nil(t, got.Itinerary[0].Activities[0].Latitude)
	require.NotNil(t, got.Itinerary[0].Activities[1].Latitude)
}

func TestGetTemplate_404(t *testing.T) {
	rec := do(t, newRouter(handler.Services{}), http.MethodGet, "/templates/atlantis", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", errorCode(t, rec))
}
