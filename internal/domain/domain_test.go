package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func TestActivity_Coordinates(t *testing.T) {
	tests := []struct {
		name     string
		lat, lng *float64
		wantOK   bool
	}{
		{"both", ptr(48.8584), ptr(2.2945), true},
		{"latitude only", ptr(48.8584), nil, false},
		{"longitude only", nil, ptr(2.2945), false},
		{"neither", nil, nil, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lat, lng, ok := domain.Activity{Latitude: tc.lat, Longitude: tc.lng}.Coordinates()
			assert.Equal(t, tc.wantOK, ok)
			if ok {
				assert.Equal(t, *tc.lat, lat)
				assert.Equal(t, *tc.lng, lng)
			} else {
				assert.Zero(t, lat)
				assert.Zero(t, lng)
			}
		})
	}
}

func TestSeedError(t *testing.T) {
	cause := errors.New("connection reset")
	tripID := uuid.MustParse("0b5c3c1e-8d7f-4a0b-9e3c-2f1d4a5b6c7d")

	t.Run("trip stage", func(t *testing.T) {
		err := error(&domain.SeedError{Stage: domain.SeedStageTrip, Err: cause})
		assert.Equal(t, "seed trip: connection reset", err.Error())
		assert.ErrorIs(t, err, cause)
	})

	t.Run("activities stage names the trip", func(t *testing.T) {
		err := error(&domain.SeedError{Stage: domain.SeedStageActivities, TripID: tripID, Err: cause})
		assert.Contains(t, err.Error(), tripID.String())
		assert.ErrorIs(t, err, cause)

		var seedErr *domain.SeedError
		require.ErrorAs(t, err, &seedErr)
		assert.Equal(t, tripID, seedErr.TripID)
	})
}

func TestNewPaginationParams(t *testing.T) {
	tests := []struct {
		name        string
		page, limit *int
		want        domain.PaginationParams
		wantOffset  int
	}{
		{"defaults", nil, nil, domain.PaginationParams{Page: 1, Limit: 20}, 0},
		{"explicit", ptr(3), ptr(10), domain.PaginationParams{Page: 3, Limit: 10}, 20},
		{"non-positive falls back", ptr(0), ptr(-5), domain.PaginationParams{Page: 1, Limit: 20}, 0},
		{"limit capped", ptr(2), ptr(500), domain.PaginationParams{Page: 2, Limit: 100}, 100},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := domain.NewPaginationParams(tc.page, tc.limit)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantOffset, got.Offset())
		})
	}
}

func TestTemplate_DayNumbersAndCount(t *testing.T) {
	tpl := domain.Template{Itinerary: map[int][]domain.TemplateActivity{
		3: {{Title: "c"}},
		1: {{Title: "a"}, {Title: "b"}},
		2: {},
	}}

	assert.Equal(t, []int{1, 2, 3}, tpl.DayNumbers())
	assert.Equal(t, 3, tpl.ActivityCount())
	assert.Empty(t, domain.Template{}.DayNumbers())
}

func TestDate_TruncatesToUTCMidnight(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	in := time.Date(2024, 3, 1, 23, 30, 0, 0, loc)

	got := domain.Date(in)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), got)
}
