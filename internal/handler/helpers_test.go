package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/handler"
	"github.com/pkordes/trip-planner/internal/itinerary"
	"github.com/pkordes/trip-planner/internal/middleware"
)

// ---- mocks -----------------------------------------------------------------
// Each mock is a hand-written test double with one function field per
// method. Set only the fields your test needs.

type mockTripServicer struct {
	getByID   func(ctx context.Context, ownerID, id uuid.UUID) (domain.Trip, error)
	listPaged func(ctx context.Context, ownerID uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error)
	update    func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete    func(ctx context.Context, ownerID, id uuid.UUID) error
}

func (m *mockTripServicer) GetByID(ctx context.Context, ownerID, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, ownerID, id)
}
func (m *mockTripServicer) ListPaged(ctx context.Context, ownerID uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	return m.listPaged(ctx, ownerID, p)
}
func (m *mockTripServicer) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}
func (m *mockTripServicer) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return m.delete(ctx, ownerID, id)
}

type mockSeedServicer struct {
	fromTemplate func(ctx context.Context, ownerID uuid.UUID, templateID string, withActivities bool) (domain.SeededTrip, error)
	custom       func(ctx context.Context, ownerID uuid.UUID, draft domain.TripDraft) (domain.SeededTrip, error)
}

func (m *mockSeedServicer) FromTemplate(ctx context.Context, ownerID uuid.UUID, templateID string, withActivities bool) (domain.SeededTrip, error) {
	return m.fromTemplate(ctx, ownerID, templateID, withActivities)
}
func (m *mockSeedServicer) Custom(ctx context.Context, ownerID uuid.UUID, draft domain.TripDraft) (domain.SeededTrip, error) {
	return m.custom(ctx, ownerID, draft)
}

type mockActivityServicer struct {
	create       func(ctx context.Context, ownerID uuid.UUID, a domain.Activity) (domain.Activity, error)
	getByID      func(ctx context.Context, ownerID, tripID, activityID uuid.UUID) (domain.Activity, error)
	listByTripID func(ctx context.Context, ownerID, tripID uuid.UUID) ([]domain.Activity, error)
	update       func(ctx context.Context, ownerID uuid.UUID, a domain.Activity) (domain.Activity, error)
	delete       func(ctx context.Context, ownerID, tripID, activityID uuid.UUID) error
}

func (m *mockActivityServicer) Create(ctx context.Context, ownerID uuid.UUID, a domain.Activity) (domain.Activity, error) {
	return m.create(ctx, ownerID, a)
}
func (m *mockActivityServicer) GetByID(ctx context.Context, ownerID, tripID, activityID uuid.UUID) (domain.Activity, error) {
	return m.getByID(ctx, ownerID, tripID, activityID)
}
func (m *mockActivityServicer) ListByTripID(ctx context.Context, ownerID, tripID uuid.UUID) ([]domain.Activity, error) {
	return m.listByTripID(ctx, ownerID, tripID)
}
func (m *mockActivityServicer) Update(ctx context.Context, ownerID uuid.UUID, a domain.Activity) (domain.Activity, error) {
	return m.update(ctx, ownerID, a)
}
func (m *mockActivityServicer) Delete(ctx context.Context, ownerID, tripID, activityID uuid.UUID) error {
	return m.delete(ctx, ownerID, tripID, activityID)
}

type mockItineraryServicer struct {
	itinerary func(ctx context.Context, ownerID, tripID uuid.UUID) (itinerary.Itinerary, error)
	document  func(ctx context.Context, ownerID, tripID uuid.UUID) (itinerary.Document, error)
	mapView   func(ctx context.Context, ownerID, tripID uuid.UUID, day int) (itinerary.MapView, error)
}

func (m *mockItineraryServicer) Itinerary(ctx context.Context, ownerID, tripID uuid.UUID) (itinerary.Itinerary, error) {
	return m.itinerary(ctx, ownerID, tripID)
}
func (m *mockItineraryServicer) Document(ctx context.Context, ownerID, tripID uuid.UUID) (itinerary.Document, error) {
	return m.document(ctx, ownerID, tripID)
}
func (m *mockItineraryServicer) MapView(ctx context.Context, ownerID, tripID uuid.UUID, day int) (itinerary.MapView, error) {
	return m.mapView(ctx, ownerID, tripID, day)
}

type mockExportServicer struct {
	rows  func(ctx context.Context, ownerID, tripID uuid.UUID) ([]domain.ExportRow, error)
	image func(ctx context.Context, ownerID, tripID uuid.UUID) (itinerary.Document, []byte, error)
}

func (m *mockExportServicer) Rows(ctx context.Context, ownerID, tripID uuid.UUID) ([]domain.ExportRow, error) {
	return m.rows(ctx, ownerID, tripID)
}
func (m *mockExportServicer) Image(ctx context.Context, ownerID, tripID uuid.UUID) (itinerary.Document, []byte, error) {
	return m.image(ctx, ownerID, tripID)
}

type mockPlaceSearcher struct {
	search func(ctx context.Context, query string) ([]domain.Place, error)
}

func (m *mockPlaceSearcher) Search(ctx context.Context, query string) ([]domain.Place, error) {
	return m.search(ctx, query)
}

// compile-time checks: every mock must satisfy its interface.
var (
	_ handler.TripServicer      = (*mockTripServicer)(nil)
	_ handler.SeedServicer      = (*mockSeedServicer)(nil)
	_ handler.ActivityServicer  = (*mockActivityServicer)(nil)
	_ handler.ItineraryServicer = (*mockItineraryServicer)(nil)
	_ handler.ExportServicer    = (*mockExportServicer)(nil)
	_ handler.PlaceSearcher     = (*mockPlaceSearcher)(nil)
)

// ---- helpers ---------------------------------------------------------------

// testOwner is the caller of every request made through newRouter.
var testOwner = uuid.MustParse("6f1c2a0e-3d4b-4c5a-9e8f-7a6b5c4d3e2f")

// asTestOwner stands in for middleware.RequireOwner.
func asTestOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(middleware.WithOwner(r.Context(), testOwner)))
	})
}

// newRouter wires a Server with the given services the way main.go does,
// with authentication replaced by a fixed owner.
func newRouter(svc handler.Services) http.Handler {
	return handler.NewServer(svc).Routes(asTestOwner)
}

// do sends one request through h. body is JSON-encoded unless nil.
func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeJSON[handler.ErrorResponse](t, rec).Error.Code
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }

func tripFixture() domain.Trip {
	return domain.Trip{
		ID:          uuid.New(),
		OwnerID:     testOwner,
		Name:        "Paris Adventure",
		Destination: "Paris, France",
		StartDate:   date(2024, 3, 1),
		EndDate:     date(2024, 3, 3),
		Preferences: []string{"sightseeing", "culture", "food"},
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
}

func activityFixture(tripID uuid.UUID, day int, start, title string) domain.Activity {
	return domain.Activity{
		ID:        uuid.New(),
		TripID:    tripID,
		DayNumber: day,
		Title:     title,
		Location:  "Paris",
		StartTime: start,
		EndTime:   start,
	}
}
