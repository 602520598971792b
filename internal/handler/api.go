package handler

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/itinerary"
)

// Wire types of the JSON API. Field names follow spec/openapi.yaml.

// ErrorResponse is the body of every non-2xx JSON answer.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail describes one failure. TripID is set only for seed_failed
// errors where a trip was created before the failure.
type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	TripID  *openapi_types.UUID `json:"trip_id,omitempty"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

// Pagination describes one page of a list.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// TripList is the body of GET /trips.
type TripList struct {
	Data       []Trip     `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// Trip is the JSON form of domain.Trip.
type Trip struct {
	ID          openapi_types.UUID `json:"id"`
	Name        string             `json:"name"`
	Destination string             `json:"destination"`
	StartDate   openapi_types.Date `json:"start_date"`
	EndDate     openapi_types.Date `json:"end_date"`
	Preferences []string           `json:"preferences"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// CreateTripRequest is the body of POST /trips. Every field is optional;
// blanks are filled with defaults.
type CreateTripRequest struct {
	Name        string              `json:"name"`
	Destination string              `json:"destination"`
	StartDate   *openapi_types.Date `json:"start_date,omitempty"`
	EndDate     *openapi_types.Date `json:"end_date,omitempty"`
	Preferences []string            `json:"preferences,omitempty"`
}

// UpdateTripRequest is the body of PUT /trips/{tripId}.
type UpdateTripRequest struct {
	Name        string             `json:"name"`
	Destination string             `json:"destination"`
	StartDate   openapi_types.Date `json:"start_date"`
	EndDate     openapi_types.Date `json:"end_date"`
	Preferences []string           `json:"preferences"`
}

// FromTemplateRequest is the body of POST /trips/from-template.
// WithActivities defaults to true when omitted.
type FromTemplateRequest struct {
	TemplateID     string `json:"template_id"`
	WithActivities *bool  `json:"with_activities,omitempty"`
}

// SeededTrip is the body answered by both trip creation endpoints.
type SeededTrip struct {
	Trip       Trip       `json:"trip"`
	Activities []Activity `json:"activities"`
}

// Activity is the JSON form of domain.Activity.
type Activity struct {
	ID        openapi_types.UUID `json:"id"`
	TripID    openapi_types.UUID `json:"trip_id"`
	DayNumber int                `json:"day_number"`
	Title     string             `json:"title"`
	Location  string             `json:"location"`
	StartTime string             `json:"start_time"`
	EndTime   string             `json:"end_time"`
	Notes     string             `json:"notes,omitempty"`
	Latitude  *float64           `json:"latitude,omitempty"`
	Longitude *float64           `json:"longitude,omitempty"`
	PlaceID   string             `json:"place_id,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// ActivityRequest is the body of activity create and update.
type ActivityRequest struct {
	DayNumber int      `json:"day_number"`
	Title     string   `json:"title"`
	Location  string   `json:"location"`
	StartTime string   `json:"start_time"`
	EndTime   string   `json:"end_time"`
	Notes     string   `json:"notes"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	PlaceID   string   `json:"place_id"`
}

// Itinerary is the body of GET /trips/{tripId}/itinerary.
type Itinerary struct {
	Trip          Trip       `json:"trip"`
	Days          []Day      `json:"days"`
	Unscheduled   []Activity `json:"unscheduled"`
	ActivityCount int        `json:"activity_count"`
}

// Day is one calendar day of an Itinerary.
type Day struct {
	DayNumber  int                `json:"day_number"`
	Date       openapi_types.Date `json:"date"`
	Activities []Activity         `json:"activities"`
}

// TemplateSummary is one entry of GET /templates.
type TemplateSummary struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Country       string `json:"country"`
	Description   string `json:"description"`
	Days          int    `json:"days"`
	ActivityCount int    `json:"activity_count"`
}

// Template is the body of GET /templates/{templateId}.
type Template struct {
	TemplateSummary
	Itinerary []TemplateDay `json:"itinerary"`
}

// TemplateDay lists the activities of one template day.
type TemplateDay struct {
	DayNumber  int                `json:"day_number"`
	Activities []TemplateActivity `json:"activities"`
}

// TemplateActivity is one entry of a TemplateDay.
type TemplateActivity struct {
	Title     string   `json:"title"`
	Location  string   `json:"location"`
	StartTime string   `json:"start_time"`
	EndTime   string   `json:"end_time"`
	Notes     string   `json:"notes,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// ExportRow is one row of the JSON export.
type ExportRow struct {
	TripID      openapi_types.UUID `json:"trip_id"`
	TripName    string             `json:"trip_name"`
	Destination string             `json:"destination"`
	DayNumber   int                `json:"day_number"`
	Date        openapi_types.Date `json:"date"`
	Title       string             `json:"title,omitempty"`
	Location    string             `json:"location,omitempty"`
	StartTime   string             `json:"start_time,omitempty"`
	EndTime     string             `json:"end_time,omitempty"`
	Notes       string             `json:"notes,omitempty"`
	Latitude    *float64           `json:"latitude,omitempty"`
	Longitude   *float64           `json:"longitude,omitempty"`
}

// Place is one result of GET /places.
type Place struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	PlaceID   string  `json:"place_id,omitempty"`
}

// --- mapping helpers --------------------------------------------------------

func date(t time.Time) openapi_types.Date {
	return openapi_types.Date{Time: t}
}

// tripToResponse converts a domain.Trip into its JSON form.
func tripToResponse(t domain.Trip) Trip {
	prefs := t.Preferences
	if prefs == nil {
		prefs = []string{}
	}
	return Trip{
		ID:          t.ID,
		Name:        t.Name,
		Destination: t.Destination,
		StartDate:   date(t.StartDate),
		EndDate:     date(t.EndDate),
		Preferences: prefs,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// activityToResponse converts a domain.Activity into its JSON form.
// A lone coordinate is not reported.
func activityToResponse(a domain.Activity) Activity {
	resp := Activity{
		ID:        a.ID,
		TripID:    a.TripID,
		DayNumber: a.DayNumber,
		Title:     a.Title,
		Location:  a.Location,
		StartTime: a.StartTime,
		EndTime:   a.EndTime,
		Notes:     a.Notes,
		PlaceID:   a.PlaceID,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
	if lat, lng, ok := a.Coordinates(); ok {
		resp.Latitude, resp.Longitude = &lat, &lng
	}
	return resp
}

func activitiesToResponse(as []domain.Activity) []Activity {
	out := make([]Activity, len(as))
	for i, a := range as {
		out[i] = activityToResponse(a)
	}
	return out
}

func seededToResponse(s domain.SeededTrip) SeededTrip {
	return SeededTrip{
		Trip:       tripToResponse(s.Trip),
		Activities: activitiesToResponse(s.Activities),
	}
}

func itineraryToResponse(it itinerary.Itinerary) Itinerary {
	resp := Itinerary{
		Trip:          tripToResponse(it.Trip),
		Days:          make([]Day, len(it.Days)),
		Unscheduled:   activitiesToResponse(it.Unscheduled),
		ActivityCount: it.ActivityCount(),
	}
	for i, d := range it.Days {
		resp.Days[i] = Day{
			DayNumber:  d.DayNumber,
			Date:       date(d.Date),
			Activities: activitiesToResponse(d.Activities),
		}
	}
	return resp
}
