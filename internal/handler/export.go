package handler

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/itinerary"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"trip_id", "trip_name", "destination", "day_number", "date",
	"title", "location", "start_time", "end_time", "notes",
	"latitude", "longitude",
}

// GetExport handles GET /trips/{tripId}/export.
// ?format=json (default) and ?format=csv return the flat table, one row per
// activity; ?format=png returns the rendered itinerary image.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	ownerID, tripID, ok := ownerAndTrip(w, r)
	if !ok {
		return
	}

	switch format := r.URL.Query().Get("format"); format {
	case "", "json":
		rows, err := s.export.Rows(r.Context(), ownerID, tripID)
		if err != nil {
			s.respondError(w, r, err, "trip not found")
			return
		}
		writeJSON(w, http.StatusOK, rowsToResponse(rows))
	case "csv":
		rows, err := s.export.Rows(r.Context(), ownerID, tripID)
		if err != nil {
			s.respondError(w, r, err, "trip not found")
			return
		}
		body := buildCSV(rows)
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", attachment(csvFileStem(rows), "csv"))
		w.Header().Set("Content-Length", strconv.Itoa(body.Len()))
		w.WriteHeader(http.StatusOK)
		_, _ = body.WriteTo(w)
	case "png":
		doc, img, err := s.export.Image(r.Context(), ownerID, tripID)
		if err != nil {
			s.respondError(w, r, err, "trip not found")
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Content-Disposition", attachment(doc.FileName, "png"))
		w.Header().Set("Content-Length", strconv.Itoa(len(img)))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(img)
	default:
		writeError(w, http.StatusUnprocessableEntity, codeValidation, fmt.Sprintf("unsupported format %q: use json, csv, or png", format))
	}
}

func attachment(stem, ext string) string {
	return fmt.Sprintf(`attachment; filename="%s.%s"`, stem, ext)
}

// csvFileStem names the CSV after the trip, like the rendered image.
func csvFileStem(rows []domain.ExportRow) string {
	if len(rows) == 0 {
		return itinerary.FileStem("trip")
	}
	return itinerary.FileStem(rows[0].TripName)
}

// rowsToResponse converts domain rows to the JSON export rows.
func rowsToResponse(rows []domain.ExportRow) []ExportRow {
	out := make([]ExportRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, ExportRow{
			TripID:      r.TripID,
			TripName:    r.TripName,
			Destination: r.Destination,
			DayNumber:   r.DayNumber,
			Date:        date(r.Date),
			Title:       r.Title,
			Location:    r.Location,
			StartTime:   r.StartTime,
			EndTime:     r.EndTime,
			Notes:       r.Notes,
			Latitude:    r.Latitude,
			Longitude:   r.Longitude,
		})
	}
	return out
}

// buildCSV encodes domain rows as CSV with a header line.
func buildCSV(rows []domain.ExportRow) *bytes.Buffer {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	// Writes to a bytes.Buffer cannot fail.
	_ = w.Write(csvHeaders)
	for _, r := range rows {
		_ = w.Write(rowToCSVRecord(r))
	}
	w.Flush()
	return &buf
}

// rowToCSVRecord encodes a domain.ExportRow as a flat string slice.
// Missing coordinates are encoded as empty strings.
func rowToCSVRecord(r domain.ExportRow) []string {
	return []string{
		r.TripID.String(),
		r.TripName,
		r.Destination,
		strconv.Itoa(r.DayNumber),
		r.Date.Format(time.DateOnly),
		r.Title,
		r.Location,
		r.StartTime,
		r.EndTime,
		r.Notes,
		formatOptionalFloat(r.Latitude),
		formatOptionalFloat(r.Longitude),
	}
}

func formatOptionalFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
