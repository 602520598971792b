package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/trip-planner/internal/catalog"
	"github.com/pkordes/trip-planner/internal/domain"
)

// ListTemplates handles GET /templates. No authentication is needed.
func (s *Server) ListTemplates(w http.ResponseWriter, _ *http.Request) {
	tpls := catalog.List()
	out := make([]TemplateSummary, len(tpls))
	for i, t := range tpls {
		out[i] = templateSummary(t)
	}
	writeJSON(w, http.StatusOK, out)
}

// GetTemplate handles GET /templates/{templateId}.
func (s *Server) GetTemplate(w http.ResponseWriter, r *http.Request) {
	tpl, err := catalog.Get(chi.URLParam(r, "templateId"))
	if err != nil {
		s.respondError(w, r, err, "template not found")
		return
	}

	resp := Template{TemplateSummary: templateSummary(tpl)}
	for _, day := range tpl.DayNumbers() {
		td := TemplateDay{DayNumber: day}
		for _, a := range tpl.Itinerary[day] {
			td.Activities = append(td.Activities, TemplateActivity(a))
		}
		resp.Itinerary = append(resp.Itinerary, td)
	}
	writeJSON(w, http.StatusOK, resp)
}

func templateSummary(t domain.Template) TemplateSummary {
	return TemplateSummary{
		ID:            t.ID,
		Name:          t.Name,
		Country:       t.Country,
		Description:   t.Description,
		Days:          len(t.Itinerary),
		ActivityCount: t.ActivityCount(),
	}
}
