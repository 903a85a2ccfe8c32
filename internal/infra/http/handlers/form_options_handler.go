package handlers

import (
	"net/http"

	"github.com/xavierca1/alpha-site/internal/entity"
)

type FormCatalog interface {
	Services() []entity.Option
	TimelineOptions() []entity.Option
}

type FormOptionsResponse struct {
	Services  []entity.Option `json:"services"`
	Timelines []entity.Option `json:"timelines"`
}

type FormOptionsHandler struct {
	catalog FormCatalog
}

func NewFormOptionsHandler(catalog FormCatalog) *FormOptionsHandler {
	return &FormOptionsHandler{catalog: catalog}
}

// GET /api/form-options lists the select values the contact form offers.
func (h *FormOptionsHandler) Handle(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, FormOptionsResponse{
		Services:  h.catalog.Services(),
		Timelines: h.catalog.TimelineOptions(),
	})
}
