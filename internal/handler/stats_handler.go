package handler

import (
	"net/http"
)

func (h *Handler) GetVolunteerOccupancy(w http.ResponseWriter, r *http.Request) {
	rows, err := h.statsService.GetVolunteerOccupancy(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, mapSlice(rows, domainOccupancyToHTTP))
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
