package handler

import (
	"fmt"
	"net/http"

	"github.com/bagdasarian/volunteer-app/internal/domain"
)

func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.reportService.List(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, mapSlice(reports, domainReportToHTTP))
}

func (h *Handler) RenderReport(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	content, err := h.reportService.Render(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(content)
}

func (h *Handler) ExportReport(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	file, err := h.reportService.Export(r.Context(), id, r.URL.Query().Get("format"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", file.Name))
	w.WriteHeader(http.StatusOK)
	w.Write(file.Content)
}

// ExportTemplate выгружает произвольный шаблон движка без записи в каталоге
func (h *Handler) ExportTemplate(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	format := query.Get("format")

	content, err := h.reportService.RenderTemplate(r.Context(), query.Get("template"), format)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", domain.ReportFormat(format).ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=report.%s", format))
	w.WriteHeader(http.StatusOK)
	w.Write(content)
}
