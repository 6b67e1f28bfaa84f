package handler

import (
	"net/http"
)

func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.List(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, mapSlice(projects, domainProjectToHTTP))
}

func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	project, err := h.projectService.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainProjectToHTTP(project))
}

func (h *Handler) ListProjectsByOrganizer(w http.ResponseWriter, r *http.Request) {
	organizerID, err := pathID(r, "organizerId")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	projects, err := h.projectService.ListByOrganizer(r.Context(), organizerID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, mapSlice(projects, domainProjectToHTTP))
}

func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req CreateProjectRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	project, err := h.projectService.Create(r.Context(), httpCreateProjectToInput(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainProjectToHTTP(project))
}

func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req UpdateProjectRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	patch, err := httpUpdateProjectToPatch(req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	project, err := h.projectService.Update(r.Context(), id, patch)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainProjectToHTTP(project))
}

func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.projectService.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListParticipantsByOrganizer(w http.ResponseWriter, r *http.Request) {
	organizerID, err := pathID(r, "organizerId")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	users, err := h.projectService.ListParticipantsByOrganizer(r.Context(), organizerID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, mapSlice(users, domainUserToHTTP))
}
