package handler

import (
	"net/http"

	"github.com/bagdasarian/volunteer-app/internal/service"
)

func (h *Handler) ListGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.groupService.List(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, mapSlice(groups, domainGroupToHTTP))
}

func (h *Handler) GetGroup(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	group, err := h.groupService.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainGroupToHTTP(group))
}

func (h *Handler) ListGroupsByOrganizer(w http.ResponseWriter, r *http.Request) {
	organizerID, err := pathID(r, "organizerId")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	groups, err := h.groupService.ListByOrganizer(r.Context(), organizerID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, mapSlice(groups, domainGroupToHTTP))
}

func (h *Handler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var req CreateGroupRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	group, err := h.groupService.Create(r.Context(), service.CreateGroupInput{
		Name:        req.Name,
		OrganizerID: refID(req.Organizer),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainGroupToHTTP(group))
}

func (h *Handler) UpdateGroup(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req UpdateGroupRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	patch, err := httpUpdateGroupToPatch(req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	group, err := h.groupService.Update(r.Context(), id, patch)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainGroupToHTTP(group))
}

func (h *Handler) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.groupService.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
