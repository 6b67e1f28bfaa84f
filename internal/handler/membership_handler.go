package handler

import (
	"net/http"

	"github.com/bagdasarian/volunteer-app/internal/service"
)

// Участники проектов и члены групп обслуживаются одинаково, различается только сервис.

func (h *Handler) AddParticipant(w http.ResponseWriter, r *http.Request) {
	h.addMember(w, r, h.participation)
}

func (h *Handler) RemoveParticipant(w http.ResponseWriter, r *http.Request) {
	h.removeMember(w, r, h.participation)
}

func (h *Handler) ListParticipants(w http.ResponseWriter, r *http.Request) {
	h.listMembers(w, r, h.participation)
}

func (h *Handler) AddGroupMember(w http.ResponseWriter, r *http.Request) {
	h.addMember(w, r, h.membership)
}

func (h *Handler) RemoveGroupMember(w http.ResponseWriter, r *http.Request) {
	h.removeMember(w, r, h.membership)
}

func (h *Handler) ListGroupMembers(w http.ResponseWriter, r *http.Request) {
	h.listMembers(w, r, h.membership)
}

func (h *Handler) addMember(w http.ResponseWriter, r *http.Request, svc service.MembershipService) {
	parentID, userID, err := membershipIDs(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := svc.Add(r.Context(), parentID, userID); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) removeMember(w http.ResponseWriter, r *http.Request, svc service.MembershipService) {
	parentID, userID, err := membershipIDs(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := svc.Remove(r.Context(), parentID, userID); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listMembers(w http.ResponseWriter, r *http.Request, svc service.MembershipService) {
	parentID, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	users, err := svc.List(r.Context(), parentID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, mapSlice(users, domainUserToHTTP))
}

func membershipIDs(r *http.Request) (int64, int64, error) {
	parentID, err := pathID(r, "id")
	if err != nil {
		return 0, 0, err
	}
	userID, err := pathID(r, "userId")
	if err != nil {
		return 0, 0, err
	}
	return parentID, userID, nil
}
