package handler

import (
	"net/http"
)

func (h *Handler) ListComments(w http.ResponseWriter, r *http.Request) {
	taskID, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	comments, err := h.commentService.List(r.Context(), taskID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, mapSlice(comments, domainCommentToHTTP))
}

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	taskID, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req CreateCommentRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	comment, err := h.commentService.Create(r.Context(), taskID, req.AuthorID, req.Text)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainCommentToHTTP(comment))
}

func (h *Handler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	taskID, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	commentID, err := pathID(r, "commentId")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req UpdateCommentRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	comment, err := h.commentService.Update(r.Context(), taskID, commentID, req.Text)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainCommentToHTTP(comment))
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	taskID, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	commentID, err := pathID(r, "commentId")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.commentService.Delete(r.Context(), taskID, commentID); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
