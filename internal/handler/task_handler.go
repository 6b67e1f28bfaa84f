package handler

import (
	"context"
	"net/http"

	"github.com/bagdasarian/volunteer-app/internal/domain"
)

func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.List(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, mapSlice(tasks, domainTaskToHTTP))
}

func (h *Handler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	task, err := h.taskService.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTaskToHTTP(task))
}

func (h *Handler) ListTasksByProject(w http.ResponseWriter, r *http.Request) {
	h.listTasksBy(w, r, "projectId", h.taskService.ListByProject)
}

func (h *Handler) ListTasksByOrganizer(w http.ResponseWriter, r *http.Request) {
	h.listTasksBy(w, r, "organizerId", h.taskService.ListByOrganizer)
}

func (h *Handler) ListTasksByParticipant(w http.ResponseWriter, r *http.Request) {
	h.listTasksBy(w, r, "userId", h.taskService.ListByParticipant)
}

func (h *Handler) listTasksBy(
	w http.ResponseWriter,
	r *http.Request,
	param string,
	list func(ctx context.Context, id int64) ([]*domain.Task, error),
) {
	id, err := pathID(r, param)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	tasks, err := list(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, mapSlice(tasks, domainTaskToHTTP))
}

func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	task, err := h.taskService.Create(r.Context(), httpCreateTaskToInput(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainTaskToHTTP(task))
}

func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req UpdateTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	patch, err := httpUpdateTaskToPatch(req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	task, err := h.taskService.Update(r.Context(), id, patch)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTaskToHTTP(task))
}

func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.taskService.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
