package server

import (
	"github.com/bagdasarian/volunteer-app/internal/handler"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func NewRouter(h *handler.Handler, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(RequestLogger(logger))
	r.Use(Recoverer(logger))

	r.Get("/health", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", h.Login)
		r.Post("/auth/register", h.CreateUser)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.ListUsers)
			r.Post("/", h.CreateUser)
			r.Get("/{id}", h.GetUser)
			r.Patch("/{id}", h.UpdateUser)
			r.Delete("/{id}", h.DeleteUser)
		})

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", h.ListProjects)
			r.Post("/", h.CreateProject)
			r.Get("/by-organizer/{organizerId}", h.ListProjectsByOrganizer)
			r.Get("/participants/by-organizer/{organizerId}", h.ListParticipantsByOrganizer)
			r.Get("/{id}", h.GetProject)
			r.Patch("/{id}", h.UpdateProject)
			r.Delete("/{id}", h.DeleteProject)
			r.Get("/{id}/participants", h.ListParticipants)
			r.Post("/{id}/participants/{userId}", h.AddParticipant)
			r.Delete("/{id}/participants/{userId}", h.RemoveParticipant)
		})

		r.Route("/groups", func(r chi.Router) {
			r.Get("/", h.ListGroups)
			r.Post("/", h.CreateGroup)
			r.Get("/by-organizer/{organizerId}", h.ListGroupsByOrganizer)
			r.Get("/{id}", h.GetGroup)
			r.Patch("/{id}", h.UpdateGroup)
			r.Delete("/{id}", h.DeleteGroup)
			r.Get("/{id}/members", h.ListGroupMembers)
			r.Post("/{id}/members/{userId}", h.AddGroupMember)
			r.Delete("/{id}/members/{userId}", h.RemoveGroupMember)
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", h.ListTasks)
			r.Post("/", h.CreateTask)
			r.Get("/by-project/{projectId}", h.ListTasksByProject)
			r.Get("/by-organizer/{organizerId}", h.ListTasksByOrganizer)
			r.Get("/by-participant/{userId}", h.ListTasksByParticipant)
			r.Get("/{id}", h.GetTask)
			r.Patch("/{id}", h.UpdateTask)
			r.Delete("/{id}", h.DeleteTask)

			r.Route("/{id}/comments", func(r chi.Router) {
				r.Get("/", h.ListComments)
				r.Post("/", h.CreateComment)
				r.Patch("/{commentId}", h.UpdateComment)
				r.Delete("/{commentId}", h.DeleteComment)
			})
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/", h.ListReports)
			r.Get("/occupancy", h.GetVolunteerOccupancy)
			r.Get("/template", h.ExportTemplate)
			r.Get("/{id}/render", h.RenderReport)
			r.Get("/{id}/export", h.ExportReport)
		})
	})

	return r
}
