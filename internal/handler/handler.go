package handler

import (
	"github.com/bagdasarian/volunteer-app/internal/service"
	"go.uber.org/zap"
)

type Handler struct {
	userService    service.UserService
	projectService service.ProjectService
	participation  service.MembershipService
	groupService   service.GroupService
	membership     service.MembershipService
	taskService    service.TaskService
	commentService service.CommentService
	reportService  service.ReportService
	statsService   service.StatsService
	logger         *zap.Logger
}

// Services - набор сервисов, которые обслуживает HTTP-слой
type Services struct {
	Users         service.UserService
	Projects      service.ProjectService
	Participation service.MembershipService
	Groups        service.GroupService
	Membership    service.MembershipService
	Tasks         service.TaskService
	Comments      service.CommentService
	Reports       service.ReportService
	Stats         service.StatsService
}

func NewHandler(services Services, logger *zap.Logger) *Handler {
	return &Handler{
		userService:    services.Users,
		projectService: services.Projects,
		participation:  services.Participation,
		groupService:   services.Groups,
		membership:     services.Membership,
		taskService:    services.Tasks,
		commentService: services.Comments,
		reportService:  services.Reports,
		statsService:   services.Stats,
		logger:         logger,
	}
}
