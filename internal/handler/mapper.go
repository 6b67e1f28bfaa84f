package handler

import (
	"time"

	"github.com/bagdasarian/volunteer-app/internal/domain"
	"github.com/bagdasarian/volunteer-app/internal/service"
)

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

// mapSlice применяет преобразование к каждому элементу, пустой срез кодируется как []
func mapSlice[T, R any](items []T, fn func(T) R) []R {
	result := make([]R, 0, len(items))
	for _, item := range items {
		result = append(result, fn(item))
	}
	return result
}

func domainUserToHTTP(user *domain.User) UserResponse {
	return UserResponse{
		ID:         user.ID,
		Email:      user.Email,
		Name:       user.Name,
		Surname:    user.Surname,
		Patronymic: user.Patronymic,
		Phone:      user.Phone,
		Role:       user.Role,
		CreatedAt:  formatTime(user.CreatedAt),
	}
}

func httpCreateUserToInput(req CreateUserRequest) service.CreateUserInput {
	return service.CreateUserInput{
		Email:      req.Email,
		Name:       req.Name,
		Surname:    req.Surname,
		Patronymic: req.Patronymic,
		Phone:      req.Phone,
		Password:   req.Password,
		Role:       req.Role,
	}
}

func httpUpdateUserToPatch(req UpdateUserRequest) domain.UserPatch {
	return domain.UserPatch{
		Email:      req.Email,
		Name:       req.Name,
		Surname:    req.Surname,
		Patronymic: req.Patronymic,
		Phone:      req.Phone,
		Password:   req.Password,
		Role:       req.Role,
	}
}

func domainProjectToHTTP(project *domain.Project) ProjectResponse {
	return ProjectResponse{
		ID:               project.ID,
		Title:            project.Title,
		ShortDescription: project.ShortDescription,
		Description:      project.Description,
		Organizer:        RefResponse{ID: project.OrganizerID},
		CreatedAt:        formatTime(project.CreatedAt),
	}
}

func httpCreateProjectToInput(req CreateProjectRequest) service.CreateProjectInput {
	return service.CreateProjectInput{
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
		OrganizerID:      refID(req.Organizer),
	}
}

func httpUpdateProjectToPatch(req UpdateProjectRequest) (domain.ProjectPatch, error) {
	patch := domain.ProjectPatch{
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
	}
	organizerID, err := requiredRef(req.Organizer, "organizer")
	if err != nil {
		return patch, err
	}
	patch.OrganizerID = organizerID
	return patch, nil
}

func domainGroupToHTTP(group *domain.VolunteerGroup) GroupResponse {
	return GroupResponse{
		ID:        group.ID,
		Name:      group.Name,
		Organizer: RefResponse{ID: group.OrganizerID},
		CreatedAt: formatTime(group.CreatedAt),
	}
}

func httpUpdateGroupToPatch(req UpdateGroupRequest) (domain.GroupPatch, error) {
	patch := domain.GroupPatch{Name: req.Name}
	organizerID, err := requiredRef(req.Organizer, "organizer")
	if err != nil {
		return patch, err
	}
	patch.OrganizerID = organizerID
	return patch, nil
}

func domainTaskToHTTP(task *domain.Task) TaskResponse {
	response := TaskResponse{
		ID:           task.ID,
		Title:        task.Title,
		Description:  task.Description,
		TaskType:     task.TaskType,
		Priority:     string(task.Priority),
		Status:       string(task.Status),
		Project:      RefResponse{ID: task.ProjectID},
		AssigneeType: string(task.Assignee.Kind()),
		CreatedAt:    formatTime(task.CreatedAt),
		UpdatedAt:    formatTime(task.UpdatedAt),
	}
	if userID, ok := task.Assignee.UserID(); ok {
		response.AssigneeUser = &RefResponse{ID: userID}
	}
	if groupID, ok := task.Assignee.GroupID(); ok {
		response.AssigneeGroup = &RefResponse{ID: groupID}
	}
	return response
}

func httpCreateTaskToInput(req CreateTaskRequest) service.CreateTaskInput {
	input := service.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		TaskType:    req.TaskType,
		ProjectID:   refID(req.Project),
		Assignee:    assigneeChange(req.AssigneeType, req.AssigneeUser, req.AssigneeGroup),
	}
	if req.Priority != nil {
		input.Priority = domain.TaskPriority(*req.Priority)
	}
	if req.Status != nil {
		input.Status = domain.TaskStatus(*req.Status)
	}
	return input
}

func httpUpdateTaskToPatch(req UpdateTaskRequest) (domain.TaskPatch, error) {
	patch := domain.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		TaskType:    req.TaskType,
		Assignee:    assigneeChange(req.AssigneeType, req.AssigneeUser, req.AssigneeGroup),
	}
	if value, ok := req.Priority.Get(); ok {
		patch.Priority = domain.Some(domain.TaskPriority(value))
	}
	if value, ok := req.Status.Get(); ok {
		patch.Status = domain.Some(domain.TaskStatus(value))
	}
	projectID, err := requiredRef(req.Project, "project")
	if err != nil {
		return patch, err
	}
	patch.ProjectID = projectID
	return patch, nil
}

func domainCommentToHTTP(comment *domain.TaskComment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		Text:      comment.Text,
		CreatedAt: formatTime(comment.CreatedAt),
		Author: CommentAuthorResponse{
			ID:      comment.Author.ID,
			Name:    comment.Author.Name,
			Surname: comment.Author.Surname,
		},
	}
}

func domainReportToHTTP(report *domain.Report) ReportResponse {
	return ReportResponse{
		ID:           report.ID,
		Name:         report.Name,
		BirtTemplate: report.Template,
		Description:  report.Description,
	}
}

func domainOccupancyToHTTP(row *domain.VolunteerOccupancy) VolunteerOccupancyResponse {
	return VolunteerOccupancyResponse{
		VolunteerID:    row.VolunteerID,
		FullName:       row.FullName,
		Email:          row.Email,
		TotalTasks:     row.TotalTasks,
		ActiveTasks:    row.ActiveTasks,
		CompletedTasks: row.CompletedTasks,
	}
}

func refID(ref *RefRequest) *int64 {
	if ref == nil {
		return nil
	}
	return ref.ID
}

// requiredRef переводит ссылку из патча: null или {} для обязательной ссылки - ошибка валидации
func requiredRef(ref domain.Optional[*RefRequest], field string) (domain.Optional[int64], error) {
	value, ok := ref.Get()
	if !ok {
		return domain.Optional[int64]{}, nil
	}
	id := refID(value)
	if id == nil {
		return domain.Optional[int64]{}, domain.NewValidationError("%s.id is required", field)
	}
	return domain.Some(*id), nil
}

func assigneeChange(assigneeType *string, user, group *RefRequest) *domain.AssigneeChange {
	if assigneeType == nil {
		return nil
	}
	return &domain.AssigneeChange{
		Type:    domain.AssigneeType(*assigneeType),
		UserID:  refID(user),
		GroupID: refID(group),
	}
}
