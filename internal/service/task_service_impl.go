package service

import (
	"context"
	"errors"
	"time"

	"github.com/bagdasarian/volunteer-app/internal/domain"
	"github.com/bagdasarian/volunteer-app/internal/repository"
)

type taskService struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
	assignees   *AssigneeResolver
}

// NewTaskService создает новый экземпляр TaskService
func NewTaskService(
	taskRepo repository.TaskRepository,
	projectRepo repository.ProjectRepository,
	assignees *AssigneeResolver,
) TaskService {
	return &taskService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		assignees:   assignees,
	}
}

func (s *taskService) List(ctx context.Context) ([]*domain.Task, error) {
	return s.taskRepo.List(ctx)
}

func (s *taskService) Get(ctx context.Context, id int64) (*domain.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "task")
	}
	return task, nil
}

func (s *taskService) ListByProject(ctx context.Context, projectID int64) ([]*domain.Task, error) {
	exists, err := s.projectRepo.ExistsByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.NewNotFoundError("project")
	}
	return s.taskRepo.ListByProject(ctx, projectID)
}

func (s *taskService) ListByOrganizer(ctx context.Context, organizerID int64) ([]*domain.Task, error) {
	return s.taskRepo.ListByOrganizer(ctx, organizerID)
}

func (s *taskService) ListByParticipant(ctx context.Context, userID int64) ([]*domain.Task, error) {
	return s.taskRepo.ListByParticipant(ctx, userID)
}

func (s *taskService) Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error) {
	title, err := requireText(input.Title, "title")
	if err != nil {
		return nil, err
	}
	if input.ProjectID == nil {
		return nil, domain.NewValidationError("project.id is required")
	}
	if err := s.resolveProject(ctx, *input.ProjectID); err != nil {
		return nil, err
	}

	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	status := input.Status
	if status == "" {
		status = domain.StatusOpen
	}
	if err := validateEnums(priority, status); err != nil {
		return nil, err
	}

	now := time.Now()
	task := &domain.Task{
		Title:       title,
		Description: input.Description,
		TaskType:    input.TaskType,
		Priority:    priority,
		Status:      status,
		ProjectID:   *input.ProjectID,
		Assignee:    domain.NoAssignee(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.assignees.Apply(ctx, task, input.Assignee); err != nil {
		return nil, err
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, s.translateWriteError(err, task)
	}
	return task, nil
}

// Update применяет только переданные поля; UpdatedAt сдвигается, только если задача изменилась
func (s *taskService) Update(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error) {
	task, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	before := *task

	if value, ok := patch.Title.Get(); ok {
		if task.Title, err = requireText(value, "title"); err != nil {
			return nil, err
		}
	}
	if value, ok := patch.Description.Get(); ok {
		task.Description = value
	}
	if value, ok := patch.TaskType.Get(); ok {
		task.TaskType = value
	}
	if value, ok := patch.Priority.Get(); ok {
		task.Priority = value
	}
	if value, ok := patch.Status.Get(); ok {
		task.Status = value
	}
	if err := validateEnums(task.Priority, task.Status); err != nil {
		return nil, err
	}
	if value, ok := patch.ProjectID.Get(); ok {
		if err := s.resolveProject(ctx, value); err != nil {
			return nil, err
		}
		task.ProjectID = value
	}

	if err := s.assignees.Apply(ctx, task, patch.Assignee); err != nil {
		return nil, err
	}

	if taskChanged(&before, task) {
		task.UpdatedAt = time.Now()
	}
	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, s.translateWriteError(notFound(err, "task"), task)
	}
	return task, nil
}

func (s *taskService) Delete(ctx context.Context, id int64) error {
	return notFound(s.taskRepo.Delete(ctx, id), "task")
}

func (s *taskService) resolveProject(ctx context.Context, projectID int64) error {
	exists, err := s.projectRepo.ExistsByID(ctx, projectID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.NewValidationError("Project not found: %d", projectID)
	}
	return nil
}

// translateWriteError: ссылка могла исчезнуть между проверкой и записью
func (s *taskService) translateWriteError(err error, task *domain.Task) error {
	if errors.Is(err, repository.ErrReference) {
		return domain.NewValidationError("task %d references a missing project or assignee", task.ID)
	}
	return err
}

func validateEnums(priority domain.TaskPriority, status domain.TaskStatus) error {
	if !priority.Valid() {
		return domain.NewValidationError("unknown task priority: %s", priority)
	}
	if !status.Valid() {
		return domain.NewValidationError("unknown task status: %s", status)
	}
	return nil
}

func taskChanged(before, after *domain.Task) bool {
	return before.Title != after.Title ||
		!equalText(before.Description, after.Description) ||
		!equalText(before.TaskType, after.TaskType) ||
		before.Priority != after.Priority ||
		before.Status != after.Status ||
		before.ProjectID != after.ProjectID ||
		before.Assignee != after.Assignee
}

func equalText(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
