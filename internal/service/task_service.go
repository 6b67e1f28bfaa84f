package service

import (
	"context"

	"github.com/bagdasarian/volunteer-app/internal/domain"
)

type TaskService interface {
	List(ctx context.Context) ([]*domain.Task, error)
	Get(ctx context.Context, id int64) (*domain.Task, error)
	ListByProject(ctx context.Context, projectID int64) ([]*domain.Task, error)
	ListByOrganizer(ctx context.Context, organizerID int64) ([]*domain.Task, error)
	ListByParticipant(ctx context.Context, userID int64) ([]*domain.Task, error)
	Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
	Update(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error)
	Delete(ctx context.Context, id int64) error
}

// CreateTaskInput - данные новой задачи; пустые Priority и Status заменяются значениями по умолчанию
type CreateTaskInput struct {
	Title       string
	Description *string
	TaskType    *string
	Priority    domain.TaskPriority
	Status      domain.TaskStatus
	ProjectID   *int64
	Assignee    *domain.AssigneeChange
}
