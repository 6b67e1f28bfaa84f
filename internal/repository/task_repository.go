package repository

import (
	"context"

	"github.com/bagdasarian/volunteer-app/internal/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	Update(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, id int64) (*domain.Task, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context) ([]*domain.Task, error)
	ListByProject(ctx context.Context, projectID int64) ([]*domain.Task, error)
	ListByOrganizer(ctx context.Context, organizerID int64) ([]*domain.Task, error)
	ListByParticipant(ctx context.Context, userID int64) ([]*domain.Task, error)
	// ClearAssignee снимает назначение с задач, где исполнитель - указанный пользователь или группа
	ClearAssignee(ctx context.Context, kind domain.AssigneeType, id int64) error
	Delete(ctx context.Context, id int64) error
}
