package repository

import (
	"context"

	"github.com/bagdasarian/volunteer-app/internal/domain"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.TaskComment) error
	UpdateText(ctx context.Context, comment *domain.TaskComment) error
	GetByIDAndTask(ctx context.Context, id, taskID int64) (*domain.TaskComment, error)
	// ListByTask возвращает комментарии от новых к старым
	ListByTask(ctx context.Context, taskID int64) ([]*domain.TaskComment, error)
	Delete(ctx context.Context, id int64) error
}
