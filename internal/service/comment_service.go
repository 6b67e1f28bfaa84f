package service

import (
	"context"

	"github.com/bagdasarian/volunteer-app/internal/domain"
)

type CommentService interface {
	List(ctx context.Context, taskID int64) ([]*domain.TaskComment, error)
	Create(ctx context.Context, taskID int64, authorID *int64, text string) (*domain.TaskComment, error)
	Update(ctx context.Context, taskID, commentID int64, text string) (*domain.TaskComment, error)
	Delete(ctx context.Context, taskID, commentID int64) error
}

// TextSanitizer очищает пользовательский текст от разметки
type TextSanitizer interface {
	Sanitize(text string) string
}
