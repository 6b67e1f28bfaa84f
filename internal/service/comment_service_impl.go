package service

import (
	"context"
	"errors"
	"time"

	"github.com/bagdasarian/volunteer-app/internal/domain"
	"github.com/bagdasarian/volunteer-app/internal/repository"
)

type commentService struct {
	commentRepo repository.CommentRepository
	taskRepo    repository.TaskRepository
	userRepo    repository.UserRepository
	sanitizer   TextSanitizer
}

// NewCommentService создает новый экземпляр CommentService
func NewCommentService(
	commentRepo repository.CommentRepository,
	taskRepo repository.TaskRepository,
	userRepo repository.UserRepository,
	sanitizer TextSanitizer,
) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		taskRepo:    taskRepo,
		userRepo:    userRepo,
		sanitizer:   sanitizer,
	}
}

func (s *commentService) List(ctx context.Context, taskID int64) ([]*domain.TaskComment, error) {
	if err := s.requireTask(ctx, taskID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByTask(ctx, taskID)
}

func (s *commentService) Create(ctx context.Context, taskID int64, authorID *int64, text string) (*domain.TaskComment, error) {
	if authorID == nil {
		return nil, domain.NewValidationError("authorId is required")
	}
	cleaned, err := s.cleanText(text)
	if err != nil {
		return nil, err
	}
	if err := s.requireTask(ctx, taskID); err != nil {
		return nil, err
	}

	author, err := s.userRepo.GetByID(ctx, *authorID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewValidationError("User not found: %d", *authorID)
		}
		return nil, err
	}

	comment := &domain.TaskComment{
		TaskID: taskID,
		Author: domain.CommentAuthor{
			ID:      author.ID,
			Name:    author.Name,
			Surname: author.Surname,
		},
		Text:      cleaned,
		CreatedAt: time.Now(),
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		if errors.Is(err, repository.ErrReference) {
			return nil, domain.NewNotFoundError("task")
		}
		return nil, err
	}
	return comment, nil
}

// Update заменяет только текст комментария
func (s *commentService) Update(ctx context.Context, taskID, commentID int64, text string) (*domain.TaskComment, error) {
	cleaned, err := s.cleanText(text)
	if err != nil {
		return nil, err
	}
	if err := s.requireTask(ctx, taskID); err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.GetByIDAndTask(ctx, commentID, taskID)
	if err != nil {
		return nil, notFound(err, "comment")
	}

	comment.Text = cleaned
	if err := s.commentRepo.UpdateText(ctx, comment); err != nil {
		return nil, notFound(err, "comment")
	}
	return comment, nil
}

func (s *commentService) Delete(ctx context.Context, taskID, commentID int64) error {
	if err := s.requireTask(ctx, taskID); err != nil {
		return err
	}

	comment, err := s.commentRepo.GetByIDAndTask(ctx, commentID, taskID)
	if err != nil {
		return notFound(err, "comment")
	}
	return notFound(s.commentRepo.Delete(ctx, comment.ID), "comment")
}

func (s *commentService) requireTask(ctx context.Context, taskID int64) error {
	exists, err := s.taskRepo.ExistsByID(ctx, taskID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.NewNotFoundError("task")
	}
	return nil
}

func (s *commentService) cleanText(text string) (string, error) {
	return requireText(s.sanitizer.Sanitize(text), "text")
}
