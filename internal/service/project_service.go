package service

import (
	"context"

	"github.com/bagdasarian/volunteer-app/internal/domain"
)

type ProjectService interface {
	List(ctx context.Context) ([]*domain.Project, error)
	Get(ctx context.Context, id int64) (*domain.Project, error)
	ListByOrganizer(ctx context.Context, organizerID int64) ([]*domain.Project, error)
	ListParticipantsByOrganizer(ctx context.Context, organizerID int64) ([]*domain.User, error)
	Create(ctx context.Context, input CreateProjectInput) (*domain.Project, error)
	Update(ctx context.Context, id int64, patch domain.ProjectPatch) (*domain.Project, error)
	Delete(ctx context.Context, id int64) error
}

type CreateProjectInput struct {
	Title            string
	ShortDescription *string
	Description      *string
	OrganizerID      *int64
}
