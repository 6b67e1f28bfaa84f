package repository

import (
	"context"

	"github.com/bagdasarian/volunteer-app/internal/domain"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	Update(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	// ExistsByTitle сравнивает названия без учета регистра
	ExistsByTitle(ctx context.Context, title string) (bool, error)
	List(ctx context.Context) ([]*domain.Project, error)
	ListByOrganizer(ctx context.Context, organizerID int64) ([]*domain.Project, error)
	ListParticipantsByOrganizer(ctx context.Context, organizerID int64) ([]*domain.User, error)
	Delete(ctx context.Context, id int64) error
}
