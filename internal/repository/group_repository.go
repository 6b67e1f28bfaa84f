package repository

import (
	"context"

	"github.com/bagdasarian/volunteer-app/internal/domain"
)

type GroupRepository interface {
	Create(ctx context.Context, group *domain.VolunteerGroup) error
	Update(ctx context.Context, group *domain.VolunteerGroup) error
	GetByID(ctx context.Context, id int64) (*domain.VolunteerGroup, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	List(ctx context.Context) ([]*domain.VolunteerGroup, error)
	ListByOrganizer(ctx context.Context, organizerID int64) ([]*domain.VolunteerGroup, error)
	Delete(ctx context.Context, id int64) error
}
