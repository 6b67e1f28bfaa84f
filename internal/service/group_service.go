package service

import (
	"context"

	"github.com/bagdasarian/volunteer-app/internal/domain"
)

type GroupService interface {
	List(ctx context.Context) ([]*domain.VolunteerGroup, error)
	Get(ctx context.Context, id int64) (*domain.VolunteerGroup, error)
	ListByOrganizer(ctx context.Context, organizerID int64) ([]*domain.VolunteerGroup, error)
	Create(ctx context.Context, input CreateGroupInput) (*domain.VolunteerGroup, error)
	Update(ctx context.Context, id int64, patch domain.GroupPatch) (*domain.VolunteerGroup, error)
	Delete(ctx context.Context, id int64) error
}

type CreateGroupInput struct {
	Name        string
	OrganizerID *int64
}
