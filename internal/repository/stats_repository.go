package repository

import (
	"context"

	"github.com/bagdasarian/volunteer-app/internal/domain"
)

type StatsRepository interface {
	GetVolunteerOccupancy(ctx context.Context) ([]*domain.VolunteerOccupancy, error)
}
