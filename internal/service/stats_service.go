package service

import (
	"context"

	"github.com/bagdasarian/volunteer-app/internal/domain"
)

type StatsService interface {
	GetVolunteerOccupancy(ctx context.Context) ([]*domain.VolunteerOccupancy, error)
}
