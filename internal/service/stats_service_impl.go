package service

import (
	"context"

	"github.com/bagdasarian/volunteer-app/internal/domain"
	"github.com/bagdasarian/volunteer-app/internal/repository"
)

type statsService struct {
	statsRepo repository.StatsRepository
}

func NewStatsService(statsRepo repository.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (s *statsService) GetVolunteerOccupancy(ctx context.Context) ([]*domain.VolunteerOccupancy, error) {
	return s.statsRepo.GetVolunteerOccupancy(ctx)
}
