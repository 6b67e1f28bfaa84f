package repository

import (
	"context"

	"github.com/bagdasarian/volunteer-app/internal/domain"
)

type ReportRepository interface {
	Create(ctx context.Context, report *domain.Report) error
	GetByID(ctx context.Context, id int64) (*domain.Report, error)
	List(ctx context.Context) ([]*domain.Report, error)
	Count(ctx context.Context) (int, error)
}
