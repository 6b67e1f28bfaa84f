package service

import (
	"context"

	"github.com/bagdasarian/volunteer-app/internal/domain"
)

type ReportService interface {
	List(ctx context.Context) ([]*domain.Report, error)
	Get(ctx context.Context, id int64) (*domain.Report, error)
	Render(ctx context.Context, id int64) ([]byte, error)
	Export(ctx context.Context, id int64, format string) (*ReportFile, error)
	RenderTemplate(ctx context.Context, templateRef, format string) ([]byte, error)
	SeedCatalog(ctx context.Context, entries []*domain.Report) (int, error)
}

// ReportEngine - внешний движок отчетов, получает ссылку на шаблон и возвращает готовый документ
type ReportEngine interface {
	Render(ctx context.Context, templateRef string, format domain.ReportFormat) ([]byte, error)
}

type ReportFile struct {
	Name        string
	ContentType string
	Content     []byte
}
