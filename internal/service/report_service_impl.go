package service

import (
	"context"
	"fmt"

	"github.com/bagdasarian/volunteer-app/internal/domain"
	"github.com/bagdasarian/volunteer-app/internal/repository"
)

type reportService struct {
	tx         repository.Transactor
	reportRepo repository.ReportRepository
	engine     ReportEngine
}

// NewReportService создает новый экземпляр ReportService.
// Движок принадлежит вызывающему коду, сервис его не закрывает.
func NewReportService(tx repository.Transactor, reportRepo repository.ReportRepository, engine ReportEngine) ReportService {
	return &reportService{
		tx:         tx,
		reportRepo: reportRepo,
		engine:     engine,
	}
}

func (s *reportService) List(ctx context.Context) ([]*domain.Report, error) {
	return s.reportRepo.List(ctx)
}

func (s *reportService) Get(ctx context.Context, id int64) (*domain.Report, error) {
	report, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "report")
	}
	return report, nil
}

func (s *reportService) Render(ctx context.Context, id int64) ([]byte, error) {
	report, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.engine.Render(ctx, report.Template, domain.ReportFormatHTML)
}

func (s *reportService) Export(ctx context.Context, id int64, format string) (*ReportFile, error) {
	reportFormat, err := domain.ExportFormat(format)
	if err != nil {
		return nil, err
	}

	report, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	content, err := s.engine.Render(ctx, report.Template, reportFormat)
	if err != nil {
		return nil, err
	}

	return &ReportFile{
		Name:        fmt.Sprintf("report-%d.%s", report.ID, reportFormat),
		ContentType: reportFormat.ContentType(),
		Content:     content,
	}, nil
}

// RenderTemplate проверяет формат до обращения к шаблону
func (s *reportService) RenderTemplate(ctx context.Context, templateRef, format string) ([]byte, error) {
	reportFormat, err := domain.ExportFormat(format)
	if err != nil {
		return nil, err
	}
	if templateRef == "" {
		return nil, domain.NewValidationError("template is required")
	}
	return s.engine.Render(ctx, templateRef, reportFormat)
}

// SeedCatalog заполняет каталог отчетов, только если он пуст. Возвращает число добавленных записей.
// Записи вставляются в одной транзакции: при ошибке каталог остается пустым.
func (s *reportService) SeedCatalog(ctx context.Context, entries []*domain.Report) (int, error) {
	added := 0
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		count, err := s.reportRepo.Count(ctx)
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		for _, entry := range entries {
			if err := s.reportRepo.Create(ctx, entry); err != nil {
				return fmt.Errorf("seed report %q: %w", entry.Name, err)
			}
		}
		added = len(entries)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return added, nil
}
