package postgres

import (
	"context"
	"database/sql"

	"github.com/bagdasarian/volunteer-app/internal/domain"
)

type reportRepository struct {
	executor DBExecutor
}

func NewReportRepository(db *sql.DB) *reportRepository {
	return &reportRepository{executor: db}
}

func scanReport(s rowScanner) (*domain.Report, error) {
	report := &domain.Report{}
	var template, description sql.NullString
	if err := s.Scan(&report.ID, &report.Name, &template, &description); err != nil {
		return nil, err
	}
	report.Template = template.String
	report.Description = nullString(description)
	return report, nil
}

func (r *reportRepository) Create(ctx context.Context, report *domain.Report) error {
	query := `
		INSERT INTO reports (name, birt_template, description)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := executorFrom(ctx, r.executor).QueryRowContext(
		ctx,
		query,
		report.Name,
		report.Template,
		report.Description,
	).Scan(&report.ID)

	return mapError(err)
}

func (r *reportRepository) GetByID(ctx context.Context, id int64) (*domain.Report, error) {
	report, err := scanReport(executorFrom(ctx, r.executor).QueryRowContext(
		ctx,
		"SELECT id, name, birt_template, description FROM reports WHERE id = $1",
		id,
	))
	if err != nil {
		return nil, mapError(err)
	}
	return report, nil
}

func (r *reportRepository) List(ctx context.Context) ([]*domain.Report, error) {
	rows, err := executorFrom(ctx, r.executor).QueryContext(
		ctx,
		"SELECT id, name, birt_template, description FROM reports ORDER BY id",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reports := make([]*domain.Report, 0)
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, rows.Err()
}

func (r *reportRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := executorFrom(ctx, r.executor).QueryRowContext(ctx, "SELECT COUNT(*) FROM reports").Scan(&count)
	return count, err
}
