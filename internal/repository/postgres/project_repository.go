package postgres

import (
	"context"
	"database/sql"

	"github.com/bagdasarian/volunteer-app/internal/domain"
)

type projectRepository struct {
	executor DBExecutor
}

func NewProjectRepository(db *sql.DB) *projectRepository {
	return &projectRepository{executor: db}
}

const projectColumns = `p.id, p.title, p.short_description, p.description, p.organizer_id, p.created_at`

func scanProject(s rowScanner) (*domain.Project, error) {
	project := &domain.Project{}
	var shortDescription, description sql.NullString
	err := s.Scan(
		&project.ID,
		&project.Title,
		&shortDescription,
		&description,
		&project.OrganizerID,
		&project.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	project.ShortDescription = nullString(shortDescription)
	project.Description = nullString(description)
	return project, nil
}

func (r *projectRepository) queryProjects(ctx context.Context, query string, args ...any) ([]*domain.Project, error) {
	rows, err := executorFrom(ctx, r.executor).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := make([]*domain.Project, 0)
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	return projects, rows.Err()
}

func (r *projectRepository) Create(ctx context.Context, project *domain.Project) error {
	query := `
		INSERT INTO projects (title, short_description, description, organizer_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := executorFrom(ctx, r.executor).QueryRowContext(
		ctx,
		query,
		project.Title,
		project.ShortDescription,
		project.Description,
		project.OrganizerID,
		project.CreatedAt,
	).Scan(&project.ID, &project.CreatedAt)

	return mapError(err)
}

func (r *projectRepository) Update(ctx context.Context, project *domain.Project) error {
	query := `
		UPDATE projects
		SET title = $2, short_description = $3, description = $4, organizer_id = $5
		WHERE id = $1
		RETURNING created_at
	`

	err := executorFrom(ctx, r.executor).QueryRowContext(
		ctx,
		query,
		project.ID,
		project.Title,
		project.ShortDescription,
		project.Description,
		project.OrganizerID,
	).Scan(&project.CreatedAt)

	return mapError(err)
}

func (r *projectRepository) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects p WHERE p.id = $1`

	project, err := scanProject(executorFrom(ctx, r.executor).QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapError(err)
	}
	return project, nil
}

func (r *projectRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := executorFrom(ctx, r.executor).QueryRowContext(
		ctx,
		"SELECT EXISTS(SELECT 1 FROM projects WHERE id = $1)",
		id,
	).Scan(&exists)
	return exists, err
}

func (r *projectRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	var exists bool
	err := executorFrom(ctx, r.executor).QueryRowContext(
		ctx,
		"SELECT EXISTS(SELECT 1 FROM projects WHERE LOWER(title) = LOWER($1))",
		title,
	).Scan(&exists)
	return exists, err
}

func (r *projectRepository) List(ctx context.Context) ([]*domain.Project, error) {
	return r.queryProjects(ctx, `SELECT `+projectColumns+` FROM projects p ORDER BY p.id`)
}

func (r *projectRepository) ListByOrganizer(ctx context.Context, organizerID int64) ([]*domain.Project, error) {
	return r.queryProjects(
		ctx,
		`SELECT `+projectColumns+` FROM projects p WHERE p.organizer_id = $1 ORDER BY p.id`,
		organizerID,
	)
}

// ListParticipantsByOrganizer возвращает участников всех проектов организатора без повторов
func (r *projectRepository) ListParticipantsByOrganizer(ctx context.Context, organizerID int64) ([]*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users u
		WHERE u.id IN (
			SELECT pp.user_id
			FROM project_participants pp
			JOIN projects p ON pp.project_id = p.id
			WHERE p.organizer_id = $1
		)
		ORDER BY u.id
	`

	rows, err := executorFrom(ctx, r.executor).QueryContext(ctx, query, organizerID)
	if err != nil {
		return nil, err
	}
	return scanUsers(rows)
}

func (r *projectRepository) Delete(ctx context.Context, id int64) error {
	result, err := executorFrom(ctx, r.executor).ExecContext(ctx, "DELETE FROM projects WHERE id = $1", id)
	if err != nil {
		return mapError(err)
	}
	return expectAffected(result)
}
