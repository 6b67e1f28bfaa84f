package postgres

import (
	"context"
	"database/sql"

	"github.com/bagdasarian/volunteer-app/internal/domain"
)

type groupRepository struct {
	executor DBExecutor
}

func NewGroupRepository(db *sql.DB) *groupRepository {
	return &groupRepository{executor: db}
}

func scanGroup(s rowScanner) (*domain.VolunteerGroup, error) {
	group := &domain.VolunteerGroup{}
	err := s.Scan(&group.ID, &group.Name, &group.OrganizerID, &group.CreatedAt)
	if err != nil {
		return nil, err
	}
	return group, nil
}

func (r *groupRepository) queryGroups(ctx context.Context, query string, args ...any) ([]*domain.VolunteerGroup, error) {
	rows, err := executorFrom(ctx, r.executor).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := make([]*domain.VolunteerGroup, 0)
	for rows.Next() {
		group, err := scanGroup(rows)
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, rows.Err()
}

func (r *groupRepository) Create(ctx context.Context, group *domain.VolunteerGroup) error {
	query := `
		INSERT INTO volunteer_groups (name, organizer_id, created_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := executorFrom(ctx, r.executor).QueryRowContext(
		ctx,
		query,
		group.Name,
		group.OrganizerID,
		group.CreatedAt,
	).Scan(&group.ID, &group.CreatedAt)

	return mapError(err)
}

func (r *groupRepository) Update(ctx context.Context, group *domain.VolunteerGroup) error {
	query := `
		UPDATE volunteer_groups
		SET name = $2, organizer_id = $3
		WHERE id = $1
		RETURNING created_at
	`

	err := executorFrom(ctx, r.executor).QueryRowContext(
		ctx,
		query,
		group.ID,
		group.Name,
		group.OrganizerID,
	).Scan(&group.CreatedAt)

	return mapError(err)
}

func (r *groupRepository) GetByID(ctx context.Context, id int64) (*domain.VolunteerGroup, error) {
	query := `SELECT id, name, organizer_id, created_at FROM volunteer_groups WHERE id = $1`

	group, err := scanGroup(executorFrom(ctx, r.executor).QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapError(err)
	}
	return group, nil
}

func (r *groupRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := executorFrom(ctx, r.executor).QueryRowContext(
		ctx,
		"SELECT EXISTS(SELECT 1 FROM volunteer_groups WHERE id = $1)",
		id,
	).Scan(&exists)
	return exists, err
}

func (r *groupRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := executorFrom(ctx, r.executor).QueryRowContext(
		ctx,
		"SELECT EXISTS(SELECT 1 FROM volunteer_groups WHERE name = $1)",
		name,
	).Scan(&exists)
	return exists, err
}

func (r *groupRepository) List(ctx context.Context) ([]*domain.VolunteerGroup, error) {
	return r.queryGroups(ctx, `SELECT id, name, organizer_id, created_at FROM volunteer_groups ORDER BY id`)
}

func (r *groupRepository) ListByOrganizer(ctx context.Context, organizerID int64) ([]*domain.VolunteerGroup, error) {
	return r.queryGroups(
		ctx,
		`SELECT id, name, organizer_id, created_at FROM volunteer_groups WHERE organizer_id = $1 ORDER BY id`,
		organizerID,
	)
}

func (r *groupRepository) Delete(ctx context.Context, id int64) error {
	result, err := executorFrom(ctx, r.executor).ExecContext(ctx, "DELETE FROM volunteer_groups WHERE id = $1", id)
	if err != nil {
		return mapError(err)
	}
	return expectAffected(result)
}
