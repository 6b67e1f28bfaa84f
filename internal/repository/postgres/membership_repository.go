package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/bagdasarian/volunteer-app/internal/domain"
)

// membershipTable описывает таблицу пар (родитель, пользователь)
type membershipTable struct {
	name         string
	parentColumn string
	timeColumn   string
}

var (
	projectParticipantsTable = membershipTable{name: "project_participants", parentColumn: "project_id", timeColumn: "joined_at"}
	groupMembersTable        = membershipTable{name: "group_members", parentColumn: "group_id", timeColumn: "created_at"}
)

type membershipRepository struct {
	executor DBExecutor
	table    membershipTable
}

func NewProjectParticipantRepository(db *sql.DB) *membershipRepository {
	return &membershipRepository{executor: db, table: projectParticipantsTable}
}

func NewGroupMemberRepository(db *sql.DB) *membershipRepository {
	return &membershipRepository{executor: db, table: groupMembersTable}
}

func (r *membershipRepository) Exists(ctx context.Context, parentID, userID int64) (bool, error) {
	query := fmt.Sprintf(
		"SELECT EXISTS(SELECT 1 FROM %s WHERE %s = $1 AND user_id = $2)",
		r.table.name, r.table.parentColumn,
	)

	var exists bool
	err := executorFrom(ctx, r.executor).QueryRowContext(ctx, query, parentID, userID).Scan(&exists)
	return exists, err
}

// Add вставляет пару; повторная вставка отклоняется уникальным ограничением и возвращает ErrDuplicate
func (r *membershipRepository) Add(ctx context.Context, parentID, userID int64, at time.Time) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (%s, user_id, %s) VALUES ($1, $2, $3)",
		r.table.name, r.table.parentColumn, r.table.timeColumn,
	)

	_, err := executorFrom(ctx, r.executor).ExecContext(ctx, query, parentID, userID, at)
	return mapError(err)
}

func (r *membershipRepository) Remove(ctx context.Context, parentID, userID int64) error {
	query := fmt.Sprintf(
		"DELETE FROM %s WHERE %s = $1 AND user_id = $2",
		r.table.name, r.table.parentColumn,
	)

	result, err := executorFrom(ctx, r.executor).ExecContext(ctx, query, parentID, userID)
	if err != nil {
		return err
	}
	return expectAffected(result)
}

// ListUsers возвращает пользователей в порядке добавления
func (r *membershipRepository) ListUsers(ctx context.Context, parentID int64) ([]*domain.User, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s m
		JOIN users u ON m.user_id = u.id
		WHERE m.%s = $1
		ORDER BY m.id
	`, userColumns, r.table.name, r.table.parentColumn)

	rows, err := executorFrom(ctx, r.executor).QueryContext(ctx, query, parentID)
	if err != nil {
		return nil, err
	}
	return scanUsers(rows)
}

func (r *membershipRepository) DeleteByParent(ctx context.Context, parentID int64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", r.table.name, r.table.parentColumn)
	_, err := executorFrom(ctx, r.executor).ExecContext(ctx, query, parentID)
	return err
}

func (r *membershipRepository) DeleteByUser(ctx context.Context, userID int64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE user_id = $1", r.table.name)
	_, err := executorFrom(ctx, r.executor).ExecContext(ctx, query, userID)
	return err
}
