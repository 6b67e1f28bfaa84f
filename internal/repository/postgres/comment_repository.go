package postgres

import (
	"context"
	"database/sql"

	"github.com/bagdasarian/volunteer-app/internal/domain"
)

type commentRepository struct {
	executor DBExecutor
}

func NewCommentRepository(db *sql.DB) *commentRepository {
	return &commentRepository{executor: db}
}

const commentSelect = `
	SELECT c.id, c.task_id, c.text, c.created_at, u.id, u.name, u.surname
	FROM task_comments c
	JOIN users u ON c.author_id = u.id
`

func scanComment(s rowScanner) (*domain.TaskComment, error) {
	comment := &domain.TaskComment{}
	err := s.Scan(
		&comment.ID,
		&comment.TaskID,
		&comment.Text,
		&comment.CreatedAt,
		&comment.Author.ID,
		&comment.Author.Name,
		&comment.Author.Surname,
	)
	if err != nil {
		return nil, err
	}
	return comment, nil
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.TaskComment) error {
	query := `
		INSERT INTO task_comments (task_id, author_id, text, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := executorFrom(ctx, r.executor).QueryRowContext(
		ctx,
		query,
		comment.TaskID,
		comment.Author.ID,
		comment.Text,
		comment.CreatedAt,
	).Scan(&comment.ID, &comment.CreatedAt)

	return mapError(err)
}

func (r *commentRepository) UpdateText(ctx context.Context, comment *domain.TaskComment) error {
	result, err := executorFrom(ctx, r.executor).ExecContext(
		ctx,
		"UPDATE task_comments SET text = $2 WHERE id = $1",
		comment.ID,
		comment.Text,
	)
	if err != nil {
		return mapError(err)
	}
	return expectAffected(result)
}

func (r *commentRepository) GetByIDAndTask(ctx context.Context, id, taskID int64) (*domain.TaskComment, error) {
	query := commentSelect + ` WHERE c.id = $1 AND c.task_id = $2`

	comment, err := scanComment(executorFrom(ctx, r.executor).QueryRowContext(ctx, query, id, taskID))
	if err != nil {
		return nil, mapError(err)
	}
	return comment, nil
}

func (r *commentRepository) ListByTask(ctx context.Context, taskID int64) ([]*domain.TaskComment, error) {
	query := commentSelect + ` WHERE c.task_id = $1 ORDER BY c.created_at DESC, c.id DESC`

	rows, err := executorFrom(ctx, r.executor).QueryContext(ctx, query, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := make([]*domain.TaskComment, 0)
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

func (r *commentRepository) Delete(ctx context.Context, id int64) error {
	result, err := executorFrom(ctx, r.executor).ExecContext(ctx, "DELETE FROM task_comments WHERE id = $1", id)
	if err != nil {
		return mapError(err)
	}
	return expectAffected(result)
}
