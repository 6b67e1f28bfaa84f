package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bagdasarian/volunteer-app/internal/domain"
)

type taskRepository struct {
	executor DBExecutor
}

func NewTaskRepository(db *sql.DB) *taskRepository {
	return &taskRepository{executor: db}
}

const taskColumns = `t.id, t.title, t.description, t.task_type, t.priority, t.status, t.project_id,
		t.assignee_type, t.assignee_user_id, t.assignee_group_id, t.created_at, t.updated_at`

func scanTask(s rowScanner) (*domain.Task, error) {
	task := &domain.Task{}
	var description, taskType, assigneeType sql.NullString
	var assigneeUserID, assigneeGroupID sql.NullInt64
	var priority, status string
	err := s.Scan(
		&task.ID,
		&task.Title,
		&description,
		&taskType,
		&priority,
		&status,
		&task.ProjectID,
		&assigneeType,
		&assigneeUserID,
		&assigneeGroupID,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	assignee, err := domain.AssigneeFromColumns(assigneeType, assigneeUserID, assigneeGroupID)
	if err != nil {
		return nil, fmt.Errorf("task %d: %w", task.ID, err)
	}

	task.Description = nullString(description)
	task.TaskType = nullString(taskType)
	task.Priority = domain.TaskPriority(priority)
	task.Status = domain.TaskStatus(status)
	task.Assignee = assignee
	return task, nil
}

func (r *taskRepository) queryTasks(ctx context.Context, query string, args ...any) ([]*domain.Task, error) {
	rows, err := executorFrom(ctx, r.executor).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) error {
	query := `
		INSERT INTO tasks (title, description, task_type, priority, status, project_id,
			assignee_type, assignee_user_id, assignee_group_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`

	assigneeType, assigneeUserID, assigneeGroupID := task.Assignee.Columns()
	err := executorFrom(ctx, r.executor).QueryRowContext(
		ctx,
		query,
		task.Title,
		task.Description,
		task.TaskType,
		string(task.Priority),
		string(task.Status),
		task.ProjectID,
		assigneeType,
		assigneeUserID,
		assigneeGroupID,
		task.CreatedAt,
		task.UpdatedAt,
	).Scan(&task.ID, &task.CreatedAt, &task.UpdatedAt)

	return mapError(err)
}

func (r *taskRepository) Update(ctx context.Context, task *domain.Task) error {
	query := `
		UPDATE tasks
		SET title = $2, description = $3, task_type = $4, priority = $5, status = $6, project_id = $7,
			assignee_type = $8, assignee_user_id = $9, assignee_group_id = $10, updated_at = $11
		WHERE id = $1
		RETURNING created_at, updated_at
	`

	assigneeType, assigneeUserID, assigneeGroupID := task.Assignee.Columns()
	err := executorFrom(ctx, r.executor).QueryRowContext(
		ctx,
		query,
		task.ID,
		task.Title,
		task.Description,
		task.TaskType,
		string(task.Priority),
		string(task.Status),
		task.ProjectID,
		assigneeType,
		assigneeUserID,
		assigneeGroupID,
		task.UpdatedAt,
	).Scan(&task.CreatedAt, &task.UpdatedAt)

	return mapError(err)
}

func (r *taskRepository) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks t WHERE t.id = $1`

	task, err := scanTask(executorFrom(ctx, r.executor).QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapError(err)
	}
	return task, nil
}

func (r *taskRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := executorFrom(ctx, r.executor).QueryRowContext(
		ctx,
		"SELECT EXISTS(SELECT 1 FROM tasks WHERE id = $1)",
		id,
	).Scan(&exists)
	return exists, err
}

func (r *taskRepository) List(ctx context.Context) ([]*domain.Task, error) {
	return r.queryTasks(ctx, `SELECT `+taskColumns+` FROM tasks t ORDER BY t.id`)
}

func (r *taskRepository) ListByProject(ctx context.Context, projectID int64) ([]*domain.Task, error) {
	return r.queryTasks(
		ctx,
		`SELECT `+taskColumns+` FROM tasks t WHERE t.project_id = $1 ORDER BY t.id`,
		projectID,
	)
}

func (r *taskRepository) ListByOrganizer(ctx context.Context, organizerID int64) ([]*domain.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks t
		JOIN projects p ON t.project_id = p.id
		WHERE p.organizer_id = $1
		ORDER BY t.id
	`
	return r.queryTasks(ctx, query, organizerID)
}

// ListByParticipant возвращает задачи всех проектов, в которых участвует пользователь
func (r *taskRepository) ListByParticipant(ctx context.Context, userID int64) ([]*domain.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks t
		WHERE t.project_id IN (
			SELECT pp.project_id FROM project_participants pp WHERE pp.user_id = $1
		)
		ORDER BY t.id
	`
	return r.queryTasks(ctx, query, userID)
}

func (r *taskRepository) ClearAssignee(ctx context.Context, kind domain.AssigneeType, id int64) error {
	var column string
	switch kind {
	case domain.AssigneeUser:
		column = "assignee_user_id"
	case domain.AssigneeGroup:
		column = "assignee_group_id"
	default:
		return fmt.Errorf("cannot clear assignee of type %q", kind)
	}

	query := `
		UPDATE tasks
		SET assignee_type = NULL, assignee_user_id = NULL, assignee_group_id = NULL, updated_at = NOW()
		WHERE ` + column + ` = $1
	`
	_, err := executorFrom(ctx, r.executor).ExecContext(ctx, query, id)
	return err
}

func (r *taskRepository) Delete(ctx context.Context, id int64) error {
	result, err := executorFrom(ctx, r.executor).ExecContext(ctx, "DELETE FROM tasks WHERE id = $1", id)
	if err != nil {
		return mapError(err)
	}
	return expectAffected(result)
}
