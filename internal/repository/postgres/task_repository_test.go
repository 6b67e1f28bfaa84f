package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bagdasarian/volunteer-app/internal/domain"
	"github.com/bagdasarian/volunteer-app/internal/repository"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var taskRowColumns = []string{
	"id", "title", "description", "task_type", "priority", "status", "project_id",
	"assignee_type", "assignee_user_id", "assignee_group_id", "created_at", "updated_at",
}

func setupTaskRepo(t *testing.T) (*taskRepository, sqlmock.Sqlmock) {
	db, mock := setupMockDB(t)
	return NewTaskRepository(db), mock
}

func TestTaskRepository_Create(t *testing.T) {
	t.Run("исполнитель-группа раскладывается по колонкам", func(t *testing.T) {
		repo, mock := setupTaskRepo(t)

		now := time.Now()
		task := &domain.Task{
			Title:     "Collect litter",
			Priority:  domain.PriorityMedium,
			Status:    domain.StatusOpen,
			ProjectID: 1,
			Assignee:  domain.GroupAssignee(6),
			CreatedAt: now,
			UpdatedAt: now,
		}

		mock.ExpectQuery("INSERT INTO tasks").
			WithArgs("Collect litter", nil, nil, "MEDIUM", "OPEN", int64(1), "GROUP", nil, int64(6), now, now).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(10, now, now))

		err := repo.Create(context.Background(), task)

		require.NoError(t, err)
		assert.Equal(t, int64(10), task.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("несуществующий проект", func(t *testing.T) {
		repo, mock := setupTaskRepo(t)

		mock.ExpectQuery("INSERT INTO tasks").
			WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "tasks_project_id_fkey"})

		err := repo.Create(context.Background(), &domain.Task{Title: "T", ProjectID: 99})

		assert.ErrorIs(t, err, repository.ErrReference)
	})
}

func TestTaskRepository_Update(t *testing.T) {
	t.Run("снятие исполнителя обнуляет все три колонки", func(t *testing.T) {
		repo, mock := setupTaskRepo(t)

		now := time.Now()
		task := &domain.Task{
			ID:        10,
			Title:     "T",
			Priority:  domain.PriorityLow,
			Status:    domain.StatusDone,
			ProjectID: 1,
			Assignee:  domain.NoAssignee(),
			UpdatedAt: now,
		}

		mock.ExpectQuery("UPDATE tasks").
			WithArgs(int64(10), "T", nil, nil, "LOW", "DONE", int64(1), nil, nil, nil, now).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

		require.NoError(t, repo.Update(context.Background(), task))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("задача не найдена", func(t *testing.T) {
		repo, mock := setupTaskRepo(t)

		mock.ExpectQuery("UPDATE tasks").WillReturnError(sql.ErrNoRows)

		err := repo.Update(context.Background(), &domain.Task{ID: 404})

		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestTaskRepository_GetByID(t *testing.T) {
	t.Run("исполнитель-пользователь", func(t *testing.T) {
		repo, mock := setupTaskRepo(t)

		now := time.Now()
		mock.ExpectQuery("SELECT .+ FROM tasks t WHERE t.id = \\$1").
			WithArgs(int64(10)).
			WillReturnRows(sqlmock.NewRows(taskRowColumns).
				AddRow(10, "T", "desc", nil, "HIGH", "IN_PROGRESS", 1, "USER", 4, nil, now, now))

		task, err := repo.GetByID(context.Background(), 10)

		require.NoError(t, err)
		assert.Equal(t, domain.UserAssignee(4), task.Assignee)
		assert.Equal(t, domain.PriorityHigh, task.Priority)
		require.NotNil(t, task.Description)
		assert.Equal(t, "desc", *task.Description)
		assert.Nil(t, task.TaskType)
	})

	t.Run("несогласованные колонки исполнителя", func(t *testing.T) {
		repo, mock := setupTaskRepo(t)

		now := time.Now()
		mock.ExpectQuery("SELECT .+ FROM tasks t WHERE t.id = \\$1").
			WithArgs(int64(10)).
			WillReturnRows(sqlmock.NewRows(taskRowColumns).
				AddRow(10, "T", nil, nil, "HIGH", "OPEN", 1, "USER", nil, 6, now, now))

		task, err := repo.GetByID(context.Background(), 10)

		assert.Nil(t, task)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestTaskRepository_ListByParticipant(t *testing.T) {
	repo, mock := setupTaskRepo(t)

	now := time.Now()
	mock.ExpectQuery("FROM tasks t\\s+WHERE t.project_id IN").
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows(taskRowColumns).
			AddRow(1, "A", nil, nil, "LOW", "OPEN", 1, nil, nil, nil, now, now).
			AddRow(2, "B", nil, nil, "LOW", "OPEN", 2, "GROUP", nil, 6, now, now))

	tasks, err := repo.ListByParticipant(context.Background(), 4)

	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.True(t, tasks[0].Assignee.IsNone())
	assert.Equal(t, domain.GroupAssignee(6), tasks[1].Assignee)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_ClearAssignee(t *testing.T) {
	t.Run("снятие пользователя со всех задач", func(t *testing.T) {
		repo, mock := setupTaskRepo(t)

		mock.ExpectExec("UPDATE tasks\\s+SET assignee_type = NULL.+WHERE assignee_user_id = \\$1").
			WithArgs(int64(4)).
			WillReturnResult(sqlmock.NewResult(0, 3))

		require.NoError(t, repo.ClearAssignee(context.Background(), domain.AssigneeUser, 4))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("тип NONE не поддерживается", func(t *testing.T) {
		repo, _ := setupTaskRepo(t)

		assert.Error(t, repo.ClearAssignee(context.Background(), domain.AssigneeNone, 4))
	})
}
