package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsRepository_GetVolunteerOccupancy(t *testing.T) {
	t.Run("строки отчета", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewStatsRepository(db)

		mock.ExpectQuery("FROM users u\\s+LEFT JOIN group_members gm").
			WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "email", "total_tasks", "active_tasks", "completed_tasks"}).
				AddRow(1, "Ivanova Anna", "a@x.com", 3, 2, 1))

		rows, err := repo.GetVolunteerOccupancy(context.Background())

		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Ivanova Anna", rows[0].FullName)
		assert.Equal(t, 3, rows[0].TotalTasks)
		assert.Equal(t, 2, rows[0].ActiveTasks)
	})

	t.Run("пустой результат - пустой срез", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewStatsRepository(db)

		mock.ExpectQuery("FROM users u").
			WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "email", "total_tasks", "active_tasks", "completed_tasks"}))

		rows, err := repo.GetVolunteerOccupancy(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, rows)
		assert.Empty(t, rows)
	})
}
