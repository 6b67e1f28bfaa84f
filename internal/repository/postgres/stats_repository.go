package postgres

import (
	"context"
	"database/sql"

	"github.com/bagdasarian/volunteer-app/internal/domain"
)

type statsRepository struct {
	executor DBExecutor
}

func NewStatsRepository(db *sql.DB) *statsRepository {
	return &statsRepository{executor: db}
}

// GetVolunteerOccupancy считает задачи волонтера: назначенные лично и через его группы
func (r *statsRepository) GetVolunteerOccupancy(ctx context.Context) ([]*domain.VolunteerOccupancy, error) {
	query := `
		SELECT u.id,
			CONCAT_WS(' ', u.surname, u.name, u.patronymic) AS full_name,
			u.email,
			COUNT(DISTINCT t.id) AS total_tasks,
			COUNT(DISTINCT t.id) FILTER (WHERE t.status <> 'DONE') AS active_tasks,
			COUNT(DISTINCT t.id) FILTER (WHERE t.status = 'DONE') AS completed_tasks
		FROM users u
		LEFT JOIN group_members gm ON gm.user_id = u.id
		LEFT JOIN tasks t ON t.assignee_user_id = u.id OR t.assignee_group_id = gm.group_id
		GROUP BY u.id, u.surname, u.name, u.patronymic, u.email
		ORDER BY total_tasks DESC, u.id
	`

	rows, err := executorFrom(ctx, r.executor).QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make([]*domain.VolunteerOccupancy, 0)
	for rows.Next() {
		stat := &domain.VolunteerOccupancy{}
		err := rows.Scan(
			&stat.VolunteerID,
			&stat.FullName,
			&stat.Email,
			&stat.TotalTasks,
			&stat.ActiveTasks,
			&stat.CompletedTasks,
		)
		if err != nil {
			return nil, err
		}
		stats = append(stats, stat)
	}

	return stats, rows.Err()
}
