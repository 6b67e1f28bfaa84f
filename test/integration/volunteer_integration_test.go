//go:build integration
// +build integration

package integration

import (
	"context"
	"database/sql"
	"testing"

	"github.com/bagdasarian/volunteer-app/internal/domain"
	"github.com/bagdasarian/volunteer-app/internal/repository/postgres"
	"github.com/bagdasarian/volunteer-app/internal/security"
	"github.com/bagdasarian/volunteer-app/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type services struct {
	users         service.UserService
	projects      service.ProjectService
	participation service.MembershipService
	groups        service.GroupService
	membership    service.MembershipService
	tasks         service.TaskService
	comments      service.CommentService
	stats         service.StatsService
}

func newServices(database *sql.DB) services {
	txManager := postgres.NewTxManager(database)
	userRepo := postgres.NewUserRepository(database)
	projectRepo := postgres.NewProjectRepository(database)
	participantRepo := postgres.NewProjectParticipantRepository(database)
	groupRepo := postgres.NewGroupRepository(database)
	memberRepo := postgres.NewGroupMemberRepository(database)
	taskRepo := postgres.NewTaskRepository(database)

	return services{
		users:         service.NewUserService(txManager, userRepo, participantRepo, memberRepo, taskRepo, security.NewBcryptHasher(4)),
		projects:      service.NewProjectService(txManager, projectRepo, participantRepo, userRepo),
		participation: service.NewProjectParticipation(projectRepo, userRepo, participantRepo),
		groups:        service.NewGroupService(txManager, groupRepo, memberRepo, userRepo, taskRepo),
		membership:    service.NewGroupMembership(groupRepo, userRepo, memberRepo),
		tasks:         service.NewTaskService(taskRepo, projectRepo, service.NewAssigneeResolver(userRepo, groupRepo)),
		comments:      service.NewCommentService(postgres.NewCommentRepository(database), taskRepo, userRepo, security.NewTextSanitizer()),
		stats:         service.NewStatsService(postgres.NewStatsRepository(database)),
	}
}

func createUser(t *testing.T, s services, email, role string) *domain.User {
	t.Helper()
	user, err := s.users.Create(context.Background(), service.CreateUserInput{
		Email:    email,
		Name:     "Name",
		Surname:  "Surname",
		Password: "secret",
		Role:     role,
	})
	require.NoError(t, err)
	return user
}

func TestVolunteerScenario(t *testing.T) {
	database := setupTestDB(t)
	s := newServices(database)
	ctx := context.Background()

	organizer := createUser(t, s, "org@x.com", "ORGANIZER")
	volunteer := createUser(t, s, "vol@x.com", "VOLUNTEER")

	project, err := s.projects.Create(ctx, service.CreateProjectInput{Title: "Clean Park", OrganizerID: &organizer.ID})
	require.NoError(t, err)

	_, err = s.projects.Create(ctx, service.CreateProjectInput{Title: "clean park", OrganizerID: &organizer.ID})
	assert.ErrorIs(t, err, domain.ErrConflict, "название проекта уникально без учета регистра")

	require.NoError(t, s.participation.Add(ctx, project.ID, volunteer.ID))
	assert.ErrorIs(t, s.participation.Add(ctx, project.ID, volunteer.ID), domain.ErrConflict)

	group, err := s.groups.Create(ctx, service.CreateGroupInput{Name: "Green", OrganizerID: &organizer.ID})
	require.NoError(t, err)
	require.NoError(t, s.membership.Add(ctx, group.ID, volunteer.ID))

	personal, err := s.tasks.Create(ctx, service.CreateTaskInput{
		Title:     "Bring bags",
		ProjectID: &project.ID,
		Assignee:  &domain.AssigneeChange{Type: domain.AssigneeUser, UserID: &volunteer.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityMedium, personal.Priority)
	assert.Equal(t, domain.StatusOpen, personal.Status)

	groupTask, err := s.tasks.Create(ctx, service.CreateTaskInput{
		Title:     "Collect litter",
		ProjectID: &project.ID,
		Status:    domain.StatusDone,
		Assignee:  &domain.AssigneeChange{Type: domain.AssigneeGroup, GroupID: &group.ID},
	})
	require.NoError(t, err)

	t.Run("задачи участника", func(t *testing.T) {
		tasks, err := s.tasks.ListByParticipant(ctx, volunteer.ID)
		require.NoError(t, err)
		assert.Len(t, tasks, 2)
	})

	t.Run("занятость учитывает задачи группы", func(t *testing.T) {
		rows, err := s.stats.GetVolunteerOccupancy(ctx)
		require.NoError(t, err)

		var found bool
		for _, row := range rows {
			if row.VolunteerID == volunteer.ID {
				found = true
				assert.Equal(t, 2, row.TotalTasks)
				assert.Equal(t, 1, row.ActiveTasks)
				assert.Equal(t, 1, row.CompletedTasks)
			}
		}
		assert.True(t, found)
	})

	t.Run("комментарии новые сверху, HTML вырезан", func(t *testing.T) {
		_, err := s.comments.Create(ctx, personal.ID, &volunteer.ID, "first")
		require.NoError(t, err)
		second, err := s.comments.Create(ctx, personal.ID, &volunteer.ID, "<b>second</b>")
		require.NoError(t, err)
		assert.Equal(t, "second", second.Text)

		comments, err := s.comments.List(ctx, personal.ID)
		require.NoError(t, err)
		require.Len(t, comments, 2)
		assert.Equal(t, second.ID, comments[0].ID)
	})

	t.Run("удаление группы снимает ее с задач", func(t *testing.T) {
		require.NoError(t, s.groups.Delete(ctx, group.ID))

		task, err := s.tasks.Get(ctx, groupTask.ID)
		require.NoError(t, err)
		assert.True(t, task.Assignee.IsNone())
	})

	t.Run("организатор с проектами не удаляется", func(t *testing.T) {
		err := s.users.Delete(ctx, organizer.ID)
		assert.ErrorIs(t, err, domain.ErrConflict)

		_, err = s.users.Get(ctx, organizer.ID)
		assert.NoError(t, err, "транзакция должна откатиться")
	})
}

func TestTaskPatchIntegration(t *testing.T) {
	database := setupTestDB(t)
	s := newServices(database)
	ctx := context.Background()

	organizer := createUser(t, s, "org@x.com", "ORGANIZER")
	volunteer := createUser(t, s, "vol@x.com", "VOLUNTEER")
	project, err := s.projects.Create(ctx, service.CreateProjectInput{Title: "Shelter", OrganizerID: &organizer.ID})
	require.NoError(t, err)

	task, err := s.tasks.Create(ctx, service.CreateTaskInput{
		Title:     "Feed cats",
		ProjectID: &project.ID,
		Assignee:  &domain.AssigneeChange{Type: domain.AssigneeUser, UserID: &volunteer.ID},
	})
	require.NoError(t, err)

	t.Run("пустой патч не меняет задачу", func(t *testing.T) {
		updated, err := s.tasks.Update(ctx, task.ID, domain.TaskPatch{})
		require.NoError(t, err)
		assert.Equal(t, task.Assignee, updated.Assignee)
		assert.True(t, task.UpdatedAt.Equal(updated.UpdatedAt))
	})

	t.Run("NONE снимает исполнителя", func(t *testing.T) {
		updated, err := s.tasks.Update(ctx, task.ID, domain.TaskPatch{
			Assignee: &domain.AssigneeChange{Type: domain.AssigneeNone},
		})
		require.NoError(t, err)
		assert.True(t, updated.Assignee.IsNone())

		stored, err := s.tasks.Get(ctx, task.ID)
		require.NoError(t, err)
		assert.True(t, stored.Assignee.IsNone())
	})

	t.Run("несуществующий проект", func(t *testing.T) {
		_, err := s.tasks.Update(ctx, task.ID, domain.TaskPatch{ProjectID: domain.Some(int64(999))})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}
