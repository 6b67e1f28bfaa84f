package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bagdasarian/volunteer-app/internal/domain"
	"github.com/bagdasarian/volunteer-app/internal/handler"
	"github.com/bagdasarian/volunteer-app/internal/repository"
	"github.com/bagdasarian/volunteer-app/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testRepos struct {
	tx           *service.MockTransactor
	users        *service.MockUserRepository
	projects     *service.MockProjectRepository
	groups       *service.MockGroupRepository
	tasks        *service.MockTaskRepository
	comments     *service.MockCommentRepository
	participants *service.MockMembershipRepository
	members      *service.MockMembershipRepository
	reports      *service.MockReportRepository
	stats        *service.MockStatsRepository
	hasher       *service.MockPasswordHasher
	sanitizer    *service.MockTextSanitizer
	engine       *service.MockReportEngine
}

func newTestRouter(t *testing.T) (http.Handler, *testRepos) {
	t.Helper()
	m := &testRepos{
		tx:           new(service.MockTransactor),
		users:        new(service.MockUserRepository),
		projects:     new(service.MockProjectRepository),
		groups:       new(service.MockGroupRepository),
		tasks:        new(service.MockTaskRepository),
		comments:     new(service.MockCommentRepository),
		participants: new(service.MockMembershipRepository),
		members:      new(service.MockMembershipRepository),
		reports:      new(service.MockReportRepository),
		stats:        new(service.MockStatsRepository),
		hasher:       new(service.MockPasswordHasher),
		sanitizer:    new(service.MockTextSanitizer),
		engine:       new(service.MockReportEngine),
	}

	h := handler.NewHandler(handler.Services{
		Users:         service.NewUserService(m.tx, m.users, m.participants, m.members, m.tasks, m.hasher),
		Projects:      service.NewProjectService(m.tx, m.projects, m.participants, m.users),
		Participation: service.NewProjectParticipation(m.projects, m.users, m.participants),
		Groups:        service.NewGroupService(m.tx, m.groups, m.members, m.users, m.tasks),
		Membership:    service.NewGroupMembership(m.groups, m.users, m.members),
		Tasks:         service.NewTaskService(m.tasks, m.projects, service.NewAssigneeResolver(m.users, m.groups)),
		Comments:      service.NewCommentService(m.comments, m.tasks, m.users, m.sanitizer),
		Reports:       service.NewReportService(m.tx, m.reports, m.engine),
		Stats:         service.NewStatsService(m.stats),
	}, zap.NewNop())

	return NewRouter(h, zap.NewNop()), m
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) handler.ErrorDetail {
	t.Helper()
	var response handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	return response.Error
}

func TestRouter_Health(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRouter_RequestIDPropagated(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Header().Get("X-Request-ID"))
}

func TestRouter_Users(t *testing.T) {
	t.Run("создание пользователя без хеша в ответе", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.users.On("ExistsByEmail", mock.Anything, "a@x.com").Return(false, nil).Once()
		m.hasher.On("Hash", "secret").Return("hashed", nil).Once()
		m.users.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.User).ID = 1
		}).Return(nil).Once()

		rec := doRequest(t, router, http.MethodPost, "/api/users",
			`{"email":"a@x.com","name":"Anna","surname":"Ivanova","password":"secret","role":"VOLUNTEER"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.NotContains(t, rec.Body.String(), "hashed")
		var user handler.UserResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&user))
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, "a@x.com", user.Email)
	})

	t.Run("дубликат email - 409", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.users.On("ExistsByEmail", mock.Anything, "a@x.com").Return(true, nil).Once()

		rec := doRequest(t, router, http.MethodPost, "/api/users",
			`{"email":"a@x.com","name":"B","surname":"C","password":"x","role":"VOLUNTEER"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, domain.CodeConflict, decodeError(t, rec).Code)
	})

	t.Run("некорректный JSON - 400", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rec := doRequest(t, router, http.MethodPost, "/api/users", `{"email":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("некорректный id - 400", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rec := doRequest(t, router, http.MethodGet, "/api/users/abc", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("пользователь не найден - 404", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.users.On("GetByID", mock.Anything, int64(404)).Return(nil, repository.ErrNotFound).Once()

		rec := doRequest(t, router, http.MethodGet, "/api/users/404", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, domain.CodeNotFound, decodeError(t, rec).Code)
	})

	t.Run("PATCH с null очищает отчество", func(t *testing.T) {
		router, m := newTestRouter(t)

		patronymic := "Petrovna"
		m.users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{
			ID: 1, Email: "a@x.com", Name: "Anna", Surname: "Ivanova", Patronymic: &patronymic, Role: "VOLUNTEER",
		}, nil).Once()
		m.users.On("Update", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.Patronymic == nil && u.Name == "Anna"
		})).Return(nil).Once()

		rec := doRequest(t, router, http.MethodPatch, "/api/users/1", `{"patronymic":null}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"patronymic":null`)
		m.users.AssertExpectations(t)
	})

	t.Run("неверный пароль при входе - 400", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.users.On("GetByEmail", mock.Anything, "a@x.com").Return(&domain.User{ID: 1, PasswordHash: "hashed"}, nil).Once()
		m.hasher.On("Verify", "wrong", "hashed").Return(false).Once()

		rec := doRequest(t, router, http.MethodPost, "/api/auth/login", `{"email":"a@x.com","password":"wrong"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid email or password", decodeError(t, rec).Message)
	})
}

func TestRouter_Memberships(t *testing.T) {
	t.Run("добавление участника - 204, повтор - 409", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.projects.On("ExistsByID", mock.Anything, int64(1)).Return(true, nil).Twice()
		m.users.On("ExistsByID", mock.Anything, int64(2)).Return(true, nil).Twice()
		m.participants.On("Exists", mock.Anything, int64(1), int64(2)).Return(false, nil).Once()
		m.participants.On("Add", mock.Anything, int64(1), int64(2), mock.Anything).Return(nil).Once()
		m.participants.On("Exists", mock.Anything, int64(1), int64(2)).Return(true, nil).Once()

		first := doRequest(t, router, http.MethodPost, "/api/projects/1/participants/2", "")
		second := doRequest(t, router, http.MethodPost, "/api/projects/1/participants/2", "")

		assert.Equal(t, http.StatusNoContent, first.Code)
		assert.Equal(t, http.StatusConflict, second.Code)
	})

	t.Run("удаление отсутствующего члена группы - 404", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.members.On("Remove", mock.Anything, int64(3), int64(2)).Return(repository.ErrNotFound).Once()

		rec := doRequest(t, router, http.MethodDelete, "/api/groups/3/members/2", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("список членов группы", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.groups.On("ExistsByID", mock.Anything, int64(3)).Return(true, nil).Once()
		m.members.On("ListUsers", mock.Anything, int64(3)).Return([]*domain.User{{ID: 2, Email: "b@x.com"}}, nil).Once()

		rec := doRequest(t, router, http.MethodGet, "/api/groups/3/members", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var users []handler.UserResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&users))
		require.Len(t, users, 1)
		assert.Equal(t, int64(2), users[0].ID)
	})
}

func TestRouter_Tasks(t *testing.T) {
	t.Run("создание задачи с исполнителем-группой", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.projects.On("ExistsByID", mock.Anything, int64(1)).Return(true, nil).Once()
		m.groups.On("ExistsByID", mock.Anything, int64(6)).Return(true, nil).Once()
		m.tasks.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Task).ID = 10
		}).Return(nil).Once()

		rec := doRequest(t, router, http.MethodPost, "/api/tasks",
			`{"title":"Collect litter","project":{"id":1},"assigneeType":"GROUP","assigneeGroup":{"id":6}}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		var task handler.TaskResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&task))
		assert.Equal(t, int64(10), task.ID)
		assert.Equal(t, "GROUP", task.AssigneeType)
		assert.Nil(t, task.AssigneeUser)
		require.NotNil(t, task.AssigneeGroup)
		assert.Equal(t, int64(6), task.AssigneeGroup.ID)
		assert.Equal(t, "MEDIUM", task.Priority)
		assert.Equal(t, "OPEN", task.Status)
	})

	t.Run("PATCH без assigneeType не трогает исполнителя", func(t *testing.T) {
		router, m := newTestRouter(t)

		stamp := time.Now().Add(-time.Hour)
		m.tasks.On("GetByID", mock.Anything, int64(10)).Return(&domain.Task{
			ID: 10, Title: "T", Priority: domain.PriorityLow, Status: domain.StatusOpen, ProjectID: 1,
			Assignee: domain.UserAssignee(4), CreatedAt: stamp, UpdatedAt: stamp,
		}, nil).Once()
		m.tasks.On("Update", mock.Anything, mock.Anything).Return(nil).Once()

		rec := doRequest(t, router, http.MethodPatch, "/api/tasks/10", `{"status":"DONE","assigneeType":null}`)

		require.Equal(t, http.StatusOK, rec.Code)
		var task handler.TaskResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&task))
		assert.Equal(t, "DONE", task.Status)
		assert.Equal(t, "USER", task.AssigneeType)
		require.NotNil(t, task.AssigneeUser)
		assert.Equal(t, int64(4), task.AssigneeUser.ID)
	})

	t.Run("PATCH с project:null - 400", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rec := doRequest(t, router, http.MethodPatch, "/api/tasks/10", `{"project":null}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("неизвестный тип исполнителя - 400", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.projects.On("ExistsByID", mock.Anything, int64(1)).Return(true, nil).Once()

		rec := doRequest(t, router, http.MethodPost, "/api/tasks",
			`{"title":"T","project":{"id":1},"assigneeType":"TEAM"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Unknown assignee type", decodeError(t, rec).Message)
	})

	t.Run("задачи по проекту", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.projects.On("ExistsByID", mock.Anything, int64(1)).Return(true, nil).Once()
		m.tasks.On("ListByProject", mock.Anything, int64(1)).Return([]*domain.Task{}, nil).Once()

		rec := doRequest(t, router, http.MethodGet, "/api/tasks/by-project/1", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})
}

func TestRouter_Comments(t *testing.T) {
	t.Run("создание комментария", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.sanitizer.On("Sanitize", "Готово").Return("Готово").Once()
		m.tasks.On("ExistsByID", mock.Anything, int64(10)).Return(true, nil).Once()
		m.users.On("GetByID", mock.Anything, int64(2)).Return(&domain.User{ID: 2, Name: "Anna", Surname: "Ivanova"}, nil).Once()
		m.comments.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

		rec := doRequest(t, router, http.MethodPost, "/api/tasks/10/comments", `{"authorId":2,"text":"Готово"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		var comment handler.CommentResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&comment))
		assert.Equal(t, "Готово", comment.Text)
		assert.Equal(t, "Anna", comment.Author.Name)
	})

	t.Run("удаление комментария", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.tasks.On("ExistsByID", mock.Anything, int64(10)).Return(true, nil).Once()
		m.comments.On("GetByIDAndTask", mock.Anything, int64(5), int64(10)).Return(&domain.TaskComment{ID: 5, TaskID: 10}, nil).Once()
		m.comments.On("Delete", mock.Anything, int64(5)).Return(nil).Once()

		rec := doRequest(t, router, http.MethodDelete, "/api/tasks/10/comments/5", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		m.comments.AssertExpectations(t)
	})
}

func TestRouter_Reports(t *testing.T) {
	t.Run("выгрузка pdf", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.reports.On("GetByID", mock.Anything, int64(1)).Return(&domain.Report{ID: 1, Template: "occ.rptdesign"}, nil).Once()
		m.engine.On("Render", mock.Anything, "occ.rptdesign", domain.ReportFormatPDF).Return([]byte("%PDF"), nil).Once()

		rec := doRequest(t, router, http.MethodGet, "/api/reports/1/export?format=pdf", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
		assert.Equal(t, "attachment; filename=report-1.pdf", rec.Header().Get("Content-Disposition"))
		assert.Equal(t, "%PDF", rec.Body.String())
	})

	t.Run("неподдерживаемый формат - 400", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rec := doRequest(t, router, http.MethodGet, "/api/reports/1/export?format=csv", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("сбой движка - 500", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.reports.On("GetByID", mock.Anything, int64(1)).Return(&domain.Report{ID: 1, Template: "occ.rptdesign"}, nil).Once()
		m.engine.On("Render", mock.Anything, "occ.rptdesign", domain.ReportFormatHTML).Return(nil, assert.AnError).Once()

		rec := doRequest(t, router, http.MethodGet, "/api/reports/1/render", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "INTERNAL_ERROR", decodeError(t, rec).Code)
	})

	t.Run("выгрузка шаблона без каталога", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.engine.On("Render", mock.Anything, "custom.rptdesign", domain.ReportFormatXLS).Return([]byte("xls"), nil).Once()

		rec := doRequest(t, router, http.MethodGet, "/api/reports/template?template=custom.rptdesign&format=xls", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/vnd.ms-excel", rec.Header().Get("Content-Type"))
		assert.Equal(t, "attachment; filename=report.xls", rec.Header().Get("Content-Disposition"))
	})

	t.Run("шаблон не указан - 400", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rec := doRequest(t, router, http.MethodGet, "/api/reports/template?format=pdf", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "template is required", decodeError(t, rec).Message)
	})

	t.Run("занятость волонтеров", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.stats.On("GetVolunteerOccupancy", mock.Anything).Return([]*domain.VolunteerOccupancy{
			{VolunteerID: 1, FullName: "Ivanova Anna", Email: "a@x.com", TotalTasks: 2, ActiveTasks: 1, CompletedTasks: 1},
		}, nil).Once()

		rec := doRequest(t, router, http.MethodGet, "/api/reports/occupancy", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t,
			`[{"volunteerId":1,"fullName":"Ivanova Anna","email":"a@x.com","totalTasks":2,"activeTasks":1,"completedTasks":1}]`,
			rec.Body.String())
	})
}

func TestRecoverer(t *testing.T) {
	h := Recoverer(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
}
