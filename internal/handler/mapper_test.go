package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/bagdasarian/volunteer-app/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, getStatusCode(domain.CodeValidation))
	assert.Equal(t, http.StatusConflict, getStatusCode(domain.CodeConflict))
	assert.Equal(t, http.StatusNotFound, getStatusCode(domain.CodeNotFound))
	assert.Equal(t, http.StatusInternalServerError, getStatusCode("UNKNOWN"))
}

func TestRequiredRef(t *testing.T) {
	decode := func(t *testing.T, body string) UpdateProjectRequest {
		t.Helper()
		var req UpdateProjectRequest
		require.NoError(t, json.Unmarshal([]byte(body), &req))
		return req
	}

	t.Run("поле отсутствует - без изменений", func(t *testing.T) {
		req := decode(t, `{}`)

		id, err := requiredRef(req.Organizer, "organizer")

		require.NoError(t, err)
		assert.False(t, id.Set)
	})

	t.Run("явный null - ошибка валидации", func(t *testing.T) {
		req := decode(t, `{"organizer":null}`)

		_, err := requiredRef(req.Organizer, "organizer")

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Contains(t, err.Error(), "organizer.id is required")
	})

	t.Run("ссылка без id - ошибка валидации", func(t *testing.T) {
		req := decode(t, `{"organizer":{}}`)

		_, err := requiredRef(req.Organizer, "organizer")

		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("ссылка с id", func(t *testing.T) {
		req := decode(t, `{"organizer":{"id":7}}`)

		id, err := requiredRef(req.Organizer, "organizer")

		require.NoError(t, err)
		value, ok := id.Get()
		assert.True(t, ok)
		assert.Equal(t, int64(7), value)
	})
}

func TestAssigneeChange(t *testing.T) {
	t.Run("тип не передан - без изменений", func(t *testing.T) {
		assert.Nil(t, assigneeChange(nil, &RefRequest{ID: int64Ptr(1)}, nil))
	})

	t.Run("NONE снимает исполнителя", func(t *testing.T) {
		none := "NONE"

		change := assigneeChange(&none, nil, nil)

		require.NotNil(t, change)
		assert.Equal(t, domain.AssigneeNone, change.Type)
		assert.Nil(t, change.UserID)
		assert.Nil(t, change.GroupID)
	})

	t.Run("пользователь", func(t *testing.T) {
		user := "USER"

		change := assigneeChange(&user, &RefRequest{ID: int64Ptr(4)}, nil)

		require.NotNil(t, change)
		assert.Equal(t, domain.AssigneeUser, change.Type)
		require.NotNil(t, change.UserID)
		assert.Equal(t, int64(4), *change.UserID)
	})
}

func TestDomainTaskToHTTP(t *testing.T) {
	task := &domain.Task{
		ID:        1,
		Title:     "T",
		Priority:  domain.PriorityHigh,
		Status:    domain.StatusOpen,
		ProjectID: 2,
		Assignee:  domain.GroupAssignee(3),
	}

	response := domainTaskToHTTP(task)

	assert.Equal(t, "GROUP", response.AssigneeType)
	assert.Nil(t, response.AssigneeUser)
	require.NotNil(t, response.AssigneeGroup)
	assert.Equal(t, int64(3), response.AssigneeGroup.ID)
	assert.Equal(t, int64(2), response.Project.ID)
}

func int64Ptr(v int64) *int64 {
	return &v
}
