package domain

import (
	"database/sql"
	"fmt"
	"time"
)

type Task struct {
	ID          int64
	Title       string
	Description *string
	TaskType    *string
	Priority    TaskPriority
	Status      TaskStatus
	ProjectID   int64
	Assignee    Assignee
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "LOW"
	PriorityMedium TaskPriority = "MEDIUM"
	PriorityHigh   TaskPriority = "HIGH"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type TaskStatus string

const (
	StatusOpen       TaskStatus = "OPEN"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusDone       TaskStatus = "DONE"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusDone:
		return true
	}
	return false
}

type AssigneeType string

const (
	AssigneeNone  AssigneeType = "NONE"
	AssigneeUser  AssigneeType = "USER"
	AssigneeGroup AssigneeType = "GROUP"
)

// Assignee - исполнитель задачи: никто, один пользователь или одна группа.
// Поля закрыты, поэтому пользователь и группа не могут быть заданы одновременно.
type Assignee struct {
	kind AssigneeType
	id   int64
}

func NoAssignee() Assignee {
	return Assignee{}
}

func UserAssignee(userID int64) Assignee {
	return Assignee{kind: AssigneeUser, id: userID}
}

func GroupAssignee(groupID int64) Assignee {
	return Assignee{kind: AssigneeGroup, id: groupID}
}

// Kind возвращает AssigneeNone для задачи без исполнителя.
func (a Assignee) Kind() AssigneeType {
	if a.kind == "" {
		return AssigneeNone
	}
	return a.kind
}

func (a Assignee) IsNone() bool {
	return a.Kind() == AssigneeNone
}

func (a Assignee) UserID() (int64, bool) {
	if a.kind == AssigneeUser {
		return a.id, true
	}
	return 0, false
}

func (a Assignee) GroupID() (int64, bool) {
	if a.kind == AssigneeGroup {
		return a.id, true
	}
	return 0, false
}

// Columns раскладывает исполнителя на три колонки хранения.
// Для задачи без исполнителя все три колонки NULL.
func (a Assignee) Columns() (assigneeType sql.NullString, userID, groupID sql.NullInt64) {
	switch a.kind {
	case AssigneeUser:
		return sql.NullString{String: string(AssigneeUser), Valid: true}, sql.NullInt64{Int64: a.id, Valid: true}, sql.NullInt64{}
	case AssigneeGroup:
		return sql.NullString{String: string(AssigneeGroup), Valid: true}, sql.NullInt64{}, sql.NullInt64{Int64: a.id, Valid: true}
	default:
		return sql.NullString{}, sql.NullInt64{}, sql.NullInt64{}
	}
}

// AssigneeFromColumns собирает исполнителя из колонок хранения и отклоняет
// несогласованные строки.
func AssigneeFromColumns(assigneeType sql.NullString, userID, groupID sql.NullInt64) (Assignee, error) {
	if !assigneeType.Valid || AssigneeType(assigneeType.String) == AssigneeNone {
		if userID.Valid || groupID.Valid {
			return Assignee{}, fmt.Errorf("assignee reference set without assignee type")
		}
		return NoAssignee(), nil
	}

	switch AssigneeType(assigneeType.String) {
	case AssigneeUser:
		if !userID.Valid || groupID.Valid {
			return Assignee{}, fmt.Errorf("inconsistent USER assignee columns")
		}
		return UserAssignee(userID.Int64), nil
	case AssigneeGroup:
		if !groupID.Valid || userID.Valid {
			return Assignee{}, fmt.Errorf("inconsistent GROUP assignee columns")
		}
		return GroupAssignee(groupID.Int64), nil
	default:
		return Assignee{}, fmt.Errorf("unknown assignee type %q", assigneeType.String)
	}
}

// AssigneeChange - запрошенное изменение исполнителя.
// nil вместо *AssigneeChange означает "без изменений".
type AssigneeChange struct {
	Type    AssigneeType
	UserID  *int64
	GroupID *int64
}

type TaskPatch struct {
	Title       Optional[string]
	Description Optional[*string]
	TaskType    Optional[*string]
	Priority    Optional[TaskPriority]
	Status      Optional[TaskStatus]
	ProjectID   Optional[int64]
	Assignee    *AssigneeChange
}
