package handler

import "github.com/bagdasarian/volunteer-app/internal/domain"

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RefRequest - ссылка на сущность в теле запроса: {"id": 1}
type RefRequest struct {
	ID *int64 `json:"id"`
}

type RefResponse struct {
	ID int64 `json:"id"`
}

type CreateUserRequest struct {
	Email      string  `json:"email"`
	Name       string  `json:"name"`
	Surname    string  `json:"surname"`
	Patronymic *string `json:"patronymic"`
	Phone      *string `json:"phone"`
	Password   string  `json:"password"`
	Role       string  `json:"role"`
}

type UpdateUserRequest struct {
	Email      domain.Optional[string]  `json:"email"`
	Name       domain.Optional[string]  `json:"name"`
	Surname    domain.Optional[string]  `json:"surname"`
	Patronymic domain.Optional[*string] `json:"patronymic"`
	Phone      domain.Optional[*string] `json:"phone"`
	Password   domain.Optional[string]  `json:"password"`
	Role       domain.Optional[string]  `json:"role"`
}

type UserResponse struct {
	ID         int64   `json:"id"`
	Email      string  `json:"email"`
	Name       string  `json:"name"`
	Surname    string  `json:"surname"`
	Patronymic *string `json:"patronymic"`
	Phone      *string `json:"phone"`
	Role       string  `json:"role"`
	CreatedAt  string  `json:"createdAt"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateProjectRequest struct {
	Title            string      `json:"title"`
	ShortDescription *string     `json:"shortDescription"`
	Description      *string     `json:"description"`
	Organizer        *RefRequest `json:"organizer"`
}

type UpdateProjectRequest struct {
	Title            domain.Optional[string]      `json:"title"`
	ShortDescription domain.Optional[*string]     `json:"shortDescription"`
	Description      domain.Optional[*string]     `json:"description"`
	Organizer        domain.Optional[*RefRequest] `json:"organizer"`
}

type ProjectResponse struct {
	ID               int64       `json:"id"`
	Title            string      `json:"title"`
	ShortDescription *string     `json:"shortDescription"`
	Description      *string     `json:"description"`
	Organizer        RefResponse `json:"organizer"`
	CreatedAt        string      `json:"createdAt"`
}

type CreateGroupRequest struct {
	Name      string      `json:"name"`
	Organizer *RefRequest `json:"organizer"`
}

type UpdateGroupRequest struct {
	Name      domain.Optional[string]      `json:"name"`
	Organizer domain.Optional[*RefRequest] `json:"organizer"`
}

type GroupResponse struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	Organizer RefResponse `json:"organizer"`
	CreatedAt string      `json:"createdAt"`
}

type CreateTaskRequest struct {
	Title         string      `json:"title"`
	Description   *string     `json:"description"`
	TaskType      *string     `json:"taskType"`
	Priority      *string     `json:"priority"`
	Status        *string     `json:"status"`
	Project       *RefRequest `json:"project"`
	AssigneeType  *string     `json:"assigneeType"`
	AssigneeUser  *RefRequest `json:"assigneeUser"`
	AssigneeGroup *RefRequest `json:"assigneeGroup"`
}

// UpdateTaskRequest: отсутствующий или null assigneeType не меняет исполнителя, "NONE" снимает его
type UpdateTaskRequest struct {
	Title         domain.Optional[string]      `json:"title"`
	Description   domain.Optional[*string]     `json:"description"`
	TaskType      domain.Optional[*string]     `json:"taskType"`
	Priority      domain.Optional[string]      `json:"priority"`
	Status        domain.Optional[string]      `json:"status"`
	Project       domain.Optional[*RefRequest] `json:"project"`
	AssigneeType  *string                      `json:"assigneeType"`
	AssigneeUser  *RefRequest                  `json:"assigneeUser"`
	AssigneeGroup *RefRequest                  `json:"assigneeGroup"`
}

type TaskResponse struct {
	ID            int64        `json:"id"`
	Title         string       `json:"title"`
	Description   *string      `json:"description"`
	TaskType      *string      `json:"taskType"`
	Priority      string       `json:"priority"`
	Status        string       `json:"status"`
	Project       RefResponse  `json:"project"`
	AssigneeType  string       `json:"assigneeType"`
	AssigneeUser  *RefResponse `json:"assigneeUser"`
	AssigneeGroup *RefResponse `json:"assigneeGroup"`
	CreatedAt     string       `json:"createdAt"`
	UpdatedAt     string       `json:"updatedAt"`
}

type CreateCommentRequest struct {
	AuthorID *int64 `json:"authorId"`
	Text     string `json:"text"`
}

type UpdateCommentRequest struct {
	Text string `json:"text"`
}

type CommentAuthorResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

type CommentResponse struct {
	ID        int64                 `json:"id"`
	Text      string                `json:"text"`
	CreatedAt string                `json:"createdAt"`
	Author    CommentAuthorResponse `json:"author"`
}

type ReportResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	BirtTemplate string  `json:"birtTemplate"`
	Description  *string `json:"description"`
}

type VolunteerOccupancyResponse struct {
	VolunteerID    int64  `json:"volunteerId"`
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	TotalTasks     int    `json:"totalTasks"`
	ActiveTasks    int    `json:"activeTasks"`
	CompletedTasks int    `json:"completedTasks"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
