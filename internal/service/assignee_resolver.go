package service

import (
	"context"

	"github.com/bagdasarian/volunteer-app/internal/domain"
	"github.com/bagdasarian/volunteer-app/internal/repository"
)

// AssigneeResolver применяет запрошенное изменение исполнителя к задаче.
// Задача изменяется на месте и не сохраняется.
type AssigneeResolver struct {
	userRepo  repository.UserRepository
	groupRepo repository.GroupRepository
}

func NewAssigneeResolver(userRepo repository.UserRepository, groupRepo repository.GroupRepository) *AssigneeResolver {
	return &AssigneeResolver{
		userRepo:  userRepo,
		groupRepo: groupRepo,
	}
}

// Apply: nil - без изменений, NONE - снять исполнителя, USER/GROUP - назначить существующую сущность
func (r *AssigneeResolver) Apply(ctx context.Context, task *domain.Task, change *domain.AssigneeChange) error {
	if change == nil {
		return nil
	}

	switch change.Type {
	case domain.AssigneeNone:
		task.Assignee = domain.NoAssignee()
		return nil

	case domain.AssigneeUser:
		if change.UserID == nil {
			return domain.NewValidationError("assigneeUser.id is required for USER")
		}
		userID := *change.UserID
		exists, err := r.userRepo.ExistsByID(ctx, userID)
		if err != nil {
			return err
		}
		if !exists {
			return domain.NewValidationError("User not found: %d", userID)
		}
		task.Assignee = domain.UserAssignee(userID)
		return nil

	case domain.AssigneeGroup:
		if change.GroupID == nil {
			return domain.NewValidationError("assigneeGroup.id is required for GROUP")
		}
		groupID := *change.GroupID
		exists, err := r.groupRepo.ExistsByID(ctx, groupID)
		if err != nil {
			return err
		}
		if !exists {
			return domain.NewValidationError("Group not found: %d", groupID)
		}
		task.Assignee = domain.GroupAssignee(groupID)
		return nil

	default:
		return domain.NewValidationError("Unknown assignee type")
	}
}
