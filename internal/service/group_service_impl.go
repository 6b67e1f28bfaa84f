package service

import (
	"context"
	"errors"
	"time"

	"github.com/bagdasarian/volunteer-app/internal/domain"
	"github.com/bagdasarian/volunteer-app/internal/repository"
)

var errGroupNameExists = domain.NewConflictError("group with this name already exists")

type groupService struct {
	tx         repository.Transactor
	groupRepo  repository.GroupRepository
	memberRepo repository.MembershipRepository
	userRepo   repository.UserRepository
	taskRepo   repository.TaskRepository
}

// NewGroupService создает новый экземпляр GroupService
func NewGroupService(
	tx repository.Transactor,
	groupRepo repository.GroupRepository,
	memberRepo repository.MembershipRepository,
	userRepo repository.UserRepository,
	taskRepo repository.TaskRepository,
) GroupService {
	return &groupService{
		tx:         tx,
		groupRepo:  groupRepo,
		memberRepo: memberRepo,
		userRepo:   userRepo,
		taskRepo:   taskRepo,
	}
}

func (s *groupService) List(ctx context.Context) ([]*domain.VolunteerGroup, error) {
	return s.groupRepo.List(ctx)
}

func (s *groupService) Get(ctx context.Context, id int64) (*domain.VolunteerGroup, error) {
	group, err := s.groupRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "group")
	}
	return group, nil
}

func (s *groupService) ListByOrganizer(ctx context.Context, organizerID int64) ([]*domain.VolunteerGroup, error) {
	return s.groupRepo.ListByOrganizer(ctx, organizerID)
}

func (s *groupService) Create(ctx context.Context, input CreateGroupInput) (*domain.VolunteerGroup, error) {
	name, err := requireText(input.Name, "group name")
	if err != nil {
		return nil, err
	}
	if input.OrganizerID == nil {
		return nil, domain.NewValidationError("organizer.id is required")
	}

	exists, err := s.groupRepo.ExistsByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errGroupNameExists
	}
	if err := s.resolveOrganizer(ctx, *input.OrganizerID); err != nil {
		return nil, err
	}

	group := &domain.VolunteerGroup{
		Name:        name,
		OrganizerID: *input.OrganizerID,
		CreatedAt:   time.Now(),
	}

	if err := s.groupRepo.Create(ctx, group); err != nil {
		return nil, s.translateWriteError(err, group.OrganizerID)
	}
	return group, nil
}

func (s *groupService) Update(ctx context.Context, id int64, patch domain.GroupPatch) (*domain.VolunteerGroup, error) {
	group, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if value, ok := patch.Name.Get(); ok {
		name, err := requireText(value, "group name")
		if err != nil {
			return nil, err
		}
		if name != group.Name {
			exists, err := s.groupRepo.ExistsByName(ctx, name)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, errGroupNameExists
			}
		}
		group.Name = name
	}
	if value, ok := patch.OrganizerID.Get(); ok {
		if err := s.resolveOrganizer(ctx, value); err != nil {
			return nil, err
		}
		group.OrganizerID = value
	}

	if err := s.groupRepo.Update(ctx, group); err != nil {
		return nil, s.translateWriteError(notFound(err, "group"), group.OrganizerID)
	}
	return group, nil
}

// Delete удаляет членов группы и снимает группу с задач, затем удаляет саму группу
func (s *groupService) Delete(ctx context.Context, id int64) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		exists, err := s.groupRepo.ExistsByID(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return domain.NewNotFoundError("group")
		}

		if err := s.memberRepo.DeleteByParent(ctx, id); err != nil {
			return err
		}
		if err := s.taskRepo.ClearAssignee(ctx, domain.AssigneeGroup, id); err != nil {
			return err
		}
		return notFound(s.groupRepo.Delete(ctx, id), "group")
	})
}

func (s *groupService) resolveOrganizer(ctx context.Context, organizerID int64) error {
	exists, err := s.userRepo.ExistsByID(ctx, organizerID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.NewValidationError("Organizer not found: %d", organizerID)
	}
	return nil
}

func (s *groupService) translateWriteError(err error, organizerID int64) error {
	if errors.Is(err, repository.ErrReference) {
		return domain.NewValidationError("Organizer not found: %d", organizerID)
	}
	return conflict(err, errGroupNameExists)
}
