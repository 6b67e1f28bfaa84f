package service

import (
	"context"
	"errors"
	"time"

	"github.com/bagdasarian/volunteer-app/internal/domain"
	"github.com/bagdasarian/volunteer-app/internal/repository"
)

// parentChecker проверяет существование родителя (проекта или группы)
type parentChecker interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

type membershipManager struct {
	parentName     string
	parentRepo     parentChecker
	userRepo       repository.UserRepository
	membershipRepo repository.MembershipRepository
}

// NewProjectParticipation создает менеджер участников проектов
func NewProjectParticipation(
	projectRepo repository.ProjectRepository,
	userRepo repository.UserRepository,
	participantRepo repository.MembershipRepository,
) MembershipService {
	return &membershipManager{
		parentName:     "project",
		parentRepo:     projectRepo,
		userRepo:       userRepo,
		membershipRepo: participantRepo,
	}
}

// NewGroupMembership создает менеджер членов групп
func NewGroupMembership(
	groupRepo repository.GroupRepository,
	userRepo repository.UserRepository,
	memberRepo repository.MembershipRepository,
) MembershipService {
	return &membershipManager{
		parentName:     "group",
		parentRepo:     groupRepo,
		userRepo:       userRepo,
		membershipRepo: memberRepo,
	}
}

func (m *membershipManager) ensureParent(ctx context.Context, parentID int64) error {
	exists, err := m.parentRepo.ExistsByID(ctx, parentID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.NewNotFoundError(m.parentName)
	}
	return nil
}

func (m *membershipManager) Add(ctx context.Context, parentID, userID int64) error {
	if err := m.ensureParent(ctx, parentID); err != nil {
		return err
	}

	exists, err := m.userRepo.ExistsByID(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.NewNotFoundError("user")
	}

	isMember, err := m.membershipRepo.Exists(ctx, parentID, userID)
	if err != nil {
		return err
	}
	if isMember {
		return domain.ErrAlreadyMember
	}

	// Проверка и вставка не атомарны: параллельный дубликат отклонит уникальный индекс
	err = m.membershipRepo.Add(ctx, parentID, userID, time.Now())
	if errors.Is(err, repository.ErrReference) {
		return domain.NewNotFoundError(m.parentName + " or user")
	}
	return conflict(err, domain.ErrAlreadyMember)
}

func (m *membershipManager) Remove(ctx context.Context, parentID, userID int64) error {
	err := m.membershipRepo.Remove(ctx, parentID, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.NewNotFoundError("membership of user in " + m.parentName)
	}
	return err
}

func (m *membershipManager) List(ctx context.Context, parentID int64) ([]*domain.User, error) {
	if err := m.ensureParent(ctx, parentID); err != nil {
		return nil, err
	}
	return m.membershipRepo.ListUsers(ctx, parentID)
}
