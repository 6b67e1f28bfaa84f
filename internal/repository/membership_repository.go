package repository

import (
	"context"
	"time"

	"github.com/bagdasarian/volunteer-app/internal/domain"
)

// MembershipRepository хранит пары (родитель, пользователь): участников
// проектов и членов групп.
type MembershipRepository interface {
	Exists(ctx context.Context, parentID, userID int64) (bool, error)
	Add(ctx context.Context, parentID, userID int64, at time.Time) error
	Remove(ctx context.Context, parentID, userID int64) error
	ListUsers(ctx context.Context, parentID int64) ([]*domain.User, error)
	DeleteByParent(ctx context.Context, parentID int64) error
	DeleteByUser(ctx context.Context, userID int64) error
}
