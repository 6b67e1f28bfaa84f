package service

import (
	"context"

	"github.com/bagdasarian/volunteer-app/internal/domain"
)

// MembershipService управляет парами (родитель, пользователь):
// участниками проекта или членами группы.
type MembershipService interface {
	Add(ctx context.Context, parentID, userID int64) error
	Remove(ctx context.Context, parentID, userID int64) error
	List(ctx context.Context, parentID int64) ([]*domain.User, error)
}
