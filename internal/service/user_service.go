package service

import (
	"context"

	"github.com/bagdasarian/volunteer-app/internal/domain"
)

type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
}

type CreateUserInput struct {
	Email      string
	Name       string
	Surname    string
	Patronymic *string
	Phone      *string
	Password   string
	Role       string
}

// PasswordHasher - одностороннее хеширование паролей
type PasswordHasher interface {
	Hash(secret string) (string, error)
	Verify(secret, digest string) bool
}
