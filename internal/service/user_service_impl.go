package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bagdasarian/volunteer-app/internal/domain"
	"github.com/bagdasarian/volunteer-app/internal/repository"
)

var (
	errEmailExists        = domain.NewConflictError("email already exists")
	errInvalidCredentials = domain.NewValidationError("invalid email or password")
	errUserReferenced     = domain.NewConflictError("user is still an organizer or comment author")
)

type userService struct {
	tx              repository.Transactor
	userRepo        repository.UserRepository
	participantRepo repository.MembershipRepository
	memberRepo      repository.MembershipRepository
	taskRepo        repository.TaskRepository
	hasher          PasswordHasher
}

// NewUserService создает новый экземпляр UserService
func NewUserService(
	tx repository.Transactor,
	userRepo repository.UserRepository,
	participantRepo repository.MembershipRepository,
	memberRepo repository.MembershipRepository,
	taskRepo repository.TaskRepository,
	hasher PasswordHasher,
) UserService {
	return &userService{
		tx:              tx,
		userRepo:        userRepo,
		participantRepo: participantRepo,
		memberRepo:      memberRepo,
		taskRepo:        taskRepo,
		hasher:          hasher,
	}
}

func (s *userService) List(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.List(ctx)
}

func (s *userService) Get(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "user")
	}
	return user, nil
}

// Create проверяет обязательные поля и уникальность email, пароль сохраняется только в виде хеша
func (s *userService) Create(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	email := strings.TrimSpace(input.Email)
	name := strings.TrimSpace(input.Name)
	surname := strings.TrimSpace(input.Surname)
	role := strings.TrimSpace(input.Role)
	if email == "" || name == "" || surname == "" || input.Password == "" || role == "" {
		return nil, domain.NewValidationError("email, name, surname, password and role are required")
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errEmailExists
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		Name:         name,
		Surname:      surname,
		Patronymic:   input.Patronymic,
		Phone:        input.Phone,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, conflict(err, errEmailExists)
	}
	return user, nil
}

func (s *userService) Update(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if value, ok := patch.Email.Get(); ok {
		email, err := requireText(value, "email")
		if err != nil {
			return nil, err
		}
		if email != user.Email {
			exists, err := s.userRepo.ExistsByEmail(ctx, email)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, errEmailExists
			}
		}
		user.Email = email
	}
	if value, ok := patch.Name.Get(); ok {
		if user.Name, err = requireText(value, "name"); err != nil {
			return nil, err
		}
	}
	if value, ok := patch.Surname.Get(); ok {
		if user.Surname, err = requireText(value, "surname"); err != nil {
			return nil, err
		}
	}
	if value, ok := patch.Patronymic.Get(); ok {
		user.Patronymic = value
	}
	if value, ok := patch.Phone.Get(); ok {
		user.Phone = value
	}
	if value, ok := patch.Password.Get(); ok {
		if value == "" {
			return nil, domain.NewValidationError("password is required")
		}
		if user.PasswordHash, err = s.hasher.Hash(value); err != nil {
			return nil, err
		}
	}
	if value, ok := patch.Role.Get(); ok {
		if user.Role, err = requireText(value, "role"); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, conflict(notFound(err, "user"), errEmailExists)
	}
	return user, nil
}

// Delete удаляет членство пользователя и снимает его с задач, затем удаляет самого пользователя
func (s *userService) Delete(ctx context.Context, id int64) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		exists, err := s.userRepo.ExistsByID(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return domain.NewNotFoundError("user")
		}

		if err := s.participantRepo.DeleteByUser(ctx, id); err != nil {
			return err
		}
		if err := s.memberRepo.DeleteByUser(ctx, id); err != nil {
			return err
		}
		if err := s.taskRepo.ClearAssignee(ctx, domain.AssigneeUser, id); err != nil {
			return err
		}

		err = s.userRepo.Delete(ctx, id)
		if errors.Is(err, repository.ErrReference) {
			return errUserReferenced
		}
		return notFound(err, "user")
	})
}

func (s *userService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, domain.NewValidationError("email and password are required")
	}

	user, err := s.userRepo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, errInvalidCredentials
	}
	return user, nil
}
