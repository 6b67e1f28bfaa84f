package postgres

import (
	"context"
	"database/sql"

	"github.com/bagdasarian/volunteer-app/internal/domain"
)

type rowScanner interface {
	Scan(dest ...any) error
}

type userRepository struct {
	executor DBExecutor
}

func NewUserRepository(db *sql.DB) *userRepository {
	return &userRepository{executor: db}
}

const userColumns = `u.id, u.email, u.name, u.surname, u.patronymic, u.phone, u.password_hash, u.role, u.created_at`

func scanUser(s rowScanner) (*domain.User, error) {
	user := &domain.User{}
	var patronymic, phone sql.NullString
	err := s.Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.Surname,
		&patronymic,
		&phone,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	user.Patronymic = nullString(patronymic)
	user.Phone = nullString(phone)
	return user, nil
}

func scanUsers(rows *sql.Rows) ([]*domain.User, error) {
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (email, name, surname, patronymic, phone, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	err := executorFrom(ctx, r.executor).QueryRowContext(
		ctx,
		query,
		user.Email,
		user.Name,
		user.Surname,
		user.Patronymic,
		user.Phone,
		user.PasswordHash,
		user.Role,
		user.CreatedAt,
	).Scan(&user.ID, &user.CreatedAt)

	return mapError(err)
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET email = $2, name = $3, surname = $4, patronymic = $5, phone = $6, password_hash = $7, role = $8
		WHERE id = $1
		RETURNING created_at
	`

	err := executorFrom(ctx, r.executor).QueryRowContext(
		ctx,
		query,
		user.ID,
		user.Email,
		user.Name,
		user.Surname,
		user.Patronymic,
		user.Phone,
		user.PasswordHash,
		user.Role,
	).Scan(&user.CreatedAt)

	return mapError(err)
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users u WHERE u.id = $1`

	user, err := scanUser(executorFrom(ctx, r.executor).QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapError(err)
	}
	return user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users u WHERE u.email = $1`

	user, err := scanUser(executorFrom(ctx, r.executor).QueryRowContext(ctx, query, email))
	if err != nil {
		return nil, mapError(err)
	}
	return user, nil
}

func (r *userRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := executorFrom(ctx, r.executor).QueryRowContext(
		ctx,
		"SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)",
		id,
	).Scan(&exists)
	return exists, err
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := executorFrom(ctx, r.executor).QueryRowContext(
		ctx,
		"SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)",
		email,
	).Scan(&exists)
	return exists, err
}

func (r *userRepository) List(ctx context.Context) ([]*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users u ORDER BY u.id`

	rows, err := executorFrom(ctx, r.executor).QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	return scanUsers(rows)
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	result, err := executorFrom(ctx, r.executor).ExecContext(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return mapError(err)
	}
	return expectAffected(result)
}
