package domain

import "time"

type User struct {
	ID           int64
	Email        string
	Name         string
	Surname      string
	Patronymic   *string
	Phone        *string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

// UserPatch - частичное обновление пользователя.
// Password передается в открытом виде и хешируется сервисом.
type UserPatch struct {
	Email      Optional[string]
	Name       Optional[string]
	Surname    Optional[string]
	Patronymic Optional[*string]
	Phone      Optional[*string]
	Password   Optional[string]
	Role       Optional[string]
}
