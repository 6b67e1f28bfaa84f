package repository

import "errors"

var (
	// ErrNotFound - запись не найдена
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate - нарушено ограничение уникальности
	ErrDuplicate = errors.New("duplicate record")

	// ErrReference - ссылка на несуществующую запись
	ErrReference = errors.New("dangling reference")
)
