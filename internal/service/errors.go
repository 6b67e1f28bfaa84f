package service

import (
	"errors"
	"strings"

	"github.com/bagdasarian/volunteer-app/internal/domain"
	"github.com/bagdasarian/volunteer-app/internal/repository"
)

// notFound переводит repository.ErrNotFound в доменную ошибку NOT_FOUND
func notFound(err error, resource string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return domain.NewNotFoundError(resource)
	}
	return err
}

// conflict переводит отказ хранилища по уникальности в ту же ошибку, что дает предварительная проверка
func conflict(err error, conflictErr *domain.DomainError) error {
	if errors.Is(err, repository.ErrDuplicate) {
		return conflictErr
	}
	return err
}

// requireText обрезает пробелы и возвращает ошибку валидации для пустой строки
func requireText(value, field string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", domain.NewValidationError("%s is required", field)
	}
	return trimmed, nil
}
