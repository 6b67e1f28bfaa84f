package domain

import "fmt"

const (
	CodeNotFound   = "NOT_FOUND"
	CodeValidation = "BAD_REQUEST"
	CodeConflict   = "CONFLICT"
)

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	// ErrNotFound - ресурс не найден
	ErrNotFound = &DomainError{
		Code:    CodeNotFound,
		Message: "resource not found",
	}

	// ErrValidation - некорректный запрос
	ErrValidation = &DomainError{
		Code:    CodeValidation,
		Message: "bad request",
	}

	// ErrConflict - нарушение уникальности
	ErrConflict = &DomainError{
		Code:    CodeConflict,
		Message: "conflict",
	}

	// ErrAlreadyMember - пара (родитель, пользователь) уже существует
	ErrAlreadyMember = &DomainError{
		Code:    CodeConflict,
		Message: "user is already a member",
	}
)

// NewNotFoundError создает ошибку NOT_FOUND с дополнительным контекстом
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

func NewValidationError(format string, args ...any) *DomainError {
	return &DomainError{
		Code:    CodeValidation,
		Message: fmt.Sprintf(format, args...),
	}
}

func NewConflictError(format string, args ...any) *DomainError {
	return &DomainError{
		Code:    CodeConflict,
		Message: fmt.Sprintf(format, args...),
	}
}
