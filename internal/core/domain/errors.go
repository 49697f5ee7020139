package domain

import "errors"

var (
	ErrValidation         = errors.New("validation failed")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTodoNotFound       = errors.New("todo not found")
	ErrForbidden          = errors.New("access forbidden")
	ErrRateLimited        = errors.New("rate limit exceeded")
	ErrSessionNotFound    = errors.New("session not found")
)
