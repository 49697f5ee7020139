package ports

import (
	"context"

	"github.com/tasknest/todo-system/internal/core/domain"
)

// RegisterInput carries the fields submitted on account registration.
type RegisterInput struct {
	Name            string
	Email           string
	Username        string
	Password        string
	ConfirmPassword string
}

// AuthService verifies credentials and registers new accounts. Authenticate
// never creates a session; binding the returned snapshot is the session
// service's job.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Authenticate(ctx context.Context, loginID, password string) (*domain.UserSnapshot, error)
}
