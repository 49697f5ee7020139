package ports

import (
	"context"

	"github.com/tasknest/todo-system/internal/core/domain"
)

// SessionService attaches and detaches authenticated user snapshots to
// server-side session records. Resolve is the authorization gate's lookup:
// unknown, expired and unauthenticated sessions all resolve to
// domain.ErrSessionNotFound.
type SessionService interface {
	Bind(ctx context.Context, snapshot domain.UserSnapshot) (string, error)
	Resolve(ctx context.Context, sessionID string) (*domain.UserSnapshot, error)
	Unbind(ctx context.Context, sessionID string) error
	UnbindAll(ctx context.Context, username string) (int64, error)
}
