package ports

import (
	"context"

	"github.com/tasknest/todo-system/internal/core/domain"
)

// SessionStore persists session records keyed by their opaque identifier.
//
// DeleteByOwner is a named capability rather than an ad hoc query: it removes
// every record whose embedded snapshot matches the given username, scanning by
// the embedded field instead of the primary key. Implementations must tolerate
// record shapes that carry more fields than the {authenticated, user} contract.
type SessionStore interface {
	Put(ctx context.Context, session *domain.Session) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
	DeleteByOwner(ctx context.Context, username string) (int64, error)
}
