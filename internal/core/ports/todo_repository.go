package ports

import (
	"context"

	"github.com/tasknest/todo-system/internal/core/domain"
)

// TodoRepository defines the interface for todo item persistence.
// PageByOwner returns items in natural insertion order.
type TodoRepository interface {
	Insert(ctx context.Context, todo *domain.Todo) (string, error)
	FindByID(ctx context.Context, id string) (*domain.Todo, error)
	UpdateText(ctx context.Context, id, text string) error
	DeleteByID(ctx context.Context, id string) error
	PageByOwner(ctx context.Context, owner string, skip, limit int64) ([]domain.Todo, error)
}
