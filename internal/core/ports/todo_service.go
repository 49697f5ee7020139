package ports

import (
	"context"

	"github.com/tasknest/todo-system/internal/core/domain"
)

// PageInput carries the already-parsed paging parameters. Out-of-range values
// are normalised by the service: negative skip becomes 0, a non-positive
// limit falls back to the default page size.
type PageInput struct {
	Skip  int64
	Limit int64
}

// TodoService applies create/edit/delete/list semantics on behalf of an
// authenticated actor. Edit and Delete verify that the target item is owned
// by the actor before mutating it.
type TodoService interface {
	Create(ctx context.Context, actor, text string) (string, error)
	Edit(ctx context.Context, actor, id, newText string) error
	Delete(ctx context.Context, actor, id string) error
	ListPage(ctx context.Context, actor string, page PageInput) ([]domain.Todo, error)
}
