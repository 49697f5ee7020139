package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tasknest/todo-system/internal/core/domain"
	"github.com/tasknest/todo-system/internal/core/ports"
)

const (
	DefaultPageSize = 5
	MaxPageSize     = 50
)

// TodoService is the ownership-enforced mutator: every edit and delete loads
// the target item and compares its owner to the acting username before any
// mutation is applied.
type TodoService struct {
	repo   ports.TodoRepository
	logger zerolog.Logger
}

func NewTodoService(repo ports.TodoRepository, logger zerolog.Logger) *TodoService {
	return &TodoService{repo: repo, logger: logger}
}

// Create validates the text bounds and inserts a new item owned by actor.
// No ownership check is needed; the item has no prior owner.
func (s *TodoService) Create(ctx context.Context, actor, text string) (string, error) {
	if err := domain.ValidateTodoText(text); err != nil {
		return "", err
	}

	id, err := s.repo.Insert(ctx, &domain.Todo{
		Text:      text,
		Username:  actor,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("username", actor).Str("todo_id", id).Msg("todo created")
	return id, nil
}

// Edit replaces the item's text after verifying ownership. The ownership
// check runs on the loaded document before the update is issued; the update
// itself filters by id only, so two devices of the same owner race as last
// write wins.
func (s *TodoService) Edit(ctx context.Context, actor, id, newText string) error {
	if id == "" {
		return fmt.Errorf("%w: missing todo id", domain.ErrValidation)
	}
	if err := domain.ValidateTodoText(newText); err != nil {
		return err
	}

	todo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if todo.Username != actor {
		s.logger.Warn().Str("username", actor).Str("todo_id", id).Msg("edit denied: not owner")
		return domain.ErrForbidden
	}

	return s.repo.UpdateText(ctx, id, newText)
}

// Delete removes the item after verifying ownership. Deleting an id that no
// longer exists yields domain.ErrTodoNotFound.
func (s *TodoService) Delete(ctx context.Context, actor, id string) error {
	if id == "" {
		return fmt.Errorf("%w: missing todo id", domain.ErrValidation)
	}

	todo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if todo.Username != actor {
		s.logger.Warn().Str("username", actor).Str("todo_id", id).Msg("delete denied: not owner")
		return domain.ErrForbidden
	}

	return s.repo.DeleteByID(ctx, id)
}

// ListPage returns up to page.Limit items owned by actor in insertion order,
// skipping the first page.Skip. The owner filter is the authorization
// boundary here; a skip beyond the result count is an empty page, not an
// error.
func (s *TodoService) ListPage(ctx context.Context, actor string, page ports.PageInput) ([]domain.Todo, error) {
	if page.Skip < 0 {
		page.Skip = 0
	}
	if page.Limit <= 0 {
		page.Limit = DefaultPageSize
	}
	if page.Limit > MaxPageSize {
		page.Limit = MaxPageSize
	}

	return s.repo.PageByOwner(ctx, actor, page.Skip, page.Limit)
}
