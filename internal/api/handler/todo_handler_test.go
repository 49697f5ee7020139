package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/tasknest/todo-system/internal/core/domain"
	"github.com/tasknest/todo-system/internal/core/ports"
)

// stubTodoService records calls and returns canned results.
type stubTodoService struct {
	createID  string
	err       error
	lastActor string
	lastText  string
	lastID    string
	lastPage  ports.PageInput
	listOut   []domain.Todo
}

func (s *stubTodoService) Create(_ context.Context, actor, text string) (string, error) {
	s.lastActor, s.lastText = actor, text
	return s.createID, s.err
}

func (s *stubTodoService) Edit(_ context.Context, actor, id, newText string) error {
	s.lastActor, s.lastID, s.lastText = actor, id, newText
	return s.err
}

func (s *stubTodoService) Delete(_ context.Context, actor, id string) error {
	s.lastActor, s.lastID = actor, id
	return s.err
}

func (s *stubTodoService) ListPage(_ context.Context, actor string, page ports.PageInput) ([]domain.Todo, error) {
	s.lastActor, s.lastPage = actor, page
	return s.listOut, s.err
}

func todoContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user", &domain.UserSnapshot{UserID: "id-alice", Username: "alice", Email: "alice@example.com"})
	return c, rec
}

func TestTodoHandler_Create(t *testing.T) {
	svc := &stubTodoService{createID: "todo-1"}
	h := NewTodoHandler(svc)

	c, rec := todoContext(t, http.MethodPost, "/v1/todos", `{"todo":"buy milk"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.lastActor != "alice" || svc.lastText != "buy milk" {
		t.Fatalf("service called with %q/%q", svc.lastActor, svc.lastText)
	}

	var resp messageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Message != "todo created" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
}

func TestTodoHandler_Create_ValidationErrorPropagates(t *testing.T) {
	svc := &stubTodoService{err: domain.ErrValidation}
	h := NewTodoHandler(svc)

	c, _ := todoContext(t, http.MethodPost, "/v1/todos", `{"todo":"ab"}`)
	if err := h.Create(c); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation to propagate, got %v", err)
	}
}

func TestTodoHandler_Update_ForbiddenPropagates(t *testing.T) {
	svc := &stubTodoService{err: domain.ErrForbidden}
	h := NewTodoHandler(svc)

	c, _ := todoContext(t, http.MethodPut, "/v1/todos/todo-9", `{"todo":"new text"}`)
	c.SetParamNames("id")
	c.SetParamValues("todo-9")

	if err := h.Update(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden to propagate, got %v", err)
	}
	if svc.lastID != "todo-9" {
		t.Fatalf("service called with id %q", svc.lastID)
	}
}

func TestTodoHandler_Delete(t *testing.T) {
	svc := &stubTodoService{}
	h := NewTodoHandler(svc)

	c, rec := todoContext(t, http.MethodDelete, "/v1/todos/todo-3", "")
	c.SetParamNames("id")
	c.SetParamValues("todo-3")

	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.lastActor != "alice" || svc.lastID != "todo-3" {
		t.Fatalf("service called with %q/%q", svc.lastActor, svc.lastID)
	}
}

func TestTodoHandler_List_QueryParsing(t *testing.T) {
	cases := []struct {
		query    string
		wantSkip int64
	}{
		{"", 0},
		{"?skip=5", 5},
		{"?skip=abc", 0},
		{"?skip=-3", 0},
	}

	for _, tc := range cases {
		svc := &stubTodoService{}
		h := NewTodoHandler(svc)

		c, rec := todoContext(t, http.MethodGet, "/v1/todos"+tc.query, "")
		if err := h.List(c); err != nil {
			t.Fatalf("List(%q) returned error: %v", tc.query, err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("List(%q): expected 200, got %d", tc.query, rec.Code)
		}
		if svc.lastPage.Skip != tc.wantSkip {
			t.Fatalf("List(%q): expected skip %d, got %d", tc.query, tc.wantSkip, svc.lastPage.Skip)
		}
	}
}

func TestTodoHandler_MissingIdentity(t *testing.T) {
	h := NewTodoHandler(&stubTodoService{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/todos", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.List(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session identity, got %v", err)
	}
}
