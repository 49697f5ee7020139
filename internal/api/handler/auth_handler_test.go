package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/tasknest/todo-system/internal/core/domain"
	"github.com/tasknest/todo-system/internal/core/ports"
)

type stubAuthService struct {
	snapshot *domain.UserSnapshot
	authErr  error
	regUser  *domain.User
	regErr   error
}

func (s *stubAuthService) Register(_ context.Context, _ ports.RegisterInput) (*domain.User, error) {
	return s.regUser, s.regErr
}

func (s *stubAuthService) Authenticate(_ context.Context, _, _ string) (*domain.UserSnapshot, error) {
	return s.snapshot, s.authErr
}

type stubBinder struct {
	boundTo   string
	sessionID string
	unbound   []string
	allFor    []string
}

func (s *stubBinder) Bind(_ context.Context, snapshot domain.UserSnapshot) (string, error) {
	s.boundTo = snapshot.Username
	return s.sessionID, nil
}

func (s *stubBinder) Resolve(_ context.Context, _ string) (*domain.UserSnapshot, error) {
	return nil, domain.ErrSessionNotFound
}

func (s *stubBinder) Unbind(_ context.Context, sessionID string) error {
	s.unbound = append(s.unbound, sessionID)
	return nil
}

func (s *stubBinder) UnbindAll(_ context.Context, username string) (int64, error) {
	s.allFor = append(s.allFor, username)
	return 2, nil
}

func authContext(t *testing.T, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_SetsSessionCookie(t *testing.T) {
	auth := &stubAuthService{snapshot: &domain.UserSnapshot{UserID: "id-alice", Username: "alice", Email: "alice@example.com"}}
	binder := &stubBinder{sessionID: "sess-42"}
	h := NewAuthHandler(auth, binder, "session_id")

	c, rec := authContext(t, "/login", `{"login_id":"alice@example.com","password":"secret123"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if binder.boundTo != "alice" {
		t.Fatalf("expected session bound for alice, got %q", binder.boundTo)
	}

	cookies := rec.Result().Cookies()
	var found *http.Cookie
	for _, ck := range cookies {
		if ck.Name == "session_id" {
			found = ck
		}
	}
	if found == nil {
		t.Fatalf("session cookie not set")
	}
	if found.Value != "sess-42" || !found.HttpOnly {
		t.Fatalf("unexpected cookie: %+v", found)
	}
}

func TestAuthHandler_Login_WrongPassword_NoSessionBound(t *testing.T) {
	auth := &stubAuthService{authErr: domain.ErrInvalidCredentials}
	binder := &stubBinder{sessionID: "sess-42"}
	h := NewAuthHandler(auth, binder, "session_id")

	c, rec := authContext(t, "/login", `{"login_id":"alice","password":"wrong"}`)
	err := h.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
	if binder.boundTo != "" {
		t.Fatalf("session must not be bound on failed login")
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatalf("no cookie should be set on failed login")
	}
}

func TestAuthHandler_Login_MissingPasswordRejectedBeforeService(t *testing.T) {
	auth := &stubAuthService{authErr: errors.New("service should not be reached")}
	binder := &stubBinder{sessionID: "sess-42"}
	h := NewAuthHandler(auth, binder, "session_id")

	c, _ := authContext(t, "/login", `{"login_id":"alice"}`)
	err := h.Login(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 from schema validation, got %v", err)
	}
	if binder.boundTo != "" {
		t.Fatalf("session must not be bound on invalid login payload")
	}
}

func TestAuthHandler_Register_ValidationRejectedBeforeService(t *testing.T) {
	auth := &stubAuthService{regErr: errors.New("service should not be reached")}
	h := NewAuthHandler(auth, &stubBinder{}, "session_id")

	// missing email fails schema validation in the handler
	c, _ := authContext(t, "/register", `{"name":"Bob","username":"bob","password":"pass123","confirm_password":"pass123"}`)
	err := h.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 from schema validation, got %v", err)
	}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	auth := &stubAuthService{regUser: &domain.User{ID: "id-bob", Username: "bob", Email: "bob@example.com"}}
	h := NewAuthHandler(auth, &stubBinder{}, "session_id")

	c, rec := authContext(t, "/register", `{"name":"Bob","email":"bob@example.com","username":"bob","password":"pass123","confirm_password":"pass123"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}
