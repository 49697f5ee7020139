package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/tasknest/todo-system/internal/core/domain"
	"github.com/tasknest/todo-system/internal/core/ports"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		copy.ID = "id-" + user.Username
	}
	r.users[copy.Username] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if u, ok := r.users[username]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func registerAlice(t *testing.T, svc *AuthService) {
	t.Helper()
	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:            "Alice",
		Email:           "alice@example.com",
		Username:        "alice",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, bcrypt.MinCost, zerolog.Nop())

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:            "Alice",
		Email:           "alice@example.com",
		Username:        "alice",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.PasswordHash == "secret123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, bcrypt.MinCost, zerolog.Nop())

	cases := []struct {
		name  string
		input ports.RegisterInput
	}{
		{"missing fields", ports.RegisterInput{Username: "bob", Password: "pass123"}},
		{"short username", ports.RegisterInput{Name: "Bob", Email: "bob@example.com", Username: "bo", Password: "pass123", ConfirmPassword: "pass123"}},
		{"short password", ports.RegisterInput{Name: "Bob", Email: "bob@example.com", Username: "bob", Password: "pw", ConfirmPassword: "pw"}},
		{"bad email", ports.RegisterInput{Name: "Bob", Email: "not-an-email", Username: "bob", Password: "pass123", ConfirmPassword: "pass123"}},
		{"password mismatch", ports.RegisterInput{Name: "Bob", Email: "bob@example.com", Username: "bob", Password: "pass123", ConfirmPassword: "pass124"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Register(context.Background(), tc.input); !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			if len(repo.users) != 0 {
				t.Fatalf("expected no store write on validation failure")
			}
		})
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, bcrypt.MinCost, zerolog.Nop())
	registerAlice(t, svc)

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:            "Other Alice",
		Email:           "other@example.com",
		Username:        "alice",
		Password:        "pass123",
		ConfirmPassword: "pass123",
	})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Authenticate_ByUsername(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, bcrypt.MinCost, zerolog.Nop())
	registerAlice(t, svc)

	snapshot, err := svc.Authenticate(context.Background(), "alice", "secret123")
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if snapshot.Username != "alice" || snapshot.Email != "alice@example.com" {
		t.Fatalf("unexpected snapshot: %+v", snapshot)
	}
	if snapshot.UserID == "" {
		t.Fatalf("expected user id in snapshot")
	}
}

func TestAuthService_Authenticate_ByEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, bcrypt.MinCost, zerolog.Nop())
	registerAlice(t, svc)

	snapshot, err := svc.Authenticate(context.Background(), "alice@example.com", "secret123")
	if err != nil {
		t.Fatalf("Authenticate by email returned error: %v", err)
	}
	if snapshot.Username != "alice" {
		t.Fatalf("unexpected snapshot: %+v", snapshot)
	}
}

func TestAuthService_Authenticate_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, bcrypt.MinCost, zerolog.Nop())
	registerAlice(t, svc)

	if _, err := svc.Authenticate(context.Background(), "alice", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Authenticate_UnknownUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, bcrypt.MinCost, zerolog.Nop())

	if _, err := svc.Authenticate(context.Background(), "ghost", "whatever"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound for username lookup, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "ghost@example.com", "whatever"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound for email lookup, got %v", err)
	}
}

func TestAuthService_Authenticate_MissingCredentials(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, bcrypt.MinCost, zerolog.Nop())

	if _, err := svc.Authenticate(context.Background(), "", "pass"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "alice", ""); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
