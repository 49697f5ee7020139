package service

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/tasknest/todo-system/internal/core/domain"
	"github.com/tasknest/todo-system/internal/core/ports"
)

const (
	credentialMinLen = 3
	credentialMaxLen = 30
)

var validate = validator.New()

// AuthService implements registration and credential verification.
type AuthService struct {
	users      ports.UserRepository
	bcryptCost int
	logger     zerolog.Logger
}

func NewAuthService(users ports.UserRepository, bcryptCost int, logger zerolog.Logger) *AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{users: users, bcryptCost: bcryptCost, logger: logger}
}

// Register creates a new account. Username and email uniqueness is enforced
// by the repository (unique indexes), surfacing as domain.ErrUserExists.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if err := validateRegistration(input); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         input.Name,
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Msg("user registered")
	return created, nil
}

// Authenticate verifies the submitted credentials and returns the identity
// snapshot on success. When loginID is syntactically an email address the
// lookup runs against the email index, otherwise against the username index;
// exactly one path is taken. No session is created here.
func (s *AuthService) Authenticate(ctx context.Context, loginID, password string) (*domain.UserSnapshot, error) {
	if loginID == "" || password == "" {
		return nil, fmt.Errorf("%w: missing credentials", domain.ErrValidation)
	}

	var (
		user *domain.User
		err  error
	)
	if isEmail(loginID) {
		user, err = s.users.FindByEmail(ctx, loginID)
	} else {
		user, err = s.users.FindByUsername(ctx, loginID)
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.logger.Warn().Str("username", user.Username).Msg("password mismatch")
		return nil, domain.ErrInvalidCredentials
	}

	return &domain.UserSnapshot{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
	}, nil
}

func validateRegistration(in ports.RegisterInput) error {
	if in.Name == "" || in.Email == "" || in.Username == "" || in.Password == "" || in.ConfirmPassword == "" {
		return fmt.Errorf("%w: missing credentials", domain.ErrValidation)
	}
	if n := utf8.RuneCountInString(in.Username); n < credentialMinLen || n > credentialMaxLen {
		return fmt.Errorf("%w: username length should be %d to %d", domain.ErrValidation, credentialMinLen, credentialMaxLen)
	}
	if n := utf8.RuneCountInString(in.Password); n < credentialMinLen || n > credentialMaxLen {
		return fmt.Errorf("%w: password length should be %d to %d", domain.ErrValidation, credentialMinLen, credentialMaxLen)
	}
	if !isEmail(in.Email) {
		return fmt.Errorf("%w: invalid email", domain.ErrValidation)
	}
	if in.Password != in.ConfirmPassword {
		return fmt.Errorf("%w: password mismatch", domain.ErrValidation)
	}
	return nil
}

func isEmail(s string) bool {
	return validate.Var(s, "required,email") == nil
}
