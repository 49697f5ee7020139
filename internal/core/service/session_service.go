package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tasknest/todo-system/internal/core/domain"
	"github.com/tasknest/todo-system/internal/core/ports"
)

const defaultSessionTTL = 24 * time.Hour

// SessionService binds authenticated user snapshots to server-side session
// records. Bind upserts by session id, so a racing re-bind resolves to last
// write wins.
type SessionService struct {
	store  ports.SessionStore
	ttl    time.Duration
	logger zerolog.Logger
}

func NewSessionService(store ports.SessionStore, ttl time.Duration, logger zerolog.Logger) *SessionService {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionService{store: store, ttl: ttl, logger: logger}
}

// Bind creates an authenticated session for the snapshot and returns its
// fresh opaque identifier.
func (s *SessionService) Bind(ctx context.Context, snapshot domain.UserSnapshot) (string, error) {
	now := time.Now().UTC()
	session := &domain.Session{
		ID:            uuid.NewString(),
		Authenticated: true,
		User:          snapshot,
		CreatedAt:     now,
		ExpiresAt:     now.Add(s.ttl),
	}

	if err := s.store.Put(ctx, session); err != nil {
		return "", err
	}

	s.logger.Info().Str("username", snapshot.Username).Msg("session bound")
	return session.ID, nil
}

// Resolve looks up the session and returns its embedded snapshot. Unknown,
// expired and unauthenticated sessions all yield domain.ErrSessionNotFound.
func (s *SessionService) Resolve(ctx context.Context, sessionID string) (*domain.UserSnapshot, error) {
	if sessionID == "" {
		return nil, domain.ErrSessionNotFound
	}

	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.Authenticated || session.Expired(time.Now().UTC()) {
		return nil, domain.ErrSessionNotFound
	}

	snapshot := session.User
	return &snapshot, nil
}

// Unbind destroys exactly the given session record (single-device logout).
// Unbinding an already-destroyed session is not an error.
func (s *SessionService) Unbind(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.store.Delete(ctx, sessionID)
}

// UnbindAll destroys every session whose embedded snapshot matches username
// ("logout from all devices"). Sessions of other users are untouched.
func (s *SessionService) UnbindAll(ctx context.Context, username string) (int64, error) {
	n, err := s.store.DeleteByOwner(ctx, username)
	if err != nil {
		return 0, err
	}

	s.logger.Info().Str("username", username).Int64("sessions", n).Msg("all sessions unbound")
	return n, nil
}
