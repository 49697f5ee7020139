package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tasknest/todo-system/internal/core/domain"
)

const sessionsCollection = "sessions"

// SessionRepository persists session records keyed by their opaque identifier.
// Expiry is enforced by a TTL index on expires_at, so times are stored as BSON
// dates rather than unix integers.
type SessionRepository struct {
	coll *mongo.Collection
}

func NewSessionRepository(db *mongo.Database) *SessionRepository {
	return &SessionRepository{coll: db.Collection(sessionsCollection)}
}

type mongoSession struct {
	ID            string        `bson:"_id"`
	Authenticated bool          `bson:"authenticated"`
	User          mongoSnapshot `bson:"user"`
	CreatedAt     time.Time     `bson:"created_at"`
	ExpiresAt     time.Time     `bson:"expires_at"`
}

type mongoSnapshot struct {
	UserID   string `bson:"user_id"`
	Username string `bson:"username"`
	Email    string `bson:"email"`
}

// Put upserts the record by session id; a concurrent re-bind of the same id
// resolves to last write wins.
func (r *SessionRepository) Put(ctx context.Context, session *domain.Session) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoSession{
		ID:            session.ID,
		Authenticated: session.Authenticated,
		User: mongoSnapshot{
			UserID:   session.User.UserID,
			Username: session.User.Username,
			Email:    session.User.Email,
		},
		CreatedAt: session.CreatedAt,
		ExpiresAt: session.ExpiresAt,
	}

	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": session.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("put session: %w", err)
	}
	return nil
}

func (r *SessionRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ms mongoSession
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ms); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("find session: %w", err)
	}

	return &domain.Session{
		ID:            ms.ID,
		Authenticated: ms.Authenticated,
		User: domain.UserSnapshot{
			UserID:   ms.User.UserID,
			Username: ms.User.Username,
			Email:    ms.User.Email,
		},
		CreatedAt: ms.CreatedAt,
		ExpiresAt: ms.ExpiresAt,
	}, nil
}

// Delete removes exactly one record. Deleting an absent id is a no-op.
func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// DeleteByOwner removes every record whose embedded snapshot username matches.
// The filter targets the embedded field only, so documents carrying extra
// fields beyond the {authenticated, user} contract are matched all the same.
func (r *SessionRepository) DeleteByOwner(ctx context.Context, username string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{"user.username": username})
	if err != nil {
		return 0, fmt.Errorf("delete sessions by owner: %w", err)
	}
	return res.DeletedCount, nil
}

// EnsureIndexes creates the TTL expiry index and the owner-scan index used by
// DeleteByOwner.
func (r *SessionRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0),
		},
		{Keys: bson.D{{Key: "user.username", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
