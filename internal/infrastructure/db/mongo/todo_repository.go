package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tasknest/todo-system/internal/core/domain"
)

const todosCollection = "todos"

type TodoRepository struct {
	coll *mongo.Collection
}

func NewTodoRepository(db *mongo.Database) *TodoRepository {
	return &TodoRepository{coll: db.Collection(todosCollection)}
}

type mongoTodo struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Text      string             `bson:"todo"`
	Username  string             `bson:"username"`
	CreatedAt int64              `bson:"created_at"`
}

func (r *TodoRepository) Insert(ctx context.Context, todo *domain.Todo) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoTodo{
		Text:      todo.Text,
		Username:  todo.Username,
		CreatedAt: todo.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert todo: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert todo: unexpected id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (r *TodoRepository) FindByID(ctx context.Context, id string) (*domain.Todo, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// a malformed id cannot match any document
		return nil, domain.ErrTodoNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mt mongoTodo
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mt); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTodoNotFound
		}
		return nil, fmt.Errorf("find todo: %w", err)
	}

	return toDomainTodo(mt), nil
}

func (r *TodoRepository) UpdateText(ctx context.Context, id, text string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrTodoNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"todo": text}})
	if err != nil {
		return fmt.Errorf("update todo: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrTodoNotFound
	}
	return nil
}

func (r *TodoRepository) DeleteByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrTodoNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTodoNotFound
	}
	return nil
}

// PageByOwner returns the owner's items in insertion order (_id ascending),
// skipping the first skip matches and returning at most limit.
func (r *TodoRepository) PageByOwner(ctx context.Context, owner string, skip, limit int64) ([]domain.Todo, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, bson.M{"username": owner}, opts)
	if err != nil {
		return nil, fmt.Errorf("page todos: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoTodo
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("page todos: %w", err)
	}

	todos := make([]domain.Todo, 0, len(docs))
	for _, d := range docs {
		todos = append(todos, *toDomainTodo(d))
	}
	return todos, nil
}

// EnsureIndexes creates the owner index used by the paginated listing.
func (r *TodoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "username", Value: 1}},
	})
	return err
}

func toDomainTodo(mt mongoTodo) *domain.Todo {
	return &domain.Todo{
		ID:        mt.ID.Hex(),
		Text:      mt.Text,
		Username:  mt.Username,
		CreatedAt: unixToTime(mt.CreatedAt),
	}
}
