package user

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/dmitrymomot/userapi/pkg/logger"
)

// CollectionName is the MongoDB collection holding users.
const CollectionName = "users"

// Repository persists users in MongoDB. It is safe for concurrent use.
type Repository struct {
	coll *mongo.Collection
	log  *slog.Logger
}

// NewRepository binds a repository to the users collection of db.
func NewRepository(db *mongo.Database, log *slog.Logger) *Repository {
	if log == nil {
		log = slog.Default()
	}
	return &Repository{
		coll: db.Collection(CollectionName),
		log:  log.With(logger.Component("user.repository")),
	}
}

// ParseID converts a 24-character hex string into an ObjectID.
func ParseID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, ErrInvalidID
	}
	return oid, nil
}

// Create inserts a new user and returns it with the store-assigned id and
// creation time. The timestamp is truncated to the millisecond precision of
// BSON dates so the returned value matches later reads.
func (r *Repository) Create(ctx context.Context, req CreateUserRequest) (User, error) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	u := User{
		Name:      req.Name,
		Email:     req.Email,
		CreatedAt: &now,
	}

	res, err := r.coll.InsertOne(ctx, u)
	if err != nil {
		return User{}, storageError("insert user", err)
	}

	oid, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return User{}, storageError("insert user", errors.New("unexpected inserted id type"))
	}
	u.ID = &oid

	r.log.DebugContext(ctx, "user created", logger.UserID(oid.Hex()))
	return u, nil
}

// List returns every user in natural store order. The result is never nil.
func (r *Repository) List(ctx context.Context) ([]User, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, storageError("find users", err)
	}

	users := make([]User, 0)
	if err := cur.All(ctx, &users); err != nil {
		return nil, storageError("decode users", err)
	}
	return users, nil
}

// FindByID returns ErrInvalidID for malformed ids without touching the store,
// and ErrNotFound when no document matches.
func (r *Repository) FindByID(ctx context.Context, id string) (User, error) {
	oid, err := ParseID(id)
	if err != nil {
		return User{}, err
	}

	var u User
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return User{}, ErrNotFound
		}
		return User{}, storageError("find user", err)
	}
	return u, nil
}

// Update applies the present fields of req. A patch without fields still
// issues an empty $set. Matching no document is not an error.
func (r *Repository) Update(ctx context.Context, id string, req UpdateUserRequest) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: req.setDocument()}},
	)
	if err != nil {
		return storageError("update user", err)
	}
	if res.MatchedCount == 0 {
		r.log.DebugContext(ctx, "update matched no user", logger.UserID(id))
	}
	return nil
}

// Delete removes the user if present. Deleting a missing user succeeds.
func (r *Repository) Delete(ctx context.Context, id string) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return storageError("delete user", err)
	}
	if res.DeletedCount == 0 {
		r.log.DebugContext(ctx, "delete matched no user", logger.UserID(id))
	}
	return nil
}
