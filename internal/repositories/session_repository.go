package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/imyj1013/community-be/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrSessionNotFound is returned when no live session matches a token
var ErrSessionNotFound = fmt.Errorf("session not found")

// SessionRepository defines the interface for server-side session storage
type SessionRepository interface {
	CreateSession(ctx context.Context, session *models.Session) error
	GetSessionByToken(ctx context.Context, token string) (*models.Session, error)
	DeleteSessionByToken(ctx context.Context, token string) error
	DeleteSessionsByUserID(ctx context.Context, userID uint) error
}

// MongoSessionRepository implements SessionRepository on a MongoDB
// collection with a TTL index on expires_at
type MongoSessionRepository struct {
	collection *mongo.Collection
	ttl        time.Duration
}

// NewMongoSessionRepository creates a new MongoSessionRepository
func NewMongoSessionRepository(db *mongo.Database, ttl time.Duration) *MongoSessionRepository {
	return &MongoSessionRepository{collection: db.Collection("sessions"), ttl: ttl}
}

// EnsureIndexes creates the token lookup and TTL expiry indexes
func (r *MongoSessionRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "token", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0),
		},
	})
	return err
}

// CreateSession stores a new session with the configured lifetime
func (r *MongoSessionRepository) CreateSession(ctx context.Context, session *models.Session) error {
	session.CreatedAt = time.Now()
	session.ExpiresAt = session.CreatedAt.Add(r.ttl)
	_, err := r.collection.InsertOne(ctx, session)
	return err
}

// GetSessionByToken retrieves a live session by token. Mongo's TTL sweeper
// runs on a coarse interval, so the expiry is also checked in the filter.
func (r *MongoSessionRepository) GetSessionByToken(ctx context.Context, token string) (*models.Session, error) {
	var session models.Session
	filter := bson.M{"token": token, "expires_at": bson.M{"$gt": time.Now()}}
	err := r.collection.FindOne(ctx, filter).Decode(&session)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

// DeleteSessionByToken removes a single session
func (r *MongoSessionRepository) DeleteSessionByToken(ctx context.Context, token string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"token": token})
	return err
}

// DeleteSessionsByUserID removes every session of a user, used on account
// deletion so no stale login survives the user row
func (r *MongoSessionRepository) DeleteSessionsByUserID(ctx context.Context, userID uint) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"user_id": userID})
	return err
}
