package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stockdesk/dashboard/internal/domain/models"
	"github.com/stockdesk/dashboard/internal/session"
)

// SessionStore implements session.Store on MongoDB so dashboard logins
// survive process restarts.
type SessionStore struct {
	client   *mongo.Client
	dbName   string
	collName string
}

// NewSessionStore connects to MongoDB and verifies the connection.
func NewSessionStore(ctx context.Context, uri string, dbName string) (*SessionStore, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &SessionStore{
		client:   client,
		dbName:   dbName,
		collName: "sessions",
	}, nil
}

func (s *SessionStore) collection() *mongo.Collection {
	return s.client.Database(s.dbName).Collection(s.collName)
}

// Create inserts a new session document.
func (s *SessionStore) Create(ctx context.Context, user models.User, token string) (*models.Session, error) {
	sess := models.Session{
		ID:    uuid.NewString(),
		User:  user,
		Token: token,
	}

	if _, err := s.collection().InsertOne(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to insert session: %w", err)
	}
	return &sess, nil
}

// Get loads a session document by ID.
func (s *SessionStore) Get(ctx context.Context, id string) (*models.Session, error) {
	var sess models.Session
	err := s.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&sess)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, session.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return &sess, nil
}

// Delete removes a session document. A missing document is not an error.
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if _, err := s.collection().DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Close closes the MongoDB connection.
func (s *SessionStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
