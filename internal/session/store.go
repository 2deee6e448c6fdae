package session

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/stockdesk/dashboard/internal/domain/models"
)

// ErrNotFound is returned for unknown or already-cleared session IDs. The
// middleware maps it to a logged-out state.
var ErrNotFound = errors.New("session not found")

// Store persists the logged-in identity and its backend token for the
// lifetime of a dashboard session. Logout removes the record entirely; no
// expiry runs on this side, stale tokens simply fail at the API layer.
type Store interface {
	Create(ctx context.Context, user models.User, token string) (*models.Session, error)
	Get(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, id string) error
}

// MemoryStore keeps sessions in process memory.
type MemoryStore struct {
	sessions map[string]models.Session
	mu       sync.RWMutex
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]models.Session),
	}
}

// Create mints a new session for the given identity.
func (s *MemoryStore) Create(_ context.Context, user models.User, token string) (*models.Session, error) {
	sess := models.Session{
		ID:    uuid.NewString(),
		User:  user,
		Token: token,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess

	return &sess, nil
}

// Get retrieves the session for an ID.
func (s *MemoryStore) Get(_ context.Context, id string) (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, exists := s.sessions[id]
	if !exists {
		return nil, ErrNotFound
	}
	return &sess, nil
}

// Delete removes a session. Deleting an unknown ID is not an error.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
