package inmemory

import (
	"context"
	"sync"
	"time"

	"parceltrack/internal/pkg/errs"
)

type sessionEntry struct {
	username string
	issuedAt time.Time
}

// SessionStore keeps active sessions in a map guarded by a read-write mutex.
// Sessions live until logout; the issue timestamp is recorded so a TTL sweep
// can be added later without changing the port.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]sessionEntry
}

// NewSessionStore creates an empty in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]sessionEntry),
	}
}

// Add binds a session identifier to a username.
func (s *SessionStore) Add(_ context.Context, sessionID, username string) error {
	if sessionID == "" {
		return errs.NewValueIsRequiredError("sessionID")
	}
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = sessionEntry{username: username, issuedAt: time.Now()}
	return nil
}

// GetUsername resolves a session identifier to its username.
func (s *SessionStore) GetUsername(_ context.Context, sessionID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.sessions[sessionID]
	if !ok {
		return "", errs.NewObjectNotFoundError("sessionID", sessionID)
	}
	return entry.username, nil
}

// Remove invalidates a session. Removing an absent identifier is a no-op.
func (s *SessionStore) Remove(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
