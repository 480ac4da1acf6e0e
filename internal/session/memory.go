// ABOUTME: In-memory session store for single-server deployments
// ABOUTME: Mutex-guarded map with a background expiry sweep

package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps sessions in process memory. It is the default
// backend; sessions do not survive a restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memorySession
	ttl      time.Duration
	done     chan struct{}
	closed   bool
}

type memorySession struct {
	userID    string
	expiresAt time.Time
}

// NewMemoryStore creates an in-memory store whose sessions expire
// after ttl. A background goroutine sweeps expired entries every
// minute until Close is called.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	s := &MemoryStore{
		sessions: make(map[string]memorySession),
		ttl:      ttl,
		done:     make(chan struct{}),
	}
	go s.sweepLoop(time.Minute)
	return s
}

func (s *MemoryStore) Create(ctx context.Context, userID string) (string, error) {
	id, err := newSessionID()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return "", ErrStoreClosed
	}
	s.sessions[id] = memorySession{
		userID:    userID,
		expiresAt: time.Now().Add(s.ttl),
	}
	return id, nil
}

func (s *MemoryStore) Read(ctx context.Context, sessionID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[sessionID]
	if !ok || time.Now().After(sess.expiresAt) {
		return "", ErrSessionNotFound
	}
	return sess.userID, nil
}

func (s *MemoryStore) Destroy(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	close(s.done)
	s.sessions = nil
	return nil
}

// Count returns the number of stored sessions, expired or not. Used
// in tests.
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *MemoryStore) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.done:
			return
		}
	}
}

func (s *MemoryStore) sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	now := time.Now()
	for id, sess := range s.sessions {
		if now.After(sess.expiresAt) {
			delete(s.sessions, id)
		}
	}
}

var _ Store = (*MemoryStore)(nil)
