package session

import (
	"clinic-portal/internal/app/models"
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	session   models.Session
	expiresAt time.Time
}

// MemorySessionStore keeps sessions in process memory with a TTL. It is meant
// for development and tests; sessions do not survive a restart.
type MemorySessionStore struct {
	mu      sync.RWMutex
	entries map[string]*memoryEntry
	stop    chan struct{}
	once    sync.Once
}

func NewMemorySessionStore(cleanupInterval time.Duration) *MemorySessionStore {
	s := &MemorySessionStore{
		entries: make(map[string]*memoryEntry),
		stop:    make(chan struct{}),
	}
	if cleanupInterval > 0 {
		go s.cleanupLoop(cleanupInterval)
	}
	return s
}

func (s *MemorySessionStore) Save(ctx context.Context, session *models.Session, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[session.SessionID] = &memoryEntry{
		session:   *session,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

func (s *MemorySessionStore) Find(ctx context.Context, sessionID string) (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, found := s.entries[sessionID]
	if !found || time.Now().After(entry.expiresAt) {
		return nil, nil
	}
	session := entry.session
	return &session, nil
}

func (s *MemorySessionStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, sessionID)
	return nil
}

func (s *MemorySessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Close stops the cleanup loop.
func (s *MemorySessionStore) Close() {
	s.once.Do(func() { close(s.stop) })
}

func (s *MemorySessionStore) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for id, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, id)
		}
	}
}

func (s *MemorySessionStore) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stop:
			return
		}
	}
}
