package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session holds the ephemeral UI state of one interactive dashboard user.
// It only affects what is displayed, never what is computed.
type Session struct {
	ID            string
	CurrentCallID string
	CallEnded     bool
	Transcript    string
	Analysis      map[string]interface{}
	Notice        string
	NoticeIsError bool
	UpdatedAt     time.Time
}

// Store is an in-memory session store with expiration
type Store struct {
	mu    sync.RWMutex
	ttl   time.Duration
	items map[string]*storeItem
}

type storeItem struct {
	session    *Session
	expireTime time.Time
}

// NewStore creates a new in-memory session store
func NewStore(ttl time.Duration) *Store {
	store := &Store{
		ttl:   ttl,
		items: make(map[string]*storeItem),
	}

	// Start cleanup goroutine to remove expired sessions
	go store.cleanupExpired()

	return store
}

// New creates and stores a fresh session
func (s *Store) New() *Session {
	sess := &Session{
		ID:        uuid.New().String(),
		UpdatedAt: time.Now(),
	}
	s.Save(sess)
	return sess
}

// Get retrieves a session by id (nil if not found or expired)
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.items[id]
	if !exists {
		return nil, false
	}
	if time.Now().After(item.expireTime) {
		return nil, false
	}
	return item.session, true
}

// Save stores a session and refreshes its expiration
func (s *Store) Save(sess *Session) {
	sess.UpdatedAt = time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[sess.ID] = &storeItem{
		session:    sess,
		expireTime: time.Now().Add(s.ttl),
	}
}

// Delete removes a session
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, id)
}

// cleanupExpired periodically removes expired sessions
func (s *Store) cleanupExpired() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()
		now := time.Now()
		for id, item := range s.items {
			if now.After(item.expireTime) {
				delete(s.items, id)
			}
		}
		s.mu.Unlock()
	}
}
