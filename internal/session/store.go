package session

import "sync"

// Store holds the current authenticated identity for the whole process.
// The session is replaced or cleared wholesale, never patched in place.
// It is an injectable value rather than a package-level singleton so tests
// can run against their own instance.
//
// Writers are the login flow, the auth guard, and the logout flow; anything
// may read.
type Store struct {
	mu      sync.RWMutex
	current *Session
}

// NewStore constructs an empty store. The session starts absent.
func NewStore() *Store {
	return &Store{}
}

// Get returns a copy of the current session, or nil when no session is held.
// Returning a copy keeps callers from mutating shared state behind the lock.
func (s *Store) Get() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	copied := *s.current
	return &copied
}

// Set replaces the held session wholesale.
func (s *Store) Set(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess == nil {
		s.current = nil
		return
	}
	copied := *sess
	s.current = &copied
}

// Clear sets the session to absent.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

// Token returns the bearer token from the current session, or "" when no
// session is held.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return ""
	}
	return s.current.Token
}
