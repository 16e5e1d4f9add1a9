package domain

import "sync"

// Session holds the credential and identity of the logged-in user.
// The zero value is an empty, usable session. It is never persisted.
type Session struct {
	mu    sync.RWMutex
	token string
	user  *User
}

// NewSession returns a session pre-loaded with token. An empty token yields
// an anonymous session.
func NewSession(token string) *Session {
	return &Session{token: token}
}

// Token returns the current bearer token, or "" when logged out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns a copy of the current user, or nil.
func (s *Session) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Authenticated reports whether a token is held.
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// Set replaces the token and user atomically.
func (s *Session) Set(token string, user *User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	if user == nil {
		s.user = nil
		return
	}
	u := *user
	s.user = &u
}

// Clear drops the token and user.
func (s *Session) Clear() {
	s.Set("", nil)
}
