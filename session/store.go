package session

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Store holds the in-memory session state: access token, session id and the
// cached user profile. It is created once at process start and lives for the
// process; tokens are deliberately never persisted to durable storage so the
// access token's exposure is bounded by process lifetime.
//
// The session id has a lifecycle independent from the access token: refresh
// rotates the token while usually keeping the session id, and profile
// updates touch neither.
//
// All mutators are total: they never fail and never panic.
type Store struct {
	mu          sync.RWMutex
	accessToken string
	sessionID   string
	user        *User
	tokenExpiry time.Time

	restoration *Restoration
}

// NewStore creates an empty, unauthenticated store.
func NewStore() *Store {
	return &Store{}
}

// SetSession replaces the access token and user atomically. The session id
// is updated only when non-empty, so a profile-bearing update does not
// implicitly clear it.
func (s *Store) SetSession(token string, user *User, sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setToken(token, sessionID)
	s.user = user
}

// SetAccessToken replaces the token without touching the cached user. Used
// when refresh returns only token material.
func (s *Store) SetAccessToken(token, sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setToken(token, sessionID)
}

// SetUser replaces the cached profile without touching the token. The
// profile is only cached for an authenticated session; while unauthenticated
// the call is a no-op.
func (s *Store) SetUser(user *User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.accessToken == "" {
		return
	}
	s.user = user
}

// ClearSession resets token, session id and user. Idempotent.
func (s *Store) ClearSession() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = ""
	s.sessionID = ""
	s.user = nil
	s.tokenExpiry = time.Time{}
}

// IsAuthenticated is true iff an access token is present.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken != ""
}

// AccessToken returns the current bearer credential, empty when
// unauthenticated.
func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// SessionID returns the opaque server-side session identifier.
func (s *Store) SessionID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessionID
}

// User returns the cached profile, or nil. The profile may lag behind the
// token while a who-am-I fetch is still in flight.
func (s *Store) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// TokenExpiry returns the access token's exp claim, parsed best-effort when
// the token was set. Zero when unauthenticated or when the token is not a
// JWT. Diagnostic only; the client never validates signatures.
func (s *Store) TokenExpiry() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokenExpiry
}

func (s *Store) setToken(token, sessionID string) {
	s.accessToken = token
	if sessionID != "" {
		s.sessionID = sessionID
	}
	s.tokenExpiry = parseExpiry(token)
}

func parseExpiry(token string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
