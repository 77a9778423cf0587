// Package client is the Go client core of the marketplace: a persisted
// session store with role guard, and view-models for the booking and listing
// review lifecycles. View-models never mutate displayed state before the
// backend acknowledges the operation.
package client

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"drivehub/models"
)

// sessionFileName is the single well-known storage key for the session.
const sessionFileName = "userinfo.json"

// Session is the authenticated actor's identity and credentials, persisted
// verbatim as returned by the auth endpoints.
type Session struct {
	UserID string `json:"_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Mobile string `json:"mobile"`
	Role   string `json:"role"`
	Token  string `json:"token"`
}

// SessionFromAuth converts an auth endpoint response into a Session.
func SessionFromAuth(auth *models.AuthResponse) *Session {
	return &Session{
		UserID: auth.ID,
		Name:   auth.Name,
		Email:  auth.Email,
		Mobile: auth.Mobile,
		Role:   auth.Role,
		Token:  auth.Token,
	}
}

// Store owns the persisted session record. It is the only writer; login,
// OTP verification, Google sign-in and logout flows go through it.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore creates a session store persisting under the given directory.
func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(dir, sessionFileName)}
}

// Current returns the persisted session, or nil when there is none. A
// missing, malformed or token-less record is treated as logged out; Current
// never fails.
func (s *Store) Current() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil
	}
	if sess.Token == "" {
		return nil
	}
	return &sess
}

// Save persists the session record.
func (s *Store) Save(sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Clear destroys the persisted session. Clearing an absent session is not an
// error.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
