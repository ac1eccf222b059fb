// ABOUTME: Session manager holding the bearer token and user profile
// ABOUTME: Persists session state as JSON in the XDG config directory

package session

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// User is the authenticated user's profile.
type User struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

// persisted is the single durable record written to disk.
type persisted struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// Manager owns the current session. Token and user are present together or
// not at all; Set and Logout are the only mutators.
//
// Disk writes are best-effort: a failed write never fails or blocks the
// in-memory state change.
type Manager struct {
	mu    sync.RWMutex
	path  string
	token string
	user  *User
}

// NewManager creates a manager persisting to the given file path.
func NewManager(path string) *Manager {
	return &Manager{path: path}
}

// DefaultPath returns the session file location following the XDG spec.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "pratiksef", "session.json")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "pratiksef", "session.json")
}

// Restore loads a previously persisted session. A missing file, unreadable
// payload or record without both token and user leaves the manager logged
// out; Restore never fails.
func (m *Manager) Restore() {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return
	}

	var p persisted
	if err := json.Unmarshal(data, &p); err != nil {
		slog.Debug("discarding malformed session file", "path", m.path, "error", err)
		return
	}
	if p.Token == "" || p.User == nil {
		return
	}

	m.mu.Lock()
	m.token = p.Token
	m.user = p.User
	m.mu.Unlock()
}

// Set installs a new session. An empty token is rejected: token and user are
// present together or not at all. The in-memory state is visible to
// subsequent reads before Set returns; the disk write is best-effort.
func (m *Manager) Set(token string, user User) {
	if token == "" {
		return
	}

	m.mu.Lock()
	m.token = token
	u := user
	m.user = &u
	m.mu.Unlock()

	if err := m.persist(token, &u); err != nil {
		slog.Debug("session persist failed", "path", m.path, "error", err)
	}
}

// Logout clears the session and removes the persisted state best-effort.
func (m *Manager) Logout() {
	m.mu.Lock()
	m.token = ""
	m.user = nil
	m.mu.Unlock()

	if err := os.Remove(m.path); err != nil && !os.IsNotExist(err) {
		slog.Debug("session file removal failed", "path", m.path, "error", err)
	}
}

// Token returns the current bearer token, empty when unauthenticated.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// User returns the current user profile and whether one is present.
func (m *Manager) User() (User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return User{}, false
	}
	return *m.user, true
}

// Authenticated reports whether a session is present.
func (m *Manager) Authenticated() bool {
	return m.Token() != ""
}

func (m *Manager) persist(token string, user *User) error {
	if m.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(persisted{Token: token, User: user})
	if err != nil {
		return err
	}
	// 0600: the file holds a credential.
	return os.WriteFile(m.path, data, 0o600)
}
