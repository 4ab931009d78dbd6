// ABOUTME: Session manager holding the authenticated user and bearer token
// ABOUTME: Implements the Unknown/Unauthenticated/Authenticated state machine

package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/juliomonteiiro/agenus-admin/internal/client"
	"github.com/juliomonteiiro/agenus-admin/internal/storage"
)

// State is the session lifecycle state
type State int

const (
	// StateUnknown is the state before Initialize has run
	StateUnknown State = iota
	StateUnauthenticated
	StateAuthenticated
)

// String returns the string representation of a State
func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// ErrLoginFailed is the generic login failure surfaced to callers.
// Raw transport detail goes to the log, never to the user.
var ErrLoginFailed = errors.New("login failed, check your credentials")

// persisted is the durable shape of the session namespace
type persisted struct {
	Token           string       `json:"token"`
	User            *client.User `json:"user"`
	IsAuthenticated bool         `json:"isAuthenticated"`
}

// Manager owns the session state slice. It is the single writer; the
// presentation layer observes transitions through Subscribe.
type Manager struct {
	api   *client.Client
	store *storage.Store

	mu          sync.RWMutex
	state       State
	token       string
	user        *client.User
	subscribers []func(State)
}

// NewManager creates a session manager bound to the API client and durable
// store. It registers the global 401 handler: an authorization failure on
// any request clears the session exactly like Logout.
func NewManager(api *client.Client, store *storage.Store) *Manager {
	m := &Manager{
		api:   api,
		store: store,
		state: StateUnknown,
	}
	api.OnUnauthorized(func() {
		slog.Warn("Request rejected with 401, clearing session")
		m.clear()
	})
	return m
}

// Subscribe registers a callback invoked after every state transition
func (m *Manager) Subscribe(fn func(State)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subscribers = append(m.subscribers, fn)
}

// State returns the current lifecycle state
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// IsAuthenticated reports whether a user and token are both held
func (m *Manager) IsAuthenticated() bool {
	return m.State() == StateAuthenticated
}

// User returns the authenticated user, or nil
func (m *Manager) User() *client.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user
}

// Token returns the bearer credential, or empty
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// Initialize reads durable storage synchronously at startup. When both a
// token and a user are present the session is trusted as authenticated
// without a network round-trip; anything less leaves it unauthenticated.
func (m *Manager) Initialize() State {
	var p persisted
	err := m.store.Read(storage.NamespaceSession, &p)
	if err == nil && p.Token != "" && p.User != nil {
		m.setAuthenticated(p.Token, p.User, false)
		return StateAuthenticated
	}
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		slog.Warn("Failed to read persisted session", "error", err)
	}
	m.setUnauthenticated()
	return StateUnauthenticated
}

// Login exchanges credentials for a session. On failure the state stays
// unauthenticated and a generic error is returned.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	resp, err := m.api.Login(ctx, client.LoginRequest{Email: email, Password: password})
	if err != nil {
		slog.Warn("Login failed", "error", err)
		m.setUnauthenticated()
		return ErrLoginFailed
	}

	m.setAuthenticated(resp.Token, &resp.User, true)
	slog.Info("Logged in", "user", resp.User.Email)
	return nil
}

// Logout clears in-memory and durable state unconditionally. Idempotent.
func (m *Manager) Logout() {
	m.clear()
	slog.Info("Logged out")
}

// ValidateSession replays the stored token against the session endpoint.
// On success the user and token are refreshed; on any failure the session
// is cleared. Always returns a boolean, never an error.
func (m *Manager) ValidateSession(ctx context.Context) bool {
	if m.Token() == "" {
		m.clear()
		return false
	}

	resp, err := m.api.ValidateSession(ctx)
	if err != nil {
		slog.Warn("Session validation failed", "error", err)
		m.clear()
		return false
	}
	if resp.Token == "" {
		slog.Warn("Session validation returned an empty token")
		m.clear()
		return false
	}

	m.setAuthenticated(resp.Token, &resp.User, true)
	return true
}

func (m *Manager) setAuthenticated(token string, user *client.User, persist bool) {
	m.api.SetToken(token)

	m.mu.Lock()
	m.state = StateAuthenticated
	m.token = token
	m.user = user
	m.mu.Unlock()

	if persist {
		// Best-effort durable write, not transactional with memory state
		if err := m.store.Write(storage.NamespaceSession, persisted{
			Token:           token,
			User:            user,
			IsAuthenticated: true,
		}); err != nil {
			slog.Warn("Failed to persist session", "error", err)
		}
	}

	m.notify(StateAuthenticated)
}

func (m *Manager) setUnauthenticated() {
	m.mu.Lock()
	m.state = StateUnauthenticated
	m.token = ""
	m.user = nil
	m.mu.Unlock()

	m.notify(StateUnauthenticated)
}

// clear drops memory and durable state together
func (m *Manager) clear() {
	m.api.ClearToken()
	if err := m.store.Clear(storage.NamespaceSession); err != nil {
		slog.Warn("Failed to clear persisted session", "error", err)
	}
	m.setUnauthenticated()
}

func (m *Manager) notify(s State) {
	m.mu.RLock()
	subs := make([]func(State), len(m.subscribers))
	copy(subs, m.subscribers)
	m.mu.RUnlock()

	for _, fn := range subs {
		fn(s)
	}
}
