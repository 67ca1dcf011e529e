// Session store.
//
// The store is the sole owner of credential state. Everything that needs the
// current identity or token receives the store explicitly; there is no
// ambient global session. Login and logout are its only mutators.
package services

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/duckshop/go-storefront/internal/domain"
	"github.com/duckshop/go-storefront/internal/repo"
)

// SessionStore holds the authenticated identity and bearer credential for
// the running process and mirrors them to durable storage so a restart
// resumes the session. It implements gateway.TokenSource.
//
// Safe for concurrent use.
type SessionStore struct {
	db *gorm.DB

	mu      sync.RWMutex
	current domain.Session

	hookMu   sync.Mutex
	onLogout []func()
}

// NewSessionStore builds a store backed by db and restores any persisted
// session. A read failure is treated as logged out: the store fails closed,
// never open.
func NewSessionStore(ctx context.Context, db *gorm.DB) *SessionStore {
	s := &SessionStore{db: db}
	sess, err := repo.LoadSession(ctx, db)
	if err != nil {
		log.Warn().Err(err).Msg("session restore failed, starting logged out")
		return s
	}
	if sess.Authenticated() {
		s.current = sess
	}
	return s
}

// Login stores the identity and credential and persists them. Cart state is
// deliberately untouched: the next fetch rebuilds it. A persistence failure
// is logged and the in-memory session kept; only restore fails closed.
func (s *SessionStore) Login(ctx context.Context, user domain.User, token string) error {
	if token == "" {
		return ErrNotLoggedIn
	}
	sess := domain.Session{User: &user, Token: token}

	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()

	if err := repo.SaveSession(ctx, s.db, sess); err != nil {
		log.Warn().Err(err).Msg("session not persisted, it will not survive a restart")
	}
	return nil
}

// Logout clears the identity and credential, removes the persisted row, and
// synchronously runs every registered logout hook (badge reset, controller
// reset). Derived state must not linger until the next fetch.
func (s *SessionStore) Logout(ctx context.Context) {
	s.mu.Lock()
	s.current = domain.Session{}
	s.mu.Unlock()

	if err := repo.ClearSession(ctx, s.db); err != nil {
		log.Warn().Err(err).Msg("persisted session not cleared")
	}

	s.hookMu.Lock()
	hooks := append([]func(){}, s.onLogout...)
	s.hookMu.Unlock()
	for _, fn := range hooks {
		fn()
	}
}

// IsAuthenticated reports whether an identity is present.
func (s *SessionStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Authenticated()
}

// Current returns a copy of the session.
func (s *SessionStore) Current() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Token returns the bearer credential, or "" when logged out. It satisfies
// the gateway's TokenSource contract.
func (s *SessionStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Token
}

// OnLogout registers fn to run synchronously during Logout. Registration
// order is preserved.
func (s *SessionStore) OnLogout(fn func()) {
	s.hookMu.Lock()
	defer s.hookMu.Unlock()
	s.onLogout = append(s.onLogout, fn)
}
