package session

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Identity is the authenticated actor, carrying what the permission check and
// the stores need from the auth provider.
type Identity struct {
	ID       uuid.UUID
	Email    string
	FullName string
}

// AuthAPI is the backend auth contract the manager delegates to.
type AuthAPI interface {
	SignIn(ctx context.Context, email, password string) (*Identity, error)
	SignUp(ctx context.Context, email, password, fullName string) (*Identity, error)
	SignOut(ctx context.Context) error
}

// Manager holds the current optional identity and notifies subscribers on
// every change. It is the single source of truth the stores are gated on.
type Manager struct {
	api    AuthAPI
	logger *zap.Logger

	mu          sync.RWMutex
	current     *Identity
	subscribers map[int]func(*Identity)
	nextSubID   int

	// aliases maps shorthand logins to canonical emails before the backend
	// is contacted.
	aliases map[string]string
}

func NewManager(api AuthAPI, logger *zap.Logger) *Manager {
	return &Manager{
		api:         api,
		logger:      logger,
		subscribers: make(map[int]func(*Identity)),
		aliases: map[string]string{
			"admin": "admin@admin.com",
		},
	}
}

// SetAlias registers a shorthand login resolved to email at sign-in time.
func (m *Manager) SetAlias(alias, email string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.aliases[strings.ToLower(alias)] = email
}

// Current returns a copy of the signed-in identity, or nil.
func (m *Manager) Current() *Identity {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return nil
	}
	cp := *m.current
	return &cp
}

// Subscribe registers fn to run on every identity change. The returned
// function cancels the subscription.
func (m *Manager) Subscribe(fn func(*Identity)) func() {
	m.mu.Lock()
	id := m.nextSubID
	m.nextSubID++
	m.subscribers[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subscribers, id)
	}
}

func (m *Manager) SignIn(ctx context.Context, email, password string) error {
	identity, err := m.api.SignIn(ctx, m.resolveAlias(email), password)
	if err != nil {
		m.logger.Warn("session: sign-in failed", zap.String("email", email), zap.Error(err))
		return err
	}
	m.setIdentity(identity)
	m.logger.Info("session: signed in", zap.String("email", identity.Email))
	return nil
}

func (m *Manager) SignUp(ctx context.Context, email, password, fullName string) error {
	identity, err := m.api.SignUp(ctx, email, password, fullName)
	if err != nil {
		m.logger.Warn("session: sign-up failed", zap.String("email", email), zap.Error(err))
		return err
	}
	m.setIdentity(identity)
	return nil
}

func (m *Manager) SignOut(ctx context.Context) error {
	if err := m.api.SignOut(ctx); err != nil {
		m.logger.Warn("session: sign-out failed", zap.Error(err))
		return err
	}
	m.setIdentity(nil)
	return nil
}

// Restore installs an identity recovered out of band, e.g. from a persisted
// token validated at startup.
func (m *Manager) Restore(identity *Identity) {
	m.setIdentity(identity)
}

func (m *Manager) resolveAlias(email string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if canonical, ok := m.aliases[strings.ToLower(strings.TrimSpace(email))]; ok {
		return canonical
	}
	return email
}

func (m *Manager) setIdentity(identity *Identity) {
	m.mu.Lock()
	m.current = identity
	subs := make([]func(*Identity), 0, len(m.subscribers))
	for _, fn := range m.subscribers {
		subs = append(subs, fn)
	}
	m.mu.Unlock()

	for _, fn := range subs {
		fn(identity)
	}
}
