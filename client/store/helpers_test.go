package store

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"asset-system/client/session"
)

// recordingNotifier captures every notification for assertions.
type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(title, description string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, title)
}

func (n *recordingNotifier) Error(title, description string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, title)
}

// staticAuthAPI always signs in the same identity.
type staticAuthAPI struct {
	identity session.Identity
}

func (a *staticAuthAPI) SignIn(ctx context.Context, email, password string) (*session.Identity, error) {
	cp := a.identity
	return &cp, nil
}

func (a *staticAuthAPI) SignUp(ctx context.Context, email, password, fullName string) (*session.Identity, error) {
	cp := a.identity
	return &cp, nil
}

func (a *staticAuthAPI) SignOut(ctx context.Context) error { return nil }

// signedInManager returns a manager with an active identity for store tests.
func signedInManager(userID uuid.UUID) *session.Manager {
	api := &staticAuthAPI{identity: session.Identity{ID: userID, Email: "user@corp.com"}}
	m := session.NewManager(api, zap.NewNop())
	_ = m.SignIn(context.Background(), "user@corp.com", "secret")
	return m
}

func signedOutManager() *session.Manager {
	return session.NewManager(&staticAuthAPI{}, zap.NewNop())
}
