package session

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubAuthAPI struct {
	lastEmail string
	identity  *Identity
	err       error
}

func (a *stubAuthAPI) SignIn(ctx context.Context, email, password string) (*Identity, error) {
	a.lastEmail = email
	return a.identity, a.err
}

func (a *stubAuthAPI) SignUp(ctx context.Context, email, password, fullName string) (*Identity, error) {
	a.lastEmail = email
	return a.identity, a.err
}

func (a *stubAuthAPI) SignOut(ctx context.Context) error { return a.err }

func TestManagerSignInSetsIdentity(t *testing.T) {
	identity := &Identity{ID: uuid.New(), Email: "user@corp.com"}
	api := &stubAuthAPI{identity: identity}
	m := NewManager(api, zap.NewNop())

	require.NoError(t, m.SignIn(context.Background(), "user@corp.com", "secret"))

	current := m.Current()
	require.NotNil(t, current)
	assert.Equal(t, identity.ID, current.ID)
}

func TestManagerResolvesAdminAlias(t *testing.T) {
	api := &stubAuthAPI{identity: &Identity{ID: uuid.New(), Email: "admin@admin.com"}}
	m := NewManager(api, zap.NewNop())

	require.NoError(t, m.SignIn(context.Background(), "admin", "secret"))

	assert.Equal(t, "admin@admin.com", api.lastEmail, "bare admin login resolves to canonical email")
}

func TestManagerSignInFailureKeepsIdentityAbsent(t *testing.T) {
	api := &stubAuthAPI{err: errors.New("credenciais inválidas")}
	m := NewManager(api, zap.NewNop())

	require.Error(t, m.SignIn(context.Background(), "user@corp.com", "wrong"))
	assert.Nil(t, m.Current())
}

func TestManagerSubscribersSeeEveryChange(t *testing.T) {
	identity := &Identity{ID: uuid.New(), Email: "user@corp.com"}
	api := &stubAuthAPI{identity: identity}
	m := NewManager(api, zap.NewNop())

	var seen []*Identity
	cancel := m.Subscribe(func(id *Identity) { seen = append(seen, id) })

	require.NoError(t, m.SignIn(context.Background(), "user@corp.com", "secret"))
	require.NoError(t, m.SignOut(context.Background()))

	require.Len(t, seen, 2)
	assert.NotNil(t, seen[0])
	assert.Nil(t, seen[1], "sign-out publishes a nil identity")

	cancel()
	m.Restore(identity)
	assert.Len(t, seen, 2, "cancelled subscriber gets no further events")
}

func TestManagerCurrentReturnsCopy(t *testing.T) {
	identity := &Identity{ID: uuid.New(), Email: "user@corp.com"}
	m := NewManager(&stubAuthAPI{identity: identity}, zap.NewNop())
	m.Restore(identity)

	first := m.Current()
	first.Email = "tampered@corp.com"

	assert.Equal(t, "user@corp.com", m.Current().Email)
}
