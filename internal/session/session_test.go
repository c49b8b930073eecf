package session

import (
	"context"
	"testing"

	"github.com/flashdeck/flashdeck/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSessionContext returns a context with a fresh session loaded into it,
// the way LoadAndSave would for a real request.
func newSessionContext(t *testing.T, m *Manager) context.Context {
	t.Helper()
	ctx, err := m.Load(context.Background(), "")
	require.NoError(t, err)
	return ctx
}

func TestRole_AnonymousResolvesToPublic(t *testing.T) {
	m := NewMemoryManager()
	ctx := newSessionContext(t, m)

	assert.Equal(t, models.RolePublic, m.Role(ctx))
}

func TestUserID_AnonymousNotOK(t *testing.T) {
	m := NewMemoryManager()
	ctx := newSessionContext(t, m)

	_, ok := m.UserID(ctx)
	assert.False(t, ok)
}

func TestIsAuthenticated_DefaultFalse(t *testing.T) {
	m := NewMemoryManager()
	ctx := newSessionContext(t, m)

	assert.False(t, m.IsAuthenticated(ctx))
}

func TestLoginAs_SetsSessionFields(t *testing.T) {
	m := NewMemoryManager()
	ctx := newSessionContext(t, m)

	require.NoError(t, m.LoginAs(ctx, 42, "admin"))

	assert.True(t, m.IsAuthenticated(ctx))
	id, ok := m.UserID(ctx)
	require.True(t, ok)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, "admin", m.Role(ctx))
}

func TestLoginAs_RegeneratesToken(t *testing.T) {
	m := NewMemoryManager()

	// commit an initial session so a token exists before login
	ctx := newSessionContext(t, m)
	m.Put(ctx, "seen", true)
	before, _, err := m.Commit(ctx)
	require.NoError(t, err)

	ctx, err = m.Load(context.Background(), before)
	require.NoError(t, err)
	require.NoError(t, m.LoginAs(ctx, 7, "user"))

	after, _, err := m.Commit(ctx)
	require.NoError(t, err)

	assert.NotEqual(t, before, after, "session token must change on login")
}
