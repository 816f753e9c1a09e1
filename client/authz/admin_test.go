package authz

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"asset-system/client/session"
)

func TestAdminCheckerDefaults(t *testing.T) {
	c := NewAdminChecker(nil)

	assert.True(t, c.IsAdminEmail("admin@admin.com"))
	assert.True(t, c.IsAdminEmail("admin"))
	assert.True(t, c.IsAdminEmail("  Admin@Admin.com "))
	assert.False(t, c.IsAdminEmail("user@corp.com"))
	assert.False(t, c.IsAdminEmail(""))
}

func TestAdminCheckerConfiguredSet(t *testing.T) {
	c := NewAdminChecker([]string{"ops@corp.com"})

	assert.True(t, c.IsAdminEmail("ops@corp.com"))
	assert.False(t, c.IsAdminEmail("admin@admin.com"), "configured set replaces the default")
}

func TestAdminCheckerNilIdentity(t *testing.T) {
	c := NewAdminChecker(nil)

	assert.False(t, c.IsAdmin(nil))
	assert.True(t, c.IsAdmin(&session.Identity{ID: uuid.New(), Email: "admin@admin.com"}))
	assert.False(t, c.IsAdmin(&session.Identity{ID: uuid.New(), Email: "someone@corp.com"}))
}
