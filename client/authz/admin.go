package authz

import (
	"strings"

	"asset-system/client/session"
)

// DefaultAdminIdentifiers is the privileged set used when none is configured.
var DefaultAdminIdentifiers = []string{"admin@admin.com", "admin"}

// AdminChecker decides whether an identity may use the admin-only views. It
// is a pure predicate over a configured set of privileged identifiers.
type AdminChecker struct {
	identifiers map[string]struct{}
}

func NewAdminChecker(identifiers []string) *AdminChecker {
	if len(identifiers) == 0 {
		identifiers = DefaultAdminIdentifiers
	}
	set := make(map[string]struct{}, len(identifiers))
	for _, id := range identifiers {
		set[normalize(id)] = struct{}{}
	}
	return &AdminChecker{identifiers: set}
}

// IsAdmin reports whether the identity is privileged. Absent identity is
// never admin.
func (c *AdminChecker) IsAdmin(identity *session.Identity) bool {
	if identity == nil {
		return false
	}
	return c.IsAdminEmail(identity.Email)
}

func (c *AdminChecker) IsAdminEmail(email string) bool {
	_, ok := c.identifiers[normalize(email)]
	return ok
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
