package rbac_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/rbac"
)

func TestService_Enforce(t *testing.T) {
	svc, err := rbac.NewService()
	assert.NoError(t, err)

	cases := []struct {
		name     string
		subject  string
		resource string
		action   string
		allowed  bool
	}{
		{"user can file leave", "USER", "leave", "create", true},
		{"user can file attendance corrections", "USER", "attendance", "create", true},
		{"user cannot approve attendance corrections", "USER", "attendance", "approve", false},
		{"user can read manuals", "USER", "manual", "read", true},
		{"user cannot approve leave", "USER", "leave", "approve", false},
		{"user cannot manage users", "USER", "user", "manage", false},
		{"admin approves leave", "ADMIN", "leave", "approve", true},
		{"admin inherits user grants", "ADMIN", "leave", "create", true},
		{"admin exports reports", "ADMIN", "export", "read", true},
		{"admin cannot read the audit trail", "ADMIN", "audit", "read", false},
		{"developer reads the audit trail", "DEVELOPER", "audit", "read", true},
		{"developer inherits admin grants", "DEVELOPER", "user", "manage", true},
		{"developer inherits user grants", "DEVELOPER", "training", "complete", true},
		{"unknown role gets nothing", "GUEST", "leave", "read", false},
		{"unknown resource gets nothing", "DEVELOPER", "payroll", "read", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			allowed, err := svc.Enforce(tc.subject, tc.resource, tc.action)
			assert.NoError(t, err)
			assert.Equal(t, tc.allowed, allowed)
		})
	}
}

func TestService_PermissionsFor(t *testing.T) {
	svc, err := rbac.NewService()
	assert.NoError(t, err)

	t.Run("user sees only its own grants", func(t *testing.T) {
		perms, err := svc.PermissionsFor("USER")
		assert.NoError(t, err)
		assert.Contains(t, perms, rbac.Permission{Resource: "leave", Action: "create"})
		assert.NotContains(t, perms, rbac.Permission{Resource: "leave", Action: "approve"})
	})

	t.Run("developer sees the whole chain", func(t *testing.T) {
		perms, err := svc.PermissionsFor("DEVELOPER")
		assert.NoError(t, err)
		assert.Contains(t, perms, rbac.Permission{Resource: "audit", Action: "read"})
		assert.Contains(t, perms, rbac.Permission{Resource: "leave", Action: "approve"})
		assert.Contains(t, perms, rbac.Permission{Resource: "leave", Action: "create"})
	})

	t.Run("unknown role has no grants", func(t *testing.T) {
		perms, err := svc.PermissionsFor("GUEST")
		assert.NoError(t, err)
		assert.Empty(t, perms)
	})
}
