package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleLevel(t *testing.T) {
	assert.Equal(t, 1, RoleLevel(RoleViewer))
	assert.Equal(t, 2, RoleLevel(RoleEditor))
	assert.Equal(t, 3, RoleLevel(RoleAdmin))
	assert.Equal(t, 4, RoleLevel(RoleOwner))
	assert.Equal(t, 0, RoleLevel("superuser"))
	assert.Equal(t, 0, RoleLevel(""))
}

func TestValidRole(t *testing.T) {
	for _, role := range []string{RoleViewer, RoleEditor, RoleAdmin, RoleOwner} {
		assert.True(t, ValidRole(role), role)
	}
	assert.False(t, ValidRole("Viewer"))
	assert.False(t, ValidRole("root"))
	assert.False(t, ValidRole(""))
}

func TestCanAccess(t *testing.T) {
	roles := []string{RoleViewer, RoleEditor, RoleAdmin, RoleOwner}

	// Access is granted exactly when the caller's rank meets the gate's rank.
	for i, userRole := range roles {
		for j, required := range roles {
			got := CanAccess(userRole, required)
			assert.Equal(t, i >= j, got, "%s vs %s", userRole, required)
		}
	}

	// Unknown roles rank below everything, including each other's gates.
	assert.False(t, CanAccess("unknown", RoleViewer))
	assert.True(t, CanAccess(RoleViewer, "unknown"))
}
