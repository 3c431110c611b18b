package auth

// Role names in ascending order of privilege.
const (
	RoleViewer = "viewer"
	RoleEditor = "editor"
	RoleAdmin  = "admin"
	RoleOwner  = "owner"
)

// roleLevels maps role names to their numeric rank. Unknown roles map to 0,
// below every real role, so they are denied by any gate.
var roleLevels = map[string]int{
	RoleViewer: 1,
	RoleEditor: 2,
	RoleAdmin:  3,
	RoleOwner:  4,
}

// RoleLevel returns the numeric rank of a role, 0 for unknown roles.
func RoleLevel(role string) int {
	return roleLevels[role]
}

// ValidRole reports whether the role name is part of the hierarchy.
func ValidRole(role string) bool {
	_, ok := roleLevels[role]
	return ok
}

// CanAccess reports whether a caller with userRole meets requiredRole.
func CanAccess(userRole, requiredRole string) bool {
	return RoleLevel(userRole) >= RoleLevel(requiredRole)
}
