package models

// Role is a closed set of role names recognised by the permission hierarchy.
// Using a dedicated type instead of loose strings keeps rank comparison and
// claim parsing free of typo-prone string literals.
type Role string

const (
	RoleUser       Role = "User"
	RoleAdmin      Role = "Admin"
	RoleSuperAdmin Role = "SuperAdmin"
)

// Rank returns the position of the role in the strict ordering
// User < Admin < SuperAdmin. Unknown roles rank below User so that an
// unrecognised role claim can never outrank a real one.
func (r Role) Rank() int {
	switch r {
	case RoleSuperAdmin:
		return 3
	case RoleAdmin:
		return 2
	case RoleUser:
		return 1
	default:
		return 0
	}
}

// Valid reports whether r is one of the recognised role constants.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleSuperAdmin:
		return true
	default:
		return false
	}
}

// ParseRole converts a raw role name (e.g. from a JWT claim or a route
// parameter) into a Role. The ok flag is false for unrecognised names.
func ParseRole(name string) (Role, bool) {
	role := Role(name)
	return role, role.Valid()
}

// Principal is the authenticated actor making a request. It is built from
// verified token claims by the authentication middleware and passed
// explicitly into every permission-sensitive service operation, so the core
// never reads ambient request state.
type Principal struct {
	// UserID is the acting user's identifier. Empty means "no principal".
	UserID string

	// Roles holds zero or more role claims carried by the actor's token.
	Roles []Role
}

// HighestRole returns the best-ranked role held by the principal.
// The ok flag is false when the principal carries no role claims at all.
func (p Principal) HighestRole() (Role, bool) {
	var best Role
	found := false
	for _, role := range p.Roles {
		if !found || role.Rank() > best.Rank() {
			best = role
			found = true
		}
	}
	return best, found
}
