// Package authorization holds the role vocabulary and route-level guards.
package authorization

// UserRole is the single role assigned to a user. Users without an assigned
// role are treated as reporters for list scoping but fail role-gated actions.
type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleTechnician UserRole = "technician"
	RoleReporter   UserRole = "reporter"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r UserRole) IsTechnician() bool {
	return r == RoleTechnician
}

func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleTechnician || r == RoleReporter
}

// ParseUserRole maps an arbitrary string to a role, defaulting to reporter.
func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleReporter
}
