package identity

import "fmt"

// RoleName is the single role a user can hold. Superusers are treated as
// admins regardless of their stored role.
type RoleName string

const (
	RoleAdmin      RoleName = "admin"
	RoleTechnician RoleName = "technician"
	RoleReporter   RoleName = "reporter"
)

func (r RoleName) String() string {
	return string(r)
}

func (r RoleName) IsValid() bool {
	switch r {
	case RoleAdmin, RoleTechnician, RoleReporter:
		return true
	}
	return false
}

func NewRoleName(s string) (RoleName, error) {
	r := RoleName(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid role name: %s", s)
	}
	return r, nil
}

func AllRoleNames() []RoleName {
	return []RoleName{RoleAdmin, RoleTechnician, RoleReporter}
}
