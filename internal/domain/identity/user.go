package identity

import (
	"fmt"
	"net/mail"
	"time"
)

const (
	maxUsernameLength = 150
	maxEmailLength    = 254
)

// User is an account in the helpdesk. A user holds at most one role; a nil
// role means plain reporter. Staff and superuser flags exist independently of
// the role and widen what the account can do.
type User struct {
	id           uint
	username     string
	email        string
	passwordHash string
	isStaff      bool
	isSuperuser  bool
	role         *RoleName
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(username, email, passwordHash string) (*User, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}

	now := time.Now()
	return &User{
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uint,
	username string,
	email string,
	passwordHash string,
	isStaff bool,
	isSuperuser bool,
	role *RoleName,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}
	if role != nil && !role.IsValid() {
		return nil, fmt.Errorf("invalid role name: %s", *role)
	}

	return &User{
		id:           id,
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		isStaff:      isStaff,
		isSuperuser:  isSuperuser,
		role:         role,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func validateUsername(username string) error {
	if len(username) == 0 {
		return fmt.Errorf("username is required")
	}
	if len(username) > maxUsernameLength {
		return fmt.Errorf("username exceeds maximum length of %d characters", maxUsernameLength)
	}
	return nil
}

func validateEmail(email string) error {
	if len(email) == 0 {
		return fmt.Errorf("email is required")
	}
	if len(email) > maxEmailLength {
		return fmt.Errorf("email exceeds maximum length of %d characters", maxEmailLength)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("invalid email address: %s", email)
	}
	return nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Username() string {
	return u.username
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) IsStaff() bool {
	return u.isStaff
}

func (u *User) IsSuperuser() bool {
	return u.isSuperuser
}

func (u *User) Role() *RoleName {
	return u.role
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

// HasRole reports whether the user holds the given role. Superusers pass the
// admin check implicitly; all other roles require an exact match on the
// stored role.
func (u *User) HasRole(role RoleName) bool {
	if role == RoleAdmin && u.isSuperuser {
		return true
	}
	return u.role != nil && *u.role == role
}

// EffectiveRole collapses the flags into the single role used for
// authorization decisions. Superusers act as admins; users with no stored
// role act as reporters.
func (u *User) EffectiveRole() RoleName {
	if u.isSuperuser {
		return RoleAdmin
	}
	if u.role != nil {
		return *u.role
	}
	return RoleReporter
}

// IsEligibleTechnician reports whether the user may be assigned tickets:
// either the technician role or the staff flag qualifies.
func (u *User) IsEligibleTechnician() bool {
	return u.HasRole(RoleTechnician) || u.isStaff
}

func (u *User) AssignRole(role RoleName) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role name: %s", role)
	}
	u.role = &role
	u.updatedAt = time.Now()
	return nil
}

func (u *User) ClearRole() {
	u.role = nil
	u.updatedAt = time.Now()
}

func (u *User) SetStaff(isStaff bool) {
	u.isStaff = isStaff
	u.updatedAt = time.Now()
}

func (u *User) SetSuperuser(isSuperuser bool) {
	u.isSuperuser = isSuperuser
	u.updatedAt = time.Now()
}

func (u *User) UpdatePasswordHash(passwordHash string) error {
	if len(passwordHash) == 0 {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = passwordHash
	u.updatedAt = time.Now()
	return nil
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}
