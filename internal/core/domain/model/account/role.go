package account

import "cargotrack/internal/pkg/errs"

// Role determines which API surface a profile may use.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleClient  Role = "client"
)

// AllRoles lists every supported role.
func AllRoles() []Role {
	return []Role{RoleAdmin, RoleManager, RoleClient}
}

// RoleFromString parses a stored role name.
func RoleFromString(s string) (Role, error) {
	r := Role(s)
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

// String returns the stored name of the role.
func (r Role) String() string {
	return string(r)
}

// Validate checks that the role is one of the supported values.
func (r Role) Validate() error {
	switch r {
	case RoleAdmin, RoleManager, RoleClient:
		return nil
	default:
		return errs.NewValueIsInvalidError("role")
	}
}

// IsStaff reports whether the role grants access to management endpoints.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleManager
}
