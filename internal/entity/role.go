package entity

import "fmt"

type Role string

const (
	RoleCEO Role = "ceo"
	RoleCTO Role = "cto"
)

func (r Role) Valid() bool {
	return r == RoleCEO || r == RoleCTO
}

// Counterpart returns the other dashboard role.
func (r Role) Counterpart() Role {
	if r == RoleCEO {
		return RoleCTO
	}

	return RoleCEO
}

func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", InvalidRoleError(r)
	}

	return r, nil
}

func InvalidRoleError(r Role) error {
	return fmt.Errorf("%w: unknown role %q", ErrValidation, string(r))
}

type PermissionLevel string

const (
	PermissionView PermissionLevel = "view"
	PermissionEdit PermissionLevel = "edit"
)

func (p PermissionLevel) Valid() bool {
	return p == PermissionView || p == PermissionEdit
}

func ParsePermissionLevel(s string) (PermissionLevel, error) {
	p := PermissionLevel(s)
	if !p.Valid() {
		return "", fmt.Errorf("%w: unknown permission level %q", ErrValidation, s)
	}

	return p, nil
}

// CurrentUser is the authenticated caller. Demo marks an explicit demo session.
type CurrentUser struct {
	ID   string
	Role Role
	Demo bool
}
