package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleMember   Role = "member"
	RoleOperator Role = "operator"
	RoleAdmin    Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleMember, RoleOperator, RoleAdmin:
		return true
	default:
		return false
	}
}

// CanValidate reports whether the role may call the redemption endpoint at all.
// Per-offer standing is checked separately.
func (r Role) CanValidate() bool {
	return r == RoleOperator || r == RoleAdmin
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
