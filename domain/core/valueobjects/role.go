package valueobjects

import pkgerrors "catalog-backend/pkg/errors"

// Role is the permission level of a creator.
type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// ParseRole converts a raw string into a known Role.
func ParseRole(role string) (Role, error) {
	switch Role(role) {
	case RoleUser, RoleModerator, RoleAdmin:
		return Role(role), nil
	default:
		return "", pkgerrors.NewCreatorRoleInvalid(role)
	}
}

// IsValid reports whether the role belongs to the known set.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}
