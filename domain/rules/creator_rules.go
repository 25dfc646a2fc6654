package rules

import (
	"strings"

	"catalog-backend/domain/core/valueobjects"
)

// IsCreatorIDEmpty is broken when the identifier is the empty sentinel.
func IsCreatorIDEmpty(id valueobjects.CreatorID) bool {
	return id.IsEmpty()
}

// IsCreatorNameEmpty is broken when the name is blank after trimming.
func IsCreatorNameEmpty(name string) bool {
	return strings.TrimSpace(name) == ""
}

// IsCreatorNameTooShort is broken when the name is shorter than minLength.
func IsCreatorNameTooShort(name string, minLength int) bool {
	return len(name) < minLength
}

// IsCreatorNameTooLong is broken when the name is longer than maxLength.
func IsCreatorNameTooLong(name string, maxLength int) bool {
	return len(name) > maxLength
}

// IsCreatorRoleInvalid is broken when the role is outside the known set.
func IsCreatorRoleInvalid(role valueobjects.Role) bool {
	return !role.IsValid()
}
