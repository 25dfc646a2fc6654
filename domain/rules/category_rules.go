package rules

import (
	"strings"

	"catalog-backend/domain/core/valueobjects"
)

// IsCategoryIDEmpty is broken when the identifier is the empty sentinel.
func IsCategoryIDEmpty(id valueobjects.CategoryID) bool {
	return id.IsEmpty()
}

// IsCategoryNameEmpty is broken when the name is blank after trimming.
func IsCategoryNameEmpty(name string) bool {
	return strings.TrimSpace(name) == ""
}

// IsCategoryNameTooShort is broken when the name is shorter than minLength.
func IsCategoryNameTooShort(name string, minLength int) bool {
	return len(name) < minLength
}

// IsCategoryNameTooLong is broken when the name is longer than maxLength.
func IsCategoryNameTooLong(name string, maxLength int) bool {
	return len(name) > maxLength
}

// IsCategoryDescriptionEmpty is broken when a provided description is blank.
func IsCategoryDescriptionEmpty(description string) bool {
	return strings.TrimSpace(description) == ""
}

// IsCategoryDescriptionTooShort is broken when the description is shorter than minLength.
func IsCategoryDescriptionTooShort(description string, minLength int) bool {
	return len(description) < minLength
}

// IsCategoryDescriptionTooLong is broken when the description is longer than maxLength.
func IsCategoryDescriptionTooLong(description string, maxLength int) bool {
	return len(description) > maxLength
}
