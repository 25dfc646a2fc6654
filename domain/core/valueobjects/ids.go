// Package valueobjects contains the strongly typed identifiers and simple
// value types of the catalog domain. All types here compare by value and
// are immutable once constructed.
package valueobjects

import (
	"github.com/google/uuid"

	pkgerrors "catalog-backend/pkg/errors"
)

// CategoryID is a value object that ensures valid category identifiers.
// The zero value is the "empty" sentinel, distinguishable from any
// generated identifier.
type CategoryID struct {
	value string
}

// NewCategoryID creates a new random CategoryID.
func NewCategoryID() CategoryID {
	return CategoryID{value: uuid.New().String()}
}

// EmptyCategoryID returns the empty sentinel identifier.
func EmptyCategoryID() CategoryID {
	return CategoryID{}
}

// ParseCategoryID creates a CategoryID from a string, validating it's a proper UUID.
func ParseCategoryID(id string) (CategoryID, error) {
	if _, err := uuid.Parse(id); err != nil {
		return CategoryID{}, pkgerrors.NewInvalidCategoryID(id)
	}
	return CategoryID{value: id}, nil
}

// ReconstituteCategoryID rebuilds a CategoryID from storage without
// validation; stored identifiers are trusted.
func ReconstituteCategoryID(id string) CategoryID {
	return CategoryID{value: id}
}

// String returns the string representation of the CategoryID.
func (id CategoryID) String() string {
	return id.value
}

// Equals checks if two CategoryIDs are equal.
func (id CategoryID) Equals(other CategoryID) bool {
	return id.value == other.value
}

// IsEmpty checks if the CategoryID is the empty sentinel.
func (id CategoryID) IsEmpty() bool {
	return id.value == ""
}

// CreatorID is a value object that ensures valid creator identifiers.
type CreatorID struct {
	value string
}

// NewCreatorID creates a new random CreatorID.
func NewCreatorID() CreatorID {
	return CreatorID{value: uuid.New().String()}
}

// EmptyCreatorID returns the empty sentinel identifier.
func EmptyCreatorID() CreatorID {
	return CreatorID{}
}

// ParseCreatorID creates a CreatorID from a string, validating it's a proper UUID.
func ParseCreatorID(id string) (CreatorID, error) {
	if _, err := uuid.Parse(id); err != nil {
		return CreatorID{}, pkgerrors.NewInvalidCreatorID(id)
	}
	return CreatorID{value: id}, nil
}

// ReconstituteCreatorID rebuilds a CreatorID from storage without
// validation.
func ReconstituteCreatorID(id string) CreatorID {
	return CreatorID{value: id}
}

// String returns the string representation of the CreatorID.
func (id CreatorID) String() string {
	return id.value
}

// Equals checks if two CreatorIDs are equal.
func (id CreatorID) Equals(other CreatorID) bool {
	return id.value == other.value
}

// IsEmpty checks if the CreatorID is the empty sentinel.
func (id CreatorID) IsEmpty() bool {
	return id.value == ""
}

// ProductID is a value object that ensures valid product identifiers.
type ProductID struct {
	value string
}

// NewProductID creates a new random ProductID.
func NewProductID() ProductID {
	return ProductID{value: uuid.New().String()}
}

// EmptyProductID returns the empty sentinel identifier.
func EmptyProductID() ProductID {
	return ProductID{}
}

// ParseProductID creates a ProductID from a string, validating it's a proper UUID.
func ParseProductID(id string) (ProductID, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ProductID{}, pkgerrors.NewInvalidProductID(id)
	}
	return ProductID{value: id}, nil
}

// ReconstituteProductID rebuilds a ProductID from storage without
// validation.
func ReconstituteProductID(id string) ProductID {
	return ProductID{value: id}
}

// String returns the string representation of the ProductID.
func (id ProductID) String() string {
	return id.value
}

// Equals checks if two ProductIDs are equal.
func (id ProductID) Equals(other ProductID) bool {
	return id.value == other.value
}

// IsEmpty checks if the ProductID is the empty sentinel.
func (id ProductID) IsEmpty() bool {
	return id.value == ""
}
