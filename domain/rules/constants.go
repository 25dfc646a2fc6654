// Package rules contains the business-rule predicates the catalog domain is
// validated against. Every predicate is pure and side-effect free; true
// always means "the rule is broken". Callers decide whether a broken rule
// becomes an error.
package rules

import "catalog-backend/domain/core/valueobjects"

// Validation bounds shared by factories, aggregates and rule predicates.
// These are the single source of truth; no layer carries its own copies.
const (
	CategoryNameMinLength = 4
	CategoryNameMaxLength = 30

	CategoryDescriptionMinLength = 20
	CategoryDescriptionMaxLength = 4000

	CreatorNameMinLength = 3
	CreatorNameMaxLength = 50

	ProductNameMinLength = 4
	ProductNameMaxLength = 30

	// Producer and picture bounds live with their value objects, which
	// already enforce them at construction; re-exported here so every
	// bound is reachable from one place.
	ProducerNameMinLength = valueobjects.ProducerNameMinLength
	ProducerNameMaxLength = valueobjects.ProducerNameMaxLength

	PictureNameMaxLength = valueobjects.PictureNameMaxLength
	PictureURLMaxLength  = valueobjects.PictureURLMaxLength
)
