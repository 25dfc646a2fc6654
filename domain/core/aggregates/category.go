// Package aggregates contains the aggregate roots of the catalog domain.
// Aggregates are rich models: private fields, validating constructors, and
// mutators that apply a change only after its rules pass and only when the
// new value differs from the current one. Every real change stamps
// UpdatedAt and records a domain event into the aggregate's pending list.
package aggregates

import (
	"strings"
	"time"

	"catalog-backend/domain/core/entities"
	"catalog-backend/domain/core/valueobjects"
	"catalog-backend/domain/events"
	"catalog-backend/domain/rules"
	pkgerrors "catalog-backend/pkg/errors"
)

// Category groups products for browsing. Its name is always within bounds;
// the description, when present, is always within its own bounds.
type Category struct {
	events.Recorder

	id          valueobjects.CategoryID
	name        string
	description string
	icon        valueobjects.Picture
	createdAt   time.Time
	updatedAt   time.Time

	productCategories []entities.ProductCategory
}

// NewCategory constructs a Category after running the creation rule checks
// in fixed order: identifier, then name (empty, too short, too long), then
// the optional description and icon. The first broken rule aborts
// construction. On success the Created event is recorded into the pending
// list. An empty description means "no description"; an empty icon means
// "no icon".
func NewCategory(id valueobjects.CategoryID, name, description string, icon valueobjects.Picture) (*Category, error) {
	if rules.IsCategoryIDEmpty(id) {
		return nil, pkgerrors.NewInvalidCategoryID(id.String())
	}
	if err := checkCategoryName(name); err != nil {
		return nil, err
	}
	if description != "" {
		if err := checkCategoryDescription(description); err != nil {
			return nil, err
		}
	}
	if !icon.IsEmpty() {
		if err := checkIcon(icon); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	category := &Category{
		id:          id,
		name:        name,
		description: description,
		icon:        icon,
		createdAt:   now,
		updatedAt:   now,
	}

	category.Record(events.NewCategoryCreatedEvent(id, name, description, icon))

	return category, nil
}

// ReconstituteCategory rebuilds a Category from storage. Rule checks and
// event recording are bypassed; stored state is trusted.
func ReconstituteCategory(
	id valueobjects.CategoryID,
	name, description string,
	icon valueobjects.Picture,
	createdAt, updatedAt time.Time,
	productCategories []entities.ProductCategory,
) *Category {
	return &Category{
		id:                id,
		name:              name,
		description:       description,
		icon:              icon,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
		productCategories: productCategories,
	}
}

// ID returns the category identifier.
func (c *Category) ID() valueobjects.CategoryID { return c.id }

// Name returns the category name.
func (c *Category) Name() string { return c.name }

// Description returns the category description, empty when none was set.
func (c *Category) Description() string { return c.description }

// Icon returns the category icon, EmptyPicture when none was set.
func (c *Category) Icon() valueobjects.Picture { return c.icon }

// CreatedAt returns the construction timestamp.
func (c *Category) CreatedAt() time.Time { return c.createdAt }

// UpdatedAt returns the timestamp of the last real mutation.
func (c *Category) UpdatedAt() time.Time { return c.updatedAt }

// ProductCategories returns the product links loaded with this category.
func (c *Category) ProductCategories() []entities.ProductCategory {
	return c.productCategories
}

// SetName renames the category. Returns false without any effect when the
// new name equals the current one, ignoring case.
func (c *Category) SetName(name string) (bool, error) {
	if err := checkCategoryName(name); err != nil {
		return false, err
	}
	if strings.EqualFold(c.name, name) {
		return false, nil
	}

	oldName := c.name
	c.name = name
	c.updatedAt = time.Now()
	c.Record(events.NewCategoryNameChangedEvent(c.id, oldName, name))

	return true, nil
}

// SetDescription replaces the category description. Returns false without
// any effect when the new description equals the current one.
func (c *Category) SetDescription(description string) (bool, error) {
	if err := checkCategoryDescription(description); err != nil {
		return false, err
	}
	if c.description == description {
		return false, nil
	}

	oldDescription := c.description
	c.description = description
	c.updatedAt = time.Now()
	c.Record(events.NewCategoryDescriptionChangedEvent(c.id, oldDescription, description))

	return true, nil
}

// UploadIcon sets or replaces the category icon. Returns false without any
// effect when the new icon equals the current one.
func (c *Category) UploadIcon(icon valueobjects.Picture) (bool, error) {
	if icon.IsEmpty() {
		return false, pkgerrors.NewPictureNameEmpty()
	}
	if err := checkIcon(icon); err != nil {
		return false, err
	}
	if c.icon.Equals(icon) {
		return false, nil
	}

	c.icon = icon
	c.updatedAt = time.Now()
	c.Record(events.NewCategoryIconUploadedEvent(c.id, icon))

	return true, nil
}

// MarkRemoved records the Removed event ahead of deletion.
func (c *Category) MarkRemoved() {
	c.Record(events.NewCategoryRemovedEvent(c.id, c.name))
}

// UncommittedEvents returns the pending events in raise order. It fails
// when invoked on a nil aggregate.
func (c *Category) UncommittedEvents() ([]events.DomainEvent, error) {
	if c == nil {
		return nil, pkgerrors.NewGetUncommittedEventsFailed()
	}
	return c.Uncommitted(), nil
}

// ClearEvents empties the pending list. It fails when invoked on a nil
// aggregate.
func (c *Category) ClearEvents() error {
	if c == nil {
		return pkgerrors.NewClearEventsFailed()
	}
	c.Clear()
	return nil
}

// checkCategoryName runs the name rules in fixed order:
// empty, too short, too long.
func checkCategoryName(name string) error {
	if rules.IsCategoryNameEmpty(name) {
		return pkgerrors.NewCategoryNameEmpty()
	}
	if rules.IsCategoryNameTooShort(name, rules.CategoryNameMinLength) {
		return pkgerrors.NewCategoryNameTooShort(rules.CategoryNameMinLength)
	}
	if rules.IsCategoryNameTooLong(name, rules.CategoryNameMaxLength) {
		return pkgerrors.NewCategoryNameTooLong(rules.CategoryNameMaxLength)
	}
	return nil
}

// checkCategoryDescription runs the description rules in fixed order.
func checkCategoryDescription(description string) error {
	if rules.IsCategoryDescriptionEmpty(description) {
		return pkgerrors.NewCategoryDescriptionEmpty()
	}
	if rules.IsCategoryDescriptionTooShort(description, rules.CategoryDescriptionMinLength) {
		return pkgerrors.NewCategoryDescriptionTooShort(rules.CategoryDescriptionMinLength)
	}
	if rules.IsCategoryDescriptionTooLong(description, rules.CategoryDescriptionMaxLength) {
		return pkgerrors.NewCategoryDescriptionTooLong(rules.CategoryDescriptionMaxLength)
	}
	return nil
}

// checkIcon bounds a non-empty picture used as an icon or product image.
func checkIcon(picture valueobjects.Picture) error {
	if rules.IsPictureNameTooLong(picture, rules.PictureNameMaxLength) {
		return pkgerrors.NewPictureNameTooLong(rules.PictureNameMaxLength)
	}
	if rules.IsPictureURLTooLong(picture, rules.PictureURLMaxLength) {
		return pkgerrors.NewPictureURLTooLong(rules.PictureURLMaxLength)
	}
	return nil
}
