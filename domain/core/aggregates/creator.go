package aggregates

import (
	"strings"
	"time"

	"catalog-backend/domain/core/valueobjects"
	"catalog-backend/domain/events"
	"catalog-backend/domain/rules"
	pkgerrors "catalog-backend/pkg/errors"
)

// Creator owns products in the catalog.
type Creator struct {
	events.Recorder

	id        valueobjects.CreatorID
	name      string
	role      valueobjects.Role
	createdAt time.Time
	updatedAt time.Time

	// Identifiers of the products owned by this creator, populated by
	// the WithIncludes repository loads.
	products []valueobjects.ProductID
}

// NewCreator constructs a Creator after running the creation rule checks in
// fixed order: identifier, name (empty, too short, too long), role.
func NewCreator(id valueobjects.CreatorID, name string, role valueobjects.Role) (*Creator, error) {
	if rules.IsCreatorIDEmpty(id) {
		return nil, pkgerrors.NewInvalidCreatorID(id.String())
	}
	if err := checkCreatorName(name); err != nil {
		return nil, err
	}
	if rules.IsCreatorRoleInvalid(role) {
		return nil, pkgerrors.NewCreatorRoleInvalid(role.String())
	}

	now := time.Now()
	creator := &Creator{
		id:        id,
		name:      name,
		role:      role,
		createdAt: now,
		updatedAt: now,
	}

	creator.Record(events.NewCreatorCreatedEvent(id, name, role))

	return creator, nil
}

// ReconstituteCreator rebuilds a Creator from storage, bypassing rule
// checks and event recording.
func ReconstituteCreator(
	id valueobjects.CreatorID,
	name string,
	role valueobjects.Role,
	createdAt, updatedAt time.Time,
	products []valueobjects.ProductID,
) *Creator {
	return &Creator{
		id:        id,
		name:      name,
		role:      role,
		createdAt: createdAt,
		updatedAt: updatedAt,
		products:  products,
	}
}

// ID returns the creator identifier.
func (c *Creator) ID() valueobjects.CreatorID { return c.id }

// Name returns the creator display name.
func (c *Creator) Name() string { return c.name }

// Role returns the creator role.
func (c *Creator) Role() valueobjects.Role { return c.role }

// CreatedAt returns the construction timestamp.
func (c *Creator) CreatedAt() time.Time { return c.createdAt }

// UpdatedAt returns the timestamp of the last real mutation.
func (c *Creator) UpdatedAt() time.Time { return c.updatedAt }

// Products returns the owned product identifiers loaded with this creator.
func (c *Creator) Products() []valueobjects.ProductID { return c.products }

// SetName renames the creator. Returns false without any effect when the
// new name equals the current one, ignoring case.
func (c *Creator) SetName(name string) (bool, error) {
	if err := checkCreatorName(name); err != nil {
		return false, err
	}
	if strings.EqualFold(c.name, name) {
		return false, nil
	}

	oldName := c.name
	c.name = name
	c.updatedAt = time.Now()
	c.Record(events.NewCreatorNameChangedEvent(c.id, oldName, name))

	return true, nil
}

// SetRole changes the creator role. Returns false without any effect when
// the new role equals the current one.
func (c *Creator) SetRole(role valueobjects.Role) (bool, error) {
	if rules.IsCreatorRoleInvalid(role) {
		return false, pkgerrors.NewCreatorRoleInvalid(role.String())
	}
	if c.role == role {
		return false, nil
	}

	oldRole := c.role
	c.role = role
	c.updatedAt = time.Now()
	c.Record(events.NewCreatorRoleChangedEvent(c.id, oldRole, role))

	return true, nil
}

// UncommittedEvents returns the pending events in raise order. It fails
// when invoked on a nil aggregate.
func (c *Creator) UncommittedEvents() ([]events.DomainEvent, error) {
	if c == nil {
		return nil, pkgerrors.NewGetUncommittedEventsFailed()
	}
	return c.Uncommitted(), nil
}

// ClearEvents empties the pending list. It fails when invoked on a nil
// aggregate.
func (c *Creator) ClearEvents() error {
	if c == nil {
		return pkgerrors.NewClearEventsFailed()
	}
	c.Clear()
	return nil
}

func checkCreatorName(name string) error {
	if rules.IsCreatorNameEmpty(name) {
		return pkgerrors.NewCreatorNameEmpty()
	}
	if rules.IsCreatorNameTooShort(name, rules.CreatorNameMinLength) {
		return pkgerrors.NewCreatorNameTooShort(rules.CreatorNameMinLength)
	}
	if rules.IsCreatorNameTooLong(name, rules.CreatorNameMaxLength) {
		return pkgerrors.NewCreatorNameTooLong(rules.CreatorNameMaxLength)
	}
	return nil
}
