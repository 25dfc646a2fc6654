package events

import (
	"catalog-backend/domain/core/valueobjects"
)

// CreatorCreatedEvent is fired when a new creator is registered.
type CreatorCreatedEvent struct {
	BaseEvent
	Name string `json:"name"`
	Role string `json:"role"`
}

// NewCreatorCreatedEvent creates a new CreatorCreatedEvent.
func NewCreatorCreatedEvent(creatorID valueobjects.CreatorID, name string, role valueobjects.Role) *CreatorCreatedEvent {
	return &CreatorCreatedEvent{
		BaseEvent: NewBaseEvent(TypeCreatorCreated, creatorID.String()),
		Name:      name,
		Role:      role.String(),
	}
}

// EventData returns the event-specific data.
func (e *CreatorCreatedEvent) EventData() map[string]interface{} {
	return map[string]interface{}{
		"name": e.Name,
		"role": e.Role,
	}
}

// CreatorNameChangedEvent is fired when a creator is renamed.
type CreatorNameChangedEvent struct {
	BaseEvent
	OldName string `json:"old_name"`
	NewName string `json:"new_name"`
}

// NewCreatorNameChangedEvent creates a new CreatorNameChangedEvent.
func NewCreatorNameChangedEvent(creatorID valueobjects.CreatorID, oldName, newName string) *CreatorNameChangedEvent {
	return &CreatorNameChangedEvent{
		BaseEvent: NewBaseEvent(TypeCreatorNameChanged, creatorID.String()),
		OldName:   oldName,
		NewName:   newName,
	}
}

// EventData returns the event-specific data.
func (e *CreatorNameChangedEvent) EventData() map[string]interface{} {
	return map[string]interface{}{
		"old_name": e.OldName,
		"new_name": e.NewName,
	}
}

// CreatorRoleChangedEvent is fired when a creator's role changes.
type CreatorRoleChangedEvent struct {
	BaseEvent
	OldRole string `json:"old_role"`
	NewRole string `json:"new_role"`
}

// NewCreatorRoleChangedEvent creates a new CreatorRoleChangedEvent.
func NewCreatorRoleChangedEvent(creatorID valueobjects.CreatorID, oldRole, newRole valueobjects.Role) *CreatorRoleChangedEvent {
	return &CreatorRoleChangedEvent{
		BaseEvent: NewBaseEvent(TypeCreatorRoleChanged, creatorID.String()),
		OldRole:   oldRole.String(),
		NewRole:   newRole.String(),
	}
}

// EventData returns the event-specific data.
func (e *CreatorRoleChangedEvent) EventData() map[string]interface{} {
	return map[string]interface{}{
		"old_role": e.OldRole,
		"new_role": e.NewRole,
	}
}
