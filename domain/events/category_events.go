package events

import (
	"catalog-backend/domain/core/valueobjects"
)

// CategoryCreatedEvent is fired when a new category enters the catalog.
type CategoryCreatedEvent struct {
	BaseEvent
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IconName    string `json:"icon_name,omitempty"`
	IconURL     string `json:"icon_url,omitempty"`
}

// NewCategoryCreatedEvent creates a new CategoryCreatedEvent.
func NewCategoryCreatedEvent(categoryID valueobjects.CategoryID, name, description string, icon valueobjects.Picture) *CategoryCreatedEvent {
	return &CategoryCreatedEvent{
		BaseEvent:   NewBaseEvent(TypeCategoryCreated, categoryID.String()),
		Name:        name,
		Description: description,
		IconName:    icon.Name(),
		IconURL:     icon.URL(),
	}
}

// EventData returns the event-specific data.
func (e *CategoryCreatedEvent) EventData() map[string]interface{} {
	return map[string]interface{}{
		"name":        e.Name,
		"description": e.Description,
		"icon_name":   e.IconName,
		"icon_url":    e.IconURL,
	}
}

// CategoryNameChangedEvent is fired when a category is renamed.
type CategoryNameChangedEvent struct {
	BaseEvent
	OldName string `json:"old_name"`
	NewName string `json:"new_name"`
}

// NewCategoryNameChangedEvent creates a new CategoryNameChangedEvent.
func NewCategoryNameChangedEvent(categoryID valueobjects.CategoryID, oldName, newName string) *CategoryNameChangedEvent {
	return &CategoryNameChangedEvent{
		BaseEvent: NewBaseEvent(TypeCategoryNameChanged, categoryID.String()),
		OldName:   oldName,
		NewName:   newName,
	}
}

// EventData returns the event-specific data.
func (e *CategoryNameChangedEvent) EventData() map[string]interface{} {
	return map[string]interface{}{
		"old_name": e.OldName,
		"new_name": e.NewName,
	}
}

// CategoryDescriptionChangedEvent is fired when a category description changes.
type CategoryDescriptionChangedEvent struct {
	BaseEvent
	OldDescription string `json:"old_description"`
	NewDescription string `json:"new_description"`
}

// NewCategoryDescriptionChangedEvent creates a new CategoryDescriptionChangedEvent.
func NewCategoryDescriptionChangedEvent(categoryID valueobjects.CategoryID, oldDescription, newDescription string) *CategoryDescriptionChangedEvent {
	return &CategoryDescriptionChangedEvent{
		BaseEvent:      NewBaseEvent(TypeCategoryDescriptionChanged, categoryID.String()),
		OldDescription: oldDescription,
		NewDescription: newDescription,
	}
}

// EventData returns the event-specific data.
func (e *CategoryDescriptionChangedEvent) EventData() map[string]interface{} {
	return map[string]interface{}{
		"old_description": e.OldDescription,
		"new_description": e.NewDescription,
	}
}

// CategoryIconUploadedEvent is fired when a category icon is set or replaced.
type CategoryIconUploadedEvent struct {
	BaseEvent
	IconName string `json:"icon_name"`
	IconURL  string `json:"icon_url"`
}

// NewCategoryIconUploadedEvent creates a new CategoryIconUploadedEvent.
func NewCategoryIconUploadedEvent(categoryID valueobjects.CategoryID, icon valueobjects.Picture) *CategoryIconUploadedEvent {
	return &CategoryIconUploadedEvent{
		BaseEvent: NewBaseEvent(TypeCategoryIconUploaded, categoryID.String()),
		IconName:  icon.Name(),
		IconURL:   icon.URL(),
	}
}

// EventData returns the event-specific data.
func (e *CategoryIconUploadedEvent) EventData() map[string]interface{} {
	return map[string]interface{}{
		"icon_name": e.IconName,
		"icon_url":  e.IconURL,
	}
}

// CategoryRemovedEvent is fired when a category is deleted from the catalog.
type CategoryRemovedEvent struct {
	BaseEvent
	Name string `json:"name"`
}

// NewCategoryRemovedEvent creates a new CategoryRemovedEvent.
func NewCategoryRemovedEvent(categoryID valueobjects.CategoryID, name string) *CategoryRemovedEvent {
	return &CategoryRemovedEvent{
		BaseEvent: NewBaseEvent(TypeCategoryRemoved, categoryID.String()),
		Name:      name,
	}
}

// EventData returns the event-specific data.
func (e *CategoryRemovedEvent) EventData() map[string]interface{} {
	return map[string]interface{}{
		"name": e.Name,
	}
}
