// Package events defines the domain events of the catalog and the pending
// event recorder that aggregates compose. Events are immutable records of
// facts; an aggregate appends them as state changes and infrastructure
// drains them after a successful save.
package events

import (
	"time"

	"github.com/google/uuid"
)

// Event type names. Dispatchers and subscribers match on these.
const (
	TypeCategoryCreated            = "NewCategoryCreated"
	TypeCategoryNameChanged        = "CategoryNameChanged"
	TypeCategoryDescriptionChanged = "CategoryDescriptionChanged"
	TypeCategoryIconUploaded       = "CategoryIconUploaded"
	TypeCategoryRemoved            = "CategoryRemoved"

	TypeCreatorCreated     = "NewCreatorCreated"
	TypeCreatorNameChanged = "CreatorNameChanged"
	TypeCreatorRoleChanged = "CreatorRoleChanged"

	TypeProductCreated                   = "NewProductCreated"
	TypeProductNameChanged               = "ProductNameChanged"
	TypeProductProducerChanged           = "ProductProducerChanged"
	TypeProductPictureUploaded           = "ProductPictureUploaded"
	TypeProductRemoved                   = "ProductRemoved"
	TypeProductAssignedToCategory        = "ProductAssignedToCategory"
	TypeProductDeallocatedFromCategory   = "ProductDeallocatedFromCategory"
	TypeProductDeallocatedFromCategories = "ProductDeallocatedFromAllCategories"
)

// DomainEvent represents an important business occurrence in the domain.
type DomainEvent interface {
	// EventID returns a unique identifier for this event instance
	EventID() string

	// EventType returns the type of event (e.g., "NewCategoryCreated")
	EventType() string

	// AggregateID returns the ID of the aggregate that generated this event
	AggregateID() string

	// OccurredAt returns when the event occurred
	OccurredAt() time.Time

	// EventData returns the event-specific data
	EventData() map[string]interface{}
}

// BaseEvent provides common functionality for all domain events.
type BaseEvent struct {
	eventID     string
	eventType   string
	aggregateID string
	occurredAt  time.Time
}

// NewBaseEvent creates a new base event stamped with a fresh id and the
// current time.
func NewBaseEvent(eventType, aggregateID string) BaseEvent {
	return BaseEvent{
		eventID:     uuid.New().String(),
		eventType:   eventType,
		aggregateID: aggregateID,
		occurredAt:  time.Now(),
	}
}

// EventID returns the unique event identifier.
func (e BaseEvent) EventID() string {
	return e.eventID
}

// EventType returns the type of event.
func (e BaseEvent) EventType() string {
	return e.eventType
}

// AggregateID returns the aggregate identifier.
func (e BaseEvent) AggregateID() string {
	return e.aggregateID
}

// OccurredAt returns the event timestamp.
func (e BaseEvent) OccurredAt() time.Time {
	return e.occurredAt
}
