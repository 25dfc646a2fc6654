// Package factories creates aggregates and announces their birth. Each
// factory delegates rule checking to the aggregate constructor, then emits
// the Created event through the external emitter. A failed construction
// emits nothing.
package factories

import (
	"context"

	"catalog-backend/domain/core/aggregates"
	"catalog-backend/domain/core/valueobjects"
	"catalog-backend/domain/events"
)

// EventEmitter publishes a single domain event. The application layer's
// emitter port satisfies it.
type EventEmitter interface {
	Emit(ctx context.Context, event events.DomainEvent) error
}

// CategoryFactory builds Category aggregates.
type CategoryFactory struct {
	emitter EventEmitter
}

// NewCategoryFactory creates a CategoryFactory.
func NewCategoryFactory(emitter EventEmitter) *CategoryFactory {
	return &CategoryFactory{emitter: emitter}
}

// Create builds a category with a name only.
func (f *CategoryFactory) Create(ctx context.Context, id valueobjects.CategoryID, name string) (*aggregates.Category, error) {
	return f.build(ctx, id, name, "", valueobjects.EmptyPicture())
}

// CreateWithDescription builds a category with a name and description.
func (f *CategoryFactory) CreateWithDescription(ctx context.Context, id valueobjects.CategoryID, name, description string) (*aggregates.Category, error) {
	return f.build(ctx, id, name, description, valueobjects.EmptyPicture())
}

// CreateWithIcon builds a category with a name and icon.
func (f *CategoryFactory) CreateWithIcon(ctx context.Context, id valueobjects.CategoryID, name string, icon valueobjects.Picture) (*aggregates.Category, error) {
	return f.build(ctx, id, name, "", icon)
}

// CreateFull builds a category with a name, description and icon.
func (f *CategoryFactory) CreateFull(ctx context.Context, id valueobjects.CategoryID, name, description string, icon valueobjects.Picture) (*aggregates.Category, error) {
	return f.build(ctx, id, name, description, icon)
}

func (f *CategoryFactory) build(ctx context.Context, id valueobjects.CategoryID, name, description string, icon valueobjects.Picture) (*aggregates.Category, error) {
	category, err := aggregates.NewCategory(id, name, description, icon)
	if err != nil {
		return nil, err
	}

	if err := emitRecordedCreated(ctx, f.emitter, category); err != nil {
		return nil, err
	}

	return category, nil
}

// emitRecordedCreated publishes the Created event the aggregate recorded
// during construction, so both announcement channels carry one event id.
func emitRecordedCreated(ctx context.Context, emitter EventEmitter, source events.EventSource) error {
	pending, err := source.UncommittedEvents()
	if err != nil {
		return err
	}
	return emitter.Emit(ctx, pending[len(pending)-1])
}
