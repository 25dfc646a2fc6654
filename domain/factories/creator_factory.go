package factories

import (
	"context"

	"catalog-backend/domain/core/aggregates"
	"catalog-backend/domain/core/valueobjects"
)

// CreatorFactory builds Creator aggregates.
type CreatorFactory struct {
	emitter EventEmitter
}

// NewCreatorFactory creates a CreatorFactory.
func NewCreatorFactory(emitter EventEmitter) *CreatorFactory {
	return &CreatorFactory{emitter: emitter}
}

// Create builds a creator with the default user role.
func (f *CreatorFactory) Create(ctx context.Context, id valueobjects.CreatorID, name string) (*aggregates.Creator, error) {
	return f.build(ctx, id, name, valueobjects.RoleUser)
}

// CreateWithRole builds a creator with an explicit role.
func (f *CreatorFactory) CreateWithRole(ctx context.Context, id valueobjects.CreatorID, name string, role valueobjects.Role) (*aggregates.Creator, error) {
	return f.build(ctx, id, name, role)
}

func (f *CreatorFactory) build(ctx context.Context, id valueobjects.CreatorID, name string, role valueobjects.Role) (*aggregates.Creator, error) {
	creator, err := aggregates.NewCreator(id, name, role)
	if err != nil {
		return nil, err
	}

	if err := emitRecordedCreated(ctx, f.emitter, creator); err != nil {
		return nil, err
	}

	return creator, nil
}
