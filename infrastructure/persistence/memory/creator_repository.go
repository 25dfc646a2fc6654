package memory

import (
	"context"
	"time"

	"catalog-backend/domain/core/aggregates"
	"catalog-backend/domain/core/valueobjects"
)

// creatorSnapshot holds the scalar state of a creator. The owned-product
// list derives from the product table.
type creatorSnapshot struct {
	id        valueobjects.CreatorID
	name      string
	role      valueobjects.Role
	createdAt time.Time
	updatedAt time.Time
}

// CreatorRepository is the in-memory ports.CreatorRepository.
type CreatorRepository struct {
	store *Store
}

// NewCreatorRepository creates a creator repository over the store.
func NewCreatorRepository(store *Store) *CreatorRepository {
	return &CreatorRepository{store: store}
}

func snapshotCreator(creator *aggregates.Creator) creatorSnapshot {
	return creatorSnapshot{
		id:        creator.ID(),
		name:      creator.Name(),
		role:      creator.Role(),
		createdAt: creator.CreatedAt(),
		updatedAt: creator.UpdatedAt(),
	}
}

func (s creatorSnapshot) rehydrate(products []valueobjects.ProductID) *aggregates.Creator {
	return aggregates.ReconstituteCreator(s.id, s.name, s.role, s.createdAt, s.updatedAt, products)
}

// GetByID returns (nil, nil) when the creator does not exist.
func (r *CreatorRepository) GetByID(_ context.Context, id valueobjects.CreatorID) (*aggregates.Creator, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	snapshot, ok := r.store.creators[id.String()]
	if !ok {
		return nil, nil
	}
	return snapshot.rehydrate(nil), nil
}

// GetByIDWithIncludes loads the creator with its owned product identifiers.
func (r *CreatorRepository) GetByIDWithIncludes(_ context.Context, id valueobjects.CreatorID) (*aggregates.Creator, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	snapshot, ok := r.store.creators[id.String()]
	if !ok {
		return nil, nil
	}
	return snapshot.rehydrate(r.store.productIDsByCreator(id)), nil
}

// GetByName returns (nil, nil) when no creator carries the name.
func (r *CreatorRepository) GetByName(_ context.Context, name string) (*aggregates.Creator, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, snapshot := range r.store.creators {
		if snapshot.name == name {
			return snapshot.rehydrate(nil), nil
		}
	}
	return nil, nil
}

// GetAll lists every stored creator.
func (r *CreatorRepository) GetAll(_ context.Context) ([]*aggregates.Creator, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	all := make([]*aggregates.Creator, 0, len(r.store.creators))
	for _, snapshot := range r.store.creators {
		all = append(all, snapshot.rehydrate(nil))
	}
	return all, nil
}

// Add stores a snapshot of a new creator.
func (r *CreatorRepository) Add(_ context.Context, creator *aggregates.Creator) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.creators[creator.ID().String()] = snapshotCreator(creator)
	return nil
}

// Update replaces the stored scalar state.
func (r *CreatorRepository) Update(_ context.Context, creator *aggregates.Creator) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.creators[creator.ID().String()] = snapshotCreator(creator)
	return nil
}

// Delete removes the stored snapshot.
func (r *CreatorRepository) Delete(_ context.Context, id valueobjects.CreatorID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.creators, id.String())
	return nil
}
