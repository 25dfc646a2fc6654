package memory

import (
	"context"
	"time"

	"catalog-backend/domain/core/aggregates"
	"catalog-backend/domain/core/entities"
	"catalog-backend/domain/core/valueobjects"
)

// categorySnapshot holds the scalar state of a category. Product links are
// not part of the snapshot; they derive from the store's link table.
type categorySnapshot struct {
	id          valueobjects.CategoryID
	name        string
	description string
	iconName    string
	iconURL     string
	createdAt   time.Time
	updatedAt   time.Time
}

// CategoryRepository is the in-memory ports.CategoryRepository.
type CategoryRepository struct {
	store *Store
}

// NewCategoryRepository creates a category repository over the store.
func NewCategoryRepository(store *Store) *CategoryRepository {
	return &CategoryRepository{store: store}
}

func snapshotCategory(category *aggregates.Category) categorySnapshot {
	return categorySnapshot{
		id:          category.ID(),
		name:        category.Name(),
		description: category.Description(),
		iconName:    category.Icon().Name(),
		iconURL:     category.Icon().URL(),
		createdAt:   category.CreatedAt(),
		updatedAt:   category.UpdatedAt(),
	}
}

func (s categorySnapshot) rehydrate(links []entities.ProductCategory) *aggregates.Category {
	return aggregates.ReconstituteCategory(
		s.id,
		s.name,
		s.description,
		valueobjects.ReconstitutePicture(s.iconName, s.iconURL),
		s.createdAt,
		s.updatedAt,
		links,
	)
}

// GetByID returns (nil, nil) when the category does not exist.
func (r *CategoryRepository) GetByID(_ context.Context, id valueobjects.CategoryID) (*aggregates.Category, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	snapshot, ok := r.store.categories[id.String()]
	if !ok {
		return nil, nil
	}
	return snapshot.rehydrate(nil), nil
}

// GetByIDWithIncludes loads the category with its product links.
func (r *CategoryRepository) GetByIDWithIncludes(_ context.Context, id valueobjects.CategoryID) (*aggregates.Category, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	snapshot, ok := r.store.categories[id.String()]
	if !ok {
		return nil, nil
	}
	return snapshot.rehydrate(r.store.linksByCategory(id)), nil
}

// GetByName returns (nil, nil) when no category carries the name.
func (r *CategoryRepository) GetByName(_ context.Context, name string) (*aggregates.Category, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, snapshot := range r.store.categories {
		if snapshot.name == name {
			return snapshot.rehydrate(nil), nil
		}
	}
	return nil, nil
}

// GetAll lists every stored category.
func (r *CategoryRepository) GetAll(_ context.Context) ([]*aggregates.Category, error) {
	return r.all(false), nil
}

// GetAllWithIncludes lists every stored category with product links.
func (r *CategoryRepository) GetAllWithIncludes(_ context.Context) ([]*aggregates.Category, error) {
	return r.all(true), nil
}

func (r *CategoryRepository) all(withIncludes bool) []*aggregates.Category {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	all := make([]*aggregates.Category, 0, len(r.store.categories))
	for _, snapshot := range r.store.categories {
		var links []entities.ProductCategory
		if withIncludes {
			links = r.store.linksByCategory(snapshot.id)
		}
		all = append(all, snapshot.rehydrate(links))
	}
	return all
}

// Add stores a snapshot of a new category.
func (r *CategoryRepository) Add(_ context.Context, category *aggregates.Category) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.categories[category.ID().String()] = snapshotCategory(category)
	return nil
}

// Update replaces the stored scalar state. Link rows belong to products and
// are left untouched.
func (r *CategoryRepository) Update(_ context.Context, category *aggregates.Category) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.categories[category.ID().String()] = snapshotCategory(category)
	return nil
}

// Delete removes the stored snapshot; its link rows cascade.
func (r *CategoryRepository) Delete(_ context.Context, id valueobjects.CategoryID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.categories, id.String())
	r.store.deleteLinksByCategory(id)
	return nil
}
