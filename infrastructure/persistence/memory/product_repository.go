package memory

import (
	"context"
	"time"

	"catalog-backend/domain/core/aggregates"
	"catalog-backend/domain/core/entities"
	"catalog-backend/domain/core/valueobjects"
)

// productSnapshot holds the scalar state of a product. Its category links
// live as rows in the store's link table.
type productSnapshot struct {
	id          valueobjects.ProductID
	creatorID   valueobjects.CreatorID
	name        string
	producer    string
	pictureName string
	pictureURL  string
	createdAt   time.Time
	updatedAt   time.Time
}

// ProductRepository is the in-memory ports.ProductRepository.
type ProductRepository struct {
	store *Store
}

// NewProductRepository creates a product repository over the store.
func NewProductRepository(store *Store) *ProductRepository {
	return &ProductRepository{store: store}
}

func snapshotProduct(product *aggregates.Product) productSnapshot {
	return productSnapshot{
		id:          product.ID(),
		creatorID:   product.CreatorID(),
		name:        product.Name(),
		producer:    product.Producer().Name(),
		pictureName: product.Picture().Name(),
		pictureURL:  product.Picture().URL(),
		createdAt:   product.CreatedAt(),
		updatedAt:   product.UpdatedAt(),
	}
}

func (s productSnapshot) rehydrate(links []entities.ProductCategory) *aggregates.Product {
	return aggregates.ReconstituteProduct(
		s.id,
		s.creatorID,
		s.name,
		valueobjects.ReconstituteProducer(s.producer),
		valueobjects.ReconstitutePicture(s.pictureName, s.pictureURL),
		s.createdAt,
		s.updatedAt,
		links,
	)
}

// GetByID returns (nil, nil) when the product does not exist.
func (r *ProductRepository) GetByID(_ context.Context, id valueobjects.ProductID) (*aggregates.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	snapshot, ok := r.store.products[id.String()]
	if !ok {
		return nil, nil
	}
	return snapshot.rehydrate(nil), nil
}

// GetByIDWithIncludes loads the product with its category links.
func (r *ProductRepository) GetByIDWithIncludes(_ context.Context, id valueobjects.ProductID) (*aggregates.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	snapshot, ok := r.store.products[id.String()]
	if !ok {
		return nil, nil
	}
	return snapshot.rehydrate(r.store.linksByProduct(id)), nil
}

// GetByName returns (nil, nil) when no product carries the name.
func (r *ProductRepository) GetByName(_ context.Context, name string) (*aggregates.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, snapshot := range r.store.products {
		if snapshot.name == name {
			return snapshot.rehydrate(nil), nil
		}
	}
	return nil, nil
}

// GetAll lists every stored product.
func (r *ProductRepository) GetAll(_ context.Context) ([]*aggregates.Product, error) {
	return r.all(false), nil
}

// GetAllWithIncludes lists every stored product with category links.
func (r *ProductRepository) GetAllWithIncludes(_ context.Context) ([]*aggregates.Product, error) {
	return r.all(true), nil
}

func (r *ProductRepository) all(withIncludes bool) []*aggregates.Product {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	all := make([]*aggregates.Product, 0, len(r.store.products))
	for _, snapshot := range r.store.products {
		var links []entities.ProductCategory
		if withIncludes {
			links = r.store.linksByProduct(snapshot.id)
		}
		all = append(all, snapshot.rehydrate(links))
	}
	return all
}

// GetByCreatorID lists the products owned by a creator, links included.
func (r *ProductRepository) GetByCreatorID(_ context.Context, creatorID valueobjects.CreatorID) ([]*aggregates.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var owned []*aggregates.Product
	for _, snapshot := range r.store.products {
		if snapshot.creatorID.Equals(creatorID) {
			owned = append(owned, snapshot.rehydrate(r.store.linksByProduct(snapshot.id)))
		}
	}
	return owned, nil
}

// Add stores a snapshot of a new product together with its link rows.
func (r *ProductRepository) Add(_ context.Context, product *aggregates.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.products[product.ID().String()] = snapshotProduct(product)
	r.store.replaceProductLinks(product.ID(), product.ProductCategories())
	return nil
}

// Update replaces the stored scalar state and rewrites the product's link
// rows so the stored set always mirrors the aggregate's collection.
func (r *ProductRepository) Update(_ context.Context, product *aggregates.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.products[product.ID().String()] = snapshotProduct(product)
	r.store.replaceProductLinks(product.ID(), product.ProductCategories())
	return nil
}

// Delete removes the stored snapshot; its link rows cascade.
func (r *ProductRepository) Delete(_ context.Context, id valueobjects.ProductID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.products, id.String())
	r.store.deleteLinksByProduct(id)
	return nil
}
