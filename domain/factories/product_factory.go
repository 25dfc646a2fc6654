package factories

import (
	"context"

	"catalog-backend/domain/core/aggregates"
	"catalog-backend/domain/core/valueobjects"
)

// ProductFactory builds Product aggregates.
type ProductFactory struct {
	emitter EventEmitter
}

// NewProductFactory creates a ProductFactory.
func NewProductFactory(emitter EventEmitter) *ProductFactory {
	return &ProductFactory{emitter: emitter}
}

// Create builds a product without a picture.
func (f *ProductFactory) Create(ctx context.Context, id valueobjects.ProductID, creatorID valueobjects.CreatorID, name string, producer valueobjects.Producer) (*aggregates.Product, error) {
	return f.build(ctx, id, creatorID, name, producer, valueobjects.EmptyPicture())
}

// CreateWithPicture builds a product with a picture.
func (f *ProductFactory) CreateWithPicture(ctx context.Context, id valueobjects.ProductID, creatorID valueobjects.CreatorID, name string, producer valueobjects.Producer, picture valueobjects.Picture) (*aggregates.Product, error) {
	return f.build(ctx, id, creatorID, name, producer, picture)
}

func (f *ProductFactory) build(ctx context.Context, id valueobjects.ProductID, creatorID valueobjects.CreatorID, name string, producer valueobjects.Producer, picture valueobjects.Picture) (*aggregates.Product, error) {
	product, err := aggregates.NewProduct(id, creatorID, name, producer, picture)
	if err != nil {
		return nil, err
	}

	if err := emitRecordedCreated(ctx, f.emitter, product); err != nil {
		return nil, err
	}

	return product, nil
}
