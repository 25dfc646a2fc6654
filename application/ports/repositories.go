// Package ports declares the interfaces the application layer depends on.
// Implementations live under infrastructure; the domain never sees them.
package ports

import (
	"context"

	"catalog-backend/domain/core/aggregates"
	"catalog-backend/domain/core/valueobjects"
)

// CategoryRepository persists Category aggregates.
// Every GetBy method returns (nil, nil) when no matching aggregate exists;
// a non-nil error always means the lookup itself failed.
type CategoryRepository interface {
	// GetByID loads a category without its product links.
	GetByID(ctx context.Context, id valueobjects.CategoryID) (*aggregates.Category, error)

	// GetByIDWithIncludes loads a category together with its product links.
	GetByIDWithIncludes(ctx context.Context, id valueobjects.CategoryID) (*aggregates.Category, error)

	// GetByName loads a category by its exact name.
	GetByName(ctx context.Context, name string) (*aggregates.Category, error)

	// GetAll lists every category without product links.
	GetAll(ctx context.Context) ([]*aggregates.Category, error)

	// GetAllWithIncludes lists every category together with product links.
	GetAllWithIncludes(ctx context.Context) ([]*aggregates.Category, error)

	// Add inserts a new category.
	Add(ctx context.Context, category *aggregates.Category) error

	// Update replaces the stored state of an existing category.
	Update(ctx context.Context, category *aggregates.Category) error

	// Delete removes a category.
	Delete(ctx context.Context, id valueobjects.CategoryID) error
}

// CreatorRepository persists Creator aggregates. Absent lookups return
// (nil, nil), same contract as CategoryRepository.
type CreatorRepository interface {
	GetByID(ctx context.Context, id valueobjects.CreatorID) (*aggregates.Creator, error)

	// GetByIDWithIncludes loads a creator together with the identifiers of
	// the products it owns.
	GetByIDWithIncludes(ctx context.Context, id valueobjects.CreatorID) (*aggregates.Creator, error)

	GetByName(ctx context.Context, name string) (*aggregates.Creator, error)

	GetAll(ctx context.Context) ([]*aggregates.Creator, error)

	Add(ctx context.Context, creator *aggregates.Creator) error

	Update(ctx context.Context, creator *aggregates.Creator) error

	Delete(ctx context.Context, id valueobjects.CreatorID) error
}

// ProductRepository persists Product aggregates. Absent lookups return
// (nil, nil), same contract as CategoryRepository.
type ProductRepository interface {
	// GetByID loads a product without its category links.
	GetByID(ctx context.Context, id valueobjects.ProductID) (*aggregates.Product, error)

	// GetByIDWithIncludes loads a product together with its category links.
	// Every mutation loads through this method: Update mirrors the
	// aggregate's link collection into storage, so the aggregate must carry
	// the full set.
	GetByIDWithIncludes(ctx context.Context, id valueobjects.ProductID) (*aggregates.Product, error)

	GetByName(ctx context.Context, name string) (*aggregates.Product, error)

	GetAll(ctx context.Context) ([]*aggregates.Product, error)

	GetAllWithIncludes(ctx context.Context) ([]*aggregates.Product, error)

	// GetByCreatorID lists the products owned by a creator.
	GetByCreatorID(ctx context.Context, creatorID valueobjects.CreatorID) ([]*aggregates.Product, error)

	Add(ctx context.Context, product *aggregates.Product) error

	Update(ctx context.Context, product *aggregates.Product) error

	Delete(ctx context.Context, id valueobjects.ProductID) error
}
