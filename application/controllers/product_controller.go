package controllers

import (
	"context"

	"go.uber.org/zap"

	"catalog-backend/application/ports"
	"catalog-backend/domain/core/aggregates"
	"catalog-backend/domain/core/valueobjects"
	"catalog-backend/domain/factories"
	"catalog-backend/domain/rules"
	pkgerrors "catalog-backend/pkg/errors"
)

// ProductDomainController orchestrates product use cases, including the
// category assignment operations that span both aggregates.
type ProductDomainController struct {
	products   ports.ProductRepository
	categories ports.CategoryRepository
	creators   ports.CreatorRepository
	factory    *factories.ProductFactory
	emitter    ports.DomainEventEmitter
	dispatcher ports.EventDispatcher
	logger     *zap.Logger
}

// NewProductDomainController creates a ProductDomainController.
func NewProductDomainController(
	products ports.ProductRepository,
	categories ports.CategoryRepository,
	creators ports.CreatorRepository,
	factory *factories.ProductFactory,
	emitter ports.DomainEventEmitter,
	dispatcher ports.EventDispatcher,
	logger *zap.Logger,
) *ProductDomainController {
	return &ProductDomainController{
		products:   products,
		categories: categories,
		creators:   creators,
		factory:    factory,
		emitter:    emitter,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// CreateNewProduct creates a product without a picture.
func (c *ProductDomainController) CreateNewProduct(ctx context.Context, id valueobjects.ProductID, creatorID valueobjects.CreatorID, name string, producer valueobjects.Producer) (*aggregates.Product, error) {
	return c.create(ctx, id, creatorID, func() (*aggregates.Product, error) {
		return c.factory.Create(ctx, id, creatorID, name, producer)
	})
}

// CreateNewProductWithPicture creates a product with a picture.
func (c *ProductDomainController) CreateNewProductWithPicture(ctx context.Context, id valueobjects.ProductID, creatorID valueobjects.CreatorID, name string, producer valueobjects.Producer, picture valueobjects.Picture) (*aggregates.Product, error) {
	return c.create(ctx, id, creatorID, func() (*aggregates.Product, error) {
		return c.factory.CreateWithPicture(ctx, id, creatorID, name, producer, picture)
	})
}

// create runs the shared create flow: id checks, owning creator check,
// duplicate check, build, persist, dispatch.
func (c *ProductDomainController) create(ctx context.Context, id valueobjects.ProductID, creatorID valueobjects.CreatorID, build func() (*aggregates.Product, error)) (*aggregates.Product, error) {
	if rules.IsProductIDEmpty(id) {
		return nil, pkgerrors.NewInvalidProductID(id.String())
	}
	if rules.IsCreatorIDEmpty(creatorID) {
		return nil, pkgerrors.NewInvalidCreatorID(creatorID.String())
	}

	creator, err := c.creators.GetByID(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	if creator == nil {
		return nil, pkgerrors.NewCreatorNotFound(creatorID.String())
	}

	existing, err := c.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, pkgerrors.NewProductAlreadyExists(id.String())
	}

	product, err := build()
	if err != nil {
		return nil, err
	}

	if err := c.products.Add(ctx, product); err != nil {
		return nil, err
	}

	if err := c.dispatcher.Dispatch(ctx, product); err != nil {
		return nil, err
	}

	c.logger.Info("product created",
		zap.String("product_id", id.String()),
		zap.String("creator_id", creatorID.String()),
		zap.String("name", product.Name()))

	return product, nil
}

// GetProduct loads a product with its category links.
func (c *ProductDomainController) GetProduct(ctx context.Context, id valueobjects.ProductID) (*aggregates.Product, error) {
	if rules.IsProductIDEmpty(id) {
		return nil, pkgerrors.NewInvalidProductID(id.String())
	}

	product, err := c.products.GetByIDWithIncludes(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, pkgerrors.NewProductNotFound(id.String())
	}

	return product, nil
}

// GetProducts lists every product with category links.
func (c *ProductDomainController) GetProducts(ctx context.Context) ([]*aggregates.Product, error) {
	return c.products.GetAllWithIncludes(ctx)
}

// ChangeProductName renames a product. A same-name change is a no-op.
func (c *ProductDomainController) ChangeProductName(ctx context.Context, id valueobjects.ProductID, name string) (bool, error) {
	return c.mutate(ctx, id, "ChangeProductName", func(product *aggregates.Product) (bool, error) {
		return product.SetName(name)
	})
}

// ChangeProductProducer replaces a product producer. A same-producer
// change is a no-op.
func (c *ProductDomainController) ChangeProductProducer(ctx context.Context, id valueobjects.ProductID, producer valueobjects.Producer) (bool, error) {
	return c.mutate(ctx, id, "ChangeProductProducer", func(product *aggregates.Product) (bool, error) {
		return product.SetProducer(producer)
	})
}

// UploadProductPicture sets or replaces a product picture.
func (c *ProductDomainController) UploadProductPicture(ctx context.Context, id valueobjects.ProductID, picture valueobjects.Picture) (bool, error) {
	return c.mutate(ctx, id, "UploadProductPicture", func(product *aggregates.Product) (bool, error) {
		return product.UploadPicture(picture)
	})
}

// AssignProductToCategory links a product to an existing category. A
// duplicate assignment fails with a conflict.
func (c *ProductDomainController) AssignProductToCategory(ctx context.Context, productID valueobjects.ProductID, categoryID valueobjects.CategoryID) error {
	if rules.IsCategoryIDEmpty(categoryID) {
		return pkgerrors.NewInvalidCategoryID(categoryID.String())
	}

	category, err := c.categories.GetByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return pkgerrors.NewCategoryNotFound(categoryID.String())
	}

	_, err = c.mutate(ctx, productID, "AssignProductToCategory", func(product *aggregates.Product) (bool, error) {
		if err := product.AssignCategory(categoryID); err != nil {
			return false, err
		}
		return true, nil
	})
	return err
}

// DeallocateProductFromCategory removes a single category link.
func (c *ProductDomainController) DeallocateProductFromCategory(ctx context.Context, productID valueobjects.ProductID, categoryID valueobjects.CategoryID) error {
	if rules.IsCategoryIDEmpty(categoryID) {
		return pkgerrors.NewInvalidCategoryID(categoryID.String())
	}

	_, err := c.mutate(ctx, productID, "DeallocateProductFromCategory", func(product *aggregates.Product) (bool, error) {
		if err := product.DeallocateCategory(categoryID); err != nil {
			return false, err
		}
		return true, nil
	})
	return err
}

// DeallocateProductFromAllCategories removes every category link of a
// product in one operation, publishing a single event with the full list.
func (c *ProductDomainController) DeallocateProductFromAllCategories(ctx context.Context, productID valueobjects.ProductID) error {
	_, err := c.mutate(ctx, productID, "DeallocateProductFromAllCategories", func(product *aggregates.Product) (bool, error) {
		if err := product.DeallocateAllCategories(); err != nil {
			return false, err
		}
		return true, nil
	})
	return err
}

// mutate runs the shared mutation flow. Every mutation loads with includes:
// Update rewrites the stored link set from the aggregate's collection, so a
// partially loaded aggregate would erase assignments on save.
func (c *ProductDomainController) mutate(ctx context.Context, id valueobjects.ProductID, operation string, apply func(*aggregates.Product) (bool, error)) (bool, error) {
	if rules.IsProductIDEmpty(id) {
		return false, pkgerrors.NewInvalidProductID(id.String())
	}

	product, err := c.products.GetByIDWithIncludes(ctx, id)
	if err != nil {
		return false, err
	}
	if product == nil {
		return false, pkgerrors.NewProductNotFound(id.String())
	}

	changed, err := apply(product)
	if err != nil {
		return false, err
	}
	if !changed {
		c.logger.Debug("product mutation skipped, no change",
			zap.String("product_id", id.String()),
			zap.String("operation", operation))
		return false, nil
	}

	if err := emitLastRecorded(ctx, c.emitter, product); err != nil {
		return false, err
	}

	if err := c.products.Update(ctx, product); err != nil {
		return false, err
	}

	if err := c.dispatcher.Dispatch(ctx, product); err != nil {
		return false, err
	}

	c.logger.Info("product updated",
		zap.String("product_id", id.String()),
		zap.String("operation", operation))

	return true, nil
}

// RemoveProduct deletes a product after recording and publishing the
// Removed event.
func (c *ProductDomainController) RemoveProduct(ctx context.Context, id valueobjects.ProductID) error {
	if rules.IsProductIDEmpty(id) {
		return pkgerrors.NewInvalidProductID(id.String())
	}

	product, err := c.products.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return pkgerrors.NewProductNotFound(id.String())
	}

	product.MarkRemoved()

	if err := emitLastRecorded(ctx, c.emitter, product); err != nil {
		return err
	}

	if err := c.products.Delete(ctx, id); err != nil {
		return err
	}

	if err := c.dispatcher.Dispatch(ctx, product); err != nil {
		return err
	}

	c.logger.Info("product removed", zap.String("product_id", id.String()))

	return nil
}
