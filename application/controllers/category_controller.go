// Package controllers contains the domain controllers that orchestrate
// catalog use cases: check identifiers, load aggregates through the
// repository ports, mutate, emit, persist, then hand the aggregate to the
// event dispatcher.
package controllers

import (
	"context"

	"go.uber.org/zap"

	"catalog-backend/application/ports"
	"catalog-backend/domain/core/aggregates"
	"catalog-backend/domain/core/valueobjects"
	"catalog-backend/domain/events"
	"catalog-backend/domain/factories"
	"catalog-backend/domain/rules"
	pkgerrors "catalog-backend/pkg/errors"
)

// CategoryDomainController orchestrates category use cases.
type CategoryDomainController struct {
	categories ports.CategoryRepository
	factory    *factories.CategoryFactory
	emitter    ports.DomainEventEmitter
	dispatcher ports.EventDispatcher
	logger     *zap.Logger
}

// NewCategoryDomainController creates a CategoryDomainController.
func NewCategoryDomainController(
	categories ports.CategoryRepository,
	factory *factories.CategoryFactory,
	emitter ports.DomainEventEmitter,
	dispatcher ports.EventDispatcher,
	logger *zap.Logger,
) *CategoryDomainController {
	return &CategoryDomainController{
		categories: categories,
		factory:    factory,
		emitter:    emitter,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// CreateNewCategory creates a category with a name only.
func (c *CategoryDomainController) CreateNewCategory(ctx context.Context, id valueobjects.CategoryID, name string) (*aggregates.Category, error) {
	return c.create(ctx, id, func() (*aggregates.Category, error) {
		return c.factory.Create(ctx, id, name)
	})
}

// CreateNewCategoryWithDescription creates a category with a name and description.
func (c *CategoryDomainController) CreateNewCategoryWithDescription(ctx context.Context, id valueobjects.CategoryID, name, description string) (*aggregates.Category, error) {
	return c.create(ctx, id, func() (*aggregates.Category, error) {
		return c.factory.CreateWithDescription(ctx, id, name, description)
	})
}

// create runs the shared create flow: id check, duplicate check, build,
// persist, dispatch.
func (c *CategoryDomainController) create(ctx context.Context, id valueobjects.CategoryID, build func() (*aggregates.Category, error)) (*aggregates.Category, error) {
	if rules.IsCategoryIDEmpty(id) {
		return nil, pkgerrors.NewInvalidCategoryID(id.String())
	}

	existing, err := c.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, pkgerrors.NewCategoryAlreadyExists(id.String())
	}

	category, err := build()
	if err != nil {
		return nil, err
	}

	if err := c.categories.Add(ctx, category); err != nil {
		return nil, err
	}

	if err := c.dispatcher.Dispatch(ctx, category); err != nil {
		return nil, err
	}

	c.logger.Info("category created",
		zap.String("category_id", id.String()),
		zap.String("name", category.Name()))

	return category, nil
}

// GetCategory loads a category with its product links.
func (c *CategoryDomainController) GetCategory(ctx context.Context, id valueobjects.CategoryID) (*aggregates.Category, error) {
	if rules.IsCategoryIDEmpty(id) {
		return nil, pkgerrors.NewInvalidCategoryID(id.String())
	}

	category, err := c.categories.GetByIDWithIncludes(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, pkgerrors.NewCategoryNotFound(id.String())
	}

	return category, nil
}

// GetCategories lists every category with product links.
func (c *CategoryDomainController) GetCategories(ctx context.Context) ([]*aggregates.Category, error) {
	return c.categories.GetAllWithIncludes(ctx)
}

// ChangeCategoryName renames a category. A same-name change is a no-op:
// nothing is emitted, nothing is written, and false is returned.
func (c *CategoryDomainController) ChangeCategoryName(ctx context.Context, id valueobjects.CategoryID, name string) (bool, error) {
	return c.mutate(ctx, id, "ChangeCategoryName", func(category *aggregates.Category) (bool, error) {
		return category.SetName(name)
	})
}

// ChangeCategoryDescription replaces a category description.
func (c *CategoryDomainController) ChangeCategoryDescription(ctx context.Context, id valueobjects.CategoryID, description string) (bool, error) {
	return c.mutate(ctx, id, "ChangeCategoryDescription", func(category *aggregates.Category) (bool, error) {
		return category.SetDescription(description)
	})
}

// UploadCategoryIcon sets or replaces a category icon.
func (c *CategoryDomainController) UploadCategoryIcon(ctx context.Context, id valueobjects.CategoryID, icon valueobjects.Picture) (bool, error) {
	return c.mutate(ctx, id, "UploadCategoryIcon", func(category *aggregates.Category) (bool, error) {
		return category.UploadIcon(icon)
	})
}

// mutate runs the shared mutation flow: id check, load, apply, emit the
// recorded event externally, persist, dispatch. No-op mutations skip
// everything after apply and report false.
func (c *CategoryDomainController) mutate(ctx context.Context, id valueobjects.CategoryID, operation string, apply func(*aggregates.Category) (bool, error)) (bool, error) {
	if rules.IsCategoryIDEmpty(id) {
		return false, pkgerrors.NewInvalidCategoryID(id.String())
	}

	category, err := c.categories.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if category == nil {
		return false, pkgerrors.NewCategoryNotFound(id.String())
	}

	changed, err := apply(category)
	if err != nil {
		return false, err
	}
	if !changed {
		c.logger.Debug("category mutation skipped, no change",
			zap.String("category_id", id.String()),
			zap.String("operation", operation))
		return false, nil
	}

	if err := emitLastRecorded(ctx, c.emitter, category); err != nil {
		return false, err
	}

	if err := c.categories.Update(ctx, category); err != nil {
		return false, err
	}

	if err := c.dispatcher.Dispatch(ctx, category); err != nil {
		return false, err
	}

	c.logger.Info("category updated",
		zap.String("category_id", id.String()),
		zap.String("operation", operation))

	return true, nil
}

// RemoveCategory deletes a category after recording and publishing the
// Removed event.
func (c *CategoryDomainController) RemoveCategory(ctx context.Context, id valueobjects.CategoryID) error {
	if rules.IsCategoryIDEmpty(id) {
		return pkgerrors.NewInvalidCategoryID(id.String())
	}

	category, err := c.categories.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return pkgerrors.NewCategoryNotFound(id.String())
	}

	category.MarkRemoved()

	if err := emitLastRecorded(ctx, c.emitter, category); err != nil {
		return err
	}

	if err := c.categories.Delete(ctx, id); err != nil {
		return err
	}

	if err := c.dispatcher.Dispatch(ctx, category); err != nil {
		return err
	}

	c.logger.Info("category removed", zap.String("category_id", id.String()))

	return nil
}

// emitLastRecorded publishes the most recently recorded pending event
// through the external emitter. The event stays on the pending list for
// the dispatcher.
func emitLastRecorded(ctx context.Context, emitter ports.DomainEventEmitter, source events.EventSource) error {
	pending, err := source.UncommittedEvents()
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		return nil
	}
	return emitter.Emit(ctx, pending[len(pending)-1])
}
