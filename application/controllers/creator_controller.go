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

// CreatorDomainController orchestrates creator use cases.
type CreatorDomainController struct {
	creators   ports.CreatorRepository
	factory    *factories.CreatorFactory
	emitter    ports.DomainEventEmitter
	dispatcher ports.EventDispatcher
	logger     *zap.Logger
}

// NewCreatorDomainController creates a CreatorDomainController.
func NewCreatorDomainController(
	creators ports.CreatorRepository,
	factory *factories.CreatorFactory,
	emitter ports.DomainEventEmitter,
	dispatcher ports.EventDispatcher,
	logger *zap.Logger,
) *CreatorDomainController {
	return &CreatorDomainController{
		creators:   creators,
		factory:    factory,
		emitter:    emitter,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// CreateNewCreator registers a creator with the default user role.
func (c *CreatorDomainController) CreateNewCreator(ctx context.Context, id valueobjects.CreatorID, name string) (*aggregates.Creator, error) {
	return c.create(ctx, id, func() (*aggregates.Creator, error) {
		return c.factory.Create(ctx, id, name)
	})
}

// CreateNewCreatorWithRole registers a creator with an explicit role.
func (c *CreatorDomainController) CreateNewCreatorWithRole(ctx context.Context, id valueobjects.CreatorID, name string, role valueobjects.Role) (*aggregates.Creator, error) {
	return c.create(ctx, id, func() (*aggregates.Creator, error) {
		return c.factory.CreateWithRole(ctx, id, name, role)
	})
}

func (c *CreatorDomainController) create(ctx context.Context, id valueobjects.CreatorID, build func() (*aggregates.Creator, error)) (*aggregates.Creator, error) {
	if rules.IsCreatorIDEmpty(id) {
		return nil, pkgerrors.NewInvalidCreatorID(id.String())
	}

	existing, err := c.creators.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, pkgerrors.NewCreatorAlreadyExists(id.String())
	}

	creator, err := build()
	if err != nil {
		return nil, err
	}

	if err := c.creators.Add(ctx, creator); err != nil {
		return nil, err
	}

	if err := c.dispatcher.Dispatch(ctx, creator); err != nil {
		return nil, err
	}

	c.logger.Info("creator created",
		zap.String("creator_id", id.String()),
		zap.String("name", creator.Name()))

	return creator, nil
}

// GetCreator loads a creator with its owned product identifiers.
func (c *CreatorDomainController) GetCreator(ctx context.Context, id valueobjects.CreatorID) (*aggregates.Creator, error) {
	if rules.IsCreatorIDEmpty(id) {
		return nil, pkgerrors.NewInvalidCreatorID(id.String())
	}

	creator, err := c.creators.GetByIDWithIncludes(ctx, id)
	if err != nil {
		return nil, err
	}
	if creator == nil {
		return nil, pkgerrors.NewCreatorNotFound(id.String())
	}

	return creator, nil
}

// GetCreators lists every creator.
func (c *CreatorDomainController) GetCreators(ctx context.Context) ([]*aggregates.Creator, error) {
	return c.creators.GetAll(ctx)
}

// ChangeCreatorName renames a creator. A same-name change is a no-op.
func (c *CreatorDomainController) ChangeCreatorName(ctx context.Context, id valueobjects.CreatorID, name string) (bool, error) {
	return c.mutate(ctx, id, "ChangeCreatorName", func(creator *aggregates.Creator) (bool, error) {
		return creator.SetName(name)
	})
}

// ChangeCreatorRole changes a creator role. A same-role change is a no-op.
func (c *CreatorDomainController) ChangeCreatorRole(ctx context.Context, id valueobjects.CreatorID, role valueobjects.Role) (bool, error) {
	return c.mutate(ctx, id, "ChangeCreatorRole", func(creator *aggregates.Creator) (bool, error) {
		return creator.SetRole(role)
	})
}

func (c *CreatorDomainController) mutate(ctx context.Context, id valueobjects.CreatorID, operation string, apply func(*aggregates.Creator) (bool, error)) (bool, error) {
	if rules.IsCreatorIDEmpty(id) {
		return false, pkgerrors.NewInvalidCreatorID(id.String())
	}

	creator, err := c.creators.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if creator == nil {
		return false, pkgerrors.NewCreatorNotFound(id.String())
	}

	changed, err := apply(creator)
	if err != nil {
		return false, err
	}
	if !changed {
		c.logger.Debug("creator mutation skipped, no change",
			zap.String("creator_id", id.String()),
			zap.String("operation", operation))
		return false, nil
	}

	if err := emitLastRecorded(ctx, c.emitter, creator); err != nil {
		return false, err
	}

	if err := c.creators.Update(ctx, creator); err != nil {
		return false, err
	}

	if err := c.dispatcher.Dispatch(ctx, creator); err != nil {
		return false, err
	}

	c.logger.Info("creator updated",
		zap.String("creator_id", id.String()),
		zap.String("operation", operation))

	return true, nil
}
