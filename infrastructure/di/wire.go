//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"catalog-backend/infrastructure/config"
)

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideCollector,
	ProvideDB,
	ProvideMemoryStore,
	ProvideCategoryRepository,
	ProvideCreatorRepository,
	ProvideProductRepository,
	ProvideQueue,
	ProvideConfigWatcher,
	ProvideListingLimits,
	ProvideEmitter,
	ProvideDispatcher,
	ProvideCategoryFactory,
	ProvideCreatorFactory,
	ProvideProductFactory,
	ProvideCategoryController,
	ProvideCreatorController,
	ProvideProductController,
	ProvideCategoryHandler,
	ProvideCreatorHandler,
	ProvideProductHandler,
	ProvideRouter,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
