// Package di wires the application together with google/wire. Providers
// switch on the configured storage driver so the same container serves
// PostgreSQL deployments and in-memory local runs.
package di

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	"catalog-backend/application/controllers"
	"catalog-backend/application/ports"
	"catalog-backend/domain/factories"
	"catalog-backend/infrastructure/config"
	"catalog-backend/infrastructure/messaging"
	"catalog-backend/infrastructure/persistence/memory"
	"catalog-backend/infrastructure/persistence/postgres"
	"catalog-backend/interfaces/http/rest"
	"catalog-backend/interfaces/http/rest/handlers"
	"catalog-backend/pkg/observability"
)

// Container holds all application dependencies
type Container struct {
	Config    *config.Config
	Logger    *zap.Logger
	Collector *observability.Collector

	// Watcher is nil when no dynamic overrides file is configured.
	Watcher *config.ConfigWatcher

	CategoryRepo ports.CategoryRepository
	CreatorRepo  ports.CreatorRepository
	ProductRepo  ports.ProductRepository

	Queue      *messaging.InMemoryEmitter
	Emitter    ports.DomainEventEmitter
	Dispatcher ports.EventDispatcher

	CategoryController *controllers.CategoryDomainController
	CreatorController  *controllers.CreatorDomainController
	ProductController  *controllers.ProductDomainController

	Router *rest.Router
}

// ProvideLogger creates the zap logger for the configured environment
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.IsDevelopment() {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}

// ProvideCollector creates the Prometheus metrics collector
func ProvideCollector() *observability.Collector {
	return observability.NewCollector("catalog")
}

// ProvideDB opens PostgreSQL when the driver asks for it. Memory mode
// runs without a database.
func ProvideDB(cfg *config.Config) (*gorm.DB, error) {
	if cfg.StorageDriver != "postgres" {
		return nil, nil
	}
	return postgres.Open(cfg.Postgres.DSN())
}

// ProvideMemoryStore creates the shared in-memory store. Postgres mode
// still builds it; the repository providers simply ignore it then.
func ProvideMemoryStore() *memory.Store {
	return memory.NewStore()
}

// ProvideConfigWatcher starts watching the dynamic overrides file when one
// is configured. It returns nil otherwise, so downstream providers fall
// back to static limits. Queue capacity changes apply live.
func ProvideConfigWatcher(cfg *config.Config, queue *messaging.InMemoryEmitter, logger *zap.Logger) *config.ConfigWatcher {
	if cfg.DynamicConfigPath == "" {
		return nil
	}

	watcher, err := config.NewConfigWatcher(cfg.DynamicConfigPath, logger)
	if err != nil {
		logger.Warn("Dynamic config watcher disabled", zap.Error(err))
		return nil
	}

	watcher.OnChange(func(dynamic *config.DynamicConfig) {
		queue.SetCapacity(dynamic.Limits.EventQueueCapacity)
	})
	queue.SetCapacity(watcher.GetLimits().EventQueueCapacity)

	return watcher
}

// ProvideListingLimits selects where list endpoints read their page size
func ProvideListingLimits(watcher *config.ConfigWatcher) handlers.ListingLimits {
	if watcher == nil {
		return config.StaticLimits{Limits: config.DefaultDynamicConfig().Limits}
	}
	return watcher
}

// ProvideCategoryRepository selects the category repository implementation
func ProvideCategoryRepository(cfg *config.Config, db *gorm.DB, store *memory.Store, collector *observability.Collector, logger *zap.Logger) ports.CategoryRepository {
	if cfg.StorageDriver == "memory" {
		return memory.NewCategoryRepository(store)
	}
	return postgres.NewCategoryRepository(db, collector, logger)
}

// ProvideCreatorRepository selects the creator repository implementation
func ProvideCreatorRepository(cfg *config.Config, db *gorm.DB, store *memory.Store, collector *observability.Collector, logger *zap.Logger) ports.CreatorRepository {
	if cfg.StorageDriver == "memory" {
		return memory.NewCreatorRepository(store)
	}
	return postgres.NewCreatorRepository(db, collector, logger)
}

// ProvideProductRepository selects the product repository implementation
func ProvideProductRepository(cfg *config.Config, db *gorm.DB, store *memory.Store, collector *observability.Collector, logger *zap.Logger) ports.ProductRepository {
	if cfg.StorageDriver == "memory" {
		return memory.NewProductRepository(store)
	}
	return postgres.NewProductRepository(db, collector, logger)
}

// ProvideQueue creates the bounded in-memory event queue
func ProvideQueue(cfg *config.Config, logger *zap.Logger) *messaging.InMemoryEmitter {
	return messaging.NewInMemoryEmitter(cfg.EventQueueCapacity, logger)
}

// ProvideEmitter decorates the queue: a circuit breaker when the flag asks
// for it, then the emitted-events counter outermost so only publishes that
// made it through count
func ProvideEmitter(cfg *config.Config, queue *messaging.InMemoryEmitter, collector *observability.Collector, logger *zap.Logger) ports.DomainEventEmitter {
	var emitter ports.DomainEventEmitter = queue
	if cfg.EnableCircuitBreaker {
		emitter = messaging.NewCircuitBreakerEmitter(
			emitter,
			messaging.DefaultCircuitBreakerConfig("event-emitter"),
			logger,
		)
	}
	return messaging.NewInstrumentedEmitter(emitter, collector.EventsEmitted)
}

// ProvideDispatcher creates the event dispatcher
func ProvideDispatcher(emitter ports.DomainEventEmitter, logger *zap.Logger) ports.EventDispatcher {
	return messaging.NewDispatcher(emitter, logger)
}

// ProvideCategoryFactory creates the category factory
func ProvideCategoryFactory(emitter ports.DomainEventEmitter) *factories.CategoryFactory {
	return factories.NewCategoryFactory(emitter)
}

// ProvideCreatorFactory creates the creator factory
func ProvideCreatorFactory(emitter ports.DomainEventEmitter) *factories.CreatorFactory {
	return factories.NewCreatorFactory(emitter)
}

// ProvideProductFactory creates the product factory
func ProvideProductFactory(emitter ports.DomainEventEmitter) *factories.ProductFactory {
	return factories.NewProductFactory(emitter)
}

// ProvideCategoryController creates the category domain controller
func ProvideCategoryController(
	categories ports.CategoryRepository,
	factory *factories.CategoryFactory,
	emitter ports.DomainEventEmitter,
	dispatcher ports.EventDispatcher,
	logger *zap.Logger,
) *controllers.CategoryDomainController {
	return controllers.NewCategoryDomainController(categories, factory, emitter, dispatcher, logger)
}

// ProvideCreatorController creates the creator domain controller
func ProvideCreatorController(
	creators ports.CreatorRepository,
	factory *factories.CreatorFactory,
	emitter ports.DomainEventEmitter,
	dispatcher ports.EventDispatcher,
	logger *zap.Logger,
) *controllers.CreatorDomainController {
	return controllers.NewCreatorDomainController(creators, factory, emitter, dispatcher, logger)
}

// ProvideProductController creates the product domain controller
func ProvideProductController(
	products ports.ProductRepository,
	categories ports.CategoryRepository,
	creators ports.CreatorRepository,
	factory *factories.ProductFactory,
	emitter ports.DomainEventEmitter,
	dispatcher ports.EventDispatcher,
	logger *zap.Logger,
) *controllers.ProductDomainController {
	return controllers.NewProductDomainController(products, categories, creators, factory, emitter, dispatcher, logger)
}

// ProvideCategoryHandler creates the category HTTP handler
func ProvideCategoryHandler(
	controller *controllers.CategoryDomainController,
	collector *observability.Collector,
	limits handlers.ListingLimits,
	logger *zap.Logger,
) *handlers.CategoryHandler {
	return handlers.NewCategoryHandler(controller, collector, limits, logger)
}

// ProvideCreatorHandler creates the creator HTTP handler
func ProvideCreatorHandler(
	controller *controllers.CreatorDomainController,
	collector *observability.Collector,
	limits handlers.ListingLimits,
	logger *zap.Logger,
) *handlers.CreatorHandler {
	return handlers.NewCreatorHandler(controller, collector, limits, logger)
}

// ProvideProductHandler creates the product HTTP handler
func ProvideProductHandler(
	controller *controllers.ProductDomainController,
	collector *observability.Collector,
	limits handlers.ListingLimits,
	logger *zap.Logger,
) *handlers.ProductHandler {
	return handlers.NewProductHandler(controller, collector, limits, logger)
}

// ProvideRouter creates the HTTP router
func ProvideRouter(
	cfg *config.Config,
	categoryHandler *handlers.CategoryHandler,
	creatorHandler *handlers.CreatorHandler,
	productHandler *handlers.ProductHandler,
	collector *observability.Collector,
	logger *zap.Logger,
) *rest.Router {
	return rest.NewRouter(
		categoryHandler,
		creatorHandler,
		productHandler,
		collector,
		logger,
		cfg.EnableCORS,
		cfg.EnableMetrics,
	)
}
