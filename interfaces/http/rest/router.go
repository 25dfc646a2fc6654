// Package rest wires the catalog HTTP surface: routing, middleware, and
// the metrics endpoint.
package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"catalog-backend/interfaces/http/rest/handlers"
	"catalog-backend/interfaces/http/rest/middleware"
	"catalog-backend/pkg/observability"
)

// Router creates and configures the HTTP router
type Router struct {
	categoryHandler *handlers.CategoryHandler
	creatorHandler  *handlers.CreatorHandler
	productHandler  *handlers.ProductHandler
	collector       *observability.Collector
	logger          *zap.Logger

	enableCORS    bool
	enableMetrics bool
}

// NewRouter creates a new router instance
func NewRouter(
	categoryHandler *handlers.CategoryHandler,
	creatorHandler *handlers.CreatorHandler,
	productHandler *handlers.ProductHandler,
	collector *observability.Collector,
	logger *zap.Logger,
	enableCORS bool,
	enableMetrics bool,
) *Router {
	return &Router{
		categoryHandler: categoryHandler,
		creatorHandler:  creatorHandler,
		productHandler:  productHandler,
		collector:       collector,
		logger:          logger,
		enableCORS:      enableCORS,
		enableMetrics:   enableMetrics,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	if rt.enableMetrics {
		router.Use(middleware.Metrics(rt.collector))
	}

	// CORS configuration
	if rt.enableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:3000"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	if rt.enableMetrics {
		router.Handle("/metrics", promhttp.HandlerFor(
			rt.collector.GetRegistry(),
			promhttp.HandlerOpts{},
		))
	}

	// API v1 routes
	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/categories", func(r chi.Router) {
			r.Post("/", rt.categoryHandler.CreateCategory)
			r.Get("/", rt.categoryHandler.ListCategories)
			r.Get("/{categoryID}", rt.categoryHandler.GetCategory)
			r.Put("/{categoryID}/name", rt.categoryHandler.RenameCategory)
			r.Put("/{categoryID}/description", rt.categoryHandler.ChangeDescription)
			r.Put("/{categoryID}/icon", rt.categoryHandler.UploadIcon)
			r.Delete("/{categoryID}", rt.categoryHandler.DeleteCategory)
		})

		r.Route("/creators", func(r chi.Router) {
			r.Post("/", rt.creatorHandler.CreateCreator)
			r.Get("/", rt.creatorHandler.ListCreators)
			r.Get("/{creatorID}", rt.creatorHandler.GetCreator)
			r.Put("/{creatorID}/name", rt.creatorHandler.RenameCreator)
			r.Put("/{creatorID}/role", rt.creatorHandler.ChangeRole)
		})

		r.Route("/products", func(r chi.Router) {
			r.Post("/", rt.productHandler.CreateProduct)
			r.Get("/", rt.productHandler.ListProducts)
			r.Get("/{productID}", rt.productHandler.GetProduct)
			r.Put("/{productID}/name", rt.productHandler.RenameProduct)
			r.Put("/{productID}/producer", rt.productHandler.ChangeProducer)
			r.Put("/{productID}/picture", rt.productHandler.UploadPicture)
			r.Delete("/{productID}", rt.productHandler.DeleteProduct)

			r.Post("/{productID}/categories/{categoryID}", rt.productHandler.AssignCategory)
			r.Delete("/{productID}/categories/{categoryID}", rt.productHandler.DeallocateCategory)
			r.Delete("/{productID}/categories", rt.productHandler.DeallocateAllCategories)
		})
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
