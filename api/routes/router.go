package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/oceanlink/bulkcart-backend/api/controllers"
	"github.com/oceanlink/bulkcart-backend/api/middleware"
	cartsvc "github.com/oceanlink/bulkcart-backend/internal/cart"
	"github.com/oceanlink/bulkcart-backend/internal/catalog"
	checkoutsvc "github.com/oceanlink/bulkcart-backend/internal/checkout"
	"github.com/oceanlink/bulkcart-backend/pkg/config"
	"github.com/oceanlink/bulkcart-backend/pkg/logger"
	"github.com/oceanlink/bulkcart-backend/pkg/metrics"
	"github.com/oceanlink/bulkcart-backend/pkg/redis"
)

// Deps carries the wired services the router exposes.
type Deps struct {
	Config          *config.Config
	Logger          *logger.Logger
	Redis           redis.Pinger
	Catalog         *catalog.Catalog
	CartPersister   cartsvc.Persister
	CheckoutService *checkoutsvc.Service
	Gate            checkoutsvc.Gate
	Registry        *prometheus.Registry
}

func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	requestMetrics := metrics.NewRequestMetrics(deps.Registry)

	r.Use(
		middleware.Recoverer(deps.Logger),
		middleware.RequestID(deps.Logger),
		middleware.Logging(deps.Logger),
		middleware.Metrics(requestMetrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(deps.Config))
		r.Get("/ready", controllers.HealthReady(deps.Config, deps.Logger, deps.Redis))
	})

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/products", controllers.CatalogProducts(deps.Catalog, deps.Logger))
			r.Get("/products/{productId}", controllers.CatalogProductDetail(deps.Catalog, deps.Logger))
			r.Get("/categories", controllers.CatalogCategories(deps.Catalog, deps.Logger))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.CartSession(deps.Logger))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.CartFetch(deps.CartPersister, deps.Logger))
				r.Delete("/", controllers.CartClear(deps.CartPersister, deps.Logger))
				r.Post("/items", controllers.CartAddItem(deps.Catalog, deps.CartPersister, deps.Logger))
				r.Put("/items/{productId}", controllers.CartUpdateQuantity(deps.CartPersister, deps.Logger))
				r.Delete("/items/{productId}", controllers.CartRemoveItem(deps.CartPersister, deps.Logger))
			})

			r.Route("/checkout", func(r chi.Router) {
				r.Get("/eligibility", controllers.CheckoutEligibility(deps.Gate, deps.Config.Checkout.WhatsAppNumber, deps.CartPersister, deps.Logger))
				r.Post("/", controllers.CheckoutSubmit(deps.CheckoutService, deps.CartPersister, deps.Logger))
			})
		})
	})

	return r
}
