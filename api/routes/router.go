package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kanzcollective/storefront-backend/api/controllers"
	"github.com/kanzcollective/storefront-backend/api/middleware"
	cartsvc "github.com/kanzcollective/storefront-backend/internal/cart"
	"github.com/kanzcollective/storefront-backend/internal/catalog"
	"github.com/kanzcollective/storefront-backend/internal/checkout"
	"github.com/kanzcollective/storefront-backend/pkg/config"
	"github.com/kanzcollective/storefront-backend/pkg/logger"
	"github.com/kanzcollective/storefront-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	healthDeps map[string]controllers.Pinger,
	catalogService catalog.Service,
	cartService cartsvc.Service,
	orderService controllers.OrderCreator,
	fees checkout.Fees,
	checkoutMetrics *metrics.CheckoutMetrics,
	gatherer prometheus.Gatherer,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, healthDeps))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/products", func(r chi.Router) {
		r.Get("/", controllers.ProductList(catalogService, logg))
		r.Get("/tags", controllers.ProductTags(catalogService, logg))
		r.Get("/{productId}", controllers.ProductDetail(catalogService, logg))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Session(logg))

		r.Route("/api/v1/cart", func(r chi.Router) {
			r.Get("/", controllers.CartFetch(cartService, logg))
			r.Post("/items", controllers.CartAddItem(cartService, logg))
			r.Delete("/items/{productId}", controllers.CartRemoveItem(cartService, logg))
			r.Patch("/items/{productId}", controllers.CartUpdateQuantity(cartService, logg))
			r.Post("/clear", controllers.CartClear(cartService, logg))
			r.Post("/toggle", controllers.CartToggle(cartService, logg))
		})

		r.Route("/api/v1/checkout", func(r chi.Router) {
			r.Get("/totals", controllers.CheckoutTotals(cartService, fees, logg))
			r.Post("/", controllers.Checkout(cartService, orderService, fees, checkoutMetrics, logg))
		})
	})

	return r
}
