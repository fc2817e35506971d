package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/favstore/wishlist-backend/api/controllers"
	"github.com/favstore/wishlist-backend/api/middleware"
	"github.com/favstore/wishlist-backend/internal/auth"
	"github.com/favstore/wishlist-backend/internal/customers"
	"github.com/favstore/wishlist-backend/internal/wishlist"
	"github.com/favstore/wishlist-backend/pkg/config"
	"github.com/favstore/wishlist-backend/pkg/logger"
	"github.com/favstore/wishlist-backend/pkg/metrics"
	"github.com/favstore/wishlist-backend/pkg/redis"
)

// RouterParams bundles everything the HTTP surface depends on. RedisClient and
// the metrics fields may be nil.
type RouterParams struct {
	Config          *config.Config
	Logger          *logger.Logger
	RedisClient     *redis.Client
	AuthService     auth.Service
	CustomerService customers.Service
	WishlistService wishlist.Service
	HTTPMetrics     *metrics.HTTPMetrics
	MetricsGatherer prometheus.Gatherer
	ReadyPingers    map[string]controllers.Pinger
}

func NewRouter(params RouterParams) http.Handler {
	cfg := params.Config
	logg := params.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(params.HTTPMetrics),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	// passing a typed nil through the interface would defeat the middleware's
	// nil check
	var rateLimitStore middleware.RateLimiterStore
	if params.RedisClient != nil {
		rateLimitStore = params.RedisClient
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, params.ReadyPingers))
	})

	if params.MetricsGatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(params.MetricsGatherer, promhttp.HandlerOpts{}))
	}

	r.With(middleware.AuthRateLimit(loginPolicy, rateLimitStore, logg)).
		Post("/token", controllers.AuthToken(params.AuthService, logg))

	r.With(middleware.AuthRateLimit(registerPolicy, rateLimitStore, logg)).
		Post("/customers", controllers.CustomerRegister(params.CustomerService, logg))

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, params.CustomerService, logg))

		r.Route("/customers/me", func(r chi.Router) {
			r.Get("/", controllers.CustomerMe(params.CustomerService, logg))
			r.Put("/", controllers.CustomerUpdateMe(params.CustomerService, logg))
			r.Delete("/", controllers.CustomerDeleteMe(params.CustomerService, logg))
		})

		r.Route("/wishlist", func(r chi.Router) {
			r.Get("/", controllers.WishlistList(params.WishlistService, logg))
			r.Post("/products/{productId}", controllers.WishlistAddItem(params.WishlistService, logg))
			r.Delete("/products/{productId}", controllers.WishlistRemoveItem(params.WishlistService, logg))
		})
	})

	return r
}
