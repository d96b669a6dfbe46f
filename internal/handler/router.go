package handler

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/tinyapp/tinyapp/internal/middleware"
	"github.com/tinyapp/tinyapp/internal/session"
)

// RouterDeps bundles everything the router mounts.
type RouterDeps struct {
	Base     *Handler
	Auth     *AuthHandler
	URLs     *URLHandler
	Redirect *RedirectHandler
	Health   *HealthHandler
	Metrics  *MetricsHandler
	Sessions session.Store
	Logger   *slog.Logger
}

// NewRouter configures the chi router with all routes and middleware.
func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.Recoverer(deps.Logger))
	r.Use(middleware.Session(deps.Sessions, deps.Logger))

	r.NotFound(deps.Base.NotFound)
	r.MethodNotAllowed(deps.Base.MethodNotAllowed)

	// Operational endpoints
	r.Get("/healthz", deps.Health.Healthz)
	r.Get("/readyz", deps.Health.Readyz)
	r.Get("/metrics", deps.Metrics.Snapshot)

	// Root info endpoint
	r.Get("/", deps.Base.Hello)

	// Public redirect
	r.Get("/u/{code}", deps.Redirect.Redirect)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", deps.Auth.Register)
			r.Post("/login", deps.Auth.Login)
			r.Post("/logout", deps.Auth.Logout)
		})

		r.Route("/urls", func(r chi.Router) {
			r.Get("/", deps.URLs.List)
			r.Post("/", deps.URLs.Create)
			r.Get("/{code}", deps.URLs.Get)
			r.Patch("/{code}", deps.URLs.Update)
			r.Delete("/{code}", deps.URLs.Delete)
		})
	})

	return r
}
