package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/sbilibin2017/gw-smarthome-designer/docs"
	"github.com/sbilibin2017/gw-smarthome-designer/internal/config"
	"github.com/sbilibin2017/gw-smarthome-designer/internal/handlers"
	"github.com/sbilibin2017/gw-smarthome-designer/internal/jwt"
	"github.com/sbilibin2017/gw-smarthome-designer/internal/logger"
	"github.com/sbilibin2017/gw-smarthome-designer/internal/middlewares"
	"github.com/sbilibin2017/gw-smarthome-designer/internal/repositories"
	"github.com/sbilibin2017/gw-smarthome-designer/internal/services"
)

// sessionStore is the server-side session storage used by login, logout and
// the auth middlewares.
type sessionStore interface {
	services.SessionWriter
	middlewares.SessionReader
}

type routerDeps struct {
	db       *sqlx.DB
	sessions sessionStore
	catalog  services.CatalogStorage
	events   services.EventWriter
}

// newRouter wires repositories, services and handlers into the HTTP routes.
func newRouter(cfg *config.Config, deps routerDeps) http.Handler {
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWT.SecretKey),
		jwt.WithExpiration(cfg.JWT.Expiration()),
	)

	// Initialize repositories
	txGetter := middlewares.GetTxFromContext
	userReadRepo := repositories.NewUserReadRepository(deps.db, txGetter)
	userWriteRepo := repositories.NewUserWriteRepository(deps.db, txGetter)
	projectReadRepo := repositories.NewProjectReadRepository(deps.db, txGetter)
	projectWriteRepo := repositories.NewProjectWriteRepository(deps.db, txGetter)

	// Events of SQL-backed writes go out only once the request transaction commits
	events := deps.events
	if events != nil {
		events = services.NewCommitAwareWriter(events, middlewares.AfterCommit)
	}

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, deps.sessions, tokens, events)
	projectService := services.NewProjectService(projectReadRepo, projectWriteRepo, events)
	catalogService := services.NewCatalogService(deps.catalog, events)

	apiAuth := middlewares.AuthMiddleware(tokens, deps.sessions)
	pageAuth := middlewares.PageAuthMiddleware(tokens, deps.sessions, "/login")
	tx := middlewares.TxMiddleware(deps.db)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public pages
	r.Get("/", handlers.NewPageHandler(handlers.PageIndex))
	r.Get("/editor", handlers.NewPageHandler(handlers.PageEditor))
	r.Get("/login", handlers.NewPageHandler(handlers.PageLogin))
	r.Get("/register", handlers.NewPageHandler(handlers.PageRegister))
	r.Get("/logout", handlers.NewLogoutHandler(authService, tokens))
	r.Get("/healthz", handlers.NewHealthzHandler(deps.db))
	r.Get("/api/devices", handlers.NewDevicesHandler(catalogService))

	r.Group(func(r chi.Router) {
		r.Use(tx)
		r.Post("/register", handlers.NewRegisterHandler(authService))
		r.Post("/login", handlers.NewLoginHandler(authService, handlers.CookieOptions{
			Secure: cfg.App.SecureCookies,
			MaxAge: tokens.Expiration(),
		}))
	})

	r.Group(func(r chi.Router) {
		r.Use(pageAuth)
		r.Get("/dashboard", handlers.NewDashboardHandler(projectService))
	})

	r.Group(func(r chi.Router) {
		r.Use(apiAuth, tx)
		r.Post("/api/save_project", handlers.NewSaveProjectHandler(projectService))
		r.Get("/api/projects", handlers.NewProjectsHandler(projectService))
		r.Get("/api/project/{id}", handlers.NewProjectHandler(projectService))
		r.Delete("/api/delete_project/{id}", handlers.NewDeleteProjectHandler(projectService))
	})

	r.Group(func(r chi.Router) {
		if cfg.Catalog.RequireAuth {
			r.Use(apiAuth)
		}
		r.Post("/admin/add-device", handlers.NewAddDeviceHandler(catalogService))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	if len(cfg.App.CORSOrigins) == 0 {
		return r
	}

	return cors.New(cors.Options{
		AllowedOrigins:   cfg.App.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		ExposedHeaders:   []string{middlewares.RequestIDHeader},
		AllowCredentials: true,
	}).Handler(r)
}
