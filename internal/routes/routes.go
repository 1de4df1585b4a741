package routes

import (
	"github.com/evobikemx/pos-backend/internal/config"
	"github.com/evobikemx/pos-backend/internal/handlers"
	"github.com/evobikemx/pos-backend/internal/middleware"
	"github.com/evobikemx/pos-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	sessions *services.SessionService,
	authHandler *handlers.AuthHandler,
	customerHandler *handlers.CustomerHandler,
	adminHandler *handlers.AdminHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	api.Get("/health", healthHandler.Check)

	// Public auth
	api.Post("/auth/login", authHandler.Login)

	sessionGate := middleware.SessionRequired(sessions, cfg.SessionCookieName)

	// Identity — session only, branch not required
	api.Get("/auth/me", sessionGate, authHandler.Me)

	// Customer directory — session plus branch assignment, both re-checked on
	// every request
	customers := api.Group("/customers", sessionGate, middleware.BranchRequired())
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Admin surface
	admin := api.Group("/admin", sessionGate, middleware.AdminRequired())
	admin.Post("/branches", adminHandler.CreateBranch)
	admin.Get("/branches", adminHandler.ListBranches)
	admin.Post("/users", adminHandler.CreateUser)
}
