package routes

import (
	"github.com/ahmetcoskunkizilkaya/daily-tracker/internal/config"
	"github.com/ahmetcoskunkizilkaya/daily-tracker/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/daily-tracker/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	limiterStorage fiber.Storage,
	healthHandler *handlers.HealthHandler,
	userHandler *handlers.UserHandler,
	completedHandler *handlers.CompletedHandler,
	taskHandler *handlers.TaskHandler,
) {
	// Liveness probe
	app.Get("/", healthHandler.Live)

	api := app.Group("/api")
	api.Use(middleware.RateLimit(cfg, limiterStorage))

	// Health (never behind auth)
	api.Get("/health", healthHandler.Check)

	// Everything else requires a token when JWT_SECRET is set
	protected := api.Group("", middleware.JWTProtected(cfg))

	// Users
	protected.Post("/create-user", userHandler.Upsert)
	protected.Get("/users/withtasks", userHandler.WithTasks)

	// Completed days
	protected.Get("/completed", completedHandler.List)
	protected.Post("/completed", completedHandler.Create)

	// Tasks (only same-day tasks can change)
	protected.Put("/tasks/:taskId", taskHandler.Update)
	protected.Delete("/tasks/:taskId", taskHandler.Delete)
}
