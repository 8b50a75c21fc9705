package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/david8219501/leader-app-server-08-09-25/internal/api/http/handlers"
	"github.com/david8219501/leader-app-server-08-09-25/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Accounts       *handlers.AccountsHandler
	Manager        *handlers.ManagerHandler
	Employees      *handlers.EmployeesHandler
	Shifts         *handlers.ShiftsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Only the root check, registration and
// login sit outside the auth gate.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	app.Post("/register", cfg.Accounts.Register)
	app.Post("/login", cfg.Accounts.Login)

	protected := app.Group("", cfg.AuthMiddleware.Handle)

	manager := protected.Group("/manager")
	manager.Get("/profile", cfg.Manager.GetProfile)
	manager.Put("/profile", cfg.Manager.UpdateProfile)
	manager.Put("/password", cfg.Manager.ChangePassword)

	employees := protected.Group("/employees")
	employees.Post("/", cfg.Employees.Add)
	employees.Get("/", cfg.Employees.List)
	employees.Put("/:id", cfg.Employees.Update)
	employees.Delete("/:id", cfg.Employees.Delete)

	shifts := protected.Group("/shifts")
	shifts.Post("/", cfg.Shifts.Create)
	shifts.Get("/:weekStart", cfg.Shifts.ListWeek)
	shifts.Delete("/:weekStart/:day/:shiftType", cfg.Shifts.ClearSlot)
	shifts.Delete("/:weekStart", cfg.Shifts.ResetWeek)
}
