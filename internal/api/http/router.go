package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/support-ticket-api/internal/api/http/handlers"
	"github.com/spec-kit/support-ticket-api/internal/auth"
	"github.com/spec-kit/support-ticket-api/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Tickets        *handlers.TicketsHandler
	Comments       *handlers.CommentsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Role gates here mirror the policy:
// ticket creation USER/MANAGER, assignment and status MANAGER/SUPPORT,
// ticket deletion and account provisioning MANAGER only; comments are
// open to any authenticated role, ownership enforced downstream.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/login", cfg.Auth.Login)

	users := app.Group("/users", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleManager))
	users.Post("/", cfg.Users.CreateUser)
	users.Get("/", cfg.Users.ListUsers)

	tickets := app.Group("/tickets", cfg.AuthMiddleware.Handle)
	tickets.Post("/", auth.RequireRole(domain.RoleUser, domain.RoleManager), cfg.Tickets.CreateTicket)
	tickets.Get("/", auth.RequireRole(), cfg.Tickets.ListTickets)
	tickets.Get("/:id", auth.RequireRole(), cfg.Tickets.GetTicket)
	tickets.Patch("/:id/assign", auth.RequireRole(domain.RoleManager, domain.RoleSupport), cfg.Tickets.AssignTicket)
	tickets.Patch("/:id/status", auth.RequireRole(domain.RoleManager, domain.RoleSupport), cfg.Tickets.UpdateStatus)
	tickets.Delete("/:id", auth.RequireRole(domain.RoleManager), cfg.Tickets.DeleteTicket)
	tickets.Post("/:id/comments", auth.RequireRole(), cfg.Tickets.AddComment)
	tickets.Get("/:id/comments", auth.RequireRole(), cfg.Tickets.ListComments)

	comments := app.Group("/comments", cfg.AuthMiddleware.Handle, auth.RequireRole())
	comments.Patch("/:id", cfg.Comments.EditComment)
	comments.Delete("/:id", cfg.Comments.DeleteComment)
}
