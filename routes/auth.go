package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/adbrassacoma/administrativo-api/controllers"
)

// SetupAuthRoutes configures authentication and user management routes.
// Role requirements are enforced globally by middleware.Authorize.
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/api/auth")

	// Public routes
	auth.Post("/cadastro", controllers.Cadastro)
	auth.Post("/login", controllers.Login)

	// Admin-only user management
	auth.Get("/usuarios", controllers.ListUsuarios)
	auth.Get("/usuarios/buscar/:nome", controllers.BuscarUsuariosPorNome)
	auth.Put("/usuarios/:id", controllers.AtualizarUsuario)
	auth.Delete("/usuarios/:id", controllers.DeletarUsuario)
	auth.Put("/usuarios/:id/promover-admin", controllers.PromoverAdmin)
	auth.Put("/usuarios/:id/rebaixar-user", controllers.RebaixarUser)
}
