package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/adbrassacoma/administrativo-api/controllers"
)

// SetupPermissaoRoutes configures the permission management routes. All of
// them require ADMIN except /minhas, which any authenticated user may call.
func SetupPermissaoRoutes(app *fiber.App) {
	permissoes := app.Group("/api/permissoes")

	permissoes.Get("/telas", controllers.ListTelas)
	permissoes.Get("/minhas", controllers.MinhasPermissoes)
	permissoes.Get("/usuario/:usuarioId", controllers.PermissoesUsuario)
	permissoes.Get("/usuario/:usuarioId/completo", controllers.PermissoesCompletasUsuario)
	permissoes.Put("/usuario/:usuarioId", controllers.AtualizarPermissoes)
}
