package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/adbrassacoma/administrativo-api/controllers"
)

// SetupAssistenciaRoutes configures the food-assistance registry routes.
func SetupAssistenciaRoutes(app *fiber.App) {
	assistencia := app.Group("/api/assistencia-social")

	assistencia.Post("/", controllers.CadastrarAssistencia)
	assistencia.Get("/", controllers.ListAssistencia)
	assistencia.Get("/:id", controllers.BuscarAssistenciaPorID)
	assistencia.Put("/:id", controllers.AtualizarAssistencia)
	assistencia.Delete("/:id", controllers.DeletarAssistencia)
}
