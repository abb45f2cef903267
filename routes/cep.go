package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/adbrassacoma/administrativo-api/controllers"
)

// SetupCepRoutes configures the postal-code lookup proxy.
func SetupCepRoutes(app *fiber.App) {
	cep := app.Group("/api/cep")

	cep.Get("/:cep", controllers.BuscarCep)
}
