package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/adbrassacoma/administrativo-api/controllers"
)

// SetupMembroRoutes configures the member registry routes.
func SetupMembroRoutes(app *fiber.App) {
	membros := app.Group("/api/membros")

	membros.Post("/", controllers.CadastrarMembro)
	membros.Get("/", controllers.ListMembros)
	membros.Get("/buscar/nome/:nome", controllers.BuscarMembrosPorNome)
	membros.Get("/buscar/cpf/:cpf", controllers.BuscarMembroPorCpf)
	membros.Get("/buscar/ri/:ri", controllers.BuscarMembroPorRi)
	membros.Get("/:id", controllers.BuscarMembroPorID)
	membros.Put("/:id", controllers.AtualizarMembro)
	membros.Delete("/:id", controllers.DeletarMembro)
}
