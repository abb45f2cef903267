package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/adbrassacoma/administrativo-api/controllers"
)

// SetupFinanceiroRoutes configures the financial ledger routes.
func SetupFinanceiroRoutes(app *fiber.App) {
	financeiro := app.Group("/api/financeiro")

	financeiro.Post("/", controllers.CadastrarFinanceiro)
	financeiro.Get("/", controllers.ListFinanceiro)
	financeiro.Get("/buscar/tipo/:tipo", controllers.BuscarFinanceiroPorTipo)
	financeiro.Get("/buscar/membro/:membroId", controllers.BuscarFinanceiroPorMembro)
	financeiro.Get("/:id", controllers.BuscarFinanceiroPorID)
	financeiro.Put("/:id", controllers.AtualizarFinanceiro)
	financeiro.Delete("/:id", controllers.DeletarFinanceiro)
}
