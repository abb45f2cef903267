package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/adbrassacoma/administrativo-api/cron"
	"github.com/adbrassacoma/administrativo-api/db"
	"github.com/adbrassacoma/administrativo-api/discovery"
	"github.com/adbrassacoma/administrativo-api/middleware"
	"github.com/adbrassacoma/administrativo-api/redis"
	"github.com/adbrassacoma/administrativo-api/routes"
)

func main() {
	db.Init()
	db.Migrate()

	redis.InitRedis()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	app.Use(middleware.RateLimit())
	app.Use(middleware.Authenticate())
	app.Use(middleware.Authorize())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	routes.SetupAuthRoutes(app)
	routes.SetupPermissaoRoutes(app)
	routes.SetupMembroRoutes(app)
	routes.SetupFinanceiroRoutes(app)
	routes.SetupAssistenciaRoutes(app)
	routes.SetupCepRoutes(app)

	sincronizarTelas()
	db.SeedAdmin()

	cron.StartCronJobs()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Fatal(app.Listen(":" + port))
}

// sincronizarTelas reconciles the permission screen catalog with the
// screens inferred from the registered endpoints. Screens are only
// created or updated, never removed.
func sincronizarTelas() {
	telas := discovery.Discover(routes.Catalog())
	created, updated, err := discovery.Sync(db.NewTelaStore(), telas)
	if err != nil {
		log.Fatal("Erro ao sincronizar telas de permissão:", err)
	}
	log.Printf("✅ Telas de permissão sincronizadas: %d criada(s), %d atualizada(s)", created, updated)
}
