package db

import (
	"fmt"
	"log"

	"github.com/adbrassacoma/administrativo-api/models"
)

// Migrate runs the schema migrations. Init must have been called first.
func Migrate() {
	err := DB.AutoMigrate(
		&models.Usuario{},
		&models.TelaPermissao{},
		&models.PermissaoUsuario{},
		&models.Endereco{},
		&models.Membro{},
		&models.Financeiro{},
		&models.AssistenciaSocial{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
