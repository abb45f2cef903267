package db

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/adbrassacoma/administrativo-api/models"
)

// SeedAdmin creates the master administrator account on first boot.
// This user is protected against edit, delete, promote and demote.
func SeedAdmin() {
	adminEmail := "admin@administrativo.com"

	var existing models.Usuario
	if DB.Where("email = ?", adminEmail).First(&existing).RowsAffected > 0 {
		log.Println("Usuário admin master já existe no sistema.")
		return
	}

	senha := os.Getenv("ADMIN_PASSWORD")
	if senha == "" {
		senha = "admin123" // override in any real deployment
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash admin password: ", err)
	}

	admin := models.Usuario{
		Nome:  "Administrador Master",
		Email: adminEmail,
		Senha: string(hash),
		Role:  models.RoleAdmin,
	}

	if err := DB.Create(&admin).Error; err != nil {
		log.Fatal("Failed to create admin master: ", err)
	}
	log.Println("Usuário admin master criado com sucesso.")
}
