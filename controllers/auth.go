package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/adbrassacoma/administrativo-api/db"
	"github.com/adbrassacoma/administrativo-api/models"
	"github.com/adbrassacoma/administrativo-api/services"
	"github.com/adbrassacoma/administrativo-api/utils"
)

// Cadastro handles user registration. New accounts always start as USER.
func Cadastro(c *fiber.Ctx) error {
	type CadastroInput struct {
		Nome  string `json:"nome"`
		Email string `json:"email"`
		Senha string `json:"senha"`
	}

	input := new(CadastroInput)
	if err := c.BodyParser(input); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Erro de validação", "Cannot parse JSON")
	}

	if input.Nome == "" || input.Email == "" || input.Senha == "" {
		return errorJSON(c, fiber.StatusBadRequest, "Erro de validação", "Nome, email e senha são obrigatórios")
	}

	// Check if user already exists
	var existing models.Usuario
	if db.DB.Where("email = ?", input.Email).First(&existing).RowsAffected > 0 {
		return errorJSON(c, fiber.StatusConflict, "Email já cadastrado", "Email já cadastrado no sistema")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Senha), bcrypt.DefaultCost)
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "Erro interno do servidor", "Failed to hash password")
	}

	usuario := models.Usuario{
		Nome:  input.Nome,
		Email: input.Email,
		Senha: string(hash),
		Role:  models.RoleUser,
	}

	if err := db.DB.Create(&usuario).Error; err != nil {
		log.Printf("Error creating user: %v", err)
		return errorJSON(c, fiber.StatusInternalServerError, "Erro interno do servidor", err.Error())
	}

	usuario.Senha = ""
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Usuário cadastrado com sucesso!",
		"data":    usuario,
	})
}

// Login authenticates a user and returns a bearer token.
func Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Email string `json:"email"`
		Senha string `json:"senha"`
	}

	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Erro de validação", "Cannot parse JSON")
	}

	var usuario models.Usuario
	if db.DB.Where("email = ?", input.Email).First(&usuario).RowsAffected == 0 {
		return errorJSON(c, fiber.StatusUnauthorized, "Credenciais inválidas", "Email ou senha incorretos")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.Senha), []byte(input.Senha)); err != nil {
		return errorJSON(c, fiber.StatusUnauthorized, "Credenciais inválidas", "Email ou senha incorretos")
	}

	token, err := utils.GenerateToken(usuario.Email)
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "Erro interno do servidor", "Failed to generate token")
	}

	log.Printf("Login realizado com sucesso. Usuário ID: %d, Email: %s, Role: %s",
		usuario.ID, usuario.Email, usuario.Role)

	return c.JSON(fiber.Map{
		"message": "Login realizado com sucesso!",
		"data": fiber.Map{
			"token": token,
			"tipo":  "Bearer",
			"id":    usuario.ID,
			"nome":  usuario.Nome,
			"email": usuario.Email,
			"role":  usuario.Role,
		},
	})
}

// ListUsuarios returns every registered user.
func ListUsuarios(c *fiber.Ctx) error {
	usuarios, err := services.Usuarios().ListAll()
	if err != nil {
		return serviceError(c, err)
	}
	for i := range usuarios {
		usuarios[i].Senha = ""
	}
	return c.JSON(fiber.Map{
		"message": "Usuários encontrados com sucesso!",
		"data":    usuarios,
	})
}

// BuscarUsuariosPorNome searches users whose name contains the given term.
func BuscarUsuariosPorNome(c *fiber.Ctx) error {
	usuarios, err := services.Usuarios().BuscarPorNome(c.Params("nome"))
	if err != nil {
		return serviceError(c, err)
	}
	for i := range usuarios {
		usuarios[i].Senha = ""
	}
	return c.JSON(fiber.Map{
		"message": "Usuários encontrados com sucesso!",
		"data":    usuarios,
	})
}

// AtualizarUsuario updates name, email and optionally the password.
func AtualizarUsuario(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Erro de validação", "ID inválido")
	}

	type AtualizarInput struct {
		Nome  string `json:"nome"`
		Email string `json:"email"`
		Senha string `json:"senha"`
	}
	input := new(AtualizarInput)
	if err := c.BodyParser(input); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Erro de validação", "Cannot parse JSON")
	}
	if input.Nome == "" || input.Email == "" {
		return errorJSON(c, fiber.StatusBadRequest, "Erro de validação", "Nome e email são obrigatórios")
	}

	usuario, err := services.Usuarios().Atualizar(uint(id), input.Nome, input.Email, input.Senha)
	if err != nil {
		return serviceError(c, err)
	}

	usuario.Senha = ""
	return c.JSON(fiber.Map{
		"message": "Usuário atualizado com sucesso!",
		"data":    usuario,
	})
}

// DeletarUsuario removes a user.
func DeletarUsuario(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Erro de validação", "ID inválido")
	}

	if err := services.Usuarios().Deletar(uint(id)); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Usuário deletado com sucesso!",
	})
}

// PromoverAdmin promotes a USER to ADMIN.
func PromoverAdmin(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Erro de validação", "ID inválido")
	}

	usuario, err := services.Usuarios().PromoverParaAdmin(uint(id))
	if err != nil {
		return serviceError(c, err)
	}

	usuario.Senha = ""
	return c.JSON(fiber.Map{
		"message": "Usuário promovido a administrador com sucesso!",
		"data":    usuario,
	})
}

// RebaixarUser demotes an ADMIN back to USER.
func RebaixarUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Erro de validação", "ID inválido")
	}

	usuario, err := services.Usuarios().RebaixarParaUser(uint(id))
	if err != nil {
		return serviceError(c, err)
	}

	usuario.Senha = ""
	return c.JSON(fiber.Map{
		"message": "Administrador rebaixado para usuário comum com sucesso!",
		"data":    usuario,
	})
}
