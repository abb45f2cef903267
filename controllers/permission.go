package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/adbrassacoma/administrativo-api/services"
)

// ListTelas returns every permission screen in the catalog.
func ListTelas(c *fiber.Ctx) error {
	telas, err := services.Permissoes().ListTelas()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Telas encontradas com sucesso!",
		"data":    telas,
	})
}

// MinhasPermissoes returns the screen ids of the authenticated user.
func MinhasPermissoes(c *fiber.Ctx) error {
	email, _ := c.Locals("email").(string)
	if email == "" {
		return errorJSON(c, fiber.StatusUnauthorized, "Não autenticado", "Token JWT inválido, expirado ou ausente")
	}

	permissoes, err := services.Permissoes().ListPermissoesPorEmail(email)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Permissões encontradas com sucesso!",
		"data":    permissoes,
	})
}

// PermissoesUsuario returns the screen ids assigned to a user.
func PermissoesUsuario(c *fiber.Ctx) error {
	usuarioID, err := c.ParamsInt("usuarioId")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Erro de validação", "ID inválido")
	}

	permissoes, err := services.Permissoes().ListPermissoes(uint(usuarioID))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Permissões encontradas com sucesso!",
		"data":    permissoes,
	})
}

// PermissoesCompletasUsuario returns the assignments with screen details.
func PermissoesCompletasUsuario(c *fiber.Ctx) error {
	usuarioID, err := c.ParamsInt("usuarioId")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Erro de validação", "ID inválido")
	}

	permissoes, err := services.Permissoes().ListPermissoesCompletas(uint(usuarioID))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Permissões encontradas com sucesso!",
		"data":    permissoes,
	})
}

// AtualizarPermissoes replaces the user's whole assignment set.
func AtualizarPermissoes(c *fiber.Ctx) error {
	usuarioID, err := c.ParamsInt("usuarioId")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Erro de validação", "ID inválido")
	}

	type AtualizarPermissoesInput struct {
		TelasPermitidas []string `json:"telas_permitidas"`
	}
	input := new(AtualizarPermissoesInput)
	if err := c.BodyParser(input); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Erro de validação", "Cannot parse JSON")
	}

	if err := services.Permissoes().ReplacePermissoes(uint(usuarioID), input.TelasPermitidas); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Permissões atualizadas com sucesso!",
	})
}
