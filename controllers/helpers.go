package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/adbrassacoma/administrativo-api/services"
	"github.com/adbrassacoma/administrativo-api/utils"
)

// gormFullSave makes Save also persist changed associations (the member's
// embedded address).
var gormFullSave = gorm.Session{FullSaveAssociations: true}

// serviceError maps a service failure to the HTTP boundary. Anything not
// recognized falls through as 500 carrying the raw message.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrUsuarioNaoEncontrado):
		return errorJSON(c, fiber.StatusNotFound, "Usuário não encontrado", err.Error())
	case errors.Is(err, services.ErrEmailJaCadastrado):
		return errorJSON(c, fiber.StatusConflict, "Email já cadastrado", err.Error())
	case errors.Is(err, services.ErrCredenciaisInvalidas):
		return errorJSON(c, fiber.StatusUnauthorized, "Credenciais inválidas", err.Error())
	default:
		return errorJSON(c, fiber.StatusInternalServerError, "Erro interno do servidor", err.Error())
	}
}

func errorJSON(c *fiber.Ctx, status int, label, message string) error {
	return c.Status(status).JSON(utils.NewErrorResponse(status, label, message))
}
