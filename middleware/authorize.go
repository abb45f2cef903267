package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/adbrassacoma/administrativo-api/models"
	"github.com/adbrassacoma/administrativo-api/utils"
)

type accessRule struct {
	prefix    string
	adminOnly bool
}

// Evaluated in order, first match wins; anything unmatched just requires an
// authenticated user, whatever the role.
var accessRules = []accessRule{
	{prefix: "/api/auth/usuarios", adminOnly: true},
	{prefix: "/api/permissoes/minhas", adminOnly: false},
	{prefix: "/api/permissoes", adminOnly: true},
}

// Authorize enforces the role requirements per route. Must run after
// Authenticate.
func Authorize() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if skipAuthentication(c) {
			return c.Next()
		}

		role, _ := c.Locals("role").(string)
		if role == "" {
			return Unauthorized(c)
		}

		path := strings.ToLower(c.Path())
		for _, rule := range accessRules {
			if strings.HasPrefix(path, rule.prefix) {
				if rule.adminOnly && role != models.RoleAdmin {
					return Forbidden(c)
				}
				break
			}
		}
		return c.Next()
	}
}

// Forbidden writes the fixed 403 body for a valid credential whose role is
// not sufficient for the route.
func Forbidden(c *fiber.Ctx) error {
	resp := utils.NewErrorResponse(fiber.StatusForbidden, "Acesso negado",
		"Você não tem permissão para acessar esta ação. Apenas usuários com permissão de administrador podem acessar este recurso.")
	resp.Path = c.Path()
	resp.Method = c.Method()
	return c.Status(fiber.StatusForbidden).JSON(resp)
}
