package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"

	"github.com/adbrassacoma/administrativo-api/db"
	"github.com/adbrassacoma/administrativo-api/models"
	"github.com/adbrassacoma/administrativo-api/utils"
)

// paths that never require a credential
var publicPrefixes = []string{
	"/api/auth/login",
	"/api/auth/cadastro",
	"/docs",
	"/health",
	"/favicon.ico",
}

// Authenticate resolves the bearer token into a user identity. A request
// without a credential passes through anonymously and is judged by the
// authorizer; a request with a malformed or expired credential is rejected
// here with 401.
func Authenticate() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:     utils.JWTSecret(),
		Filter:         skipAuthentication,
		ErrorHandler:   authError,
		SuccessHandler: resolveUsuario,
	})
}

func skipAuthentication(c *fiber.Ctx) bool {
	if c.Method() == fiber.MethodOptions {
		return true
	}
	path := strings.ToLower(c.Path())
	for _, prefix := range publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// authError fires both when the header is absent and when the token is bad.
// Only the second case is fatal.
func authError(c *fiber.Ctx, err error) error {
	if c.Get(fiber.HeaderAuthorization) == "" {
		return c.Next()
	}
	return Unauthorized(c)
}

// resolveUsuario loads the token's subject from the database and attaches the
// identity to the request context. An unresolvable subject is treated as
// unauthenticated, not as a fatal error.
func resolveUsuario(c *fiber.Ctx) error {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return c.Next()
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Next()
	}
	email, _ := claims["sub"].(string)
	if email == "" {
		return c.Next()
	}

	var usuario models.Usuario
	if db.DB.Where("email = ?", email).First(&usuario).RowsAffected == 0 {
		return c.Next()
	}

	c.Locals("usuario", &usuario)
	c.Locals("email", usuario.Email)
	c.Locals("role", usuario.Role)
	return c.Next()
}

// CurrentUsuario returns the authenticated user attached by Authenticate,
// or nil for an anonymous request.
func CurrentUsuario(c *fiber.Ctx) *models.Usuario {
	usuario, _ := c.Locals("usuario").(*models.Usuario)
	return usuario
}

// Unauthorized writes the uniform 401 body. It never distinguishes an
// expired token from a malformed one.
func Unauthorized(c *fiber.Ctx) error {
	resp := utils.NewErrorResponse(fiber.StatusUnauthorized, "Não autenticado",
		"Token JWT inválido, expirado ou ausente")
	resp.Path = c.Path()
	resp.Method = c.Method()
	resp.Timestamp = time.Now()
	return c.Status(fiber.StatusUnauthorized).JSON(resp)
}
