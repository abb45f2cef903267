package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthApp() *fiber.App {
	app := fiber.New()
	app.Use(Authenticate())
	app.All("/*", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestAuthenticateRotasPublicasNaoExigemToken(t *testing.T) {
	app := newAuthApp()

	for _, path := range []string{"/api/auth/login", "/api/auth/cadastro", "/health", "/docs"} {
		resp, err := app.Test(httptest.NewRequest("POST", path, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, path)
	}
}

func TestAuthenticatePreflightNaoExigeToken(t *testing.T) {
	app := newAuthApp()

	resp, err := app.Test(httptest.NewRequest("OPTIONS", "/api/membros", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthenticateSemHeaderSegueAnonimo(t *testing.T) {
	app := newAuthApp()

	// sem credencial o pedido passa; quem barra é o Authorize
	resp, err := app.Test(httptest.NewRequest("GET", "/api/membros", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthenticateTokenInvalidoRetorna401(t *testing.T) {
	app := newAuthApp()

	req := httptest.NewRequest("GET", "/api/membros", nil)
	req.Header.Set("Authorization", "Bearer token-adulterado")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
