package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketTakeConsomeAteOLimite(t *testing.T) {
	b := &bucket{}
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	for i := 2; i >= 0; i-- {
		remaining, ok := b.take(3, now)
		assert.True(t, ok)
		assert.Equal(t, i, remaining)
	}

	_, ok := b.take(3, now)
	assert.False(t, ok, "quarta requisição dentro da janela deve ser bloqueada")
}

func TestBucketTakeRecarregaAposJanela(t *testing.T) {
	b := &bucket{}
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		b.take(3, now)
	}
	_, ok := b.take(3, now)
	require.False(t, ok)

	// ainda dentro da janela
	_, ok = b.take(3, now.Add(59*time.Second))
	assert.False(t, ok)

	// janela completa: recarga total, não gradual
	remaining, ok := b.take(3, now.Add(60*time.Second))
	assert.True(t, ok)
	assert.Equal(t, 2, remaining)
}

func TestBucketPoolCriaUmBucketPorIP(t *testing.T) {
	pool := newBucketPool()

	a := pool.get("10.0.0.1")
	b := pool.get("10.0.0.2")
	assert.NotSame(t, a, b)
	assert.Same(t, a, pool.get("10.0.0.1"))
}

func newRateLimitApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Use(RateLimit())
	app.All("/*", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestRateLimitHeadersEBloqueio(t *testing.T) {
	t.Setenv("RATE_LIMIT_GENERAL", "2")
	app := newRateLimitApp(t)

	restore := nowFunc
	defer func() { nowFunc = restore }()
	agora := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	nowFunc = func() time.Time { return agora }

	req := func() *http.Response {
		r := httptest.NewRequest("GET", "/api/membros", nil)
		r.Header.Set("X-Forwarded-For", "203.0.113.10")
		resp, err := app.Test(r)
		require.NoError(t, err)
		return resp
	}

	primeira := req()
	assert.Equal(t, fiber.StatusOK, primeira.StatusCode)
	assert.Equal(t, "2", primeira.Header.Get("X-Rate-Limit-Limit"))
	assert.Equal(t, "1", primeira.Header.Get("X-Rate-Limit-Remaining"))

	segunda := req()
	assert.Equal(t, fiber.StatusOK, segunda.StatusCode)
	assert.Equal(t, "0", segunda.Header.Get("X-Rate-Limit-Remaining"))

	terceira := req()
	assert.Equal(t, fiber.StatusTooManyRequests, terceira.StatusCode)
	assert.Equal(t, "0", terceira.Header.Get("X-Rate-Limit-Remaining"))
	assert.Equal(t, "60", terceira.Header.Get("X-Rate-Limit-Retry-After-Seconds"))

	// janela seguinte volta a atender
	agora = agora.Add(refillInterval)
	quarta := req()
	assert.Equal(t, fiber.StatusOK, quarta.StatusCode)
}

func TestRateLimitPoolSeparadoParaAutenticacao(t *testing.T) {
	t.Setenv("RATE_LIMIT_GENERAL", "100")
	t.Setenv("RATE_LIMIT_AUTH", "1")
	app := newRateLimitApp(t)

	restore := nowFunc
	defer func() { nowFunc = restore }()
	nowFunc = func() time.Time { return time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC) }

	login := httptest.NewRequest("POST", "/api/auth/login", nil)
	login.Header.Set("X-Forwarded-For", "203.0.113.20")
	resp, err := app.Test(login)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "1", resp.Header.Get("X-Rate-Limit-Limit"))

	login2 := httptest.NewRequest("POST", "/api/auth/login", nil)
	login2.Header.Set("X-Forwarded-For", "203.0.113.20")
	resp, err = app.Test(login2)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)

	// o pool geral do mesmo IP segue intacto
	geral := httptest.NewRequest("GET", "/api/membros", nil)
	geral.Header.Set("X-Forwarded-For", "203.0.113.20")
	resp, err = app.Test(geral)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRateLimitNaoLimitaDocsESaude(t *testing.T) {
	t.Setenv("RATE_LIMIT_GENERAL", "1")
	app := newRateLimitApp(t)

	for i := 0; i < 5; i++ {
		r := httptest.NewRequest("GET", "/health", nil)
		r.Header.Set("X-Forwarded-For", "203.0.113.30")
		resp, err := app.Test(r)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Empty(t, resp.Header.Get("X-Rate-Limit-Limit"))
	}
}

func TestClientIPPreferePrimeiroForwardedFor(t *testing.T) {
	app := fiber.New()
	var visto string
	app.Get("/", func(c *fiber.Ctx) error {
		visto = clientIP(c)
		return c.SendString("ok")
	})

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("X-Forwarded-For", "198.51.100.7, 10.0.0.1")
	_, err := app.Test(r)
	require.NoError(t, err)
	assert.Equal(t, "198.51.100.7", visto)
}
