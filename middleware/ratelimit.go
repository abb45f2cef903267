package middleware

import (
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
)

const refillInterval = 60 * time.Second

// swapped out in tests
var nowFunc = time.Now

// bucket is a per-IP token counter refilled to full capacity once every
// refill interval (a periodic full refill, not a smooth one).
type bucket struct {
	mu        sync.Mutex
	remaining int
	resetAt   time.Time
}

// take consumes one token, returning the remaining count after the take.
func (b *bucket) take(capacity int, now time.Time) (int, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !now.Before(b.resetAt) {
		b.remaining = capacity
		b.resetAt = now.Add(refillInterval)
	}
	if b.remaining <= 0 {
		return 0, false
	}
	b.remaining--
	return b.remaining, true
}

// bucketPool holds the buckets of one traffic class, created lazily per IP.
// Buckets live for the process lifetime; stale IPs are never evicted.
type bucketPool struct {
	mu      sync.RWMutex
	buckets map[string]*bucket
}

func newBucketPool() *bucketPool {
	return &bucketPool{buckets: make(map[string]*bucket)}
}

func (p *bucketPool) get(ip string) *bucket {
	p.mu.RLock()
	b := p.buckets[ip]
	p.mu.RUnlock()
	if b != nil {
		return b
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if b = p.buckets[ip]; b == nil {
		b = &bucket{}
		p.buckets[ip] = b
	}
	return b
}

var (
	generalBuckets = newBucketPool()
	authBuckets    = newBucketPool()
)

// RateLimit enforces the two-tier per-IP rate limit. Login and registration
// share a stricter pool than general traffic; docs and health endpoints are
// not limited at all. Runs before authentication.
func RateLimit() fiber.Handler {
	generalLimit := limitFromEnv("RATE_LIMIT_GENERAL", 100)
	authLimit := limitFromEnv("RATE_LIMIT_AUTH", 5)

	return func(c *fiber.Ctx) error {
		path := c.Path()

		var pool *bucketPool
		var limit int
		switch {
		case strings.HasPrefix(path, "/api/auth/login"), strings.HasPrefix(path, "/api/auth/cadastro"):
			pool, limit = authBuckets, authLimit
		case strings.HasPrefix(path, "/docs"), strings.HasPrefix(path, "/health"), path == "/favicon.ico":
			return c.Next()
		default:
			pool, limit = generalBuckets, generalLimit
		}

		ip := clientIP(c)
		remaining, ok := pool.get(ip).take(limit, nowFunc())

		c.Set("X-Rate-Limit-Limit", strconv.Itoa(limit))
		if !ok {
			log.Printf("Rate limit exceeded for IP: %s on endpoint: %s", ip, path)
			c.Set("X-Rate-Limit-Remaining", "0")
			c.Set("X-Rate-Limit-Retry-After-Seconds", "60")
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"timestamp": time.Now(),
				"status":    fiber.StatusTooManyRequests,
				"error":     "Too Many Requests",
				"message":   "Você excedeu o limite de requisições. Tente novamente em 1 minuto.",
				"path":      path,
			})
		}

		c.Set("X-Rate-Limit-Remaining", strconv.Itoa(remaining))
		return c.Next()
	}
}

// clientIP prefers the first X-Forwarded-For entry over the peer address.
func clientIP(c *fiber.Ctx) string {
	if xf := c.Get("X-Forwarded-For"); xf != "" {
		return strings.TrimSpace(strings.Split(xf, ",")[0])
	}
	return c.IP()
}

func limitFromEnv(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
