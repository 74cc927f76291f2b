package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mercadito-app/mercadito-api/internal/infrastructure/cache"
	apphttp "github.com/mercadito-app/mercadito-api/internal/interfaces/http"
)

// memCache implementación en memoria de cache.Client para los tests.
type memCache struct {
	mu      sync.Mutex
	data    map[string]int64
	expires map[string]int // veces que se fijó TTL por clave
}

func newMemCache() *memCache {
	return &memCache{data: make(map[string]int64), expires: make(map[string]int)}
}

func (c *memCache) Get(ctx context.Context, key string) (string, error) {
	return "", cache.ErrCacheMiss
}

func (c *memCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return nil
}

func (c *memCache) Incr(ctx context.Context, key string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key]++
	return c.data[key], nil
}

func (c *memCache) Expire(ctx context.Context, key string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expires[key]++
	return nil
}

func (c *memCache) Delete(ctx context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

func (c *memCache) expireCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, v := range c.expires {
		n += v
	}
	return n
}

func TestRateLimiter_BloqueaTrasElLimite(t *testing.T) {
	app := fiber.New()
	app.Post("/login", apphttp.RateLimiter(newMemCache(), 3, time.Minute), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	// Las primeras 3 peticiones pasan.
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode, "petición %d dentro del límite", i+1)
		resp.Body.Close()
	}

	// La cuarta debe ser rechazada con 429.
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}

func TestRateLimiter_TTLSoloEnLaPrimeraPeticion(t *testing.T) {
	// El TTL de la ventana se abre con el primer incremento y no se reinicia
	// con cada petición; si se reiniciara, la ventana nunca cerraría bajo carga.
	mc := newMemCache()
	app := fiber.New()
	app.Post("/login", apphttp.RateLimiter(mc, 3, time.Minute), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		resp.Body.Close()
	}

	assert.Equal(t, 1, mc.expireCount())
}

func TestRateLimiter_ExponeHeaderRemaining(t *testing.T) {
	app := fiber.New()
	app.Post("/login", apphttp.RateLimiter(newMemCache(), 5, time.Minute), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "4", resp.Header.Get("X-RateLimit-Remaining"))
}
