package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mercadito-app/mercadito-api/internal/application/dto"
	"github.com/mercadito-app/mercadito-api/internal/infrastructure/cache"
)

// RateLimiter limita peticiones por IP usando un contador en Redis con ventana fija.
// Se aplica a los endpoints públicos de auth para frenar fuerza bruta.
// Incrementa primero y decide sobre el valor devuelto: como INCR es atómico,
// una ráfaga concurrente no puede colarse por encima del límite.
func RateLimiter(client cache.Client, limit int, window time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := "rate-limit:" + c.IP()
		ctx := c.UserContext()

		count, err := client.Incr(ctx, key)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		// Primera petición de la ventana: abrir el TTL.
		if count == 1 {
			if err := client.Expire(ctx, key, window); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
			}
		}
		if count > int64(limit) {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{Code: "RATE_LIMITED", Message: "demasiadas peticiones, intenta más tarde"})
		}
		c.Set("X-RateLimit-Remaining", strconv.FormatInt(int64(limit)-count, 10))
		return c.Next()
	}
}
