package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/crediya-co/autenticacion-api/pkg/logger"
)

// RequestLogger registra cada petición con un request id propagable. Si el
// cliente no envía X-Request-ID se genera uno.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(fiber.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(fiber.HeaderXRequestID, requestID)

		inicio := time.Now()
		err := c.Next()

		evento := log.Info()
		if err != nil || c.Response().StatusCode() >= fiber.StatusInternalServerError {
			evento = log.Error().Err(err)
		}
		evento.
			Str("request_id", requestID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(inicio)).
			Msg("request")
		return err
	}
}
