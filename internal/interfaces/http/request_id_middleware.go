package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/northwind-api/pkg/logger"
)

// RequestID asigna un X-Request-Id (UUID v4) si el cliente no envió uno y lo
// propaga en la respuesta y en los locals del contexto.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(fiber.HeaderXRequestID, id)
		c.Locals("request_id", id)
		return c.Next()
	}
}

// GetRequestID lee el request id fijado por el middleware RequestID.
func GetRequestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("request_id").(string); ok {
		return id
	}
	return ""
}

// RequestLogger registra cada petición con método, ruta, estado y duración,
// correlacionada por request_id.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		event := log.WithRequestID(GetRequestID(c)).Info()
		if err != nil {
			event = log.WithRequestID(GetRequestID(c)).Error().Err(err)
		}
		event.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("petición atendida")
		return err
	}
}
