package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/jhoicas/mtn-stock-api/pkg/logger"
)

// Locals keys en Fiber.
const (
	LocalRequestID = "request_id"
	localError     = "handler_error"
)

// RequestID asigna un X-Request-ID (uuid v4) si el cliente no envía uno.
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     fiber.HeaderXRequestID,
		Generator:  uuid.NewString,
		ContextKey: LocalRequestID,
	})
}

// GetRequestID devuelve el request id del contexto (después de RequestID).
func GetRequestID(c *fiber.Ctx) string {
	v := c.Locals(LocalRequestID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// RequestLogger registra cada petición con zerolog. Los 5xx incluyen la causa.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		chainErr := c.Next()
		if chainErr != nil {
			// deja que el ErrorHandler de fiber fije el status antes de loguear
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		evt := log.Info()
		if status >= fiber.StatusInternalServerError {
			evt = log.Error()
			if cause, ok := c.Locals(localError).(error); ok {
				evt = evt.Err(cause)
			} else if chainErr != nil {
				evt = evt.Err(chainErr)
			}
		}
		evt.
			Str("request_id", GetRequestID(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("http request")
		return nil
	}
}
