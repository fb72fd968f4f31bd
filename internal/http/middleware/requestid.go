package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// RequestIDHeader is the standard header name used to propagate request IDs.
	RequestIDHeader = "X-Request-ID"
	// RequestIDLocalKey is the key used to store the request ID in Fiber's context locals.
	RequestIDLocalKey = "request_id"
)

// RequestID ensures every request has a request ID.
//
// The ID is taken from X-Request-ID or generated, stored in locals under
// RequestIDLocalKey, echoed on the response, and attached to a copy of logger
// that downstream code retrieves with zerolog.Ctx(c.UserContext()).
func RequestID(logger zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Locals(RequestIDLocalKey, id)
		c.Set(RequestIDHeader, id)

		reqLogger := logger.With().Str(RequestIDLocalKey, id).Logger()
		c.SetUserContext(reqLogger.WithContext(c.UserContext()))

		return c.Next()
	}
}

// RequestIDFromCtx returns the request ID stored by RequestID, if any.
func RequestIDFromCtx(c *fiber.Ctx) string {
	id, _ := c.Locals(RequestIDLocalKey).(string)
	return id
}
