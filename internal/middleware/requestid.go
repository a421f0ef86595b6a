package middleware

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	HeaderRequestID = "X-Request-Id"
	LocalsRequestID = "requestid"
)

// RequestID reuses the caller's X-Request-Id or mints a new one, echoes it
// in the response and stores it in the user context.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Set(HeaderRequestID, id)
		c.Locals(LocalsRequestID, id)
		c.SetUserContext(context.WithValue(c.UserContext(), requestIDKey, id))
		return c.Next()
	}
}
