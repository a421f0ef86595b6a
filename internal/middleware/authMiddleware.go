package middleware

import (
	"errors"
	"strings"
	"web-starter/domain"

	"github.com/gofiber/fiber/v2"
)

const (
	SessionCookie  = "session_token"
	LocalsUserData = "userData"
)

func respondWithError(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{"error": message})
}

type AuthMiddleware struct {
	sessionManager SessionManagerType
}

func NewAuthMiddleware(redisRepo SessionManagerType) *AuthMiddleware {
	return &AuthMiddleware{sessionManager: redisRepo}
}

func (m *AuthMiddleware) Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var token string

		if strings.Contains(strings.ToLower(c.Get("Connection")), "upgrade") && strings.EqualFold(c.Get("Upgrade"), "websocket") {
			token = c.Query("token")
			if token == "" {
				token = c.Get(SessionCookie)
			}
			if token == "" {
				token = c.Cookies(SessionCookie)
			}
		} else {
			token = c.Cookies(SessionCookie)
		}
		if token == "" {
			return respondWithError(c, fiber.StatusUnauthorized, "Unauthorized: missing session")
		}

		ctx := c.UserContext()
		userData, err := m.sessionManager.GetSession(ctx, token)
		if errors.Is(err, domain.ErrSessionStoreUnavailable) {
			return respondWithError(c, fiber.StatusServiceUnavailable, "session store unavailable")
		}
		if err != nil {
			return respondWithError(c, fiber.StatusUnauthorized, "Invalid or expired token")
		}

		c.Locals(LocalsUserData, userData)
		c.SetUserContext(WithSession(ctx, token, userData))

		return c.Next()
	}
}
