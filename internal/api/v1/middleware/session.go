package middleware

import (
	"errors"

	"github.com/fintrack/ledger-service/internal/constants"
	"github.com/fintrack/ledger-service/internal/service"
	"github.com/fintrack/ledger-service/internal/session"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const sessionIDKey = "sessionID"

var errMissingSession = errors.New("missing session cookie")

// RequireSession rejects read requests that carry no session token
// before any store access happens.
func RequireSession(resolver *session.Resolver, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := resolver.FromRequest(c)
		if !ok {
			logger.Warn("Request without session cookie",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()))
			return service.NewServiceError(constants.ErrCodeSessionRequired, errMissingSession)
		}

		c.Locals(sessionIDKey, id)
		return c.Next()
	}
}

// SessionID returns the session token stashed by RequireSession.
func SessionID(c *fiber.Ctx) string {
	id, _ := c.Locals(sessionIDKey).(string)
	return id
}
