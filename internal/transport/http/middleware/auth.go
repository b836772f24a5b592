package middleware

import (
	"net/http"
	"strings"

	"taskboard/internal/api"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	bearerPrefix  = "Bearer "
	userIDLocal   = "userID"
	msgForbidden  = "forbidden"
	msgNotAllowed = "not authorized"
)

// TokenVerifier returns the subject of a valid token.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// BearerAuth rejects requests without a valid "Authorization: Bearer <token>"
// header with 403 and stores the token subject as the acting user id.
func BearerAuth(tokens TokenVerifier, log *zap.SugaredLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, bearerPrefix) || len(header) == len(bearerPrefix) {
			return c.Status(http.StatusForbidden).JSON(api.MessageResponse{Message: msgForbidden})
		}

		subject, err := tokens.Verify(header[len(bearerPrefix):])
		if err != nil {
			log.Debugw("token rejected", "error", err, "path", c.Path())
			return c.Status(http.StatusForbidden).JSON(api.MessageResponse{Message: msgNotAllowed})
		}

		c.Locals(userIDLocal, subject)
		return c.Next()
	}
}

// UserID returns the acting user id set by BearerAuth.
func UserID(c *fiber.Ctx) (string, bool) {
	id, ok := c.Locals(userIDLocal).(string)
	return id, ok && id != ""
}
