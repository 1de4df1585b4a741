package middleware

import (
	"errors"

	"github.com/evobikemx/pos-backend/internal/branch"
	"github.com/evobikemx/pos-backend/internal/dto"
	"github.com/evobikemx/pos-backend/internal/models"
	"github.com/evobikemx/pos-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

// SessionResolver maps a raw cookie token to a user.
type SessionResolver interface {
	Resolve(token string) (*models.User, error)
}

// SessionRequired resolves the session cookie on every request. No caching:
// a revoked user or deleted session takes effect on the next request.
func SessionRequired(sessions SessionResolver, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := sessions.Resolve(c.Cookies(cookieName))
		if err != nil {
			if errors.Is(err, services.ErrSessionNotFound) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
					Error: true, Message: "Not authenticated",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Internal server error",
			})
		}

		c.Locals(branch.CurrentUserKey, user)
		return c.Next()
	}
}
