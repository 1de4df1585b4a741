package middleware

import (
	"github.com/evobikemx/pos-backend/internal/branch"
	"github.com/evobikemx/pos-backend/internal/dto"
	"github.com/evobikemx/pos-backend/internal/models"
	"github.com/gofiber/fiber/v2"
)

// AdminRequired gates the admin surface on the single ADMIN role flag.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := branch.CurrentUser(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Not authenticated",
			})
		}
		if user.Role != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Admin access required",
			})
		}
		return c.Next()
	}
}
