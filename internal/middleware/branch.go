package middleware

import (
	"github.com/evobikemx/pos-backend/internal/branch"
	"github.com/evobikemx/pos-backend/internal/dto"
	"github.com/gofiber/fiber/v2"
)

// BranchRequired forbids customer-directory access for sessions whose user has
// no branch assignment. Runs after SessionRequired and re-checks on every
// request.
func BranchRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := branch.CurrentUser(c)
		if user == nil || user.BranchID == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Not authorized",
			})
		}

		c.Locals(branch.BranchIDKey, *user.BranchID)
		return c.Next()
	}
}
