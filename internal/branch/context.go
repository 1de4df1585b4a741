package branch

import (
	"github.com/evobikemx/pos-backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Fiber locals keys set by the session middleware.
const (
	CurrentUserKey = "current_user"
	BranchIDKey    = "branch_id"
)

// CurrentUser returns the authenticated user stored by the session middleware,
// or nil when the request is unauthenticated.
func CurrentUser(c *fiber.Ctx) *models.User {
	if u, ok := c.Locals(CurrentUserKey).(*models.User); ok {
		return u
	}
	return nil
}

// CurrentBranchID returns the caller's branch set by the branch gate. The
// second return is false when the gate did not run or the user has no branch.
func CurrentBranchID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(BranchIDKey).(uuid.UUID)
	return id, ok
}
