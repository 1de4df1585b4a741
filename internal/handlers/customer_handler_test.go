package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/evobikemx/pos-backend/internal/branch"
	"github.com/evobikemx/pos-backend/internal/dto"
	"github.com/evobikemx/pos-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newCustomerApp wires the handler behind a stand-in for the branch gate.
func newCustomerApp(t *testing.T, branchID *uuid.UUID) *fiber.App {
	t.Helper()

	db, mock := newTestDB(t)
	t.Cleanup(func() { expectationsMet(t, mock) })

	h := NewCustomerHandler(services.NewCustomerService(db))

	app := fiber.New()
	group := app.Group("/api/customers", func(c *fiber.Ctx) error {
		if branchID != nil {
			c.Locals(branch.BranchIDKey, *branchID)
		}
		return c.Next()
	})
	group.Put("/:id", h.Update)
	group.Delete("/:id", h.Delete)
	return app
}

// Malformed ids are indistinguishable from unknown ones.
func TestCustomerHandler_MalformedIDBehavesLikeUnknown(t *testing.T) {
	branchID := uuid.New()
	app := newCustomerApp(t, &branchID)

	for _, method := range []string{http.MethodPut, http.MethodDelete} {
		req := httptest.NewRequest(method, "/api/customers/not-a-uuid", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var body dto.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Customer not found", body.Message)
	}
}

func TestCustomerHandler_RejectsRequestWithoutBranch(t *testing.T) {
	app := newCustomerApp(t, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/customers/"+uuid.NewString(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
