package handlers

import (
	"errors"
	"log/slog"

	"github.com/evobikemx/pos-backend/internal/dto"
	"github.com/evobikemx/pos-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

// AdminHandler exposes branch and staff management to ADMIN accounts.
type AdminHandler struct {
	branches *services.BranchService
	auth     *services.AuthService
}

func NewAdminHandler(branches *services.BranchService, auth *services.AuthService) *AdminHandler {
	return &AdminHandler{branches: branches, auth: auth}
}

func (h *AdminHandler) CreateBranch(c *fiber.Ctx) error {
	var req dto.CreateBranchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	branch, err := h.branches.Create(req.Code, req.Name)
	if err != nil {
		if errors.Is(err, services.ErrBranchFieldsRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Branch code and name are required",
			})
		}
		if errors.Is(err, services.ErrBranchCodeTaken) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: "Branch code already in use",
			})
		}
		slog.Error("branch create failed", "action", "admin.branches.create", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(branch)
}

func (h *AdminHandler) ListBranches(c *fiber.Ctx) error {
	branches, err := h.branches.List()
	if err != nil {
		slog.Error("branch list failed", "action", "admin.branches.list", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(fiber.Map{"branches": branches})
}

func (h *AdminHandler) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	user, err := h.auth.CreateUser(&req)
	if err != nil {
		if errors.Is(err, services.ErrUserFieldsRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Name, email and password are required",
			})
		}
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: "Email already registered",
			})
		}
		if errors.Is(err, services.ErrBranchNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Branch not found",
			})
		}
		slog.Error("user create failed", "action", "admin.users.create", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.UserResponse{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Role:     user.Role,
		BranchID: user.BranchID,
	})
}
