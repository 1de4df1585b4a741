package handlers

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/evobikemx/pos-backend/internal/branch"
	"github.com/evobikemx/pos-backend/internal/config"
	"github.com/evobikemx/pos-backend/internal/dto"
	"github.com/evobikemx/pos-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	auth     *services.AuthService
	sessions *services.SessionService
	cfg      *config.Config
}

func NewAuthHandler(auth *services.AuthService, sessions *services.SessionService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions, cfg: cfg}
}

// Login verifies credentials, mints a session and sets the session cookie.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Email and password are required",
		})
	}

	user, err := h.auth.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid email or password",
			})
		}
		slog.Error("login failed", "action", "auth.login", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	token, err := h.sessions.Issue(user.ID)
	if err != nil {
		slog.Error("session issue failed", "action", "auth.login", "user_id", user.ID.String(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.SessionCookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   h.cfg.IsProduction(),
	})

	return c.JSON(dto.UserResponse{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Role:     user.Role,
		BranchID: user.BranchID,
	})
}

// Me returns the authenticated identity with its branch summary. The password
// hash never leaves the models package serializer.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	current := branch.CurrentUser(c)
	if current == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Not authenticated",
		})
	}

	user, err := h.auth.Identity(current.ID)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Not authenticated",
			})
		}
		slog.Error("identity lookup failed", "action", "auth.me", "user_id", current.ID.String(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	resp := dto.MeResponse{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Role:     user.Role,
		BranchID: user.BranchID,
	}
	if user.Branch != nil {
		resp.Branch = &dto.BranchView{Code: user.Branch.Code, Name: user.Branch.Name}
	}

	return c.JSON(resp)
}
