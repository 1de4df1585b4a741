package handlers

import (
	"errors"
	"log/slog"

	"github.com/evobikemx/pos-backend/internal/branch"
	"github.com/evobikemx/pos-backend/internal/dto"
	"github.com/evobikemx/pos-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CustomerHandler struct {
	customers *services.CustomerService
}

func NewCustomerHandler(customers *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

func (h *CustomerHandler) List(c *fiber.Ctx) error {
	branchID, ok := branch.CurrentBranchID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Not authorized",
		})
	}

	customers, err := h.customers.List(branchID, c.Query("q"))
	if err != nil {
		slog.Error("customer list failed", "action", "customers.list", "branch_id", branchID.String(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(fiber.Map{"customers": customers})
}

func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	branchID, ok := branch.CurrentBranchID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Not authorized",
		})
	}

	var req dto.CustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	customer, err := h.customers.Create(branchID, &req)
	if err != nil {
		if errors.Is(err, services.ErrNameRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Name is required",
			})
		}
		slog.Error("customer create failed", "action", "customers.create", "branch_id", branchID.String(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(customer)
}

func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	branchID, ok := branch.CurrentBranchID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Not authorized",
		})
	}

	customerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		// Malformed ids behave like unknown ids.
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Customer not found",
		})
	}

	var req dto.CustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	customer, err := h.customers.Update(branchID, customerID, &req)
	if err != nil {
		if errors.Is(err, services.ErrNameRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Name is required",
			})
		}
		if errors.Is(err, services.ErrCustomerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Customer not found",
			})
		}
		slog.Error("customer update failed", "action", "customers.update", "branch_id", branchID.String(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(customer)
}

func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	branchID, ok := branch.CurrentBranchID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Not authorized",
		})
	}

	customerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Customer not found",
		})
	}

	if err := h.customers.Delete(branchID, customerID); err != nil {
		if errors.Is(err, services.ErrCustomerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Customer not found",
			})
		}
		slog.Error("customer delete failed", "action", "customers.delete", "branch_id", branchID.String(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(fiber.Map{"ok": true})
}
