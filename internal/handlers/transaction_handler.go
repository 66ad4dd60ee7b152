package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rentpal/admin-backend/internal/dto"
	"github.com/rentpal/admin-backend/internal/services"
)

type TransactionHandler struct {
	transactionService *services.TransactionService
}

func NewTransactionHandler(transactionService *services.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// List returns every transaction with its user reference populated.
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	result, err := h.transactionService.ListWithUsers()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(result)
}

// Total is the dashboard counter widget.
func (h *TransactionHandler) Total(c *fiber.Ctx) error {
	total, err := h.transactionService.Total()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(fiber.Map{"totalTransactions": total})
}

// PerWeekday feeds the revenue chart: seven buckets, Sunday-first,
// zero-filled.
func (h *TransactionHandler) PerWeekday(c *fiber.Ctx) error {
	buckets, err := h.transactionService.PerWeekday()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(buckets)
}
