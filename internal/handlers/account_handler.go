package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rentpal/admin-backend/internal/dto"
	"github.com/rentpal/admin-backend/internal/services"
)

type AccountHandler struct {
	accountService *services.AccountService
}

func NewAccountHandler(accountService *services.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// Balance looks up a wallet balance by user_id or account_no. The two query
// params are mutually exclusive alternatives; supplying neither is a 400.
func (h *AccountHandler) Balance(c *fiber.Ctx) error {
	userID := c.Query("user_id")
	accountNo := c.Query("account_no")

	var balance float64
	var err error
	switch {
	case userID != "":
		id, parseErr := uuid.Parse(userID)
		if parseErr != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid user_id"})
		}
		balance, err = h.accountService.BalanceByUser(id)
	case accountNo != "":
		balance, err = h.accountService.BalanceByAccountNo(accountNo)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Please provide user_id or account_no"})
	}

	if err != nil {
		if errors.Is(err, services.ErrAccountNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(dto.BalanceResponse{Balance: balance})
}
