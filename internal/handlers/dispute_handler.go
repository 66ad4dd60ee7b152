package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rentpal/admin-backend/internal/dto"
	"github.com/rentpal/admin-backend/internal/services"
)

type DisputeHandler struct {
	disputeService *services.DisputeService
}

func NewDisputeHandler(disputeService *services.DisputeService) *DisputeHandler {
	return &DisputeHandler{disputeService: disputeService}
}

// List returns contested disputes with the disputed property summary, null
// when the booking reference no longer resolves.
func (h *DisputeHandler) List(c *fiber.Ctx) error {
	result, err := h.disputeService.ContestedWithProperty()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(result)
}
