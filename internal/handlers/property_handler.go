package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rentpal/admin-backend/internal/dto"
	"github.com/rentpal/admin-backend/internal/models"
	"github.com/rentpal/admin-backend/internal/services"
)

type PropertyHandler struct {
	propertyService *services.PropertyService
}

func NewPropertyHandler(propertyService *services.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

// Active returns one page of active listings. page and limit default to 1/10
// and clamp there on non-numeric or out-of-range input.
func (h *PropertyHandler) Active(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	resp, err := h.propertyService.ActivePaginated(page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(resp)
}

// Pending lists properties awaiting verification with owner info attached.
func (h *PropertyHandler) Pending(c *fiber.Ctx) error {
	result, err := h.propertyService.PendingWithOwners()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(result)
}

func (h *PropertyHandler) Accept(c *fiber.Ctx) error {
	return h.setVerification(c, models.VerificationVerified)
}

func (h *PropertyHandler) Reject(c *fiber.Ctx) error {
	return h.setVerification(c, models.VerificationRejected)
}

func (h *PropertyHandler) setVerification(c *fiber.Ctx, state string) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid property ID"})
	}

	property, err := h.propertyService.SetVerification(id, state)
	if err != nil {
		if errors.Is(err, services.ErrPropertyNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(property)
}

// PendingList is polled by the dashboard notification feed.
func (h *PropertyHandler) PendingList(c *fiber.Ctx) error {
	properties, err := h.propertyService.PendingList()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(properties)
}

// PendingCount is polled by the dashboard badge.
func (h *PropertyHandler) PendingCount(c *fiber.Ctx) error {
	count, err := h.propertyService.PendingCount()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(dto.CountResponse{Count: count})
}

// TotalProperties is the dashboard counter widget.
func (h *PropertyHandler) TotalProperties(c *fiber.Ctx) error {
	total, err := h.propertyService.Total()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(fiber.Map{"totalProperties": total})
}
