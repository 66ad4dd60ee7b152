package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rentpal/admin-backend/internal/dto"
	"github.com/rentpal/admin-backend/internal/models"
	"github.com/rentpal/admin-backend/internal/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListBoth returns users who are simultaneously tenant and landlord.
func (h *UserHandler) ListBoth(c *fiber.Ctx) error {
	return h.listByRole(c, models.RoleBoth)
}

func (h *UserHandler) ListLandlords(c *fiber.Ctx) error {
	return h.listByRole(c, models.RoleLandlord)
}

func (h *UserHandler) ListTenants(c *fiber.Ctx) error {
	return h.listByRole(c, models.RoleTenant)
}

func (h *UserHandler) listByRole(c *fiber.Ctx, role int) error {
	result, err := h.userService.ListByRole(role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(result)
}

// TotalUsers is the dashboard counter widget.
func (h *UserHandler) TotalUsers(c *fiber.Ctx) error {
	total, err := h.userService.Total()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(fiber.Map{"totalUsers": total})
}
