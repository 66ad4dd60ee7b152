package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/rentpal/admin-backend/internal/dto"
	"github.com/rentpal/admin-backend/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignIn exchanges operator credentials for a bearer token. Every failure
// path returns the same generic message so username-not-found and
// wrong-password are indistinguishable.
func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var req dto.SignInRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Invalid request body"})
	}

	resp, err := h.authService.SignIn(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Message: err.Error()})
		}
		slog.Error("sign-in failed", "action", "signIn", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: "An unexpected error occurred"})
	}

	return c.JSON(resp)
}

// Profile returns the admin header widget payload.
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	resp, err := h.authService.AdminProfile()
	if err != nil {
		if errors.Is(err, services.ErrAdminNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(resp)
}
