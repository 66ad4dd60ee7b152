package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rentpal/admin-backend/internal/dto"
	"github.com/rentpal/admin-backend/internal/models"
	"github.com/rentpal/admin-backend/internal/services"
)

type ProfileHandler struct {
	profileService *services.ProfileService
}

func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Pending lists profiles awaiting verification merged with user details.
func (h *ProfileHandler) Pending(c *fiber.Ctx) error {
	result, err := h.profileService.PendingWithUsers()
	if err != nil {
		slog.Error("failed to fetch pending profiles", "action", "profiles", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Failed to fetch profiles"})
	}
	return c.JSON(result)
}

func (h *ProfileHandler) Verify(c *fiber.Ctx) error {
	return h.setVerification(c, models.VerificationVerified, "Failed to verify profile")
}

func (h *ProfileHandler) Reject(c *fiber.Ctx) error {
	return h.setVerification(c, models.VerificationRejected, "Failed to reject profile")
}

// setVerification transitions a profile addressed by its owning user id.
func (h *ProfileHandler) setVerification(c *fiber.Ctx, state, failMsg string) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Invalid user ID"})
	}

	profile, err := h.profileService.SetVerificationByUser(userID, state)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: err.Error()})
		}
		slog.Error(failMsg, "action", "profileVerification", "user_id", userID.String(), "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: failMsg})
	}
	return c.JSON(profile)
}

// PendingList is polled by the dashboard notification feed.
func (h *ProfileHandler) PendingList(c *fiber.Ctx) error {
	profiles, err := h.profileService.PendingList()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(profiles)
}

// PendingCount is polled by the dashboard badge.
func (h *ProfileHandler) PendingCount(c *fiber.Ctx) error {
	count, err := h.profileService.PendingCount()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(dto.CountResponse{Count: count})
}
