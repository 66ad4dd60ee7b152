package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/rentpal/admin-backend/internal/dto"
	"github.com/rentpal/admin-backend/internal/services"
)

type BookingHandler struct {
	bookingService *services.BookingService
}

func NewBookingHandler(bookingService *services.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// Rented lists active rentals with property image and usernames attached.
func (h *BookingHandler) Rented(c *fiber.Ctx) error {
	result, err := h.bookingService.RentedWithDetails()
	if err != nil {
		slog.Error("failed to fetch rented items", "action", "rented", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Failed to fetch rented items."})
	}
	return c.JSON(result)
}

// TotalRents is the dashboard counter widget.
func (h *BookingHandler) TotalRents(c *fiber.Ctx) error {
	total, err := h.bookingService.TotalRents()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(fiber.Map{"totalRents": total})
}

// CountPerWeekday feeds the bookings chart: seven buckets, Sunday-first,
// zero-filled.
func (h *BookingHandler) CountPerWeekday(c *fiber.Ctx) error {
	buckets, err := h.bookingService.CountPerWeekday()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(buckets)
}
