package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rentpal/admin-backend/internal/dto"
	"github.com/rentpal/admin-backend/internal/services"
)

type TermsHandler struct {
	termsService *services.TermsService
}

func NewTermsHandler(termsService *services.TermsService) *TermsHandler {
	return &TermsHandler{termsService: termsService}
}

func (h *TermsHandler) Create(c *fiber.Ctx) error {
	var req dto.TermsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Invalid request body"})
	}

	terms, err := h.termsService.Create(req.Content, req.Version)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: "Error saving terms"})
	}
	return c.Status(fiber.StatusCreated).JSON(terms)
}

func (h *TermsHandler) List(c *fiber.Ctx) error {
	terms, err := h.termsService.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: "Error retrieving terms"})
	}
	return c.JSON(terms)
}

func (h *TermsHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Invalid terms ID"})
	}

	terms, err := h.termsService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrTermsNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: "Error retrieving terms"})
	}
	return c.JSON(terms)
}

func (h *TermsHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Invalid terms ID"})
	}

	var req dto.TermsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Invalid request body"})
	}

	terms, err := h.termsService.Update(id, req.Content, req.Version)
	if err != nil {
		if errors.Is(err, services.ErrTermsNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: "Error updating terms"})
	}
	return c.JSON(terms)
}

func (h *TermsHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Invalid terms ID"})
	}

	if err := h.termsService.Delete(id); err != nil {
		if errors.Is(err, services.ErrTermsNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: "Error deleting terms"})
	}
	return c.JSON(dto.MessageResponse{Message: "Terms deleted successfully"})
}
