package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/premium-backend/internal/controller"
	"github.com/sefazor/premium-backend/internal/models"
	"github.com/sefazor/premium-backend/internal/service"
)

type ContentHandler struct {
	contentController *controller.ContentController
}

func NewContentHandler(contentController *controller.ContentController) *ContentHandler {
	return &ContentHandler{
		contentController: contentController,
	}
}

func (h *ContentHandler) GetPremiumContent(c *fiber.Ctx) error {
	return c.JSON(h.contentController.GetPremiumContent())
}

func (h *ContentHandler) GetPremiumMedia(c *fiber.Ctx) error {
	resp, err := h.contentController.GetMediaURL(c.UserContext(), c.Params("*"))
	switch {
	case errors.Is(err, service.ErrInvalidMediaKey):
		return c.Status(fiber.StatusBadRequest).JSON(models.NewErrorResponse("Invalid media key"))
	case errors.Is(err, service.ErrMediaNotConfigured):
		return c.Status(fiber.StatusServiceUnavailable).JSON(models.NewErrorResponse("Premium media is not configured"))
	case err != nil:
		return c.Status(fiber.StatusInternalServerError).JSON(models.NewErrorResponse(err.Error()))
	}

	return c.JSON(resp)
}
