package controller

import (
	"context"

	"github.com/sefazor/premium-backend/internal/models"
	"github.com/sefazor/premium-backend/internal/service"
)

type ContentController struct {
	contentService *service.ContentService
}

func NewContentController(contentService *service.ContentService) *ContentController {
	return &ContentController{
		contentService: contentService,
	}
}

func (c *ContentController) GetPremiumContent() models.ContentResponse {
	return c.contentService.GetPremiumContent()
}

func (c *ContentController) GetMediaURL(ctx context.Context, key string) (*models.MediaURLResponse, error) {
	return c.contentService.GetMediaURL(ctx, key)
}
