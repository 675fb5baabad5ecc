package service

import (
	"context"
	"errors"
	"path"
	"strings"
	"time"

	"github.com/sefazor/premium-backend/internal/models"
	"github.com/sefazor/premium-backend/pkg/storage"
	"go.uber.org/zap"
)

const PremiumContent = "Your premium videos/listings go here"

type ContentService struct {
	signer storage.URLSigner
	ttl    time.Duration
	logger *zap.Logger
}

func NewContentService(signer storage.URLSigner, ttl time.Duration, log *zap.Logger) *ContentService {
	return &ContentService{
		signer: signer,
		ttl:    ttl,
		logger: log.Named("content"),
	}
}

func (s *ContentService) GetPremiumContent() models.ContentResponse {
	return models.ContentResponse{Content: PremiumContent}
}

// GetMediaURL signs a short-lived download URL for an object in the premium bucket.
func (s *ContentService) GetMediaURL(ctx context.Context, key string) (*models.MediaURLResponse, error) {
	key = strings.TrimPrefix(key, "/")
	if key == "" || strings.HasSuffix(key, "/") || path.Clean("/"+key) != "/"+key {
		return nil, ErrInvalidMediaKey
	}

	url, err := s.signer.PresignGet(ctx, key, s.ttl)
	if errors.Is(err, storage.ErrNotConfigured) {
		return nil, ErrMediaNotConfigured
	}
	if err != nil {
		s.logger.Error("presign failed", zap.String("key", key), zap.Error(err))
		return nil, err
	}

	return &models.MediaURLResponse{
		URL:       url,
		ExpiresIn: int64(s.ttl / time.Second),
	}, nil
}
