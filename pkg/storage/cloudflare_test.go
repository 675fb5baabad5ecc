package storage

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/sefazor/premium-backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloudflareStorage_NotConfigured(t *testing.T) {
	s, err := NewCloudflareStorage(&config.Config{})
	require.NoError(t, err)

	_, err = s.PresignGet(context.Background(), "videos/intro.mp4", time.Minute)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestCloudflareStorage_PresignGet(t *testing.T) {
	cfg := &config.Config{}
	cfg.R2.AccountID = "acc123"
	cfg.R2.AccessKeyID = "AKIDEXAMPLE"
	cfg.R2.SecretAccessKey = "secret"
	cfg.R2.Bucket = "premium"

	s, err := NewCloudflareStorage(cfg)
	require.NoError(t, err)

	raw, err := s.PresignGet(context.Background(), "videos/intro.mp4", 10*time.Minute)
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(u.Host, "r2.cloudflarestorage.com"))
	assert.Contains(t, u.Path, "videos/intro.mp4")
	assert.Equal(t, "600", u.Query().Get("X-Amz-Expires"))
	assert.NotEmpty(t, u.Query().Get("X-Amz-Signature"))
}
