package storage

import (
	"context"
	"errors"
	"time"
)

var ErrNotConfigured = errors.New("storage is not configured")

type URLSigner interface {
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
}
