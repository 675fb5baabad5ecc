package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	internalConfig "github.com/sefazor/premium-backend/internal/config"
)

// CloudflareStorage signs download URLs for premium media kept in an R2 bucket.
type CloudflareStorage struct {
	presigner *s3.PresignClient
	bucket    string
}

// NewCloudflareStorage returns an unconfigured storage, not an error, when R2 settings are absent.
func NewCloudflareStorage(cfg *internalConfig.Config) (*CloudflareStorage, error) {
	if !cfg.R2.Configured() {
		return &CloudflareStorage{}, nil
	}

	r2Resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.R2.AccountID),
		}, nil
	})

	awsCfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithEndpointResolverWithOptions(r2Resolver),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.R2.AccessKeyID,
			cfg.R2.SecretAccessKey,
			"",
		)),
		config.WithRegion("auto"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &CloudflareStorage{
		presigner: s3.NewPresignClient(s3.NewFromConfig(awsCfg)),
		bucket:    cfg.R2.Bucket,
	}, nil
}

func (s *CloudflareStorage) PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error) {
	if s.presigner == nil {
		return "", ErrNotConfigured
	}

	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", fmt.Errorf("failed to presign %s: %w", key, err)
	}

	return req.URL, nil
}
