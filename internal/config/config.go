package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	URLTTL          time.Duration
}

// Configured reports whether enough R2 settings are present to sign URLs.
func (c R2Config) Configured() bool {
	return c.AccountID != "" && c.AccessKeyID != "" && c.SecretAccessKey != "" && c.Bucket != ""
}

type StripeConfig struct {
	SecretKey         string
	WebhookSecret     string
	Timeout           time.Duration
	MaxNetworkRetries int64
}

type SessionConfig struct {
	Secret string
	MaxAge time.Duration
	Secure bool
}

type EmailConfig struct {
	ResendAPIKey string
	FromAddress  string
	FromName     string
}

type Config struct {
	Env           string
	Port          string
	PublicBaseURL string
	AllowOrigins  string
	RateLimitMax  int
	DatabaseURL   string

	Stripe  StripeConfig
	Session SessionConfig
	Email   EmailConfig
	R2      R2Config
}

// IsProduction is true for any APP_ENV other than development or test.
func (c *Config) IsProduction() bool {
	return c.Env != "development" && c.Env != "test"
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Env:           getEnv("APP_ENV", "development"),
		Port:          getEnv("PORT", "8080"),
		PublicBaseURL: strings.TrimRight(os.Getenv("PUBLIC_BASE_URL"), "/"),
		AllowOrigins:  getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
	}

	// Required settings
	required := []struct {
		envVar string
		dst    *string
	}{
		{"SESSION_SECRET", &cfg.Session.Secret},
		{"STRIPE_SECRET_KEY", &cfg.Stripe.SecretKey},
		{"STRIPE_WEBHOOK_SECRET", &cfg.Stripe.WebhookSecret},
		{"DATABASE_URL", &cfg.DatabaseURL},
	}
	for _, r := range required {
		*r.dst = os.Getenv(r.envVar)
		if *r.dst == "" {
			return nil, fmt.Errorf("missing required environment variable: %s", r.envVar)
		}
	}

	var err error
	if cfg.RateLimitMax, err = getInt("RATE_LIMIT_MAX", 60); err != nil {
		return nil, err
	}
	if cfg.Session.MaxAge, err = getDuration("SESSION_MAX_AGE", 30*24*time.Hour); err != nil {
		return nil, err
	}
	cfg.Session.Secure = cfg.IsProduction()

	if cfg.Stripe.Timeout, err = getDuration("STRIPE_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}
	retries, err := getInt("STRIPE_MAX_NETWORK_RETRIES", 0)
	if err != nil {
		return nil, err
	}
	cfg.Stripe.MaxNetworkRetries = int64(retries)

	// Email
	cfg.Email.ResendAPIKey = os.Getenv("RESEND_API_KEY")
	cfg.Email.FromAddress = os.Getenv("EMAIL_FROM_ADDRESS")
	cfg.Email.FromName = getEnv("EMAIL_FROM_NAME", "Premium")

	// R2 config
	cfg.R2.AccountID = os.Getenv("R2_ACCOUNT_ID")
	cfg.R2.AccessKeyID = os.Getenv("R2_ACCESS_KEY_ID")
	cfg.R2.SecretAccessKey = os.Getenv("R2_SECRET_ACCESS_KEY")
	cfg.R2.Bucket = os.Getenv("R2_BUCKET")
	if cfg.R2.URLTTL, err = getDuration("MEDIA_URL_TTL", 15*time.Minute); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("invalid %s: must not be negative", key)
	}
	return n, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", key)
	}
	return d, nil
}
