package payment

import (
	"context"
	"net/http"

	"github.com/sefazor/premium-backend/internal/config"
	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/client"
	"go.uber.org/zap"
)

type StripeService struct {
	api *client.API
}

func NewStripeService(cfg *config.Config, log *zap.Logger) *StripeService {
	return newStripeService(cfg.Stripe.SecretKey, stripe.BackendConfig{
		HTTPClient:        &http.Client{Timeout: cfg.Stripe.Timeout},
		LeveledLogger:     log.Named("stripe").Sugar(),
		MaxNetworkRetries: stripe.Int64(cfg.Stripe.MaxNetworkRetries),
	})
}

// newStripeService hands each backend its own copy of backendConfig because
// GetBackendWithConfig fills in the default URL on the config it is given.
func newStripeService(secretKey string, backendConfig stripe.BackendConfig) *StripeService {
	backend := func(backendType stripe.SupportedBackend) stripe.Backend {
		c := backendConfig
		return stripe.GetBackendWithConfig(backendType, &c)
	}

	backends := &stripe.Backends{
		API:     backend(stripe.APIBackend),
		Connect: backend(stripe.ConnectBackend),
		Uploads: backend(stripe.UploadsBackend),
	}

	return &StripeService{
		api: client.New(secretKey, backends),
	}
}

func (s *StripeService) CreatePaymentIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (*stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	return s.api.PaymentIntents.New(params)
}

func (s *StripeService) CreateSubscriptionCheckout(ctx context.Context, userEmail string, priceID string, successURL string, cancelURL string, metadata map[string]string) (*stripe.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{
			"card",
		}),
		Mode: stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(successURL),
		CancelURL:  stripe.String(cancelURL),
	}
	if userEmail != "" {
		params.CustomerEmail = stripe.String(userEmail)
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	return s.api.CheckoutSessions.New(params)
}
