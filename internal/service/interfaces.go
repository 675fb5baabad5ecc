package service

import (
	"context"
	"errors"

	"github.com/sefazor/premium-backend/internal/models"
	"github.com/stripe/stripe-go/v74"
)

var (
	// ErrInvalidPackage is returned for package ids missing from the catalog.
	ErrInvalidPackage = errors.New("invalid package")
	// ErrBadEvent means a verified webhook carried a payload we cannot act on.
	ErrBadEvent           = errors.New("bad event")
	ErrInvalidMediaKey    = errors.New("invalid media key")
	ErrMediaNotConfigured = errors.New("premium media is not configured")
)

// PaymentGateway is the subset of Stripe calls the payment flow needs.
type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (*stripe.PaymentIntent, error)
	CreateSubscriptionCheckout(ctx context.Context, userEmail string, priceID string, successURL string, cancelURL string, metadata map[string]string) (*stripe.CheckoutSession, error)
}

type PremiumMemberStore interface {
	Upsert(ctx context.Context, member *models.PremiumMember) error
	GetByEmail(ctx context.Context, email string) (*models.PremiumMember, error)
	GetBySubscriptionID(ctx context.Context, subscriptionID string) (*models.PremiumMember, error)
	Update(ctx context.Context, member *models.PremiumMember) error
}

type Mailer interface {
	SendPremiumWelcomeEmail(email, packageName string) error
}
