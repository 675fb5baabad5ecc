package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sefazor/premium-backend/internal/models"
	"github.com/sefazor/premium-backend/pkg/utils"
	"go.uber.org/zap"
)

type PaymentService struct {
	gateway        PaymentGateway
	packageService *PackageService
	validator      *utils.Validator
	logger         *zap.Logger
}

func NewPaymentService(gateway PaymentGateway, packageService *PackageService, validator *utils.Validator, log *zap.Logger) *PaymentService {
	return &PaymentService{
		gateway:        gateway,
		packageService: packageService,
		validator:      validator,
		logger:         log.Named("payment"),
	}
}

// CreatePaymentIntent starts a one-off charge and returns the secret the client confirms it with.
func (s *PaymentService) CreatePaymentIntent(ctx context.Context, req models.CreatePaymentIntentRequest) (*models.PaymentIntentResponse, error) {
	if req.Currency == "" {
		req.Currency = models.DefaultCurrency
	}
	if req.Package == "" {
		req.Package = models.DefaultPackage
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	intent, err := s.gateway.CreatePaymentIntent(ctx, *req.Amount, strings.ToLower(req.Currency), map[string]string{
		"package": req.Package,
	})
	if err != nil {
		s.logger.Warn("payment intent failed",
			zap.Int64("amount", *req.Amount),
			zap.String("currency", req.Currency),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("payment intent created",
		zap.String("payment_intent_id", intent.ID),
		zap.String("package", req.Package))

	return &models.PaymentIntentResponse{
		ClientSecret: intent.ClientSecret,
	}, nil
}

// CreateCheckoutSession opens a hosted subscription checkout for a catalog package.
// baseURL is where Stripe redirects back to; it must not end in a slash.
func (s *PaymentService) CreateCheckoutSession(ctx context.Context, req models.CreateCheckoutSessionRequest, baseURL string) (*models.CheckoutSession, error) {
	pkg, err := s.packageService.GetPackage(req.Package)
	if err != nil {
		return nil, err
	}

	session, err := s.gateway.CreateSubscriptionCheckout(
		ctx,
		req.Email,
		pkg.PriceID,
		baseURL+"/payment-success?session_id={CHECKOUT_SESSION_ID}",
		baseURL+"/payment-cancel",
		map[string]string{
			"package": pkg.Name,
		},
	)
	if err != nil {
		s.logger.Warn("checkout session failed", zap.String("package", pkg.Name), zap.Error(err))
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	s.logger.Info("checkout session created",
		zap.String("checkout_session_id", session.ID),
		zap.String("package", pkg.Name))

	return &models.CheckoutSession{
		ID:  session.ID,
		URL: session.URL,
	}, nil
}
