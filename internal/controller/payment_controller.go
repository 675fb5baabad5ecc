package controller

import (
	"context"

	"github.com/sefazor/premium-backend/internal/models"
	"github.com/sefazor/premium-backend/internal/service"
	"github.com/stripe/stripe-go/v74"
)

type PaymentController struct {
	paymentService     *service.PaymentService
	packageService     *service.PackageService
	entitlementService *service.EntitlementService
}

func NewPaymentController(paymentService *service.PaymentService, packageService *service.PackageService, entitlementService *service.EntitlementService) *PaymentController {
	return &PaymentController{
		paymentService:     paymentService,
		packageService:     packageService,
		entitlementService: entitlementService,
	}
}

func (c *PaymentController) CreatePaymentIntent(ctx context.Context, req models.CreatePaymentIntentRequest) (*models.PaymentIntentResponse, error) {
	return c.paymentService.CreatePaymentIntent(ctx, req)
}

func (c *PaymentController) CreateCheckoutSession(ctx context.Context, req models.CreateCheckoutSessionRequest, baseURL string) (*models.CheckoutSession, error) {
	return c.paymentService.CreateCheckoutSession(ctx, req, baseURL)
}

func (c *PaymentController) HandleStripeWebhook(ctx context.Context, event *stripe.Event) error {
	return c.entitlementService.HandleStripeWebhook(ctx, event)
}

func (c *PaymentController) GetPackages() []models.Package {
	return c.packageService.GetAllPackages()
}
