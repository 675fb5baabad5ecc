package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/premium-backend/internal/controller"
	"github.com/sefazor/premium-backend/internal/middleware"
	"github.com/sefazor/premium-backend/internal/models"
	"github.com/sefazor/premium-backend/internal/service"
	"github.com/stripe/stripe-go/v74/webhook"
	"go.uber.org/zap"
)

const (
	PaymentSuccessMessage = "Payment success! You are now a premium member."
	PaymentCancelMessage  = "Payment cancelled. Try again."
)

type PaymentHandler struct {
	paymentController *controller.PaymentController
	webhookSecret     string
	publicBaseURL     string
	logger            *zap.Logger
}

func NewPaymentHandler(paymentController *controller.PaymentController, webhookSecret string, publicBaseURL string, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentController: paymentController,
		webhookSecret:     webhookSecret,
		publicBaseURL:     publicBaseURL,
		logger:            log.Named("payment_handler"),
	}
}

// CreatePaymentIntent reports every failure as a 500 carrying the underlying message.
func (h *PaymentHandler) CreatePaymentIntent(c *fiber.Ctx) error {
	var req models.CreatePaymentIntentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.NewErrorResponse(err.Error()))
	}

	resp, err := h.paymentController.CreatePaymentIntent(c.UserContext(), req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.NewErrorResponse(err.Error()))
	}

	return c.JSON(resp)
}

func (h *PaymentHandler) CreateCheckoutSession(c *fiber.Ctx) error {
	var req models.CreateCheckoutSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.NewErrorResponse("Invalid request body"))
	}

	session, err := h.paymentController.CreateCheckoutSession(c.UserContext(), req, h.baseURL(c))
	if errors.Is(err, service.ErrInvalidPackage) {
		return c.Status(fiber.StatusBadRequest).JSON(models.NewErrorResponse("Invalid package"))
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.NewErrorResponse(err.Error()))
	}

	return c.JSON(models.CheckoutSessionResponse{
		CheckoutURL: session.URL,
	})
}

// HandleStripeWebhook answers with an empty body: 400 for anything that fails
// verification, 200 for every verified event.
func (h *PaymentHandler) HandleStripeWebhook(c *fiber.Ctx) error {
	payload := c.Body()
	signatureHeader := c.Get("Stripe-Signature")

	event, err := webhook.ConstructEventWithOptions(payload, signatureHeader, h.webhookSecret,
		webhook.ConstructEventOptions{
			IgnoreAPIVersionMismatch: true,
		})
	if err != nil {
		h.logger.Warn("rejected webhook", zap.Int("payload_bytes", len(payload)), zap.Error(err))
		return c.Status(fiber.StatusBadRequest).Send(nil)
	}

	if err := h.paymentController.HandleStripeWebhook(c.UserContext(), &event); err != nil {
		h.logger.Error("webhook processing failed",
			zap.String("event_id", event.ID),
			zap.String("type", string(event.Type)),
			zap.Error(err))
	}

	return c.Status(fiber.StatusOK).Send(nil)
}

// PaymentSuccess trusts the redirect itself; the webhook remains the authoritative entitlement.
func (h *PaymentHandler) PaymentSuccess(c *fiber.Ctx) error {
	middleware.GetSession(c).MarkPremium(c.Query("session_id"))
	return c.SendString(PaymentSuccessMessage)
}

func (h *PaymentHandler) PaymentCancel(c *fiber.Ctx) error {
	return c.SendString(PaymentCancelMessage)
}

func (h *PaymentHandler) GetPackages(c *fiber.Ctx) error {
	return c.JSON(models.PackagesResponse{
		Packages: h.paymentController.GetPackages(),
	})
}

func (h *PaymentHandler) baseURL(c *fiber.Ctx) string {
	if h.publicBaseURL != "" {
		return h.publicBaseURL
	}
	return c.BaseURL()
}
