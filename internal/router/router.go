package router

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sefazor/premium-backend/internal/config"
	"github.com/sefazor/premium-backend/internal/handler"
	"github.com/sefazor/premium-backend/internal/middleware"
	"github.com/sefazor/premium-backend/internal/models"
	jwtPkg "github.com/sefazor/premium-backend/pkg/jwt"
	"go.uber.org/zap"
)

func NewFiberApp(
	cfg *config.Config,
	log *zap.Logger,
	signer *jwtPkg.Signer,
	paymentHandler *handler.PaymentHandler,
	contentHandler *handler.ContentHandler,
) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "premium-backend",
		DisableStartupMessage: cfg.IsProduction(),
		ErrorHandler:          errorHandler(log),
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowMethods:     "GET, POST",
		AllowCredentials: cfg.AllowOrigins != "*",
	}))
	app.Use(logger.New())
	if cfg.RateLimitMax > 0 {
		app.Use(limiter.New(limiter.Config{
			// Stripe retries webhooks from a small pool of addresses.
			Next: func(c *fiber.Ctx) bool {
				return c.Path() == "/webhook"
			},
			Max:        cfg.RateLimitMax,
			Expiration: 1 * time.Minute,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
		}))
	}
	app.Use(middleware.SessionMiddleware(signer, cfg.Session.Secure, log))

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Payments
	app.Get("/packages", paymentHandler.GetPackages)
	app.Post("/create-payment-intent", paymentHandler.CreatePaymentIntent)
	app.Post("/create-checkout-session", paymentHandler.CreateCheckoutSession)
	app.Post("/webhook", paymentHandler.HandleStripeWebhook)
	app.Get("/payment-success", paymentHandler.PaymentSuccess)
	app.Get("/payment-cancel", paymentHandler.PaymentCancel)

	// Premium
	app.Get("/premium-content", middleware.RequirePremium(), contentHandler.GetPremiumContent)
	app.Get("/premium-content/media/*", middleware.RequirePremium(), contentHandler.GetPremiumMedia)

	return app
}

func errorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}
		if code >= fiber.StatusInternalServerError {
			log.Error("request failed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err))
		}
		return c.Status(code).JSON(models.NewErrorResponse(err.Error()))
	}
}
