//go:build wireinject
// +build wireinject

package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/wire"
	"github.com/sefazor/premium-backend/internal/config"
	"github.com/sefazor/premium-backend/internal/controller"
	"github.com/sefazor/premium-backend/internal/handler"
	"github.com/sefazor/premium-backend/internal/repository"
	"github.com/sefazor/premium-backend/internal/router"
	"github.com/sefazor/premium-backend/internal/service"
	"github.com/sefazor/premium-backend/pkg/email"
	"github.com/sefazor/premium-backend/pkg/payment"
	"github.com/sefazor/premium-backend/pkg/storage"
	"github.com/sefazor/premium-backend/pkg/utils"
	"go.uber.org/zap"
)

func InitializeApp(cfg *config.Config, log *zap.Logger) (*fiber.App, func(), error) {
	wire.Build(
		// Infrastructure
		provideDatabase,
		provideSessionSigner,
		payment.NewStripeService,
		email.NewEmailService,
		storage.NewCloudflareStorage,
		utils.NewValidator,

		// Repositories
		repository.NewPremiumMemberRepository,

		// Interfaces
		wire.Bind(new(service.PaymentGateway), new(*payment.StripeService)),
		wire.Bind(new(service.PremiumMemberStore), new(*repository.PremiumMemberRepository)),
		wire.Bind(new(service.Mailer), new(*email.EmailService)),
		wire.Bind(new(storage.URLSigner), new(*storage.CloudflareStorage)),

		// Services
		service.NewPackageService,
		service.NewPaymentService,
		service.NewEntitlementService,
		provideContentService,

		// Controllers
		controller.NewPaymentController,
		controller.NewContentController,

		// Handlers
		providePaymentHandler,
		handler.NewContentHandler,

		// App
		router.NewFiberApp,
	)
	return nil, nil, nil
}
