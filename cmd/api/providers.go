package main

import (
	"github.com/sefazor/premium-backend/internal/config"
	"github.com/sefazor/premium-backend/internal/controller"
	"github.com/sefazor/premium-backend/internal/handler"
	"github.com/sefazor/premium-backend/internal/service"
	"github.com/sefazor/premium-backend/pkg/database"
	jwtPkg "github.com/sefazor/premium-backend/pkg/jwt"
	"github.com/sefazor/premium-backend/pkg/storage"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func provideSessionSigner(cfg *config.Config) (*jwtPkg.Signer, error) {
	return jwtPkg.NewSigner(cfg.Session.Secret, cfg.Session.MaxAge)
}

func provideDatabase(cfg *config.Config, log *zap.Logger) (*gorm.DB, func(), error) {
	db, err := database.NewDatabase(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := database.Close(db); err != nil {
			log.Warn("failed to close database", zap.Error(err))
		}
	}
	return db, cleanup, nil
}

func providePaymentHandler(cfg *config.Config, paymentController *controller.PaymentController, log *zap.Logger) *handler.PaymentHandler {
	return handler.NewPaymentHandler(paymentController, cfg.Stripe.WebhookSecret, cfg.PublicBaseURL, log)
}

func provideContentService(signer storage.URLSigner, cfg *config.Config, log *zap.Logger) *service.ContentService {
	return service.NewContentService(signer, cfg.R2.URLTTL, log)
}
