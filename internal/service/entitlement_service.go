package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sefazor/premium-backend/internal/models"
	"github.com/sefazor/premium-backend/internal/repository"
	"github.com/sefazor/premium-backend/pkg/email"
	"github.com/stripe/stripe-go/v74"
	"go.uber.org/zap"
)

const (
	EventCheckoutSessionCompleted   = "checkout.session.completed"
	EventCustomerSubscriptionDelete = "customer.subscription.deleted"
)

// EntitlementService turns verified Stripe events into persisted premium memberships.
type EntitlementService struct {
	members PremiumMemberStore
	mailer  Mailer
	logger  *zap.Logger
}

func NewEntitlementService(members PremiumMemberStore, mailer Mailer, log *zap.Logger) *EntitlementService {
	return &EntitlementService{
		members: members,
		mailer:  mailer,
		logger:  log.Named("entitlement"),
	}
}

// HandleStripeWebhook dispatches on the event type; unknown types are ignored.
func (s *EntitlementService) HandleStripeWebhook(ctx context.Context, event *stripe.Event) error {
	switch event.Type {
	case EventCheckoutSessionCompleted:
		return s.grantFromCheckout(ctx, event)
	case EventCustomerSubscriptionDelete:
		return s.revokeSubscription(ctx, event)
	default:
		s.logger.Debug("ignoring webhook event", zap.String("type", string(event.Type)), zap.String("event_id", event.ID))
		return nil
	}
}

func (s *EntitlementService) grantFromCheckout(ctx context.Context, event *stripe.Event) error {
	if event.Data == nil {
		return fmt.Errorf("%w: missing data", ErrBadEvent)
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return fmt.Errorf("%w: error unmarshaling into CheckoutSession: %v", ErrBadEvent, err)
	}

	customerEmail := session.CustomerEmail
	if customerEmail == "" && session.CustomerDetails != nil {
		customerEmail = session.CustomerDetails.Email
	}
	if customerEmail == "" {
		return fmt.Errorf("%w: customer email not found in CheckoutSession %s", ErrBadEvent, session.ID)
	}

	existing, err := s.members.GetByEmail(ctx, customerEmail)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("failed to look up %s: %w", customerEmail, err)
	}
	// Stripe redelivers events; a grant already recorded for this checkout is a no-op.
	if existing != nil && existing.IsActive() && existing.CheckoutSessionID == session.ID {
		s.logger.Info("premium already granted for checkout",
			zap.String("email", customerEmail),
			zap.String("checkout_session_id", session.ID),
			zap.String("event_id", event.ID))
		return nil
	}

	member := &models.PremiumMember{
		Email:             customerEmail,
		CheckoutSessionID: session.ID,
		Status:            models.MemberStatusActive,
	}
	if session.Customer != nil {
		member.StripeCustomerID = session.Customer.ID
	}
	if session.Subscription != nil {
		member.StripeSubscriptionID = session.Subscription.ID
	}

	if err := s.members.Upsert(ctx, member); err != nil {
		return fmt.Errorf("failed to mark %s as premium: %w", customerEmail, err)
	}

	s.logger.Info("premium granted",
		zap.String("email", customerEmail),
		zap.String("checkout_session_id", session.ID),
		zap.String("subscription_id", member.StripeSubscriptionID))

	if err := s.mailer.SendPremiumWelcomeEmail(customerEmail, session.Metadata["package"]); err != nil {
		if errors.Is(err, email.ErrDisabled) {
			s.logger.Debug("welcome email skipped", zap.String("email", customerEmail))
		} else {
			s.logger.Warn("welcome email failed", zap.String("email", customerEmail), zap.Error(err))
		}
	}

	return nil
}

func (s *EntitlementService) revokeSubscription(ctx context.Context, event *stripe.Event) error {
	if event.Data == nil {
		return fmt.Errorf("%w: missing data", ErrBadEvent)
	}

	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return fmt.Errorf("%w: error unmarshaling into Subscription: %v", ErrBadEvent, err)
	}
	if sub.ID == "" {
		return fmt.Errorf("%w: subscription id missing", ErrBadEvent)
	}

	member, err := s.members.GetBySubscriptionID(ctx, sub.ID)
	if errors.Is(err, repository.ErrNotFound) {
		s.logger.Info("no premium member for subscription", zap.String("subscription_id", sub.ID))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to look up subscription %s: %w", sub.ID, err)
	}

	member.Status = models.MemberStatusRevoked
	if err := s.members.Update(ctx, member); err != nil {
		return fmt.Errorf("failed to revoke premium for %s: %w", member.Email, err)
	}

	s.logger.Info("premium revoked", zap.String("email", member.Email), zap.String("subscription_id", sub.ID))
	return nil
}
