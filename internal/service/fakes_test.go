package service

import (
	"context"
	"errors"
	"time"

	"github.com/sefazor/premium-backend/internal/models"
	"github.com/sefazor/premium-backend/internal/repository"
	"github.com/stripe/stripe-go/v74"
)

type fakeGateway struct {
	err error

	amount     int64
	currency   string
	email      string
	priceID    string
	successURL string
	cancelURL  string
	metadata   map[string]string
}

func (f *fakeGateway) CreatePaymentIntent(_ context.Context, amount int64, currency string, metadata map[string]string) (*stripe.PaymentIntent, error) {
	f.amount, f.currency, f.metadata = amount, currency, metadata
	if f.err != nil {
		return nil, f.err
	}
	return &stripe.PaymentIntent{ID: "pi_123", ClientSecret: "pi_123_secret_abc"}, nil
}

func (f *fakeGateway) CreateSubscriptionCheckout(_ context.Context, email, priceID, successURL, cancelURL string, metadata map[string]string) (*stripe.CheckoutSession, error) {
	f.email, f.priceID, f.successURL, f.cancelURL, f.metadata = email, priceID, successURL, cancelURL, metadata
	if f.err != nil {
		return nil, f.err
	}
	return &stripe.CheckoutSession{ID: "cs_test_123", URL: "https://checkout.stripe.com/c/pay/cs_test_123"}, nil
}

type fakeMemberStore struct {
	members map[string]*models.PremiumMember
	err     error
}

func newFakeMemberStore() *fakeMemberStore {
	return &fakeMemberStore{members: map[string]*models.PremiumMember{}}
}

func (f *fakeMemberStore) Upsert(_ context.Context, m *models.PremiumMember) error {
	if f.err != nil {
		return f.err
	}
	cp := *m
	f.members[m.Email] = &cp
	return nil
}

func (f *fakeMemberStore) GetByEmail(_ context.Context, email string) (*models.PremiumMember, error) {
	if f.err != nil {
		return nil, f.err
	}
	if m, ok := f.members[email]; ok {
		cp := *m
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeMemberStore) GetBySubscriptionID(_ context.Context, id string) (*models.PremiumMember, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, m := range f.members {
		if m.StripeSubscriptionID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeMemberStore) Update(_ context.Context, m *models.PremiumMember) error {
	if f.err != nil {
		return f.err
	}
	cp := *m
	f.members[m.Email] = &cp
	return nil
}

type fakeMailer struct {
	sent []string
	err  error
}

func (f *fakeMailer) SendPremiumWelcomeEmail(email, _ string) error {
	f.sent = append(f.sent, email)
	return f.err
}

type fakeSigner struct {
	url string
	err error
	key string
	ttl time.Duration
}

func (f *fakeSigner) PresignGet(_ context.Context, key string, ttl time.Duration) (string, error) {
	f.key, f.ttl = key, ttl
	return f.url, f.err
}

var errBoom = errors.New("boom")
