package models

import "time"

const (
	MemberStatusActive  = "active"
	MemberStatusRevoked = "revoked"
)

// PremiumMember is the entitlement written from verified Stripe webhooks.
type PremiumMember struct {
	ID                   uint      `json:"id" gorm:"primaryKey"`
	Email                string    `json:"email" gorm:"uniqueIndex;not null"`
	StripeCustomerID     string    `json:"stripe_customer_id"`
	StripeSubscriptionID string    `json:"stripe_subscription_id" gorm:"index"`
	CheckoutSessionID    string    `json:"checkout_session_id"`
	Status               string    `json:"status" gorm:"not null;default:'active'"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func (m *PremiumMember) IsActive() bool {
	return m.Status == MemberStatusActive
}
