package repository

import (
	"context"
	"errors"

	"github.com/sefazor/premium-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrNotFound = errors.New("record not found")

type PremiumMemberRepository struct {
	db *gorm.DB
}

func NewPremiumMemberRepository(db *gorm.DB) *PremiumMemberRepository {
	return &PremiumMemberRepository{
		db: db,
	}
}

// Upsert inserts the member or refreshes the Stripe references of the existing row with the same email.
func (r *PremiumMemberRepository) Upsert(ctx context.Context, member *models.PremiumMember) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"stripe_customer_id",
			"stripe_subscription_id",
			"checkout_session_id",
			"status",
			"updated_at",
		}),
	}).Create(member).Error
}

func (r *PremiumMemberRepository) GetByEmail(ctx context.Context, email string) (*models.PremiumMember, error) {
	var member models.PremiumMember
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &member, err
}

func (r *PremiumMemberRepository) GetBySubscriptionID(ctx context.Context, subscriptionID string) (*models.PremiumMember, error) {
	var member models.PremiumMember
	err := r.db.WithContext(ctx).Where("stripe_subscription_id = ?", subscriptionID).First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &member, err
}

func (r *PremiumMemberRepository) Update(ctx context.Context, member *models.PremiumMember) error {
	return r.db.WithContext(ctx).Save(member).Error
}
