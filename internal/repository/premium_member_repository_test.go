package repository

import (
	"context"
	"os"
	"testing"

	"github.com/sefazor/premium-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const testEmail = "repo-test@example.com"

// setupTestDB connects to TEST_DATABASE_URL and clears the rows this test owns.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in -short mode")
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.PremiumMember{}))

	clean := func() { db.Where("email = ?", testEmail).Delete(&models.PremiumMember{}) }
	clean()
	t.Cleanup(clean)
	return db
}

func TestPremiumMemberRepository_UpsertAndRevoke(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPremiumMemberRepository(db)
	ctx := context.Background()

	err := repo.Upsert(ctx, &models.PremiumMember{
		Email:                testEmail,
		StripeSubscriptionID: "sub_repo_1",
		Status:               models.MemberStatusActive,
	})
	require.NoError(t, err)

	// A second checkout for the same email replaces the subscription reference.
	err = repo.Upsert(ctx, &models.PremiumMember{
		Email:                testEmail,
		StripeSubscriptionID: "sub_repo_2",
		CheckoutSessionID:    "cs_repo_2",
		Status:               models.MemberStatusActive,
	})
	require.NoError(t, err)

	byEmail, err := repo.GetByEmail(ctx, testEmail)
	require.NoError(t, err)
	assert.Equal(t, "sub_repo_2", byEmail.StripeSubscriptionID)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetBySubscriptionID(ctx, "sub_repo_1")
	assert.ErrorIs(t, err, ErrNotFound)

	member, err := repo.GetBySubscriptionID(ctx, "sub_repo_2")
	require.NoError(t, err)
	assert.Equal(t, "cs_repo_2", member.CheckoutSessionID)

	member.Status = models.MemberStatusRevoked
	require.NoError(t, repo.Update(ctx, member))

	member, err = repo.GetBySubscriptionID(ctx, "sub_repo_2")
	require.NoError(t, err)
	assert.False(t, member.IsActive())
}
