package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/offermart/marketplace-backend/internal/domain"
)

func SeedOffer(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID) *types.Offer {
	tb.Helper()
	now := time.Now().UTC()
	o := &types.Offer{
		Audit:  types.Audit{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		UserID: userID,
		Title:  "offer",
		Price:  10,
		Status: types.OfferStatusActive,
	}
	if err := tx.WithContext(ctx).Create(o).Error; err != nil {
		tb.Fatalf("seed offer: %v", err)
	}
	return o
}

func SeedCampaign(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID) *types.Campaign {
	tb.Helper()
	now := time.Now().UTC()
	c := &types.Campaign{
		Audit:  types.Audit{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		UserID: userID,
		Name:   "campaign",
		Budget: 100,
		Status: types.CampaignStatusDraft,
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed campaign: %v", err)
	}
	return c
}

// SeedCoupon writes the expiry string as given, bypassing command validation,
// so scan tests can plant malformed rows.
func SeedCoupon(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID, expiresOn string) *types.Coupon {
	tb.Helper()
	now := time.Now().UTC()
	c := &types.Coupon{
		Audit:       types.Audit{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		UserID:      userID,
		Code:        "SAVE10",
		DiscountPct: 10,
		ExpiresOn:   expiresOn,
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed coupon: %v", err)
	}
	return c
}

func SeedSubscription(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID, expiresAt time.Time) *types.Subscription {
	tb.Helper()
	now := time.Now().UTC()
	s := &types.Subscription{
		Audit:     types.Audit{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		UserID:    userID,
		Plan:      "pro",
		Status:    types.SubscriptionStatusActive,
		StartedAt: now,
		ExpiresAt: expiresAt,
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed subscription: %v", err)
	}
	return s
}

func SeedNotification(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID, read bool) *types.Notification {
	tb.Helper()
	now := time.Now().UTC()
	n := &types.Notification{
		Audit:  types.Audit{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		UserID: userID,
		Code:   "generic",
		Title:  "title",
		Read:   read,
	}
	if err := tx.WithContext(ctx).Create(n).Error; err != nil {
		tb.Fatalf("seed notification: %v", err)
	}
	return n
}
