package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/offermart/marketplace-backend/internal/data/repos/engagement"
	"github.com/offermart/marketplace-backend/internal/data/repos/promo"
	"github.com/offermart/marketplace-backend/internal/data/repos/testutil"
	types "github.com/offermart/marketplace-backend/internal/domain"
	"github.com/offermart/marketplace-backend/internal/services"
)

type scanEnv struct {
	Tx            *gorm.DB
	Notifications engagement.NotificationRepo
}

func newScanner(t *testing.T) (*ExpiryScanner, scanEnv) {
	t.Helper()
	log := testutil.Logger(t)
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	couponRepo := promo.NewCouponRepo(tx, log)
	subscriptionRepo := engagement.NewSubscriptionRepo(tx, log)
	notificationRepo := engagement.NewNotificationRepo(tx, log)
	commandSvc := services.NewNotificationCommandService(tx, log, notificationRepo)

	scanner := NewExpiryScanner(log, couponRepo, subscriptionRepo, notificationRepo, commandSvc)
	return scanner, scanEnv{Tx: tx, Notifications: notificationRepo}
}

func TestExpiryScannerCouponWindow(t *testing.T) {
	ctx := context.Background()
	scanner, h := newScanner(t)

	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	scanner.now = func() time.Time { return base }

	userID := uuid.New()
	inWindow := testutil.SeedCoupon(t, ctx, h.Tx, userID, base.AddDate(0, 0, 2).Format("2006-01-02"))
	testutil.SeedCoupon(t, ctx, h.Tx, userID, base.AddDate(0, 0, 10).Format("2006-01-02"))
	testutil.SeedCoupon(t, ctx, h.Tx, userID, base.AddDate(0, 0, -1).Format("2006-01-02"))

	scanner.RunOnce(ctx)

	notifications, err := h.Notifications.ListByUserID(ctx, nil, userID)
	if err != nil {
		t.Fatalf("list notifications: %v", err)
	}
	if len(notifications) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifications))
	}
	n := notifications[0]
	if n.Code != types.NotificationCouponExpiring {
		t.Fatalf("expected code %q, got %q", types.NotificationCouponExpiring, n.Code)
	}
	if n.RelatedID == nil || *n.RelatedID != inWindow.ID {
		t.Fatalf("expected related id %s, got %v", inWindow.ID, n.RelatedID)
	}
}

func TestExpiryScannerIdempotent(t *testing.T) {
	ctx := context.Background()
	scanner, h := newScanner(t)

	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	scanner.now = func() time.Time { return base }

	userID := uuid.New()
	testutil.SeedCoupon(t, ctx, h.Tx, userID, base.AddDate(0, 0, 2).Format("2006-01-02"))
	testutil.SeedSubscription(t, ctx, h.Tx, userID, base.Add(48*time.Hour))

	scanner.RunOnce(ctx)
	scanner.RunOnce(ctx)

	notifications, err := h.Notifications.ListByUserID(ctx, nil, userID)
	if err != nil {
		t.Fatalf("list notifications: %v", err)
	}
	if len(notifications) != 2 {
		t.Fatalf("expected 2 notifications after repeat scan, got %d", len(notifications))
	}
	codes := map[string]int{}
	for _, n := range notifications {
		codes[n.Code]++
	}
	if codes[types.NotificationCouponExpiring] != 1 || codes[types.NotificationSubscriptionExpiring] != 1 {
		t.Fatalf("unexpected code counts: %v", codes)
	}
}

func TestExpiryScannerSkipsMalformedExpiry(t *testing.T) {
	ctx := context.Background()
	scanner, h := newScanner(t)

	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	scanner.now = func() time.Time { return base }

	userID := uuid.New()
	testutil.SeedCoupon(t, ctx, h.Tx, userID, "not-a-date")
	for i := 0; i < 9; i++ {
		testutil.SeedCoupon(t, ctx, h.Tx, userID, base.AddDate(0, 0, 1).Format("2006-01-02"))
	}

	scanner.RunOnce(ctx)

	notifications, err := h.Notifications.ListByUserID(ctx, nil, userID)
	if err != nil {
		t.Fatalf("list notifications: %v", err)
	}
	if len(notifications) != 9 {
		t.Fatalf("expected 9 notifications, got %d", len(notifications))
	}
}

func TestExpiryScannerSubscriptionCanceledExcluded(t *testing.T) {
	ctx := context.Background()
	scanner, h := newScanner(t)

	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	scanner.now = func() time.Time { return base }

	userID := uuid.New()
	canceled := testutil.SeedSubscription(t, ctx, h.Tx, userID, base.Add(24*time.Hour))
	if err := h.Tx.WithContext(ctx).Model(canceled).
		Update("status", types.SubscriptionStatusCanceled).Error; err != nil {
		t.Fatalf("cancel subscription: %v", err)
	}
	testutil.SeedSubscription(t, ctx, h.Tx, userID, base.Add(24*time.Hour))

	scanner.RunOnce(ctx)

	notifications, err := h.Notifications.ListByUserID(ctx, nil, userID)
	if err != nil {
		t.Fatalf("list notifications: %v", err)
	}
	if len(notifications) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifications))
	}
}

func TestWithinWindow(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	cases := []struct {
		name   string
		expiry time.Time
		want   bool
	}{
		{"two days out", now.Add(48 * time.Hour), true},
		{"one minute out", now.Add(time.Minute), true},
		{"exactly now", now, false},
		{"already expired", now.Add(-time.Hour), false},
		{"exactly at window edge", now.Add(expiryWindow), false},
		{"beyond window", now.Add(96 * time.Hour), false},
	}
	for _, tc := range cases {
		if got := withinWindow(now, tc.expiry); got != tc.want {
			t.Errorf("%s: withinWindow = %v, want %v", tc.name, got, tc.want)
		}
	}
}
