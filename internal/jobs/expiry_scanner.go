package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/offermart/marketplace-backend/internal/data/repos/engagement"
	"github.com/offermart/marketplace-backend/internal/data/repos/promo"
	types "github.com/offermart/marketplace-backend/internal/domain"
	"github.com/offermart/marketplace-backend/internal/domain/commands"
	"github.com/offermart/marketplace-backend/internal/pkg/logger"
	"github.com/offermart/marketplace-backend/internal/services"
)

const expiryWindow = 3 * 24 * time.Hour

// ExpiryScanner walks coupons and subscriptions once a day and raises a
// notification for anything expiring within the next three days. A row that
// already has a notification for the same code keeps its single notification;
// re-running the scan never duplicates.
type ExpiryScanner struct {
	log           *logger.Logger
	coupons       promo.CouponRepo
	subscriptions engagement.SubscriptionRepo
	notifications engagement.NotificationRepo
	commands      services.NotificationCommandService

	cron *cron.Cron
	// now is swapped out in tests to pin the scan clock.
	now func() time.Time
}

func NewExpiryScanner(
	baseLog *logger.Logger,
	coupons promo.CouponRepo,
	subscriptions engagement.SubscriptionRepo,
	notifications engagement.NotificationRepo,
	commands services.NotificationCommandService,
) *ExpiryScanner {
	return &ExpiryScanner{
		log:           baseLog.With("job", "ExpiryScanner"),
		coupons:       coupons,
		subscriptions: subscriptions,
		notifications: notifications,
		commands:      commands,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// Start schedules the daily scan at the given hour (0-23). The scanner keeps
// running until Stop is called.
func (s *ExpiryScanner) Start(hour int) error {
	if s.cron != nil {
		return fmt.Errorf("expiry scanner already started")
	}
	if hour < 0 || hour > 23 {
		return fmt.Errorf("invalid scan hour %d", hour)
	}

	c := cron.New()
	schedule := fmt.Sprintf("0 %d * * *", hour)
	if _, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		s.RunOnce(ctx)
	}); err != nil {
		return fmt.Errorf("schedule expiry scan: %w", err)
	}
	c.Start()
	s.cron = c
	s.log.Info("Expiry scanner started", "schedule", schedule)
	return nil
}

func (s *ExpiryScanner) Stop() {
	if s.cron == nil {
		return
	}
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	s.cron = nil
	s.log.Info("Expiry scanner stopped")
}

// RunOnce executes a single scan cycle. A failure loading one collection is
// logged and skips that collection for the cycle; the other still runs.
func (s *ExpiryScanner) RunOnce(ctx context.Context) {
	now := s.now()
	s.log.Info("Expiry scan starting", "window", expiryWindow.String())
	s.scanCoupons(ctx, now)
	s.scanSubscriptions(ctx, now)
}

func (s *ExpiryScanner) scanCoupons(ctx context.Context, now time.Time) {
	coupons, err := s.coupons.ListAll(ctx, nil)
	if err != nil {
		s.log.Error("Coupon scan load failed, skipping cycle", "error", err)
		return
	}

	notified := 0
	for _, coupon := range coupons {
		expiresOn, err := time.Parse("2006-01-02", coupon.ExpiresOn)
		if err != nil {
			s.log.Warn("Coupon has unparseable expiry, skipping",
				"coupon_id", coupon.ID, "expires_on", coupon.ExpiresOn)
			continue
		}
		if !withinWindow(now, expiresOn) {
			continue
		}

		created, err := s.notify(ctx, coupon.UserID, types.NotificationCouponExpiring, coupon.ID,
			"Coupon expiring soon",
			fmt.Sprintf("Your coupon %s expires on %s.", coupon.Code, coupon.ExpiresOn))
		if err != nil {
			s.log.Error("Coupon expiry notification failed", "coupon_id", coupon.ID, "error", err)
			continue
		}
		if created {
			notified++
		}
	}
	s.log.Info("Coupon scan finished", "scanned", len(coupons), "notified", notified)
}

func (s *ExpiryScanner) scanSubscriptions(ctx context.Context, now time.Time) {
	cutoff := now.Add(expiryWindow)
	subscriptions, err := s.subscriptions.ListActiveExpiringBefore(ctx, nil, cutoff)
	if err != nil {
		s.log.Error("Subscription scan load failed, skipping cycle", "error", err)
		return
	}

	notified := 0
	for _, subscription := range subscriptions {
		if !subscription.ExpiresAt.After(now) {
			continue
		}

		created, err := s.notify(ctx, subscription.UserID, types.NotificationSubscriptionExpiring, subscription.ID,
			"Subscription expiring soon",
			fmt.Sprintf("Your %s subscription expires on %s.",
				subscription.Plan, subscription.ExpiresAt.Format("2006-01-02")))
		if err != nil {
			s.log.Error("Subscription expiry notification failed",
				"subscription_id", subscription.ID, "error", err)
			continue
		}
		if created {
			notified++
		}
	}
	s.log.Info("Subscription scan finished", "scanned", len(subscriptions), "notified", notified)
}

// withinWindow reports whether expiry falls strictly between now and
// now+expiryWindow. Already-expired rows and far-future rows are skipped.
func withinWindow(now, expiry time.Time) bool {
	return expiry.After(now) && expiry.Before(now.Add(expiryWindow))
}

func (s *ExpiryScanner) notify(ctx context.Context, userID uuid.UUID, code string, relatedID uuid.UUID, title, message string) (bool, error) {
	exists, err := s.notifications.ExistsForRelated(ctx, nil, userID, code, relatedID)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	related := relatedID
	cmd, err := commands.NewCreateNotificationCommand(userID, code, title, message, &related)
	if err != nil {
		return false, err
	}
	if _, err := s.commands.Create(ctx, cmd); err != nil {
		return false, err
	}
	return true, nil
}
