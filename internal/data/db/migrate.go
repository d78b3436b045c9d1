package db

import (
	"fmt"

	"gorm.io/gorm"

	types "github.com/offermart/marketplace-backend/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(

		// =========================
		// Catalog
		// =========================
		&types.Offer{},
		&types.Campaign{},
		&types.CampaignOffer{},

		// =========================
		// Promo
		// =========================
		&types.Coupon{},

		// =========================
		// Engagement
		// =========================
		&types.Favorite{},
		&types.Review{},
		&types.Notification{},
		&types.Subscription{},

		// =========================
		// Orders
		// =========================
		&types.Cart{},
		&types.CartItem{},
		&types.Payment{},
		&types.Sale{},
	)
}

func EnsureIndexes(db *gorm.DB) error {
	// Unread-badge lookups per user.
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_notification_user_read
		ON notification (user_id, read, created_at DESC);
	`).Error; err != nil {
		return fmt.Errorf("create idx_notification_user_read: %w", err)
	}

	// Expiry scan reads every coupon but ranks by expiry when paging.
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_coupon_expires_on
		ON coupon (expires_on);
	`).Error; err != nil {
		return fmt.Errorf("create idx_coupon_expires_on: %w", err)
	}

	// Offer reviews are listed newest-first.
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_review_offer_created
		ON review (offer_id, created_at DESC);
	`).Error; err != nil {
		return fmt.Errorf("create idx_review_offer_created: %w", err)
	}

	return nil
}
