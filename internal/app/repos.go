package app

import (
	"gorm.io/gorm"

	"github.com/offermart/marketplace-backend/internal/data/repos/catalog"
	"github.com/offermart/marketplace-backend/internal/data/repos/engagement"
	"github.com/offermart/marketplace-backend/internal/data/repos/orders"
	"github.com/offermart/marketplace-backend/internal/data/repos/promo"
	"github.com/offermart/marketplace-backend/internal/pkg/logger"
)

type Repos struct {
	Offer         catalog.OfferRepo
	Campaign      catalog.CampaignRepo
	CampaignOffer catalog.CampaignOfferRepo
	Coupon        promo.CouponRepo
	Favorite      engagement.FavoriteRepo
	Notification  engagement.NotificationRepo
	Review        engagement.ReviewRepo
	Subscription  engagement.SubscriptionRepo
	Cart          orders.CartRepo
	Payment       orders.PaymentRepo
	Sale          orders.SaleRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Offer:         catalog.NewOfferRepo(db, log),
		Campaign:      catalog.NewCampaignRepo(db, log),
		CampaignOffer: catalog.NewCampaignOfferRepo(db, log),
		Coupon:        promo.NewCouponRepo(db, log),
		Favorite:      engagement.NewFavoriteRepo(db, log),
		Notification:  engagement.NewNotificationRepo(db, log),
		Review:        engagement.NewReviewRepo(db, log),
		Subscription:  engagement.NewSubscriptionRepo(db, log),
		Cart:          orders.NewCartRepo(db, log),
		Payment:       orders.NewPaymentRepo(db, log),
		Sale:          orders.NewSaleRepo(db, log),
	}
}
