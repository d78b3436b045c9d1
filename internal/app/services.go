package app

import (
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/offermart/marketplace-backend/internal/pkg/logger"
	"github.com/offermart/marketplace-backend/internal/services"
)

type Services struct {
	OfferCommands        services.OfferCommandService
	OfferQueries         services.OfferQueryService
	CampaignCommands     services.CampaignCommandService
	CampaignQueries      services.CampaignQueryService
	CampaignStats        services.CampaignStatsService
	CouponCommands       services.CouponCommandService
	CouponQueries        services.CouponQueryService
	FavoriteCommands     services.FavoriteCommandService
	FavoriteQueries      services.FavoriteQueryService
	NotificationCommands services.NotificationCommandService
	NotificationQueries  services.NotificationQueryService
	ReviewCommands       services.ReviewCommandService
	ReviewQueries        services.ReviewQueryService
	SubscriptionCommands services.SubscriptionCommandService
	SubscriptionQueries  services.SubscriptionQueryService
	CartCommands         services.CartCommandService
	CartQueries          services.CartQueryService
	PaymentCommands      services.PaymentCommandService
	PaymentQueries       services.PaymentQueryService
	SaleCommands         services.SaleCommandService
	SaleQueries          services.SaleQueryService
}

func wireServices(db *gorm.DB, log *logger.Logger, repos Repos, rdb *goredis.Client) Services {
	log.Info("Wiring services...")

	svcs := Services{
		OfferCommands:        services.NewOfferCommandService(db, log, repos.Offer),
		OfferQueries:         services.NewOfferQueryService(db, log, repos.Offer),
		CampaignCommands:     services.NewCampaignCommandService(db, log, repos.Campaign, repos.CampaignOffer, repos.Offer),
		CampaignQueries:      services.NewCampaignQueryService(db, log, repos.Campaign, repos.CampaignOffer),
		CouponCommands:       services.NewCouponCommandService(db, log, repos.Coupon),
		CouponQueries:        services.NewCouponQueryService(db, log, repos.Coupon),
		FavoriteCommands:     services.NewFavoriteCommandService(db, log, repos.Favorite),
		FavoriteQueries:      services.NewFavoriteQueryService(db, log, repos.Favorite),
		NotificationCommands: services.NewNotificationCommandService(db, log, repos.Notification),
		NotificationQueries:  services.NewNotificationQueryService(db, log, repos.Notification),
		ReviewCommands:       services.NewReviewCommandService(db, log, repos.Review),
		ReviewQueries:        services.NewReviewQueryService(db, log, repos.Review),
		SubscriptionCommands: services.NewSubscriptionCommandService(db, log, repos.Subscription),
		SubscriptionQueries:  services.NewSubscriptionQueryService(db, log, repos.Subscription),
		CartCommands:         services.NewCartCommandService(db, log, repos.Cart),
		CartQueries:          services.NewCartQueryService(db, log, repos.Cart),
		PaymentCommands:      services.NewPaymentCommandService(db, log, repos.Payment),
		PaymentQueries:       services.NewPaymentQueryService(db, log, repos.Payment),
		SaleCommands:         services.NewSaleCommandService(db, log, repos.Sale),
		SaleQueries:          services.NewSaleQueryService(db, log, repos.Sale),
	}
	if rdb != nil {
		svcs.CampaignStats = services.NewCampaignStatsService(log, rdb, repos.Campaign)
	}
	return svcs
}
