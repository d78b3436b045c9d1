package app

import (
	"github.com/offermart/marketplace-backend/internal/http/handlers"
	"github.com/offermart/marketplace-backend/internal/pkg/logger"
)

type Handlers struct {
	Health       *handlers.HealthHandler
	Offer        *handlers.OfferHandler
	Campaign     *handlers.CampaignHandler
	Cart         *handlers.CartHandler
	Coupon       *handlers.CouponHandler
	Favorite     *handlers.FavoriteHandler
	Notification *handlers.NotificationHandler
	Payment      *handlers.PaymentHandler
	Review       *handlers.ReviewHandler
	Sale         *handlers.SaleHandler
	Subscription *handlers.SubscriptionHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:       handlers.NewHealthHandler(),
		Offer:        handlers.NewOfferHandler(log, services.OfferCommands, services.OfferQueries),
		Campaign:     handlers.NewCampaignHandler(log, services.CampaignCommands, services.CampaignQueries, services.CampaignStats),
		Cart:         handlers.NewCartHandler(log, services.CartCommands, services.CartQueries),
		Coupon:       handlers.NewCouponHandler(log, services.CouponCommands, services.CouponQueries),
		Favorite:     handlers.NewFavoriteHandler(log, services.FavoriteCommands, services.FavoriteQueries),
		Notification: handlers.NewNotificationHandler(log, services.NotificationCommands, services.NotificationQueries),
		Payment:      handlers.NewPaymentHandler(log, services.PaymentCommands, services.PaymentQueries),
		Review:       handlers.NewReviewHandler(log, services.ReviewCommands, services.ReviewQueries),
		Sale:         handlers.NewSaleHandler(log, services.SaleCommands, services.SaleQueries),
		Subscription: handlers.NewSubscriptionHandler(log, services.SubscriptionCommands, services.SubscriptionQueries),
	}
}
