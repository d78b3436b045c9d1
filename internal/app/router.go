package app

import (
	"github.com/gin-gonic/gin"

	"github.com/offermart/marketplace-backend/internal/pkg/logger"
	"github.com/offermart/marketplace-backend/internal/server"
)

func wireRouter(log *logger.Logger, handlers Handlers) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		Log:                 log,
		HealthHandler:       handlers.Health,
		OfferHandler:        handlers.Offer,
		CampaignHandler:     handlers.Campaign,
		CartHandler:         handlers.Cart,
		CouponHandler:       handlers.Coupon,
		FavoriteHandler:     handlers.Favorite,
		NotificationHandler: handlers.Notification,
		PaymentHandler:      handlers.Payment,
		ReviewHandler:       handlers.Review,
		SaleHandler:         handlers.Sale,
		SubscriptionHandler: handlers.Subscription,
	})
}
