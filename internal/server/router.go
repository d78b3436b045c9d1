package server

import (
	"github.com/gin-gonic/gin"

	"github.com/offermart/marketplace-backend/internal/http/handlers"
	"github.com/offermart/marketplace-backend/internal/http/middleware"
	"github.com/offermart/marketplace-backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log                 *logger.Logger
	HealthHandler       *handlers.HealthHandler
	OfferHandler        *handlers.OfferHandler
	CampaignHandler     *handlers.CampaignHandler
	CartHandler         *handlers.CartHandler
	CouponHandler       *handlers.CouponHandler
	FavoriteHandler     *handlers.FavoriteHandler
	NotificationHandler *handlers.NotificationHandler
	PaymentHandler      *handlers.PaymentHandler
	ReviewHandler       *handlers.ReviewHandler
	SaleHandler         *handlers.SaleHandler
	SubscriptionHandler *handlers.SubscriptionHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.RequestLogger(cfg.Log))

	router.GET("/healthcheck", cfg.HealthHandler.HealthCheck)

	api := router.Group("/api")

	// Offers
	api.POST("/offers", cfg.OfferHandler.Create)
	api.GET("/offers", cfg.OfferHandler.List)
	api.GET("/offers/:id", cfg.OfferHandler.Get)
	api.PUT("/offers/:id", cfg.OfferHandler.Update)
	api.DELETE("/offers/:id", cfg.OfferHandler.Delete)

	// Campaigns
	api.POST("/campaigns", cfg.CampaignHandler.Create)
	api.GET("/campaigns/:id", cfg.CampaignHandler.Get)
	api.PUT("/campaigns/:id", cfg.CampaignHandler.Update)
	api.DELETE("/campaigns/:id", cfg.CampaignHandler.Delete)
	api.POST("/campaigns/:id/offers", cfg.CampaignHandler.AttachOffer)
	api.GET("/campaigns/:id/offers", cfg.CampaignHandler.ListOffers)
	api.DELETE("/campaigns/:id/offers/:offerId", cfg.CampaignHandler.DetachOffer)
	api.POST("/campaigns/:id/impressions", cfg.CampaignHandler.RecordImpression)
	api.POST("/campaigns/:id/clicks", cfg.CampaignHandler.RecordClick)
	api.GET("/campaigns/:id/ctr", cfg.CampaignHandler.CTR)

	// Coupons
	api.POST("/coupons", cfg.CouponHandler.Create)
	api.GET("/coupons/:id", cfg.CouponHandler.Get)
	api.PUT("/coupons/:id", cfg.CouponHandler.Update)
	api.DELETE("/coupons/:id", cfg.CouponHandler.Delete)

	// Favorites
	api.POST("/favorites", cfg.FavoriteHandler.Create)
	api.GET("/favorites/offer/:offerId/count", cfg.FavoriteHandler.CountForOffer)

	// Notifications
	api.POST("/notifications", cfg.NotificationHandler.Create)
	api.GET("/notifications/:id", cfg.NotificationHandler.Get)
	api.POST("/notifications/:id/read", cfg.NotificationHandler.MarkRead)
	api.DELETE("/notifications/:id", cfg.NotificationHandler.Delete)

	// Payments
	api.POST("/payments", cfg.PaymentHandler.Create)
	api.GET("/payments/:id", cfg.PaymentHandler.Get)
	api.PATCH("/payments/:id/status", cfg.PaymentHandler.UpdateStatus)
	api.DELETE("/payments/:id", cfg.PaymentHandler.Delete)

	// Reviews
	api.POST("/reviews", cfg.ReviewHandler.Create)
	api.GET("/reviews/:id", cfg.ReviewHandler.Get)
	api.PUT("/reviews/:id", cfg.ReviewHandler.Update)
	api.DELETE("/reviews/:id", cfg.ReviewHandler.Delete)
	api.GET("/reviews/offer/:offerId", cfg.ReviewHandler.ListByOffer)
	api.GET("/reviews/offer/:offerId/summary", cfg.ReviewHandler.SummaryForOffer)

	// Sales
	api.POST("/sales", cfg.SaleHandler.Create)
	api.GET("/sales/:id", cfg.SaleHandler.Get)
	api.PATCH("/sales/:id/status", cfg.SaleHandler.UpdateStatus)
	api.DELETE("/sales/:id", cfg.SaleHandler.Delete)

	// Subscriptions
	api.POST("/subscriptions", cfg.SubscriptionHandler.Create)
	api.GET("/subscriptions/:id", cfg.SubscriptionHandler.Get)
	api.POST("/subscriptions/:id/cancel", cfg.SubscriptionHandler.Cancel)
	api.DELETE("/subscriptions/:id", cfg.SubscriptionHandler.Delete)

	// Per-user collections
	users := api.Group("/users/:userId")
	users.GET("/offers", cfg.OfferHandler.ListByUser)
	users.GET("/campaigns", cfg.CampaignHandler.ListByUser)
	users.GET("/coupons", cfg.CouponHandler.ListByUser)
	users.GET("/favorites", cfg.FavoriteHandler.ListByUser)
	users.DELETE("/favorites/:offerId", cfg.FavoriteHandler.Delete)
	users.GET("/notifications", cfg.NotificationHandler.ListByUser)
	users.POST("/notifications/read", cfg.NotificationHandler.MarkAllRead)
	users.GET("/payments", cfg.PaymentHandler.ListByUser)
	users.GET("/reviews", cfg.ReviewHandler.ListByUser)
	users.GET("/sales/selling", cfg.SaleHandler.ListBySeller)
	users.GET("/sales/buying", cfg.SaleHandler.ListByBuyer)
	users.GET("/subscriptions", cfg.SubscriptionHandler.ListByUser)
	users.GET("/cart", cfg.CartHandler.Get)
	users.DELETE("/cart", cfg.CartHandler.Clear)
	users.POST("/cart/items", cfg.CartHandler.AddItem)
	users.DELETE("/cart/items/:offerId", cfg.CartHandler.RemoveItem)

	return router
}
