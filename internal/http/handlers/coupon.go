package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/offermart/marketplace-backend/internal/domain/commands"
	"github.com/offermart/marketplace-backend/internal/http/response"
	"github.com/offermart/marketplace-backend/internal/pkg/logger"
	"github.com/offermart/marketplace-backend/internal/services"
)

type CouponHandler struct {
	log      *logger.Logger
	commands services.CouponCommandService
	queries  services.CouponQueryService
}

func NewCouponHandler(log *logger.Logger, commands services.CouponCommandService, queries services.CouponQueryService) *CouponHandler {
	return &CouponHandler{
		log:      log.With("handler", "CouponHandler"),
		commands: commands,
		queries:  queries,
	}
}

type createCouponRequest struct {
	UserID      uuid.UUID `json:"user_id"`
	Code        string    `json:"code"`
	DiscountPct int       `json:"discount_pct"`
	ExpiresOn   string    `json:"expires_on"`
}

func (h *CouponHandler) Create(c *gin.Context) {
	var req createCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	cmd, err := commands.NewCreateCouponCommand(req.UserID, req.Code, req.DiscountPct, req.ExpiresOn)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	coupon, err := h.commands.Create(c.Request.Context(), cmd)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, coupon)
}

type updateCouponRequest struct {
	DiscountPct *int    `json:"discount_pct"`
	ExpiresOn   *string `json:"expires_on"`
}

func (h *CouponHandler) Update(c *gin.Context) {
	couponID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req updateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	cmd, err := commands.NewUpdateCouponCommand(couponID, req.DiscountPct, req.ExpiresOn)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	coupon, err := h.commands.Update(c.Request.Context(), cmd)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, coupon)
}

func (h *CouponHandler) Delete(c *gin.Context) {
	couponID, ok := pathID(c, "id")
	if !ok {
		return
	}
	found, err := h.commands.Delete(c.Request.Context(), couponID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"deleted": found})
}

func (h *CouponHandler) Get(c *gin.Context) {
	couponID, ok := pathID(c, "id")
	if !ok {
		return
	}
	q, err := commands.NewByIDQuery(couponID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	coupon, err := h.queries.GetByID(c.Request.Context(), q)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, coupon)
}

func (h *CouponHandler) ListByUser(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	q, err := commands.NewByUserQuery(userID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	coupons, err := h.queries.ListByUser(c.Request.Context(), q)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, coupons)
}
