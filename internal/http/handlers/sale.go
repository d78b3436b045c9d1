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

type SaleHandler struct {
	log      *logger.Logger
	commands services.SaleCommandService
	queries  services.SaleQueryService
}

func NewSaleHandler(log *logger.Logger, commands services.SaleCommandService, queries services.SaleQueryService) *SaleHandler {
	return &SaleHandler{
		log:      log.With("handler", "SaleHandler"),
		commands: commands,
		queries:  queries,
	}
}

type createSaleRequest struct {
	OfferID  uuid.UUID `json:"offer_id"`
	SellerID uuid.UUID `json:"seller_id"`
	BuyerID  uuid.UUID `json:"buyer_id"`
	Price    float64   `json:"price"`
}

func (h *SaleHandler) Create(c *gin.Context) {
	var req createSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	cmd, err := commands.NewCreateSaleCommand(req.OfferID, req.SellerID, req.BuyerID, req.Price)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	sale, err := h.commands.Create(c.Request.Context(), cmd)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, sale)
}

type updateSaleStatusRequest struct {
	Status string `json:"status"`
}

func (h *SaleHandler) UpdateStatus(c *gin.Context) {
	saleID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req updateSaleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	cmd, err := commands.NewUpdateSaleStatusCommand(saleID, req.Status)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	sale, err := h.commands.UpdateStatus(c.Request.Context(), cmd)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, sale)
}

func (h *SaleHandler) Delete(c *gin.Context) {
	saleID, ok := pathID(c, "id")
	if !ok {
		return
	}
	found, err := h.commands.Delete(c.Request.Context(), saleID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"deleted": found})
}

func (h *SaleHandler) Get(c *gin.Context) {
	saleID, ok := pathID(c, "id")
	if !ok {
		return
	}
	q, err := commands.NewByIDQuery(saleID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	sale, err := h.queries.GetByID(c.Request.Context(), q)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, sale)
}

func (h *SaleHandler) ListBySeller(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	q, err := commands.NewByUserQuery(userID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	sales, err := h.queries.ListBySeller(c.Request.Context(), q)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, sales)
}

func (h *SaleHandler) ListByBuyer(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	q, err := commands.NewByUserQuery(userID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	sales, err := h.queries.ListByBuyer(c.Request.Context(), q)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, sales)
}
