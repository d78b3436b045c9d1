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

type CartHandler struct {
	log      *logger.Logger
	commands services.CartCommandService
	queries  services.CartQueryService
}

func NewCartHandler(log *logger.Logger, commands services.CartCommandService, queries services.CartQueryService) *CartHandler {
	return &CartHandler{
		log:      log.With("handler", "CartHandler"),
		commands: commands,
		queries:  queries,
	}
}

type addCartItemRequest struct {
	OfferID  uuid.UUID `json:"offer_id"`
	Quantity int       `json:"quantity"`
}

func (h *CartHandler) AddItem(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	cmd, err := commands.NewAddCartItemCommand(userID, req.OfferID, req.Quantity)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	item, err := h.commands.AddItem(c.Request.Context(), cmd)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, item)
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	offerID, ok := pathID(c, "offerId")
	if !ok {
		return
	}
	found, err := h.commands.RemoveItem(c.Request.Context(), userID, offerID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"removed": found})
}

func (h *CartHandler) Clear(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	count, err := h.commands.Clear(c.Request.Context(), userID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"removed": count})
}

func (h *CartHandler) Get(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	q, err := commands.NewByUserQuery(userID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	view, err := h.queries.GetForUser(c.Request.Context(), q)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, view)
}
