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

type SubscriptionHandler struct {
	log      *logger.Logger
	commands services.SubscriptionCommandService
	queries  services.SubscriptionQueryService
}

func NewSubscriptionHandler(log *logger.Logger, commands services.SubscriptionCommandService, queries services.SubscriptionQueryService) *SubscriptionHandler {
	return &SubscriptionHandler{
		log:      log.With("handler", "SubscriptionHandler"),
		commands: commands,
		queries:  queries,
	}
}

type createSubscriptionRequest struct {
	UserID uuid.UUID `json:"user_id"`
	Plan   string    `json:"plan"`
	Months int       `json:"months"`
}

func (h *SubscriptionHandler) Create(c *gin.Context) {
	var req createSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	cmd, err := commands.NewCreateSubscriptionCommand(req.UserID, req.Plan, req.Months)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	subscription, err := h.commands.Create(c.Request.Context(), cmd)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, subscription)
}

func (h *SubscriptionHandler) Cancel(c *gin.Context) {
	subscriptionID, ok := pathID(c, "id")
	if !ok {
		return
	}
	subscription, err := h.commands.Cancel(c.Request.Context(), subscriptionID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, subscription)
}

func (h *SubscriptionHandler) Delete(c *gin.Context) {
	subscriptionID, ok := pathID(c, "id")
	if !ok {
		return
	}
	found, err := h.commands.Delete(c.Request.Context(), subscriptionID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"deleted": found})
}

func (h *SubscriptionHandler) Get(c *gin.Context) {
	subscriptionID, ok := pathID(c, "id")
	if !ok {
		return
	}
	q, err := commands.NewByIDQuery(subscriptionID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	subscription, err := h.queries.GetByID(c.Request.Context(), q)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, subscription)
}

func (h *SubscriptionHandler) ListByUser(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	q, err := commands.NewByUserQuery(userID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	subscriptions, err := h.queries.ListByUser(c.Request.Context(), q)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, subscriptions)
}
