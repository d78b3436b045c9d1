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

type FavoriteHandler struct {
	log      *logger.Logger
	commands services.FavoriteCommandService
	queries  services.FavoriteQueryService
}

func NewFavoriteHandler(log *logger.Logger, commands services.FavoriteCommandService, queries services.FavoriteQueryService) *FavoriteHandler {
	return &FavoriteHandler{
		log:      log.With("handler", "FavoriteHandler"),
		commands: commands,
		queries:  queries,
	}
}

type createFavoriteRequest struct {
	UserID  uuid.UUID `json:"user_id"`
	OfferID uuid.UUID `json:"offer_id"`
}

func (h *FavoriteHandler) Create(c *gin.Context) {
	var req createFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	cmd, err := commands.NewCreateFavoriteCommand(req.UserID, req.OfferID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	favorite, err := h.commands.Create(c.Request.Context(), cmd)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, favorite)
}

func (h *FavoriteHandler) Delete(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	offerID, ok := pathID(c, "offerId")
	if !ok {
		return
	}
	found, err := h.commands.Delete(c.Request.Context(), userID, offerID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"deleted": found})
}

func (h *FavoriteHandler) ListByUser(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	q, err := commands.NewByUserQuery(userID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	favorites, err := h.queries.ListByUser(c.Request.Context(), q)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, favorites)
}

func (h *FavoriteHandler) CountForOffer(c *gin.Context) {
	offerID, ok := pathID(c, "offerId")
	if !ok {
		return
	}
	count, err := h.queries.CountForOffer(c.Request.Context(), offerID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"offer_id": offerID, "count": count})
}
