package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/offermart/marketplace-backend/internal/domain/commands"
	"github.com/offermart/marketplace-backend/internal/http/response"
	"github.com/offermart/marketplace-backend/internal/pkg/logger"
	"github.com/offermart/marketplace-backend/internal/services"
)

type OfferHandler struct {
	log      *logger.Logger
	commands services.OfferCommandService
	queries  services.OfferQueryService
}

func NewOfferHandler(log *logger.Logger, commands services.OfferCommandService, queries services.OfferQueryService) *OfferHandler {
	return &OfferHandler{
		log:      log.With("handler", "OfferHandler"),
		commands: commands,
		queries:  queries,
	}
}

type createOfferRequest struct {
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"image_url"`
}

func (h *OfferHandler) Create(c *gin.Context) {
	var req createOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	cmd, err := commands.NewCreateOfferCommand(req.UserID, req.Title, req.Description, req.Price, req.Category, req.ImageURL)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	offer, err := h.commands.Create(c.Request.Context(), cmd)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, offer)
}

type updateOfferRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Status      *string  `json:"status"`
	ImageURL    *string  `json:"image_url"`
}

func (h *OfferHandler) Update(c *gin.Context) {
	offerID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req updateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	cmd, err := commands.NewUpdateOfferCommand(offerID, req.Title, req.Description, req.Price, req.Category, req.Status, req.ImageURL)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	offer, err := h.commands.Update(c.Request.Context(), cmd)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, offer)
}

func (h *OfferHandler) Delete(c *gin.Context) {
	offerID, ok := pathID(c, "id")
	if !ok {
		return
	}
	found, err := h.commands.Delete(c.Request.Context(), offerID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"deleted": found})
}

func (h *OfferHandler) Get(c *gin.Context) {
	offerID, ok := pathID(c, "id")
	if !ok {
		return
	}
	q, err := commands.NewByIDQuery(offerID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	offer, err := h.queries.GetByID(c.Request.Context(), q)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, offer)
}

func (h *OfferHandler) ListByUser(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	q, err := commands.NewByUserQuery(userID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	offers, err := h.queries.ListByUser(c.Request.Context(), q)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, offers)
}

func (h *OfferHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		offers, err := h.queries.ListByCategory(ctx, category)
		if err != nil {
			response.RespondServiceError(c, err)
			return
		}
		response.RespondOK(c, offers)
		return
	}
	offers, err := h.queries.ListAll(ctx)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, offers)
}
