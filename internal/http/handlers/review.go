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

type ReviewHandler struct {
	log      *logger.Logger
	commands services.ReviewCommandService
	queries  services.ReviewQueryService
}

func NewReviewHandler(log *logger.Logger, commands services.ReviewCommandService, queries services.ReviewQueryService) *ReviewHandler {
	return &ReviewHandler{
		log:      log.With("handler", "ReviewHandler"),
		commands: commands,
		queries:  queries,
	}
}

type createReviewRequest struct {
	OfferID  uuid.UUID `json:"offer_id"`
	UserID   uuid.UUID `json:"user_id"`
	UserName string    `json:"user_name"`
	Rating   int       `json:"rating"`
	Text     string    `json:"text"`
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	cmd, err := commands.NewCreateReviewCommand(req.OfferID, req.UserID, req.UserName, req.Rating, req.Text)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	review, err := h.commands.Create(c.Request.Context(), cmd)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, review)
}

type updateReviewRequest struct {
	Rating *int    `json:"rating"`
	Text   *string `json:"text"`
}

func (h *ReviewHandler) Update(c *gin.Context) {
	reviewID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req updateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	cmd, err := commands.NewUpdateReviewCommand(reviewID, req.Rating, req.Text)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	review, err := h.commands.Update(c.Request.Context(), cmd)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, review)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	reviewID, ok := pathID(c, "id")
	if !ok {
		return
	}
	found, err := h.commands.Delete(c.Request.Context(), reviewID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"deleted": found})
}

func (h *ReviewHandler) Get(c *gin.Context) {
	reviewID, ok := pathID(c, "id")
	if !ok {
		return
	}
	q, err := commands.NewByIDQuery(reviewID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	review, err := h.queries.GetByID(c.Request.Context(), q)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, review)
}

func (h *ReviewHandler) ListByOffer(c *gin.Context) {
	offerID, ok := pathID(c, "offerId")
	if !ok {
		return
	}
	reviews, err := h.queries.ListByOffer(c.Request.Context(), offerID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, reviews)
}

func (h *ReviewHandler) ListByUser(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	q, err := commands.NewByUserQuery(userID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	reviews, err := h.queries.ListByUser(c.Request.Context(), q)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, reviews)
}

func (h *ReviewHandler) SummaryForOffer(c *gin.Context) {
	offerID, ok := pathID(c, "offerId")
	if !ok {
		return
	}
	summary, err := h.queries.SummaryForOffer(c.Request.Context(), offerID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, summary)
}
