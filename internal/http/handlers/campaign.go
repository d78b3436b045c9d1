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

type CampaignHandler struct {
	log      *logger.Logger
	commands services.CampaignCommandService
	queries  services.CampaignQueryService
	stats    services.CampaignStatsService
}

func NewCampaignHandler(log *logger.Logger, commands services.CampaignCommandService, queries services.CampaignQueryService, stats services.CampaignStatsService) *CampaignHandler {
	return &CampaignHandler{
		log:      log.With("handler", "CampaignHandler"),
		commands: commands,
		queries:  queries,
		stats:    stats,
	}
}

type createCampaignRequest struct {
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
	Budget float64   `json:"budget"`
}

func (h *CampaignHandler) Create(c *gin.Context) {
	var req createCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	cmd, err := commands.NewCreateCampaignCommand(req.UserID, req.Name, req.Budget)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	campaign, err := h.commands.Create(c.Request.Context(), cmd)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, campaign)
}

type updateCampaignRequest struct {
	Name   *string  `json:"name"`
	Budget *float64 `json:"budget"`
	Status *string  `json:"status"`
}

func (h *CampaignHandler) Update(c *gin.Context) {
	campaignID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req updateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	cmd, err := commands.NewUpdateCampaignCommand(campaignID, req.Name, req.Budget, req.Status)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	campaign, err := h.commands.Update(c.Request.Context(), cmd)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, campaign)
}

func (h *CampaignHandler) Delete(c *gin.Context) {
	campaignID, ok := pathID(c, "id")
	if !ok {
		return
	}
	found, err := h.commands.Delete(c.Request.Context(), campaignID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"deleted": found})
}

func (h *CampaignHandler) Get(c *gin.Context) {
	campaignID, ok := pathID(c, "id")
	if !ok {
		return
	}
	q, err := commands.NewByIDQuery(campaignID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	campaign, err := h.queries.GetByID(c.Request.Context(), q)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, campaign)
}

func (h *CampaignHandler) ListByUser(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	q, err := commands.NewByUserQuery(userID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	campaigns, err := h.queries.ListByUser(c.Request.Context(), q)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, campaigns)
}

type attachOfferRequest struct {
	OfferID  uuid.UUID `json:"offer_id"`
	Position int       `json:"position"`
}

func (h *CampaignHandler) AttachOffer(c *gin.Context) {
	campaignID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req attachOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	cmd, err := commands.NewAttachOfferCommand(campaignID, req.OfferID, req.Position)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	link, err := h.commands.AttachOffer(c.Request.Context(), cmd)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, link)
}

func (h *CampaignHandler) DetachOffer(c *gin.Context) {
	campaignID, ok := pathID(c, "id")
	if !ok {
		return
	}
	offerID, ok := pathID(c, "offerId")
	if !ok {
		return
	}
	found, err := h.commands.DetachOffer(c.Request.Context(), campaignID, offerID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"detached": found})
}

func (h *CampaignHandler) ListOffers(c *gin.Context) {
	campaignID, ok := pathID(c, "id")
	if !ok {
		return
	}
	links, err := h.queries.ListOffers(c.Request.Context(), campaignID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, links)
}

// statsReady guards the counter endpoints: stats are optional and only wired
// when a Redis address is configured.
func (h *CampaignHandler) statsReady(c *gin.Context) bool {
	if h.stats == nil {
		response.RespondError(c, http.StatusServiceUnavailable, "stats_unavailable", nil)
		return false
	}
	return true
}

func (h *CampaignHandler) RecordImpression(c *gin.Context) {
	if !h.statsReady(c) {
		return
	}
	campaignID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.stats.RecordImpression(c.Request.Context(), campaignID); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CampaignHandler) RecordClick(c *gin.Context) {
	if !h.statsReady(c) {
		return
	}
	campaignID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.stats.RecordClick(c.Request.Context(), campaignID); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CampaignHandler) CTR(c *gin.Context) {
	if !h.statsReady(c) {
		return
	}
	campaignID, ok := pathID(c, "id")
	if !ok {
		return
	}
	ctr, err := h.stats.CTR(c.Request.Context(), campaignID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"campaign_id": campaignID, "ctr": ctr})
}
