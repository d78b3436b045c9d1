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

type PaymentHandler struct {
	log      *logger.Logger
	commands services.PaymentCommandService
	queries  services.PaymentQueryService
}

func NewPaymentHandler(log *logger.Logger, commands services.PaymentCommandService, queries services.PaymentQueryService) *PaymentHandler {
	return &PaymentHandler{
		log:      log.With("handler", "PaymentHandler"),
		commands: commands,
		queries:  queries,
	}
}

type createPaymentRequest struct {
	UserID uuid.UUID  `json:"user_id"`
	SaleID *uuid.UUID `json:"sale_id"`
	Amount float64    `json:"amount"`
	Method string     `json:"method"`
}

func (h *PaymentHandler) Create(c *gin.Context) {
	var req createPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	cmd, err := commands.NewCreatePaymentCommand(req.UserID, req.SaleID, req.Amount, req.Method)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	payment, err := h.commands.Create(c.Request.Context(), cmd)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, payment)
}

type updatePaymentStatusRequest struct {
	Status string `json:"status"`
}

func (h *PaymentHandler) UpdateStatus(c *gin.Context) {
	paymentID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req updatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	payment, err := h.commands.UpdateStatus(c.Request.Context(), paymentID, req.Status)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, payment)
}

func (h *PaymentHandler) Delete(c *gin.Context) {
	paymentID, ok := pathID(c, "id")
	if !ok {
		return
	}
	found, err := h.commands.Delete(c.Request.Context(), paymentID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"deleted": found})
}

func (h *PaymentHandler) Get(c *gin.Context) {
	paymentID, ok := pathID(c, "id")
	if !ok {
		return
	}
	q, err := commands.NewByIDQuery(paymentID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	payment, err := h.queries.GetByID(c.Request.Context(), q)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, payment)
}

func (h *PaymentHandler) ListByUser(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	q, err := commands.NewByUserQuery(userID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	payments, err := h.queries.ListByUser(c.Request.Context(), q)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, payments)
}
