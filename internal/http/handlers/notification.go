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

type NotificationHandler struct {
	log      *logger.Logger
	commands services.NotificationCommandService
	queries  services.NotificationQueryService
}

func NewNotificationHandler(log *logger.Logger, commands services.NotificationCommandService, queries services.NotificationQueryService) *NotificationHandler {
	return &NotificationHandler{
		log:      log.With("handler", "NotificationHandler"),
		commands: commands,
		queries:  queries,
	}
}

type createNotificationRequest struct {
	UserID    uuid.UUID  `json:"user_id"`
	Code      string     `json:"code"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	RelatedID *uuid.UUID `json:"related_id"`
}

func (h *NotificationHandler) Create(c *gin.Context) {
	var req createNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	cmd, err := commands.NewCreateNotificationCommand(req.UserID, req.Code, req.Title, req.Message, req.RelatedID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	notification, err := h.commands.Create(c.Request.Context(), cmd)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, notification)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	notificationID, ok := pathID(c, "id")
	if !ok {
		return
	}
	found, err := h.commands.MarkRead(c.Request.Context(), notificationID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"marked": found})
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	count, err := h.commands.MarkAllReadForUser(c.Request.Context(), userID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"marked": count})
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	notificationID, ok := pathID(c, "id")
	if !ok {
		return
	}
	found, err := h.commands.Delete(c.Request.Context(), notificationID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"deleted": found})
}

func (h *NotificationHandler) Get(c *gin.Context) {
	notificationID, ok := pathID(c, "id")
	if !ok {
		return
	}
	q, err := commands.NewByIDQuery(notificationID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	notification, err := h.queries.GetByID(c.Request.Context(), q)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, notification)
}

func (h *NotificationHandler) ListByUser(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	q, err := commands.NewByUserQuery(userID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}

	ctx := c.Request.Context()
	if c.Query("unread") == "true" {
		notifications, err := h.queries.ListUnreadByUser(ctx, q)
		if err != nil {
			response.RespondServiceError(c, err)
			return
		}
		response.RespondOK(c, notifications)
		return
	}
	notifications, err := h.queries.ListByUser(ctx, q)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, notifications)
}
