package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/offermart/marketplace-backend/internal/data/repos/engagement"
	types "github.com/offermart/marketplace-backend/internal/domain"
	"github.com/offermart/marketplace-backend/internal/domain/commands"
	"github.com/offermart/marketplace-backend/internal/pkg/logger"
)

type NotificationCommandService interface {
	Create(ctx context.Context, cmd commands.CreateNotificationCommand) (*types.Notification, error)
	MarkRead(ctx context.Context, notificationID uuid.UUID) (bool, error)
	MarkAllReadForUser(ctx context.Context, userID uuid.UUID) (int64, error)
	Delete(ctx context.Context, notificationID uuid.UUID) (bool, error)
}

type NotificationQueryService interface {
	GetByID(ctx context.Context, q commands.ByIDQuery) (*types.Notification, error)
	ListByUser(ctx context.Context, q commands.ByUserQuery) ([]*types.Notification, error)
	ListUnreadByUser(ctx context.Context, q commands.ByUserQuery) ([]*types.Notification, error)
}

type notificationCommandService struct {
	db   *gorm.DB
	log  *logger.Logger
	repo engagement.NotificationRepo
}

func NewNotificationCommandService(db *gorm.DB, baseLog *logger.Logger, repo engagement.NotificationRepo) NotificationCommandService {
	return &notificationCommandService{
		db:   db,
		log:  baseLog.With("service", "NotificationCommandService"),
		repo: repo,
	}
}

func (s *notificationCommandService) Create(ctx context.Context, cmd commands.CreateNotificationCommand) (*types.Notification, error) {
	notification := &types.Notification{
		UserID:    cmd.UserID,
		Code:      cmd.Code,
		Title:     cmd.Title,
		Message:   cmd.Message,
		RelatedID: cmd.RelatedID,
	}
	created, err := s.repo.Create(ctx, nil, notification)
	if err != nil {
		s.log.Error("Notification create failed", "user_id", cmd.UserID, "code", cmd.Code, "error", err)
		return nil, err
	}
	return created, nil
}

func (s *notificationCommandService) MarkRead(ctx context.Context, notificationID uuid.UUID) (bool, error) {
	affected, err := s.repo.MarkRead(ctx, nil, notificationID)
	if err != nil {
		s.log.Error("Notification mark read failed", "notification_id", notificationID, "error", err)
		return false, err
	}
	return affected > 0, nil
}

func (s *notificationCommandService) MarkAllReadForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	affected, err := s.repo.MarkAllReadByUserID(ctx, nil, userID)
	if err != nil {
		s.log.Error("Notification mark all read failed", "user_id", userID, "error", err)
		return 0, err
	}
	return affected, nil
}

func (s *notificationCommandService) Delete(ctx context.Context, notificationID uuid.UUID) (bool, error) {
	affected, err := s.repo.DeleteByID(ctx, nil, notificationID)
	if err != nil {
		s.log.Error("Notification delete failed", "notification_id", notificationID, "error", err)
		return false, err
	}
	return affected > 0, nil
}

type notificationQueryService struct {
	db   *gorm.DB
	log  *logger.Logger
	repo engagement.NotificationRepo
}

func NewNotificationQueryService(db *gorm.DB, baseLog *logger.Logger, repo engagement.NotificationRepo) NotificationQueryService {
	return &notificationQueryService{
		db:   db,
		log:  baseLog.With("service", "NotificationQueryService"),
		repo: repo,
	}
}

func (s *notificationQueryService) GetByID(ctx context.Context, q commands.ByIDQuery) (*types.Notification, error) {
	return s.repo.GetByID(ctx, nil, q.ID)
}

func (s *notificationQueryService) ListByUser(ctx context.Context, q commands.ByUserQuery) ([]*types.Notification, error) {
	results, err := s.repo.ListByUserID(ctx, nil, q.UserID)
	if err != nil {
		s.log.Error("Notification list failed", "user_id", q.UserID, "error", err)
		return []*types.Notification{}, nil
	}
	return results, nil
}

func (s *notificationQueryService) ListUnreadByUser(ctx context.Context, q commands.ByUserQuery) ([]*types.Notification, error) {
	results, err := s.repo.ListUnreadByUserID(ctx, nil, q.UserID)
	if err != nil {
		s.log.Error("Notification unread list failed", "user_id", q.UserID, "error", err)
		return []*types.Notification{}, nil
	}
	return results, nil
}
