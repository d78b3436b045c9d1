package engagement

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/offermart/marketplace-backend/internal/domain"
	apperrors "github.com/offermart/marketplace-backend/internal/pkg/errors"
	"github.com/offermart/marketplace-backend/internal/pkg/logger"
)

type NotificationRepo interface {
	Create(ctx context.Context, tx *gorm.DB, notification *types.Notification) (*types.Notification, error)
	GetByID(ctx context.Context, tx *gorm.DB, notificationID uuid.UUID) (*types.Notification, error)
	ListByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Notification, error)
	ListUnreadByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Notification, error)
	MarkRead(ctx context.Context, tx *gorm.DB, notificationID uuid.UUID) (int64, error)
	MarkAllReadByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, notificationID uuid.UUID) (int64, error)
	// ExistsForRelated reports whether a notification with the given code
	// already references the related entity. The expiry scan uses it to stay
	// idempotent across cycles.
	ExistsForRelated(ctx context.Context, tx *gorm.DB, userID uuid.UUID, code string, relatedID uuid.UUID) (bool, error)
}

type notificationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewNotificationRepo(db *gorm.DB, baseLog *logger.Logger) NotificationRepo {
	repoLog := baseLog.With("repo", "NotificationRepo")
	return &notificationRepo{db: db, log: repoLog}
}

func (r *notificationRepo) Create(ctx context.Context, tx *gorm.DB, notification *types.Notification) (*types.Notification, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	now := time.Now().UTC()
	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
	}
	notification.CreatedAt = now
	notification.UpdatedAt = now

	if err := transaction.WithContext(ctx).Create(notification).Error; err != nil {
		return nil, err
	}
	return notification, nil
}

func (r *notificationRepo) GetByID(ctx context.Context, tx *gorm.DB, notificationID uuid.UUID) (*types.Notification, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.Notification
	if err := transaction.WithContext(ctx).
		First(&result, "id = ?", notificationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (r *notificationRepo) ListByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Notification, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Notification
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *notificationRepo) ListUnreadByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Notification, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Notification
	if err := transaction.WithContext(ctx).
		Where("user_id = ? AND read = ?", userID, false).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *notificationRepo) MarkRead(ctx context.Context, tx *gorm.DB, notificationID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	res := transaction.WithContext(ctx).
		Model(&types.Notification{}).
		Where("id = ? AND read = ?", notificationID, false).
		Updates(map[string]any{
			"read":       true,
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *notificationRepo) MarkAllReadByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	res := transaction.WithContext(ctx).
		Model(&types.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Updates(map[string]any{
			"read":       true,
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *notificationRepo) DeleteByID(ctx context.Context, tx *gorm.DB, notificationID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	res := transaction.WithContext(ctx).
		Where("id = ?", notificationID).
		Delete(&types.Notification{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *notificationRepo) ExistsForRelated(ctx context.Context, tx *gorm.DB, userID uuid.UUID, code string, relatedID uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Notification{}).
		Where("user_id = ? AND code = ? AND related_id = ?", userID, code, relatedID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
