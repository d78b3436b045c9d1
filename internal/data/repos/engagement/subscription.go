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

type SubscriptionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, subscription *types.Subscription) (*types.Subscription, error)
	GetByID(ctx context.Context, tx *gorm.DB, subscriptionID uuid.UUID) (*types.Subscription, error)
	ListByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Subscription, error)
	ListActiveExpiringBefore(ctx context.Context, tx *gorm.DB, cutoff time.Time) ([]*types.Subscription, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, subscriptionID uuid.UUID, fields map[string]any) (int64, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, subscriptionID uuid.UUID) (int64, error)
}

type subscriptionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSubscriptionRepo(db *gorm.DB, baseLog *logger.Logger) SubscriptionRepo {
	repoLog := baseLog.With("repo", "SubscriptionRepo")
	return &subscriptionRepo{db: db, log: repoLog}
}

func (r *subscriptionRepo) Create(ctx context.Context, tx *gorm.DB, subscription *types.Subscription) (*types.Subscription, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	now := time.Now().UTC()
	if subscription.ID == uuid.Nil {
		subscription.ID = uuid.New()
	}
	subscription.CreatedAt = now
	subscription.UpdatedAt = now

	if err := transaction.WithContext(ctx).Create(subscription).Error; err != nil {
		return nil, err
	}
	return subscription, nil
}

func (r *subscriptionRepo) GetByID(ctx context.Context, tx *gorm.DB, subscriptionID uuid.UUID) (*types.Subscription, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.Subscription
	if err := transaction.WithContext(ctx).
		First(&result, "id = ?", subscriptionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (r *subscriptionRepo) ListByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Subscription, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Subscription
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *subscriptionRepo) ListActiveExpiringBefore(ctx context.Context, tx *gorm.DB, cutoff time.Time) ([]*types.Subscription, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Subscription
	if err := transaction.WithContext(ctx).
		Where("status = ? AND expires_at < ?", types.SubscriptionStatusActive, cutoff).
		Order("expires_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *subscriptionRepo) UpdateFields(ctx context.Context, tx *gorm.DB, subscriptionID uuid.UUID, fields map[string]any) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(fields) == 0 {
		return 0, nil
	}
	updates := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		updates[k] = v
	}
	updates["updated_at"] = time.Now().UTC()

	res := transaction.WithContext(ctx).
		Model(&types.Subscription{}).
		Where("id = ?", subscriptionID).
		Updates(updates)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *subscriptionRepo) DeleteByID(ctx context.Context, tx *gorm.DB, subscriptionID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	res := transaction.WithContext(ctx).
		Where("id = ?", subscriptionID).
		Delete(&types.Subscription{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
