package promo

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

type CouponRepo interface {
	Create(ctx context.Context, tx *gorm.DB, coupon *types.Coupon) (*types.Coupon, error)
	GetByID(ctx context.Context, tx *gorm.DB, couponID uuid.UUID) (*types.Coupon, error)
	ListByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Coupon, error)
	// ListAll feeds the daily expiry scan: a full-table load, ordered by expiry.
	ListAll(ctx context.Context, tx *gorm.DB) ([]*types.Coupon, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, couponID uuid.UUID, fields map[string]any) (int64, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, couponID uuid.UUID) (int64, error)
}

type couponRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCouponRepo(db *gorm.DB, baseLog *logger.Logger) CouponRepo {
	repoLog := baseLog.With("repo", "CouponRepo")
	return &couponRepo{db: db, log: repoLog}
}

func (r *couponRepo) Create(ctx context.Context, tx *gorm.DB, coupon *types.Coupon) (*types.Coupon, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	now := time.Now().UTC()
	if coupon.ID == uuid.Nil {
		coupon.ID = uuid.New()
	}
	coupon.CreatedAt = now
	coupon.UpdatedAt = now

	if err := transaction.WithContext(ctx).Create(coupon).Error; err != nil {
		return nil, err
	}
	return coupon, nil
}

func (r *couponRepo) GetByID(ctx context.Context, tx *gorm.DB, couponID uuid.UUID) (*types.Coupon, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.Coupon
	if err := transaction.WithContext(ctx).
		First(&result, "id = ?", couponID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (r *couponRepo) ListByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Coupon, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Coupon
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("expires_on ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *couponRepo) ListAll(ctx context.Context, tx *gorm.DB) ([]*types.Coupon, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Coupon
	if err := transaction.WithContext(ctx).
		Order("expires_on ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *couponRepo) UpdateFields(ctx context.Context, tx *gorm.DB, couponID uuid.UUID, fields map[string]any) (int64, error) {
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
		Model(&types.Coupon{}).
		Where("id = ?", couponID).
		Updates(updates)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *couponRepo) DeleteByID(ctx context.Context, tx *gorm.DB, couponID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	res := transaction.WithContext(ctx).
		Where("id = ?", couponID).
		Delete(&types.Coupon{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
