package catalog

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

type OfferRepo interface {
	Create(ctx context.Context, tx *gorm.DB, offer *types.Offer) (*types.Offer, error)
	GetByID(ctx context.Context, tx *gorm.DB, offerID uuid.UUID) (*types.Offer, error)
	ListByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Offer, error)
	ListByCategory(ctx context.Context, tx *gorm.DB, category string) ([]*types.Offer, error)
	ListAll(ctx context.Context, tx *gorm.DB) ([]*types.Offer, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, offerID uuid.UUID, fields map[string]any) (int64, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, offerID uuid.UUID) (int64, error)
	ExistsByID(ctx context.Context, tx *gorm.DB, offerID uuid.UUID) (bool, error)
}

type offerRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOfferRepo(db *gorm.DB, baseLog *logger.Logger) OfferRepo {
	repoLog := baseLog.With("repo", "OfferRepo")
	return &offerRepo{db: db, log: repoLog}
}

func (r *offerRepo) Create(ctx context.Context, tx *gorm.DB, offer *types.Offer) (*types.Offer, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	now := time.Now().UTC()
	if offer.ID == uuid.Nil {
		offer.ID = uuid.New()
	}
	offer.CreatedAt = now
	offer.UpdatedAt = now

	if err := transaction.WithContext(ctx).Create(offer).Error; err != nil {
		return nil, err
	}
	return offer, nil
}

func (r *offerRepo) GetByID(ctx context.Context, tx *gorm.DB, offerID uuid.UUID) (*types.Offer, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.Offer
	if err := transaction.WithContext(ctx).
		First(&result, "id = ?", offerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (r *offerRepo) ListByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Offer, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Offer
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *offerRepo) ListByCategory(ctx context.Context, tx *gorm.DB, category string) ([]*types.Offer, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Offer
	if err := transaction.WithContext(ctx).
		Where("category = ?", category).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *offerRepo) ListAll(ctx context.Context, tx *gorm.DB) ([]*types.Offer, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Offer
	if err := transaction.WithContext(ctx).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *offerRepo) UpdateFields(ctx context.Context, tx *gorm.DB, offerID uuid.UUID, fields map[string]any) (int64, error) {
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
		Model(&types.Offer{}).
		Where("id = ?", offerID).
		Updates(updates)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *offerRepo) DeleteByID(ctx context.Context, tx *gorm.DB, offerID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	res := transaction.WithContext(ctx).
		Where("id = ?", offerID).
		Delete(&types.Offer{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *offerRepo) ExistsByID(ctx context.Context, tx *gorm.DB, offerID uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Offer{}).
		Where("id = ?", offerID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
