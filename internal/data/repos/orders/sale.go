package orders

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

type SaleRepo interface {
	Create(ctx context.Context, tx *gorm.DB, sale *types.Sale) (*types.Sale, error)
	GetByID(ctx context.Context, tx *gorm.DB, saleID uuid.UUID) (*types.Sale, error)
	ListBySellerID(ctx context.Context, tx *gorm.DB, sellerID uuid.UUID) ([]*types.Sale, error)
	ListByBuyerID(ctx context.Context, tx *gorm.DB, buyerID uuid.UUID) ([]*types.Sale, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, saleID uuid.UUID, fields map[string]any) (int64, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, saleID uuid.UUID) (int64, error)
}

type saleRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSaleRepo(db *gorm.DB, baseLog *logger.Logger) SaleRepo {
	repoLog := baseLog.With("repo", "SaleRepo")
	return &saleRepo{db: db, log: repoLog}
}

func (r *saleRepo) Create(ctx context.Context, tx *gorm.DB, sale *types.Sale) (*types.Sale, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	now := time.Now().UTC()
	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	sale.CreatedAt = now
	sale.UpdatedAt = now

	if err := transaction.WithContext(ctx).Create(sale).Error; err != nil {
		return nil, err
	}
	return sale, nil
}

func (r *saleRepo) GetByID(ctx context.Context, tx *gorm.DB, saleID uuid.UUID) (*types.Sale, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.Sale
	if err := transaction.WithContext(ctx).
		First(&result, "id = ?", saleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (r *saleRepo) ListBySellerID(ctx context.Context, tx *gorm.DB, sellerID uuid.UUID) ([]*types.Sale, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Sale
	if err := transaction.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *saleRepo) ListByBuyerID(ctx context.Context, tx *gorm.DB, buyerID uuid.UUID) ([]*types.Sale, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Sale
	if err := transaction.WithContext(ctx).
		Where("buyer_id = ?", buyerID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *saleRepo) UpdateFields(ctx context.Context, tx *gorm.DB, saleID uuid.UUID, fields map[string]any) (int64, error) {
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
		Model(&types.Sale{}).
		Where("id = ?", saleID).
		Updates(updates)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *saleRepo) DeleteByID(ctx context.Context, tx *gorm.DB, saleID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	res := transaction.WithContext(ctx).
		Where("id = ?", saleID).
		Delete(&types.Sale{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
