package orders

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/offermart/marketplace-backend/internal/domain"
	apperrors "github.com/offermart/marketplace-backend/internal/pkg/errors"
	"github.com/offermart/marketplace-backend/internal/pkg/logger"
)

// CartRepo owns both the cart row (one per user) and its item rows. Items are
// unique per (cart_id, offer_id); re-adding an offer replaces the quantity.
type CartRepo interface {
	GetOrCreateByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.Cart, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.Cart, error)
	UpsertItem(ctx context.Context, tx *gorm.DB, item *types.CartItem) (*types.CartItem, error)
	HasItem(ctx context.Context, tx *gorm.DB, cartID, offerID uuid.UUID) (bool, error)
	ListItems(ctx context.Context, tx *gorm.DB, cartID uuid.UUID) ([]*types.CartItem, error)
	CountItems(ctx context.Context, tx *gorm.DB, cartID uuid.UUID) (int64, error)
	RemoveItem(ctx context.Context, tx *gorm.DB, cartID, offerID uuid.UUID) (int64, error)
	ClearItems(ctx context.Context, tx *gorm.DB, cartID uuid.UUID) (int64, error)
}

type cartRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCartRepo(db *gorm.DB, baseLog *logger.Logger) CartRepo {
	repoLog := baseLog.With("repo", "CartRepo")
	return &cartRepo{db: db, log: repoLog}
}

func (r *cartRepo) GetOrCreateByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.Cart, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	cart, err := r.GetByUserID(ctx, transaction, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	fresh := &types.Cart{
		Audit:  types.Audit{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		UserID: userID,
	}
	if err := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).
		Create(fresh).Error; err != nil {
		return nil, err
	}
	// Re-read in case a concurrent request won the insert.
	return r.GetByUserID(ctx, transaction, userID)
}

func (r *cartRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.Cart, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.Cart
	if err := transaction.WithContext(ctx).
		First(&result, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (r *cartRepo) UpsertItem(ctx context.Context, tx *gorm.DB, item *types.CartItem) (*types.CartItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	now := time.Now().UTC()
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	item.CreatedAt = now
	item.UpdatedAt = now

	if err := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "cart_id"}, {Name: "offer_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"quantity", "updated_at"}),
		}).
		Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (r *cartRepo) HasItem(ctx context.Context, tx *gorm.DB, cartID, offerID uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.CartItem{}).
		Where("cart_id = ? AND offer_id = ?", cartID, offerID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *cartRepo) ListItems(ctx context.Context, tx *gorm.DB, cartID uuid.UUID) ([]*types.CartItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.CartItem
	if err := transaction.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *cartRepo) CountItems(ctx context.Context, tx *gorm.DB, cartID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.CartItem{}).
		Where("cart_id = ?", cartID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *cartRepo) RemoveItem(ctx context.Context, tx *gorm.DB, cartID, offerID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	res := transaction.WithContext(ctx).
		Where("cart_id = ? AND offer_id = ?", cartID, offerID).
		Delete(&types.CartItem{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *cartRepo) ClearItems(ctx context.Context, tx *gorm.DB, cartID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	res := transaction.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&types.CartItem{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
