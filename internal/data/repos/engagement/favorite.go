package engagement

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

// FavoriteRepo enforces at most one row per (user_id, offer_id). Create is
// idempotent: a repeat for the same pair returns the existing row.
type FavoriteRepo interface {
	Create(ctx context.Context, tx *gorm.DB, favorite *types.Favorite) (*types.Favorite, bool, error)
	GetByUserAndOffer(ctx context.Context, tx *gorm.DB, userID, offerID uuid.UUID) (*types.Favorite, error)
	ListByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Favorite, error)
	DeleteByUserAndOffer(ctx context.Context, tx *gorm.DB, userID, offerID uuid.UUID) (int64, error)
	CountByOfferID(ctx context.Context, tx *gorm.DB, offerID uuid.UUID) (int64, error)
}

type favoriteRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFavoriteRepo(db *gorm.DB, baseLog *logger.Logger) FavoriteRepo {
	repoLog := baseLog.With("repo", "FavoriteRepo")
	return &favoriteRepo{db: db, log: repoLog}
}

func (r *favoriteRepo) Create(ctx context.Context, tx *gorm.DB, favorite *types.Favorite) (*types.Favorite, bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	now := time.Now().UTC()
	if favorite.ID == uuid.Nil {
		favorite.ID = uuid.New()
	}
	favorite.CreatedAt = now
	favorite.UpdatedAt = now

	res := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "offer_id"}},
			DoNothing: true,
		}).
		Create(favorite)
	if res.Error != nil {
		return nil, false, res.Error
	}
	if res.RowsAffected == 0 {
		existing, err := r.GetByUserAndOffer(ctx, transaction, favorite.UserID, favorite.OfferID)
		if err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}
	return favorite, true, nil
}

func (r *favoriteRepo) GetByUserAndOffer(ctx context.Context, tx *gorm.DB, userID, offerID uuid.UUID) (*types.Favorite, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.Favorite
	if err := transaction.WithContext(ctx).
		First(&result, "user_id = ? AND offer_id = ?", userID, offerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (r *favoriteRepo) ListByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Favorite, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Favorite
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *favoriteRepo) DeleteByUserAndOffer(ctx context.Context, tx *gorm.DB, userID, offerID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	res := transaction.WithContext(ctx).
		Where("user_id = ? AND offer_id = ?", userID, offerID).
		Delete(&types.Favorite{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *favoriteRepo) CountByOfferID(ctx context.Context, tx *gorm.DB, offerID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Favorite{}).
		Where("offer_id = ?", offerID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
