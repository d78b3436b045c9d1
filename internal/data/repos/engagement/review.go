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

type ReviewRepo interface {
	Create(ctx context.Context, tx *gorm.DB, review *types.Review) (*types.Review, error)
	GetByID(ctx context.Context, tx *gorm.DB, reviewID uuid.UUID) (*types.Review, error)
	ListByOfferID(ctx context.Context, tx *gorm.DB, offerID uuid.UUID) ([]*types.Review, error)
	ListByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Review, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, reviewID uuid.UUID, fields map[string]any) (int64, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, reviewID uuid.UUID) (int64, error)
	AverageRatingByOfferID(ctx context.Context, tx *gorm.DB, offerID uuid.UUID) (float64, int64, error)
}

type reviewRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewReviewRepo(db *gorm.DB, baseLog *logger.Logger) ReviewRepo {
	repoLog := baseLog.With("repo", "ReviewRepo")
	return &reviewRepo{db: db, log: repoLog}
}

func (r *reviewRepo) Create(ctx context.Context, tx *gorm.DB, review *types.Review) (*types.Review, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	now := time.Now().UTC()
	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	review.CreatedAt = now
	review.UpdatedAt = now

	if err := transaction.WithContext(ctx).Create(review).Error; err != nil {
		return nil, err
	}
	return review, nil
}

func (r *reviewRepo) GetByID(ctx context.Context, tx *gorm.DB, reviewID uuid.UUID) (*types.Review, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.Review
	if err := transaction.WithContext(ctx).
		First(&result, "id = ?", reviewID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (r *reviewRepo) ListByOfferID(ctx context.Context, tx *gorm.DB, offerID uuid.UUID) ([]*types.Review, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Review
	if err := transaction.WithContext(ctx).
		Where("offer_id = ?", offerID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *reviewRepo) ListByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Review, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Review
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *reviewRepo) UpdateFields(ctx context.Context, tx *gorm.DB, reviewID uuid.UUID, fields map[string]any) (int64, error) {
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
		Model(&types.Review{}).
		Where("id = ?", reviewID).
		Updates(updates)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *reviewRepo) DeleteByID(ctx context.Context, tx *gorm.DB, reviewID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	res := transaction.WithContext(ctx).
		Where("id = ?", reviewID).
		Delete(&types.Review{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *reviewRepo) AverageRatingByOfferID(ctx context.Context, tx *gorm.DB, offerID uuid.UUID) (float64, int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var row struct {
		Avg   float64
		Count int64
	}
	if err := transaction.WithContext(ctx).
		Model(&types.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("offer_id = ?", offerID).
		Scan(&row).Error; err != nil {
		return 0, 0, err
	}
	return row.Avg, row.Count, nil
}
