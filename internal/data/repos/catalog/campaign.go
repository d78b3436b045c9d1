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

type CampaignRepo interface {
	Create(ctx context.Context, tx *gorm.DB, campaign *types.Campaign) (*types.Campaign, error)
	GetByID(ctx context.Context, tx *gorm.DB, campaignID uuid.UUID) (*types.Campaign, error)
	ListByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Campaign, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, campaignID uuid.UUID, fields map[string]any) (int64, error)
	// AddStats accumulates flushed impression/click counters onto the row.
	AddStats(ctx context.Context, tx *gorm.DB, campaignID uuid.UUID, impressions, clicks int64) (int64, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, campaignID uuid.UUID) (int64, error)
	ExistsByID(ctx context.Context, tx *gorm.DB, campaignID uuid.UUID) (bool, error)
}

type campaignRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCampaignRepo(db *gorm.DB, baseLog *logger.Logger) CampaignRepo {
	repoLog := baseLog.With("repo", "CampaignRepo")
	return &campaignRepo{db: db, log: repoLog}
}

func (r *campaignRepo) Create(ctx context.Context, tx *gorm.DB, campaign *types.Campaign) (*types.Campaign, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	now := time.Now().UTC()
	if campaign.ID == uuid.Nil {
		campaign.ID = uuid.New()
	}
	campaign.CreatedAt = now
	campaign.UpdatedAt = now

	if err := transaction.WithContext(ctx).Create(campaign).Error; err != nil {
		return nil, err
	}
	return campaign, nil
}

func (r *campaignRepo) GetByID(ctx context.Context, tx *gorm.DB, campaignID uuid.UUID) (*types.Campaign, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.Campaign
	if err := transaction.WithContext(ctx).
		First(&result, "id = ?", campaignID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (r *campaignRepo) ListByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Campaign, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Campaign
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *campaignRepo) UpdateFields(ctx context.Context, tx *gorm.DB, campaignID uuid.UUID, fields map[string]any) (int64, error) {
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
		Model(&types.Campaign{}).
		Where("id = ?", campaignID).
		Updates(updates)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *campaignRepo) AddStats(ctx context.Context, tx *gorm.DB, campaignID uuid.UUID, impressions, clicks int64) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if impressions == 0 && clicks == 0 {
		return 0, nil
	}

	res := transaction.WithContext(ctx).
		Model(&types.Campaign{}).
		Where("id = ?", campaignID).
		Updates(map[string]any{
			"impressions": gorm.Expr("impressions + ?", impressions),
			"clicks":      gorm.Expr("clicks + ?", clicks),
			"updated_at":  time.Now().UTC(),
		})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *campaignRepo) DeleteByID(ctx context.Context, tx *gorm.DB, campaignID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	res := transaction.WithContext(ctx).
		Where("id = ?", campaignID).
		Delete(&types.Campaign{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *campaignRepo) ExistsByID(ctx context.Context, tx *gorm.DB, campaignID uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Campaign{}).
		Where("id = ?", campaignID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
