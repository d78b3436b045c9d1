package catalog

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

// CampaignOfferRepo manages the (campaign_id, offer_id) pair rows. Attach is
// an upsert on the pair, so repeated attaches never duplicate a row.
type CampaignOfferRepo interface {
	Attach(ctx context.Context, tx *gorm.DB, link *types.CampaignOffer) (*types.CampaignOffer, error)
	GetPair(ctx context.Context, tx *gorm.DB, campaignID, offerID uuid.UUID) (*types.CampaignOffer, error)
	ListByCampaignID(ctx context.Context, tx *gorm.DB, campaignID uuid.UUID) ([]*types.CampaignOffer, error)
	Detach(ctx context.Context, tx *gorm.DB, campaignID, offerID uuid.UUID) (int64, error)
	DetachAllByCampaignID(ctx context.Context, tx *gorm.DB, campaignID uuid.UUID) (int64, error)
}

type campaignOfferRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCampaignOfferRepo(db *gorm.DB, baseLog *logger.Logger) CampaignOfferRepo {
	repoLog := baseLog.With("repo", "CampaignOfferRepo")
	return &campaignOfferRepo{db: db, log: repoLog}
}

func (r *campaignOfferRepo) Attach(ctx context.Context, tx *gorm.DB, link *types.CampaignOffer) (*types.CampaignOffer, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	link.CreatedAt = time.Now().UTC()

	if err := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "campaign_id"}, {Name: "offer_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"position"}),
		}).
		Create(link).Error; err != nil {
		return nil, err
	}
	return link, nil
}

func (r *campaignOfferRepo) GetPair(ctx context.Context, tx *gorm.DB, campaignID, offerID uuid.UUID) (*types.CampaignOffer, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.CampaignOffer
	if err := transaction.WithContext(ctx).
		First(&result, "campaign_id = ? AND offer_id = ?", campaignID, offerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (r *campaignOfferRepo) ListByCampaignID(ctx context.Context, tx *gorm.DB, campaignID uuid.UUID) ([]*types.CampaignOffer, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.CampaignOffer
	if err := transaction.WithContext(ctx).
		Where("campaign_id = ?", campaignID).
		Order("position ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *campaignOfferRepo) Detach(ctx context.Context, tx *gorm.DB, campaignID, offerID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	res := transaction.WithContext(ctx).
		Where("campaign_id = ? AND offer_id = ?", campaignID, offerID).
		Delete(&types.CampaignOffer{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *campaignOfferRepo) DetachAllByCampaignID(ctx context.Context, tx *gorm.DB, campaignID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	res := transaction.WithContext(ctx).
		Where("campaign_id = ?", campaignID).
		Delete(&types.CampaignOffer{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
