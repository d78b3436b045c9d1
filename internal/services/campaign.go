package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/offermart/marketplace-backend/internal/data/repos/catalog"
	types "github.com/offermart/marketplace-backend/internal/domain"
	"github.com/offermart/marketplace-backend/internal/domain/commands"
	apperrors "github.com/offermart/marketplace-backend/internal/pkg/errors"
	"github.com/offermart/marketplace-backend/internal/pkg/logger"
)

type CampaignCommandService interface {
	Create(ctx context.Context, cmd commands.CreateCampaignCommand) (*types.Campaign, error)
	Update(ctx context.Context, cmd commands.UpdateCampaignCommand) (*types.Campaign, error)
	Delete(ctx context.Context, campaignID uuid.UUID) (bool, error)
	AttachOffer(ctx context.Context, cmd commands.AttachOfferCommand) (*types.CampaignOffer, error)
	DetachOffer(ctx context.Context, campaignID, offerID uuid.UUID) (bool, error)
}

type CampaignQueryService interface {
	GetByID(ctx context.Context, q commands.ByIDQuery) (*types.Campaign, error)
	ListByUser(ctx context.Context, q commands.ByUserQuery) ([]*types.Campaign, error)
	ListOffers(ctx context.Context, campaignID uuid.UUID) ([]*types.CampaignOffer, error)
}

type campaignCommandService struct {
	db        *gorm.DB
	log       *logger.Logger
	repo      catalog.CampaignRepo
	linkRepo  catalog.CampaignOfferRepo
	offerRepo catalog.OfferRepo
}

func NewCampaignCommandService(db *gorm.DB, baseLog *logger.Logger, repo catalog.CampaignRepo, linkRepo catalog.CampaignOfferRepo, offerRepo catalog.OfferRepo) CampaignCommandService {
	return &campaignCommandService{
		db:        db,
		log:       baseLog.With("service", "CampaignCommandService"),
		repo:      repo,
		linkRepo:  linkRepo,
		offerRepo: offerRepo,
	}
}

func (s *campaignCommandService) Create(ctx context.Context, cmd commands.CreateCampaignCommand) (*types.Campaign, error) {
	campaign := &types.Campaign{
		UserID: cmd.UserID,
		Name:   cmd.Name,
		Budget: cmd.Budget,
		Status: types.CampaignStatusDraft,
	}
	created, err := s.repo.Create(ctx, nil, campaign)
	if err != nil {
		s.log.Error("Campaign create failed", "user_id", cmd.UserID, "error", err)
		return nil, err
	}
	return created, nil
}

func (s *campaignCommandService) Update(ctx context.Context, cmd commands.UpdateCampaignCommand) (*types.Campaign, error) {
	fields := map[string]any{}
	if cmd.Name != nil {
		fields["name"] = *cmd.Name
	}
	if cmd.Budget != nil {
		fields["budget"] = *cmd.Budget
	}
	if cmd.Status != nil {
		fields["status"] = *cmd.Status
	}

	if len(fields) > 0 {
		affected, err := s.repo.UpdateFields(ctx, nil, cmd.CampaignID, fields)
		if err != nil {
			s.log.Error("Campaign update failed", "campaign_id", cmd.CampaignID, "error", err)
			return nil, err
		}
		if affected == 0 {
			return nil, apperrors.ErrNotFound
		}
	}
	return s.repo.GetByID(ctx, nil, cmd.CampaignID)
}

// Delete removes the campaign and its offer links in one transaction.
func (s *campaignCommandService) Delete(ctx context.Context, campaignID uuid.UUID) (bool, error) {
	var affected int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.linkRepo.DetachAllByCampaignID(ctx, tx, campaignID); err != nil {
			return err
		}
		var err error
		affected, err = s.repo.DeleteByID(ctx, tx, campaignID)
		return err
	})
	if err != nil {
		s.log.Error("Campaign delete failed", "campaign_id", campaignID, "error", err)
		return false, err
	}
	return affected > 0, nil
}

func (s *campaignCommandService) AttachOffer(ctx context.Context, cmd commands.AttachOfferCommand) (*types.CampaignOffer, error) {
	// Both ends must exist; links are identifier-only, so check explicitly.
	if ok, err := s.repo.ExistsByID(ctx, nil, cmd.CampaignID); err != nil {
		return nil, err
	} else if !ok {
		return nil, apperrors.ErrNotFound
	}
	if ok, err := s.offerRepo.ExistsByID(ctx, nil, cmd.OfferID); err != nil {
		return nil, err
	} else if !ok {
		return nil, apperrors.ErrNotFound
	}

	link, err := s.linkRepo.Attach(ctx, nil, &types.CampaignOffer{
		CampaignID: cmd.CampaignID,
		OfferID:    cmd.OfferID,
		Position:   cmd.Position,
	})
	if err != nil {
		s.log.Error("Campaign offer attach failed", "campaign_id", cmd.CampaignID, "offer_id", cmd.OfferID, "error", err)
		return nil, err
	}
	return link, nil
}

func (s *campaignCommandService) DetachOffer(ctx context.Context, campaignID, offerID uuid.UUID) (bool, error) {
	affected, err := s.linkRepo.Detach(ctx, nil, campaignID, offerID)
	if err != nil {
		s.log.Error("Campaign offer detach failed", "campaign_id", campaignID, "offer_id", offerID, "error", err)
		return false, err
	}
	return affected > 0, nil
}

type campaignQueryService struct {
	db       *gorm.DB
	log      *logger.Logger
	repo     catalog.CampaignRepo
	linkRepo catalog.CampaignOfferRepo
}

func NewCampaignQueryService(db *gorm.DB, baseLog *logger.Logger, repo catalog.CampaignRepo, linkRepo catalog.CampaignOfferRepo) CampaignQueryService {
	return &campaignQueryService{
		db:       db,
		log:      baseLog.With("service", "CampaignQueryService"),
		repo:     repo,
		linkRepo: linkRepo,
	}
}

func (s *campaignQueryService) GetByID(ctx context.Context, q commands.ByIDQuery) (*types.Campaign, error) {
	return s.repo.GetByID(ctx, nil, q.ID)
}

func (s *campaignQueryService) ListByUser(ctx context.Context, q commands.ByUserQuery) ([]*types.Campaign, error) {
	results, err := s.repo.ListByUserID(ctx, nil, q.UserID)
	if err != nil {
		s.log.Error("Campaign list by user failed", "user_id", q.UserID, "error", err)
		return []*types.Campaign{}, nil
	}
	return results, nil
}

func (s *campaignQueryService) ListOffers(ctx context.Context, campaignID uuid.UUID) ([]*types.CampaignOffer, error) {
	results, err := s.linkRepo.ListByCampaignID(ctx, nil, campaignID)
	if err != nil {
		s.log.Error("Campaign offer list failed", "campaign_id", campaignID, "error", err)
		return []*types.CampaignOffer{}, nil
	}
	return results, nil
}
