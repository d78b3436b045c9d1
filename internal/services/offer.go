package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/offermart/marketplace-backend/internal/data/repos/catalog"
	types "github.com/offermart/marketplace-backend/internal/domain"
	"github.com/offermart/marketplace-backend/internal/domain/commands"
	apperrors "github.com/offermart/marketplace-backend/internal/pkg/errors"
	"github.com/offermart/marketplace-backend/internal/pkg/logger"
)

// OfferCommandService is the only write path for offers. Reads live on
// OfferQueryService; the split keeps each side independently testable.
type OfferCommandService interface {
	Create(ctx context.Context, cmd commands.CreateOfferCommand) (*types.Offer, error)
	Update(ctx context.Context, cmd commands.UpdateOfferCommand) (*types.Offer, error)
	Delete(ctx context.Context, offerID uuid.UUID) (bool, error)
}

type OfferQueryService interface {
	GetByID(ctx context.Context, q commands.ByIDQuery) (*types.Offer, error)
	ListByUser(ctx context.Context, q commands.ByUserQuery) ([]*types.Offer, error)
	ListByCategory(ctx context.Context, category string) ([]*types.Offer, error)
	ListAll(ctx context.Context) ([]*types.Offer, error)
}

type offerCommandService struct {
	db   *gorm.DB
	log  *logger.Logger
	repo catalog.OfferRepo
}

func NewOfferCommandService(db *gorm.DB, baseLog *logger.Logger, repo catalog.OfferRepo) OfferCommandService {
	return &offerCommandService{
		db:   db,
		log:  baseLog.With("service", "OfferCommandService"),
		repo: repo,
	}
}

func (s *offerCommandService) Create(ctx context.Context, cmd commands.CreateOfferCommand) (*types.Offer, error) {
	offer := &types.Offer{
		UserID:      cmd.UserID,
		Title:       cmd.Title,
		Description: cmd.Description,
		Price:       cmd.Price,
		Category:    cmd.Category,
		Status:      types.OfferStatusActive,
		ImageURL:    cmd.ImageURL,
	}
	created, err := s.repo.Create(ctx, nil, offer)
	if err != nil {
		s.log.Error("Offer create failed", "user_id", cmd.UserID, "error", err)
		return nil, err
	}
	return created, nil
}

func (s *offerCommandService) Update(ctx context.Context, cmd commands.UpdateOfferCommand) (*types.Offer, error) {
	fields := map[string]any{}
	if cmd.Title != nil {
		fields["title"] = *cmd.Title
	}
	if cmd.Description != nil {
		fields["description"] = *cmd.Description
	}
	if cmd.Price != nil {
		fields["price"] = *cmd.Price
	}
	if cmd.Category != nil {
		fields["category"] = *cmd.Category
	}
	if cmd.Status != nil {
		fields["status"] = *cmd.Status
	}
	if cmd.ImageURL != nil {
		fields["image_url"] = *cmd.ImageURL
	}

	if len(fields) > 0 {
		affected, err := s.repo.UpdateFields(ctx, nil, cmd.OfferID, fields)
		if err != nil {
			s.log.Error("Offer update failed", "offer_id", cmd.OfferID, "error", err)
			return nil, err
		}
		if affected == 0 {
			return nil, apperrors.ErrNotFound
		}
	}
	return s.repo.GetByID(ctx, nil, cmd.OfferID)
}

func (s *offerCommandService) Delete(ctx context.Context, offerID uuid.UUID) (bool, error) {
	affected, err := s.repo.DeleteByID(ctx, nil, offerID)
	if err != nil {
		s.log.Error("Offer delete failed", "offer_id", offerID, "error", err)
		return false, err
	}
	return affected > 0, nil
}

type offerQueryService struct {
	db   *gorm.DB
	log  *logger.Logger
	repo catalog.OfferRepo
}

func NewOfferQueryService(db *gorm.DB, baseLog *logger.Logger, repo catalog.OfferRepo) OfferQueryService {
	return &offerQueryService{
		db:   db,
		log:  baseLog.With("service", "OfferQueryService"),
		repo: repo,
	}
}

func (s *offerQueryService) GetByID(ctx context.Context, q commands.ByIDQuery) (*types.Offer, error) {
	return s.repo.GetByID(ctx, nil, q.ID)
}

// Collection reads degrade to an empty page on a store fault; the fault is
// logged here and not surfaced to the caller.
func (s *offerQueryService) ListByUser(ctx context.Context, q commands.ByUserQuery) ([]*types.Offer, error) {
	results, err := s.repo.ListByUserID(ctx, nil, q.UserID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.log.Error("Offer list by user failed", "user_id", q.UserID, "error", err)
		return []*types.Offer{}, nil
	}
	return results, nil
}

func (s *offerQueryService) ListByCategory(ctx context.Context, category string) ([]*types.Offer, error) {
	results, err := s.repo.ListByCategory(ctx, nil, category)
	if err != nil {
		s.log.Error("Offer list by category failed", "category", category, "error", err)
		return []*types.Offer{}, nil
	}
	return results, nil
}

func (s *offerQueryService) ListAll(ctx context.Context) ([]*types.Offer, error) {
	results, err := s.repo.ListAll(ctx, nil)
	if err != nil {
		s.log.Error("Offer list failed", "error", err)
		return []*types.Offer{}, nil
	}
	return results, nil
}
