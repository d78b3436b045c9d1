package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/offermart/marketplace-backend/internal/data/repos/engagement"
	types "github.com/offermart/marketplace-backend/internal/domain"
	"github.com/offermart/marketplace-backend/internal/domain/commands"
	"github.com/offermart/marketplace-backend/internal/pkg/logger"
)

type FavoriteCommandService interface {
	// Create is idempotent: repeating the same (user, offer) pair returns the
	// existing favorite.
	Create(ctx context.Context, cmd commands.CreateFavoriteCommand) (*types.Favorite, error)
	Delete(ctx context.Context, userID, offerID uuid.UUID) (bool, error)
}

type FavoriteQueryService interface {
	ListByUser(ctx context.Context, q commands.ByUserQuery) ([]*types.Favorite, error)
	CountForOffer(ctx context.Context, offerID uuid.UUID) (int64, error)
}

type favoriteCommandService struct {
	db   *gorm.DB
	log  *logger.Logger
	repo engagement.FavoriteRepo
}

func NewFavoriteCommandService(db *gorm.DB, baseLog *logger.Logger, repo engagement.FavoriteRepo) FavoriteCommandService {
	return &favoriteCommandService{
		db:   db,
		log:  baseLog.With("service", "FavoriteCommandService"),
		repo: repo,
	}
}

func (s *favoriteCommandService) Create(ctx context.Context, cmd commands.CreateFavoriteCommand) (*types.Favorite, error) {
	favorite, created, err := s.repo.Create(ctx, nil, &types.Favorite{
		UserID:  cmd.UserID,
		OfferID: cmd.OfferID,
	})
	if err != nil {
		s.log.Error("Favorite create failed", "user_id", cmd.UserID, "offer_id", cmd.OfferID, "error", err)
		return nil, err
	}
	if !created {
		s.log.Debug("Favorite already present", "user_id", cmd.UserID, "offer_id", cmd.OfferID)
	}
	return favorite, nil
}

func (s *favoriteCommandService) Delete(ctx context.Context, userID, offerID uuid.UUID) (bool, error) {
	affected, err := s.repo.DeleteByUserAndOffer(ctx, nil, userID, offerID)
	if err != nil {
		s.log.Error("Favorite delete failed", "user_id", userID, "offer_id", offerID, "error", err)
		return false, err
	}
	return affected > 0, nil
}

type favoriteQueryService struct {
	db   *gorm.DB
	log  *logger.Logger
	repo engagement.FavoriteRepo
}

func NewFavoriteQueryService(db *gorm.DB, baseLog *logger.Logger, repo engagement.FavoriteRepo) FavoriteQueryService {
	return &favoriteQueryService{
		db:   db,
		log:  baseLog.With("service", "FavoriteQueryService"),
		repo: repo,
	}
}

func (s *favoriteQueryService) ListByUser(ctx context.Context, q commands.ByUserQuery) ([]*types.Favorite, error) {
	results, err := s.repo.ListByUserID(ctx, nil, q.UserID)
	if err != nil {
		s.log.Error("Favorite list failed", "user_id", q.UserID, "error", err)
		return []*types.Favorite{}, nil
	}
	return results, nil
}

func (s *favoriteQueryService) CountForOffer(ctx context.Context, offerID uuid.UUID) (int64, error) {
	return s.repo.CountByOfferID(ctx, nil, offerID)
}
