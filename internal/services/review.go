package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/offermart/marketplace-backend/internal/data/repos/engagement"
	types "github.com/offermart/marketplace-backend/internal/domain"
	"github.com/offermart/marketplace-backend/internal/domain/commands"
	apperrors "github.com/offermart/marketplace-backend/internal/pkg/errors"
	"github.com/offermart/marketplace-backend/internal/pkg/logger"
)

type ReviewCommandService interface {
	Create(ctx context.Context, cmd commands.CreateReviewCommand) (*types.Review, error)
	Update(ctx context.Context, cmd commands.UpdateReviewCommand) (*types.Review, error)
	Delete(ctx context.Context, reviewID uuid.UUID) (bool, error)
}

// ReviewSummary is the aggregate view shown on an offer page.
type ReviewSummary struct {
	OfferID       uuid.UUID `json:"offer_id"`
	AverageRating float64   `json:"average_rating"`
	ReviewCount   int64     `json:"review_count"`
}

type ReviewQueryService interface {
	GetByID(ctx context.Context, q commands.ByIDQuery) (*types.Review, error)
	ListByOffer(ctx context.Context, offerID uuid.UUID) ([]*types.Review, error)
	ListByUser(ctx context.Context, q commands.ByUserQuery) ([]*types.Review, error)
	SummaryForOffer(ctx context.Context, offerID uuid.UUID) (*ReviewSummary, error)
}

type reviewCommandService struct {
	db   *gorm.DB
	log  *logger.Logger
	repo engagement.ReviewRepo
}

func NewReviewCommandService(db *gorm.DB, baseLog *logger.Logger, repo engagement.ReviewRepo) ReviewCommandService {
	return &reviewCommandService{
		db:   db,
		log:  baseLog.With("service", "ReviewCommandService"),
		repo: repo,
	}
}

func (s *reviewCommandService) Create(ctx context.Context, cmd commands.CreateReviewCommand) (*types.Review, error) {
	review := &types.Review{
		OfferID:  cmd.OfferID,
		UserID:   cmd.UserID,
		UserName: cmd.UserName,
		Rating:   cmd.Rating,
		Text:     cmd.Text,
	}
	created, err := s.repo.Create(ctx, nil, review)
	if err != nil {
		s.log.Error("Review create failed", "offer_id", cmd.OfferID, "user_id", cmd.UserID, "error", err)
		return nil, err
	}
	return created, nil
}

func (s *reviewCommandService) Update(ctx context.Context, cmd commands.UpdateReviewCommand) (*types.Review, error) {
	fields := map[string]any{}
	if cmd.Rating != nil {
		fields["rating"] = *cmd.Rating
	}
	if cmd.Text != nil {
		fields["text"] = *cmd.Text
	}

	if len(fields) > 0 {
		affected, err := s.repo.UpdateFields(ctx, nil, cmd.ReviewID, fields)
		if err != nil {
			s.log.Error("Review update failed", "review_id", cmd.ReviewID, "error", err)
			return nil, err
		}
		if affected == 0 {
			return nil, apperrors.ErrNotFound
		}
	}
	return s.repo.GetByID(ctx, nil, cmd.ReviewID)
}

func (s *reviewCommandService) Delete(ctx context.Context, reviewID uuid.UUID) (bool, error) {
	affected, err := s.repo.DeleteByID(ctx, nil, reviewID)
	if err != nil {
		s.log.Error("Review delete failed", "review_id", reviewID, "error", err)
		return false, err
	}
	return affected > 0, nil
}

type reviewQueryService struct {
	db   *gorm.DB
	log  *logger.Logger
	repo engagement.ReviewRepo
}

func NewReviewQueryService(db *gorm.DB, baseLog *logger.Logger, repo engagement.ReviewRepo) ReviewQueryService {
	return &reviewQueryService{
		db:   db,
		log:  baseLog.With("service", "ReviewQueryService"),
		repo: repo,
	}
}

func (s *reviewQueryService) GetByID(ctx context.Context, q commands.ByIDQuery) (*types.Review, error) {
	return s.repo.GetByID(ctx, nil, q.ID)
}

func (s *reviewQueryService) ListByOffer(ctx context.Context, offerID uuid.UUID) ([]*types.Review, error) {
	results, err := s.repo.ListByOfferID(ctx, nil, offerID)
	if err != nil {
		s.log.Error("Review list by offer failed", "offer_id", offerID, "error", err)
		return []*types.Review{}, nil
	}
	return results, nil
}

func (s *reviewQueryService) ListByUser(ctx context.Context, q commands.ByUserQuery) ([]*types.Review, error) {
	results, err := s.repo.ListByUserID(ctx, nil, q.UserID)
	if err != nil {
		s.log.Error("Review list by user failed", "user_id", q.UserID, "error", err)
		return []*types.Review{}, nil
	}
	return results, nil
}

func (s *reviewQueryService) SummaryForOffer(ctx context.Context, offerID uuid.UUID) (*ReviewSummary, error) {
	avg, count, err := s.repo.AverageRatingByOfferID(ctx, nil, offerID)
	if err != nil {
		return nil, err
	}
	return &ReviewSummary{OfferID: offerID, AverageRating: avg, ReviewCount: count}, nil
}
