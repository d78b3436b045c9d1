package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/offermart/marketplace-backend/internal/data/repos/engagement"
	types "github.com/offermart/marketplace-backend/internal/domain"
	"github.com/offermart/marketplace-backend/internal/domain/commands"
	apperrors "github.com/offermart/marketplace-backend/internal/pkg/errors"
	"github.com/offermart/marketplace-backend/internal/pkg/logger"
)

type SubscriptionCommandService interface {
	Create(ctx context.Context, cmd commands.CreateSubscriptionCommand) (*types.Subscription, error)
	Cancel(ctx context.Context, subscriptionID uuid.UUID) (*types.Subscription, error)
	Delete(ctx context.Context, subscriptionID uuid.UUID) (bool, error)
}

type SubscriptionQueryService interface {
	GetByID(ctx context.Context, q commands.ByIDQuery) (*types.Subscription, error)
	ListByUser(ctx context.Context, q commands.ByUserQuery) ([]*types.Subscription, error)
}

type subscriptionCommandService struct {
	db   *gorm.DB
	log  *logger.Logger
	repo engagement.SubscriptionRepo
}

func NewSubscriptionCommandService(db *gorm.DB, baseLog *logger.Logger, repo engagement.SubscriptionRepo) SubscriptionCommandService {
	return &subscriptionCommandService{
		db:   db,
		log:  baseLog.With("service", "SubscriptionCommandService"),
		repo: repo,
	}
}

func (s *subscriptionCommandService) Create(ctx context.Context, cmd commands.CreateSubscriptionCommand) (*types.Subscription, error) {
	now := time.Now().UTC()
	subscription := &types.Subscription{
		UserID:    cmd.UserID,
		Plan:      cmd.Plan,
		Status:    types.SubscriptionStatusActive,
		StartedAt: now,
		ExpiresAt: now.AddDate(0, cmd.Months, 0),
	}
	created, err := s.repo.Create(ctx, nil, subscription)
	if err != nil {
		s.log.Error("Subscription create failed", "user_id", cmd.UserID, "error", err)
		return nil, err
	}
	return created, nil
}

func (s *subscriptionCommandService) Cancel(ctx context.Context, subscriptionID uuid.UUID) (*types.Subscription, error) {
	affected, err := s.repo.UpdateFields(ctx, nil, subscriptionID, map[string]any{
		"status": types.SubscriptionStatusCanceled,
	})
	if err != nil {
		s.log.Error("Subscription cancel failed", "subscription_id", subscriptionID, "error", err)
		return nil, err
	}
	if affected == 0 {
		return nil, apperrors.ErrNotFound
	}
	return s.repo.GetByID(ctx, nil, subscriptionID)
}

func (s *subscriptionCommandService) Delete(ctx context.Context, subscriptionID uuid.UUID) (bool, error) {
	affected, err := s.repo.DeleteByID(ctx, nil, subscriptionID)
	if err != nil {
		s.log.Error("Subscription delete failed", "subscription_id", subscriptionID, "error", err)
		return false, err
	}
	return affected > 0, nil
}

type subscriptionQueryService struct {
	db   *gorm.DB
	log  *logger.Logger
	repo engagement.SubscriptionRepo
}

func NewSubscriptionQueryService(db *gorm.DB, baseLog *logger.Logger, repo engagement.SubscriptionRepo) SubscriptionQueryService {
	return &subscriptionQueryService{
		db:   db,
		log:  baseLog.With("service", "SubscriptionQueryService"),
		repo: repo,
	}
}

func (s *subscriptionQueryService) GetByID(ctx context.Context, q commands.ByIDQuery) (*types.Subscription, error) {
	return s.repo.GetByID(ctx, nil, q.ID)
}

func (s *subscriptionQueryService) ListByUser(ctx context.Context, q commands.ByUserQuery) ([]*types.Subscription, error) {
	results, err := s.repo.ListByUserID(ctx, nil, q.UserID)
	if err != nil {
		s.log.Error("Subscription list failed", "user_id", q.UserID, "error", err)
		return []*types.Subscription{}, nil
	}
	return results, nil
}
