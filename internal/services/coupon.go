package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/offermart/marketplace-backend/internal/data/repos/promo"
	types "github.com/offermart/marketplace-backend/internal/domain"
	"github.com/offermart/marketplace-backend/internal/domain/commands"
	apperrors "github.com/offermart/marketplace-backend/internal/pkg/errors"
	"github.com/offermart/marketplace-backend/internal/pkg/logger"
)

type CouponCommandService interface {
	Create(ctx context.Context, cmd commands.CreateCouponCommand) (*types.Coupon, error)
	Update(ctx context.Context, cmd commands.UpdateCouponCommand) (*types.Coupon, error)
	Delete(ctx context.Context, couponID uuid.UUID) (bool, error)
}

type CouponQueryService interface {
	GetByID(ctx context.Context, q commands.ByIDQuery) (*types.Coupon, error)
	ListByUser(ctx context.Context, q commands.ByUserQuery) ([]*types.Coupon, error)
}

type couponCommandService struct {
	db   *gorm.DB
	log  *logger.Logger
	repo promo.CouponRepo
}

func NewCouponCommandService(db *gorm.DB, baseLog *logger.Logger, repo promo.CouponRepo) CouponCommandService {
	return &couponCommandService{
		db:   db,
		log:  baseLog.With("service", "CouponCommandService"),
		repo: repo,
	}
}

func (s *couponCommandService) Create(ctx context.Context, cmd commands.CreateCouponCommand) (*types.Coupon, error) {
	coupon := &types.Coupon{
		UserID:      cmd.UserID,
		Code:        cmd.Code,
		DiscountPct: cmd.DiscountPct,
		ExpiresOn:   cmd.ExpiresOn,
	}
	created, err := s.repo.Create(ctx, nil, coupon)
	if err != nil {
		s.log.Error("Coupon create failed", "user_id", cmd.UserID, "error", err)
		return nil, err
	}
	return created, nil
}

func (s *couponCommandService) Update(ctx context.Context, cmd commands.UpdateCouponCommand) (*types.Coupon, error) {
	fields := map[string]any{}
	if cmd.DiscountPct != nil {
		fields["discount_pct"] = *cmd.DiscountPct
	}
	if cmd.ExpiresOn != nil {
		fields["expires_on"] = *cmd.ExpiresOn
	}

	if len(fields) > 0 {
		affected, err := s.repo.UpdateFields(ctx, nil, cmd.CouponID, fields)
		if err != nil {
			s.log.Error("Coupon update failed", "coupon_id", cmd.CouponID, "error", err)
			return nil, err
		}
		if affected == 0 {
			return nil, apperrors.ErrNotFound
		}
	}
	return s.repo.GetByID(ctx, nil, cmd.CouponID)
}

func (s *couponCommandService) Delete(ctx context.Context, couponID uuid.UUID) (bool, error) {
	affected, err := s.repo.DeleteByID(ctx, nil, couponID)
	if err != nil {
		s.log.Error("Coupon delete failed", "coupon_id", couponID, "error", err)
		return false, err
	}
	return affected > 0, nil
}

type couponQueryService struct {
	db   *gorm.DB
	log  *logger.Logger
	repo promo.CouponRepo
}

func NewCouponQueryService(db *gorm.DB, baseLog *logger.Logger, repo promo.CouponRepo) CouponQueryService {
	return &couponQueryService{
		db:   db,
		log:  baseLog.With("service", "CouponQueryService"),
		repo: repo,
	}
}

func (s *couponQueryService) GetByID(ctx context.Context, q commands.ByIDQuery) (*types.Coupon, error) {
	return s.repo.GetByID(ctx, nil, q.ID)
}

func (s *couponQueryService) ListByUser(ctx context.Context, q commands.ByUserQuery) ([]*types.Coupon, error) {
	results, err := s.repo.ListByUserID(ctx, nil, q.UserID)
	if err != nil {
		s.log.Error("Coupon list failed", "user_id", q.UserID, "error", err)
		return []*types.Coupon{}, nil
	}
	return results, nil
}
