package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/offermart/marketplace-backend/internal/data/repos/orders"
	types "github.com/offermart/marketplace-backend/internal/domain"
	"github.com/offermart/marketplace-backend/internal/domain/commands"
	apperrors "github.com/offermart/marketplace-backend/internal/pkg/errors"
	"github.com/offermart/marketplace-backend/internal/pkg/logger"
)

type SaleCommandService interface {
	Create(ctx context.Context, cmd commands.CreateSaleCommand) (*types.Sale, error)
	UpdateStatus(ctx context.Context, cmd commands.UpdateSaleStatusCommand) (*types.Sale, error)
	Delete(ctx context.Context, saleID uuid.UUID) (bool, error)
}

type SaleQueryService interface {
	GetByID(ctx context.Context, q commands.ByIDQuery) (*types.Sale, error)
	ListBySeller(ctx context.Context, q commands.ByUserQuery) ([]*types.Sale, error)
	ListByBuyer(ctx context.Context, q commands.ByUserQuery) ([]*types.Sale, error)
}

type saleCommandService struct {
	db   *gorm.DB
	log  *logger.Logger
	repo orders.SaleRepo
}

func NewSaleCommandService(db *gorm.DB, baseLog *logger.Logger, repo orders.SaleRepo) SaleCommandService {
	return &saleCommandService{
		db:   db,
		log:  baseLog.With("service", "SaleCommandService"),
		repo: repo,
	}
}

func (s *saleCommandService) Create(ctx context.Context, cmd commands.CreateSaleCommand) (*types.Sale, error) {
	sale := &types.Sale{
		OfferID:  cmd.OfferID,
		SellerID: cmd.SellerID,
		BuyerID:  cmd.BuyerID,
		Price:    cmd.Price,
		Status:   types.SaleStatusPending,
	}
	created, err := s.repo.Create(ctx, nil, sale)
	if err != nil {
		s.log.Error("Sale create failed", "offer_id", cmd.OfferID, "error", err)
		return nil, err
	}
	return created, nil
}

func (s *saleCommandService) UpdateStatus(ctx context.Context, cmd commands.UpdateSaleStatusCommand) (*types.Sale, error) {
	affected, err := s.repo.UpdateFields(ctx, nil, cmd.SaleID, map[string]any{"status": cmd.Status})
	if err != nil {
		s.log.Error("Sale status update failed", "sale_id", cmd.SaleID, "error", err)
		return nil, err
	}
	if affected == 0 {
		return nil, apperrors.ErrNotFound
	}
	return s.repo.GetByID(ctx, nil, cmd.SaleID)
}

func (s *saleCommandService) Delete(ctx context.Context, saleID uuid.UUID) (bool, error) {
	affected, err := s.repo.DeleteByID(ctx, nil, saleID)
	if err != nil {
		s.log.Error("Sale delete failed", "sale_id", saleID, "error", err)
		return false, err
	}
	return affected > 0, nil
}

type saleQueryService struct {
	db   *gorm.DB
	log  *logger.Logger
	repo orders.SaleRepo
}

func NewSaleQueryService(db *gorm.DB, baseLog *logger.Logger, repo orders.SaleRepo) SaleQueryService {
	return &saleQueryService{
		db:   db,
		log:  baseLog.With("service", "SaleQueryService"),
		repo: repo,
	}
}

func (s *saleQueryService) GetByID(ctx context.Context, q commands.ByIDQuery) (*types.Sale, error) {
	return s.repo.GetByID(ctx, nil, q.ID)
}

func (s *saleQueryService) ListBySeller(ctx context.Context, q commands.ByUserQuery) ([]*types.Sale, error) {
	results, err := s.repo.ListBySellerID(ctx, nil, q.UserID)
	if err != nil {
		s.log.Error("Sale list by seller failed", "seller_id", q.UserID, "error", err)
		return []*types.Sale{}, nil
	}
	return results, nil
}

func (s *saleQueryService) ListByBuyer(ctx context.Context, q commands.ByUserQuery) ([]*types.Sale, error) {
	results, err := s.repo.ListByBuyerID(ctx, nil, q.UserID)
	if err != nil {
		s.log.Error("Sale list by buyer failed", "buyer_id", q.UserID, "error", err)
		return []*types.Sale{}, nil
	}
	return results, nil
}
