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
	"github.com/offermart/marketplace-backend/internal/pkg/validate"
)

type PaymentCommandService interface {
	Create(ctx context.Context, cmd commands.CreatePaymentCommand) (*types.Payment, error)
	UpdateStatus(ctx context.Context, paymentID uuid.UUID, status string) (*types.Payment, error)
	Delete(ctx context.Context, paymentID uuid.UUID) (bool, error)
}

type PaymentQueryService interface {
	GetByID(ctx context.Context, q commands.ByIDQuery) (*types.Payment, error)
	ListByUser(ctx context.Context, q commands.ByUserQuery) ([]*types.Payment, error)
}

type paymentCommandService struct {
	db   *gorm.DB
	log  *logger.Logger
	repo orders.PaymentRepo
}

func NewPaymentCommandService(db *gorm.DB, baseLog *logger.Logger, repo orders.PaymentRepo) PaymentCommandService {
	return &paymentCommandService{
		db:   db,
		log:  baseLog.With("service", "PaymentCommandService"),
		repo: repo,
	}
}

func (s *paymentCommandService) Create(ctx context.Context, cmd commands.CreatePaymentCommand) (*types.Payment, error) {
	payment := &types.Payment{
		UserID: cmd.UserID,
		SaleID: cmd.SaleID,
		Amount: cmd.Amount,
		Method: cmd.Method,
		Status: types.PaymentStatusPending,
	}
	created, err := s.repo.Create(ctx, nil, payment)
	if err != nil {
		s.log.Error("Payment create failed", "user_id", cmd.UserID, "error", err)
		return nil, err
	}
	return created, nil
}

func (s *paymentCommandService) UpdateStatus(ctx context.Context, paymentID uuid.UUID, status string) (*types.Payment, error) {
	if err := validate.NotBlank("status", status); err != nil {
		return nil, err
	}
	affected, err := s.repo.UpdateFields(ctx, nil, paymentID, map[string]any{"status": status})
	if err != nil {
		s.log.Error("Payment status update failed", "payment_id", paymentID, "error", err)
		return nil, err
	}
	if affected == 0 {
		return nil, apperrors.ErrNotFound
	}
	return s.repo.GetByID(ctx, nil, paymentID)
}

func (s *paymentCommandService) Delete(ctx context.Context, paymentID uuid.UUID) (bool, error) {
	affected, err := s.repo.DeleteByID(ctx, nil, paymentID)
	if err != nil {
		s.log.Error("Payment delete failed", "payment_id", paymentID, "error", err)
		return false, err
	}
	return affected > 0, nil
}

type paymentQueryService struct {
	db   *gorm.DB
	log  *logger.Logger
	repo orders.PaymentRepo
}

func NewPaymentQueryService(db *gorm.DB, baseLog *logger.Logger, repo orders.PaymentRepo) PaymentQueryService {
	return &paymentQueryService{
		db:   db,
		log:  baseLog.With("service", "PaymentQueryService"),
		repo: repo,
	}
}

func (s *paymentQueryService) GetByID(ctx context.Context, q commands.ByIDQuery) (*types.Payment, error) {
	return s.repo.GetByID(ctx, nil, q.ID)
}

func (s *paymentQueryService) ListByUser(ctx context.Context, q commands.ByUserQuery) ([]*types.Payment, error) {
	results, err := s.repo.ListByUserID(ctx, nil, q.UserID)
	if err != nil {
		s.log.Error("Payment list failed", "user_id", q.UserID, "error", err)
		return []*types.Payment{}, nil
	}
	return results, nil
}
