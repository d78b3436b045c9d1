package orders

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

type PaymentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, payment *types.Payment) (*types.Payment, error)
	GetByID(ctx context.Context, tx *gorm.DB, paymentID uuid.UUID) (*types.Payment, error)
	ListByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Payment, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, paymentID uuid.UUID, fields map[string]any) (int64, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, paymentID uuid.UUID) (int64, error)
}

type paymentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPaymentRepo(db *gorm.DB, baseLog *logger.Logger) PaymentRepo {
	repoLog := baseLog.With("repo", "PaymentRepo")
	return &paymentRepo{db: db, log: repoLog}
}

func (r *paymentRepo) Create(ctx context.Context, tx *gorm.DB, payment *types.Payment) (*types.Payment, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	now := time.Now().UTC()
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	payment.CreatedAt = now
	payment.UpdatedAt = now

	if err := transaction.WithContext(ctx).Create(payment).Error; err != nil {
		return nil, err
	}
	return payment, nil
}

func (r *paymentRepo) GetByID(ctx context.Context, tx *gorm.DB, paymentID uuid.UUID) (*types.Payment, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.Payment
	if err := transaction.WithContext(ctx).
		First(&result, "id = ?", paymentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (r *paymentRepo) ListByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Payment, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Payment
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *paymentRepo) UpdateFields(ctx context.Context, tx *gorm.DB, paymentID uuid.UUID, fields map[string]any) (int64, error) {
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
		Model(&types.Payment{}).
		Where("id = ?", paymentID).
		Updates(updates)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *paymentRepo) DeleteByID(ctx context.Context, tx *gorm.DB, paymentID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	res := transaction.WithContext(ctx).
		Where("id = ?", paymentID).
		Delete(&types.Payment{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
