package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/offermart/marketplace-backend/internal/data/repos/orders"
	types "github.com/offermart/marketplace-backend/internal/domain"
	"github.com/offermart/marketplace-backend/internal/domain/commands"
	apperrors "github.com/offermart/marketplace-backend/internal/pkg/errors"
	"github.com/offermart/marketplace-backend/internal/pkg/logger"
	"github.com/offermart/marketplace-backend/internal/pkg/validate"
)

const maxCartItems = 100

type CartCommandService interface {
	AddItem(ctx context.Context, cmd commands.AddCartItemCommand) (*types.CartItem, error)
	RemoveItem(ctx context.Context, userID, offerID uuid.UUID) (bool, error)
	Clear(ctx context.Context, userID uuid.UUID) (int64, error)
}

// CartView bundles the cart row with its items for the read side.
type CartView struct {
	Cart  *types.Cart       `json:"cart"`
	Items []*types.CartItem `json:"items"`
}

type CartQueryService interface {
	GetForUser(ctx context.Context, q commands.ByUserQuery) (*CartView, error)
}

type cartCommandService struct {
	db   *gorm.DB
	log  *logger.Logger
	repo orders.CartRepo
}

func NewCartCommandService(db *gorm.DB, baseLog *logger.Logger, repo orders.CartRepo) CartCommandService {
	return &cartCommandService{
		db:   db,
		log:  baseLog.With("service", "CartCommandService"),
		repo: repo,
	}
}

func (s *cartCommandService) AddItem(ctx context.Context, cmd commands.AddCartItemCommand) (*types.CartItem, error) {
	cart, err := s.repo.GetOrCreateByUserID(ctx, nil, cmd.UserID)
	if err != nil {
		s.log.Error("Cart lookup failed", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	// The cap applies to distinct offers, so replacing the quantity of an
	// offer already in the cart stays allowed even at the limit.
	present, err := s.repo.HasItem(ctx, nil, cart.ID, cmd.OfferID)
	if err != nil {
		return nil, err
	}
	if !present {
		count, err := s.repo.CountItems(ctx, nil, cart.ID)
		if err != nil {
			return nil, err
		}
		if err := validate.MaxItems("cart", int(count)+1, maxCartItems); err != nil {
			return nil, err
		}
	}

	item, err := s.repo.UpsertItem(ctx, nil, &types.CartItem{
		CartID:   cart.ID,
		OfferID:  cmd.OfferID,
		Quantity: cmd.Quantity,
	})
	if err != nil {
		s.log.Error("Cart item upsert failed", "cart_id", cart.ID, "offer_id", cmd.OfferID, "error", err)
		return nil, err
	}
	return item, nil
}

func (s *cartCommandService) RemoveItem(ctx context.Context, userID, offerID uuid.UUID) (bool, error) {
	cart, err := s.repo.GetByUserID(ctx, nil, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	affected, err := s.repo.RemoveItem(ctx, nil, cart.ID, offerID)
	if err != nil {
		s.log.Error("Cart item remove failed", "cart_id", cart.ID, "offer_id", offerID, "error", err)
		return false, err
	}
	return affected > 0, nil
}

func (s *cartCommandService) Clear(ctx context.Context, userID uuid.UUID) (int64, error) {
	cart, err := s.repo.GetByUserID(ctx, nil, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return s.repo.ClearItems(ctx, nil, cart.ID)
}

type cartQueryService struct {
	db   *gorm.DB
	log  *logger.Logger
	repo orders.CartRepo
}

func NewCartQueryService(db *gorm.DB, baseLog *logger.Logger, repo orders.CartRepo) CartQueryService {
	return &cartQueryService{
		db:   db,
		log:  baseLog.With("service", "CartQueryService"),
		repo: repo,
	}
}

func (s *cartQueryService) GetForUser(ctx context.Context, q commands.ByUserQuery) (*CartView, error) {
	cart, err := s.repo.GetByUserID(ctx, nil, q.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// An absent cart reads as an empty one.
			return &CartView{Items: []*types.CartItem{}}, nil
		}
		return nil, err
	}
	items, err := s.repo.ListItems(ctx, nil, cart.ID)
	if err != nil {
		s.log.Error("Cart item list failed", "cart_id", cart.ID, "error", err)
		items = []*types.CartItem{}
	}
	return &CartView{Cart: cart, Items: items}, nil
}
