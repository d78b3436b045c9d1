package commands

import (
	"github.com/google/uuid"

	"github.com/offermart/marketplace-backend/internal/pkg/validate"
)

// AddCartItemCommand adds (or restocks) an offer in the caller's cart. Carts
// hold at most 100 distinct items.
type AddCartItemCommand struct {
	UserID   uuid.UUID
	OfferID  uuid.UUID
	Quantity int
}

func NewAddCartItemCommand(userID, offerID uuid.UUID, quantity int) (AddCartItemCommand, error) {
	if err := validate.RequiredID("user_id", userID); err != nil {
		return AddCartItemCommand{}, err
	}
	if err := validate.RequiredID("offer_id", offerID); err != nil {
		return AddCartItemCommand{}, err
	}
	if err := validate.PositiveInt("quantity", quantity); err != nil {
		return AddCartItemCommand{}, err
	}
	return AddCartItemCommand{UserID: userID, OfferID: offerID, Quantity: quantity}, nil
}

type CreatePaymentCommand struct {
	UserID uuid.UUID
	SaleID *uuid.UUID
	Amount float64
	Method string
}

func NewCreatePaymentCommand(userID uuid.UUID, saleID *uuid.UUID, amount float64, method string) (CreatePaymentCommand, error) {
	if err := validate.RequiredID("user_id", userID); err != nil {
		return CreatePaymentCommand{}, err
	}
	if err := validate.Positive("amount", amount); err != nil {
		return CreatePaymentCommand{}, err
	}
	if err := validate.NotBlank("method", method); err != nil {
		return CreatePaymentCommand{}, err
	}
	return CreatePaymentCommand{UserID: userID, SaleID: saleID, Amount: amount, Method: method}, nil
}

type CreateSaleCommand struct {
	OfferID  uuid.UUID
	SellerID uuid.UUID
	BuyerID  uuid.UUID
	Price    float64
}

func NewCreateSaleCommand(offerID, sellerID, buyerID uuid.UUID, price float64) (CreateSaleCommand, error) {
	if err := validate.RequiredID("offer_id", offerID); err != nil {
		return CreateSaleCommand{}, err
	}
	if err := validate.RequiredID("seller_id", sellerID); err != nil {
		return CreateSaleCommand{}, err
	}
	if err := validate.RequiredID("buyer_id", buyerID); err != nil {
		return CreateSaleCommand{}, err
	}
	if err := validate.Positive("price", price); err != nil {
		return CreateSaleCommand{}, err
	}
	return CreateSaleCommand{OfferID: offerID, SellerID: sellerID, BuyerID: buyerID, Price: price}, nil
}

type UpdateSaleStatusCommand struct {
	SaleID uuid.UUID
	Status string
}

func NewUpdateSaleStatusCommand(saleID uuid.UUID, status string) (UpdateSaleStatusCommand, error) {
	if err := validate.RequiredID("sale_id", saleID); err != nil {
		return UpdateSaleStatusCommand{}, err
	}
	if err := validate.NotBlank("status", status); err != nil {
		return UpdateSaleStatusCommand{}, err
	}
	return UpdateSaleStatusCommand{SaleID: saleID, Status: status}, nil
}
