package domain

import "github.com/google/uuid"

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"

	SaleStatusPending   = "pending"
	SaleStatusCompleted = "completed"
	SaleStatusCanceled  = "canceled"
)

type Cart struct {
	Audit
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:user_id" json:"user_id"`
}

func (Cart) TableName() string { return "cart" }

type CartItem struct {
	Audit
	CartID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_item_cart_offer;column:cart_id" json:"cart_id"`
	OfferID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_item_cart_offer;column:offer_id" json:"offer_id"`
	Quantity int       `gorm:"not null;default:1;column:quantity" json:"quantity"`
}

func (CartItem) TableName() string { return "cart_item" }

type Payment struct {
	Audit
	UserID uuid.UUID  `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	SaleID *uuid.UUID `gorm:"type:uuid;column:sale_id" json:"sale_id,omitempty"`
	Amount float64    `gorm:"not null;column:amount" json:"amount"`
	Method string     `gorm:"not null;column:method" json:"method"`
	Status string     `gorm:"not null;default:'pending';column:status" json:"status"`
}

func (Payment) TableName() string { return "payment" }

type Sale struct {
	Audit
	OfferID  uuid.UUID `gorm:"type:uuid;not null;index;column:offer_id" json:"offer_id"`
	SellerID uuid.UUID `gorm:"type:uuid;not null;index;column:seller_id" json:"seller_id"`
	BuyerID  uuid.UUID `gorm:"type:uuid;not null;index;column:buyer_id" json:"buyer_id"`
	Price    float64   `gorm:"not null;column:price" json:"price"`
	Status   string    `gorm:"not null;default:'pending';column:status" json:"status"`
}

func (Sale) TableName() string { return "sale" }
