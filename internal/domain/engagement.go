package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Notification codes emitted by the backend. The related entity is linked by
// identifier only; no entity object crosses a module boundary.
const (
	NotificationCouponExpiring       = "coupon_expiring"
	NotificationSubscriptionExpiring = "subscription_expiring"
)

type Notification struct {
	Audit
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	Code      string         `gorm:"not null;column:code" json:"code"`
	Title     string         `gorm:"not null;column:title" json:"title"`
	Message   string         `gorm:"column:message" json:"message"`
	RelatedID *uuid.UUID     `gorm:"type:uuid;column:related_id" json:"related_id,omitempty"`
	Read      bool           `gorm:"not null;default:false;column:read" json:"read"`
	Metadata  datatypes.JSON `gorm:"column:metadata" json:"metadata,omitempty"`
}

func (Notification) TableName() string { return "notification" }

type Favorite struct {
	Audit
	UserID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorite_user_offer;column:user_id" json:"user_id"`
	OfferID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorite_user_offer;column:offer_id" json:"offer_id"`
}

func (Favorite) TableName() string { return "favorite" }

type Review struct {
	Audit
	OfferID  uuid.UUID `gorm:"type:uuid;not null;index;column:offer_id" json:"offer_id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	UserName string    `gorm:"not null;column:user_name" json:"user_name"`
	Rating   int       `gorm:"not null;column:rating" json:"rating"`
	Text     string    `gorm:"column:text" json:"text"`
}

func (Review) TableName() string { return "review" }

const (
	SubscriptionStatusActive   = "active"
	SubscriptionStatusCanceled = "canceled"
	SubscriptionStatusExpired  = "expired"
)

type Subscription struct {
	Audit
	UserID    uuid.UUID `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	Plan      string    `gorm:"not null;column:plan" json:"plan"`
	Status    string    `gorm:"not null;default:'active';column:status" json:"status"`
	StartedAt time.Time `gorm:"not null;column:started_at" json:"started_at"`
	ExpiresAt time.Time `gorm:"not null;index;column:expires_at" json:"expires_at"`
}

func (Subscription) TableName() string { return "subscription" }
