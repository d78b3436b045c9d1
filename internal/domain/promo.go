package domain

import "github.com/google/uuid"

// Coupon expiry is stored as a plain YYYY-MM-DD string. Historic rows carry
// free-form values, so the expiry scan parses defensively and skips rows it
// cannot read.
type Coupon struct {
	Audit
	UserID      uuid.UUID `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	Code        string    `gorm:"not null;column:code" json:"code"`
	DiscountPct int       `gorm:"not null;column:discount_pct" json:"discount_pct"`
	ExpiresOn   string    `gorm:"not null;column:expires_on" json:"expires_on"`
}

func (Coupon) TableName() string { return "coupon" }
