package commands

import (
	"github.com/google/uuid"

	"github.com/offermart/marketplace-backend/internal/pkg/validate"
)

type CreateCouponCommand struct {
	UserID      uuid.UUID
	Code        string
	DiscountPct int
	ExpiresOn   string
}

func NewCreateCouponCommand(userID uuid.UUID, code string, discountPct int, expiresOn string) (CreateCouponCommand, error) {
	if err := validate.RequiredID("user_id", userID); err != nil {
		return CreateCouponCommand{}, err
	}
	if err := validate.NotBlank("code", code); err != nil {
		return CreateCouponCommand{}, err
	}
	if err := validate.IntRange("discount_pct", discountPct, 1, 100); err != nil {
		return CreateCouponCommand{}, err
	}
	if err := validate.DateString("expires_on", expiresOn); err != nil {
		return CreateCouponCommand{}, err
	}
	return CreateCouponCommand{
		UserID:      userID,
		Code:        code,
		DiscountPct: discountPct,
		ExpiresOn:   expiresOn,
	}, nil
}

type UpdateCouponCommand struct {
	CouponID    uuid.UUID
	DiscountPct *int
	ExpiresOn   *string
}

func NewUpdateCouponCommand(couponID uuid.UUID, discountPct *int, expiresOn *string) (UpdateCouponCommand, error) {
	if err := validate.RequiredID("coupon_id", couponID); err != nil {
		return UpdateCouponCommand{}, err
	}
	if discountPct != nil {
		if err := validate.IntRange("discount_pct", *discountPct, 1, 100); err != nil {
			return UpdateCouponCommand{}, err
		}
	}
	if expiresOn != nil {
		if err := validate.DateString("expires_on", *expiresOn); err != nil {
			return UpdateCouponCommand{}, err
		}
	}
	return UpdateCouponCommand{CouponID: couponID, DiscountPct: discountPct, ExpiresOn: expiresOn}, nil
}
