package commands

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	apperrors "github.com/offermart/marketplace-backend/internal/pkg/errors"
)

func TestNewCreateReviewCommand(t *testing.T) {
	offerID := uuid.New()
	userID := uuid.New()

	cases := []struct {
		name     string
		userName string
		rating   int
		ok       bool
	}{
		{name: "rating_mid", userName: "Alice", rating: 3, ok: true},
		{name: "rating_lower_bound", userName: "Alice", rating: 1, ok: true},
		{name: "rating_upper_bound", userName: "Alice", rating: 5, ok: true},
		{name: "rating_too_high", userName: "Alice", rating: 6, ok: false},
		{name: "rating_zero", userName: "Alice", rating: 0, ok: false},
		{name: "blank_user_name", userName: "  ", rating: 4, ok: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, err := NewCreateReviewCommand(offerID, userID, tc.userName, tc.rating, "Great")
			if tc.ok {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if cmd.Rating != tc.rating {
					t.Fatalf("rating not carried: got %d", cmd.Rating)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected rejection, got command %+v", cmd)
			}
			if !errors.Is(err, apperrors.ErrInvalidArgument) {
				t.Fatalf("error does not wrap ErrInvalidArgument: %v", err)
			}
		})
	}
}

func TestNewCreateReviewCommand_TextTooLong(t *testing.T) {
	long := make([]byte, 2001)
	for i := range long {
		long[i] = 'x'
	}
	if _, err := NewCreateReviewCommand(uuid.New(), uuid.New(), "Alice", 4, string(long)); err == nil {
		t.Fatalf("expected rejection for text over 2000 chars")
	}
}

func TestNewCreateOfferCommand(t *testing.T) {
	userID := uuid.New()
	if _, err := NewCreateOfferCommand(userID, "", "", 10, "", ""); err == nil {
		t.Fatalf("expected rejection for blank title")
	}
	if _, err := NewCreateOfferCommand(userID, "Bike", "", 0, "", ""); err == nil {
		t.Fatalf("expected rejection for non-positive price")
	}
	if _, err := NewCreateOfferCommand(uuid.Nil, "Bike", "", 10, "", ""); err == nil {
		t.Fatalf("expected rejection for missing user id")
	}
	cmd, err := NewCreateOfferCommand(userID, "Bike", "city bike", 120.50, "sports", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd.Price != 120.50 || cmd.Title != "Bike" {
		t.Fatalf("command fields not carried: %+v", cmd)
	}
}

func TestNewCreateCouponCommand(t *testing.T) {
	userID := uuid.New()
	if _, err := NewCreateCouponCommand(userID, "SAVE10", 10, "2026-10-01"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := NewCreateCouponCommand(userID, "SAVE10", 0, "2026-10-01"); err == nil {
		t.Fatalf("expected rejection for zero discount")
	}
	if _, err := NewCreateCouponCommand(userID, "SAVE10", 101, "2026-10-01"); err == nil {
		t.Fatalf("expected rejection for discount over 100")
	}
	if _, err := NewCreateCouponCommand(userID, "SAVE10", 10, "next tuesday"); err == nil {
		t.Fatalf("expected rejection for unparseable expiry")
	}
}

func TestNewUpdateOfferCommand_PartialFields(t *testing.T) {
	price := 99.0
	cmd, err := NewUpdateOfferCommand(uuid.New(), nil, nil, &price, nil, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd.Title != nil || cmd.Price == nil || *cmd.Price != 99.0 {
		t.Fatalf("partial fields not carried: %+v", cmd)
	}

	blank := "  "
	if _, err := NewUpdateOfferCommand(uuid.New(), &blank, nil, nil, nil, nil, nil); err == nil {
		t.Fatalf("expected rejection for blank title when set")
	}
}

func TestNewByIDQuery(t *testing.T) {
	if _, err := NewByIDQuery(uuid.Nil); err == nil {
		t.Fatalf("expected rejection for nil id")
	}
	q, err := NewByIDQuery(uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.ID == uuid.Nil {
		t.Fatalf("id not carried")
	}
}
