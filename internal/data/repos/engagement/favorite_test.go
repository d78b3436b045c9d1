package engagement

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/offermart/marketplace-backend/internal/data/repos/testutil"
	types "github.com/offermart/marketplace-backend/internal/domain"
)

func TestFavoriteRepo_IdempotentCreate(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewFavoriteRepo(db, testutil.Logger(t))
	ctx := context.Background()

	userID := uuid.New()
	offerID := uuid.New()

	first, created, err := repo.Create(ctx, tx, &types.Favorite{UserID: userID, OfferID: offerID})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !created {
		t.Fatalf("Create: expected a new row")
	}

	second, created, err := repo.Create(ctx, tx, &types.Favorite{UserID: userID, OfferID: offerID})
	if err != nil {
		t.Fatalf("Create (repeat): %v", err)
	}
	if created {
		t.Fatalf("Create (repeat): expected no new row")
	}
	if second.ID != first.ID {
		t.Fatalf("Create (repeat): expected the original row back, got %s vs %s", second.ID, first.ID)
	}

	favs, err := repo.ListByUserID(ctx, tx, userID)
	if err != nil {
		t.Fatalf("ListByUserID: %v", err)
	}
	if len(favs) != 1 {
		t.Fatalf("ListByUserID: expected exactly 1 favorite after repeated creates, got %d", len(favs))
	}

	removed, err := repo.DeleteByUserAndOffer(ctx, tx, userID, offerID)
	if err != nil {
		t.Fatalf("DeleteByUserAndOffer: %v", err)
	}
	if removed != 1 {
		t.Fatalf("DeleteByUserAndOffer: expected 1 row, got %d", removed)
	}
}
