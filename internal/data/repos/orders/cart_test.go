package orders

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/offermart/marketplace-backend/internal/data/repos/testutil"
	types "github.com/offermart/marketplace-backend/internal/domain"
)

func TestCartRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewCartRepo(db, testutil.Logger(t))
	ctx := context.Background()
	userID := uuid.New()

	cart, err := repo.GetOrCreateByUserID(ctx, tx, userID)
	if err != nil {
		t.Fatalf("GetOrCreateByUserID: %v", err)
	}

	again, err := repo.GetOrCreateByUserID(ctx, tx, userID)
	if err != nil {
		t.Fatalf("GetOrCreateByUserID (repeat): %v", err)
	}
	if again.ID != cart.ID {
		t.Fatalf("GetOrCreateByUserID: expected same cart, got %s vs %s", again.ID, cart.ID)
	}

	offerID := uuid.New()
	if _, err := repo.UpsertItem(ctx, tx, &types.CartItem{
		CartID:   cart.ID,
		OfferID:  offerID,
		Quantity: 1,
	}); err != nil {
		t.Fatalf("UpsertItem: %v", err)
	}

	// Re-adding the same offer replaces the quantity, no second row.
	if _, err := repo.UpsertItem(ctx, tx, &types.CartItem{
		CartID:   cart.ID,
		OfferID:  offerID,
		Quantity: 3,
	}); err != nil {
		t.Fatalf("UpsertItem (repeat): %v", err)
	}

	items, err := repo.ListItems(ctx, tx, cart.ID)
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("ListItems: expected 1 item, got %d", len(items))
	}
	if items[0].Quantity != 3 {
		t.Fatalf("UpsertItem: quantity not replaced: %+v", items[0])
	}

	has, err := repo.HasItem(ctx, tx, cart.ID, offerID)
	if err != nil || !has {
		t.Fatalf("HasItem: got (%v, %v), want (true, nil)", has, err)
	}
	has, err = repo.HasItem(ctx, tx, cart.ID, uuid.New())
	if err != nil || has {
		t.Fatalf("HasItem (missing): got (%v, %v), want (false, nil)", has, err)
	}

	removed, err := repo.RemoveItem(ctx, tx, cart.ID, offerID)
	if err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}
	if removed != 1 {
		t.Fatalf("RemoveItem: expected 1 row, got %d", removed)
	}
}
