package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/offermart/marketplace-backend/internal/data/repos/testutil"
	types "github.com/offermart/marketplace-backend/internal/domain"
)

func TestCampaignOfferRepo_PairUniqueness(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewCampaignOfferRepo(db, testutil.Logger(t))
	ctx := context.Background()

	userID := uuid.New()
	campaign := testutil.SeedCampaign(t, ctx, tx, userID)
	offer := testutil.SeedOffer(t, ctx, tx, userID)

	if _, err := repo.Attach(ctx, tx, &types.CampaignOffer{
		CampaignID: campaign.ID,
		OfferID:    offer.ID,
		Position:   1,
	}); err != nil {
		t.Fatalf("Attach: %v", err)
	}

	// Re-attaching the same pair updates position instead of adding a row.
	if _, err := repo.Attach(ctx, tx, &types.CampaignOffer{
		CampaignID: campaign.ID,
		OfferID:    offer.ID,
		Position:   7,
	}); err != nil {
		t.Fatalf("Attach (repeat): %v", err)
	}

	links, err := repo.ListByCampaignID(ctx, tx, campaign.ID)
	if err != nil {
		t.Fatalf("ListByCampaignID: %v", err)
	}
	if len(links) != 1 {
		t.Fatalf("ListByCampaignID: expected 1 link, got %d", len(links))
	}
	if links[0].Position != 7 {
		t.Fatalf("Attach (repeat): position not updated: %+v", links[0])
	}

	detached, err := repo.Detach(ctx, tx, campaign.ID, offer.ID)
	if err != nil {
		t.Fatalf("Detach: %v", err)
	}
	if detached != 1 {
		t.Fatalf("Detach: expected 1 row, got %d", detached)
	}
}
