package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/offermart/marketplace-backend/internal/data/repos/catalog"
	"github.com/offermart/marketplace-backend/internal/data/repos/engagement"
	"github.com/offermart/marketplace-backend/internal/data/repos/orders"
	"github.com/offermart/marketplace-backend/internal/data/repos/testutil"
	"github.com/offermart/marketplace-backend/internal/domain/commands"
	apperrors "github.com/offermart/marketplace-backend/internal/pkg/errors"
)

func testTx(t *testing.T) *gorm.DB {
	t.Helper()
	return testutil.Tx(t, testutil.DB(t))
}

func TestOfferCreateThenGet(t *testing.T) {
	ctx := context.Background()
	tx := testTx(t)
	log := testutil.Logger(t)
	repo := catalog.NewOfferRepo(tx, log)
	cmdSvc := NewOfferCommandService(tx, log, repo)
	qrySvc := NewOfferQueryService(tx, log, repo)

	cmd, err := commands.NewCreateOfferCommand(uuid.New(), "Vintage chair", "solid oak", 120, "furniture", "")
	if err != nil {
		t.Fatalf("build command: %v", err)
	}
	created, err := cmdSvc.Create(ctx, cmd)
	if err != nil {
		t.Fatalf("create offer: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatal("expected id to be assigned")
	}

	q, err := commands.NewByIDQuery(created.ID)
	if err != nil {
		t.Fatalf("build query: %v", err)
	}
	got, err := qrySvc.GetByID(ctx, q)
	if err != nil {
		t.Fatalf("get offer: %v", err)
	}
	if got.Title != "Vintage chair" || got.Price != 120 {
		t.Fatalf("unexpected offer: %+v", got)
	}
}

func TestOfferPartialUpdate(t *testing.T) {
	ctx := context.Background()
	tx := testTx(t)
	log := testutil.Logger(t)
	repo := catalog.NewOfferRepo(tx, log)
	cmdSvc := NewOfferCommandService(tx, log, repo)

	userID := uuid.New()
	offer := testutil.SeedOffer(t, ctx, tx, userID)

	newPrice := 55.5
	cmd, err := commands.NewUpdateOfferCommand(offer.ID, nil, nil, &newPrice, nil, nil, nil)
	if err != nil {
		t.Fatalf("build command: %v", err)
	}
	updated, err := cmdSvc.Update(ctx, cmd)
	if err != nil {
		t.Fatalf("update offer: %v", err)
	}
	if updated.Price != 55.5 {
		t.Fatalf("expected price 55.5, got %v", updated.Price)
	}
	if updated.Title != offer.Title {
		t.Fatalf("title changed unexpectedly: %q", updated.Title)
	}
	if !updated.UpdatedAt.After(offer.UpdatedAt) {
		t.Fatal("expected updated_at to advance")
	}
}

func TestOfferUpdateMissingIsNotFound(t *testing.T) {
	ctx := context.Background()
	tx := testTx(t)
	log := testutil.Logger(t)
	cmdSvc := NewOfferCommandService(tx, log, catalog.NewOfferRepo(tx, log))

	title := "anything"
	cmd, err := commands.NewUpdateOfferCommand(uuid.New(), &title, nil, nil, nil, nil, nil)
	if err != nil {
		t.Fatalf("build command: %v", err)
	}
	if _, err := cmdSvc.Update(ctx, cmd); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFavoriteCreateIdempotent(t *testing.T) {
	ctx := context.Background()
	tx := testTx(t)
	log := testutil.Logger(t)
	cmdSvc := NewFavoriteCommandService(tx, log, engagement.NewFavoriteRepo(tx, log))

	userID, offerID := uuid.New(), uuid.New()
	cmd, err := commands.NewCreateFavoriteCommand(userID, offerID)
	if err != nil {
		t.Fatalf("build command: %v", err)
	}

	first, err := cmdSvc.Create(ctx, cmd)
	if err != nil {
		t.Fatalf("first create: %v", err)
	}
	second, err := cmdSvc.Create(ctx, cmd)
	if err != nil {
		t.Fatalf("second create: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("expected same favorite, got %s and %s", first.ID, second.ID)
	}
}

func TestNotificationMarkAllRead(t *testing.T) {
	ctx := context.Background()
	tx := testTx(t)
	log := testutil.Logger(t)
	cmdSvc := NewNotificationCommandService(tx, log, engagement.NewNotificationRepo(tx, log))

	userID := uuid.New()
	testutil.SeedNotification(t, ctx, tx, userID, false)
	testutil.SeedNotification(t, ctx, tx, userID, false)
	testutil.SeedNotification(t, ctx, tx, userID, true)
	testutil.SeedNotification(t, ctx, tx, uuid.New(), false)

	count, err := cmdSvc.MarkAllReadForUser(ctx, userID)
	if err != nil {
		t.Fatalf("mark all read: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 marked, got %d", count)
	}
}

func TestCartAbsentReadsEmpty(t *testing.T) {
	ctx := context.Background()
	tx := testTx(t)
	log := testutil.Logger(t)
	qrySvc := NewCartQueryService(tx, log, orders.NewCartRepo(tx, log))

	q, err := commands.NewByUserQuery(uuid.New())
	if err != nil {
		t.Fatalf("build query: %v", err)
	}
	view, err := qrySvc.GetForUser(ctx, q)
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if view.Cart != nil || len(view.Items) != 0 {
		t.Fatalf("expected empty view, got %+v", view)
	}
}

func TestCartAddThenView(t *testing.T) {
	ctx := context.Background()
	tx := testTx(t)
	log := testutil.Logger(t)
	repo := orders.NewCartRepo(tx, log)
	cmdSvc := NewCartCommandService(tx, log, repo)
	qrySvc := NewCartQueryService(tx, log, repo)

	userID := uuid.New()
	offerID := uuid.New()
	cmd, err := commands.NewAddCartItemCommand(userID, offerID, 2)
	if err != nil {
		t.Fatalf("build command: %v", err)
	}
	if _, err := cmdSvc.AddItem(ctx, cmd); err != nil {
		t.Fatalf("add item: %v", err)
	}

	// Same pair again replaces the quantity instead of adding a row.
	cmd, err = commands.NewAddCartItemCommand(userID, offerID, 5)
	if err != nil {
		t.Fatalf("build command: %v", err)
	}
	if _, err := cmdSvc.AddItem(ctx, cmd); err != nil {
		t.Fatalf("re-add item: %v", err)
	}

	q, err := commands.NewByUserQuery(userID)
	if err != nil {
		t.Fatalf("build query: %v", err)
	}
	view, err := qrySvc.GetForUser(ctx, q)
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if view.Cart == nil || len(view.Items) != 1 {
		t.Fatalf("expected one item, got %+v", view)
	}
	if view.Items[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", view.Items[0].Quantity)
	}
}

func TestCartItemCap(t *testing.T) {
	ctx := context.Background()
	tx := testTx(t)
	log := testutil.Logger(t)
	cmdSvc := NewCartCommandService(tx, log, orders.NewCartRepo(tx, log))

	userID := uuid.New()
	first := uuid.New()
	for i := 0; i < 100; i++ {
		offerID := first
		if i > 0 {
			offerID = uuid.New()
		}
		cmd, err := commands.NewAddCartItemCommand(userID, offerID, 1)
		if err != nil {
			t.Fatalf("build command: %v", err)
		}
		if _, err := cmdSvc.AddItem(ctx, cmd); err != nil {
			t.Fatalf("add item %d: %v", i, err)
		}
	}

	// A 101st distinct offer is rejected.
	cmd, err := commands.NewAddCartItemCommand(userID, uuid.New(), 1)
	if err != nil {
		t.Fatalf("build command: %v", err)
	}
	if _, err := cmdSvc.AddItem(ctx, cmd); !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}

	// A quantity replace for an offer already in the cart still works at
	// the limit.
	cmd, err = commands.NewAddCartItemCommand(userID, first, 7)
	if err != nil {
		t.Fatalf("build command: %v", err)
	}
	item, err := cmdSvc.AddItem(ctx, cmd)
	if err != nil {
		t.Fatalf("re-add at cap: %v", err)
	}
	if item.Quantity != 7 {
		t.Fatalf("expected quantity 7, got %d", item.Quantity)
	}
}

func TestReviewSummary(t *testing.T) {
	ctx := context.Background()
	tx := testTx(t)
	log := testutil.Logger(t)
	repo := engagement.NewReviewRepo(tx, log)
	cmdSvc := NewReviewCommandService(tx, log, repo)
	qrySvc := NewReviewQueryService(tx, log, repo)

	offerID := uuid.New()
	for _, rating := range []int{2, 4} {
		cmd, err := commands.NewCreateReviewCommand(offerID, uuid.New(), "buyer", rating, "fine")
		if err != nil {
			t.Fatalf("build command: %v", err)
		}
		if _, err := cmdSvc.Create(ctx, cmd); err != nil {
			t.Fatalf("create review: %v", err)
		}
	}

	summary, err := qrySvc.SummaryForOffer(ctx, offerID)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.ReviewCount != 2 {
		t.Fatalf("expected 2 reviews, got %d", summary.ReviewCount)
	}
	if summary.AverageRating != 3 {
		t.Fatalf("expected average 3, got %v", summary.AverageRating)
	}
}

func TestCampaignAttachDetach(t *testing.T) {
	ctx := context.Background()
	tx := testTx(t)
	log := testutil.Logger(t)
	campaignRepo := catalog.NewCampaignRepo(tx, log)
	linkRepo := catalog.NewCampaignOfferRepo(tx, log)
	offerRepo := catalog.NewOfferRepo(tx, log)
	cmdSvc := NewCampaignCommandService(tx, log, campaignRepo, linkRepo, offerRepo)
	qrySvc := NewCampaignQueryService(tx, log, campaignRepo, linkRepo)

	userID := uuid.New()
	campaign := testutil.SeedCampaign(t, ctx, tx, userID)
	offer := testutil.SeedOffer(t, ctx, tx, userID)

	// Attaching an offer that does not exist is rejected up front.
	bad, err := commands.NewAttachOfferCommand(campaign.ID, uuid.New(), 0)
	if err != nil {
		t.Fatalf("build command: %v", err)
	}
	if _, err := cmdSvc.AttachOffer(ctx, bad); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	cmd, err := commands.NewAttachOfferCommand(campaign.ID, offer.ID, 1)
	if err != nil {
		t.Fatalf("build command: %v", err)
	}
	if _, err := cmdSvc.AttachOffer(ctx, cmd); err != nil {
		t.Fatalf("attach: %v", err)
	}

	links, err := qrySvc.ListOffers(ctx, campaign.ID)
	if err != nil {
		t.Fatalf("list offers: %v", err)
	}
	if len(links) != 1 || links[0].OfferID != offer.ID {
		t.Fatalf("unexpected links: %+v", links)
	}

	found, err := cmdSvc.DetachOffer(ctx, campaign.ID, offer.ID)
	if err != nil {
		t.Fatalf("detach: %v", err)
	}
	if !found {
		t.Fatal("expected detach to report a removed link")
	}
}

func TestSubscriptionCreateComputesExpiry(t *testing.T) {
	ctx := context.Background()
	tx := testTx(t)
	log := testutil.Logger(t)
	cmdSvc := NewSubscriptionCommandService(tx, log, engagement.NewSubscriptionRepo(tx, log))

	cmd, err := commands.NewCreateSubscriptionCommand(uuid.New(), "pro", 3)
	if err != nil {
		t.Fatalf("build command: %v", err)
	}
	created, err := cmdSvc.Create(ctx, cmd)
	if err != nil {
		t.Fatalf("create subscription: %v", err)
	}
	want := created.StartedAt.AddDate(0, 3, 0)
	if !created.ExpiresAt.Equal(want) {
		t.Fatalf("expected expiry %v, got %v", want, created.ExpiresAt)
	}
}
