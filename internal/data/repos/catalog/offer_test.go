package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/offermart/marketplace-backend/internal/data/repos/testutil"
	types "github.com/offermart/marketplace-backend/internal/domain"
	apperrors "github.com/offermart/marketplace-backend/internal/pkg/errors"
)

func TestOfferRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewOfferRepo(db, testutil.Logger(t))
	ctx := context.Background()
	userID := uuid.New()

	created, err := repo.Create(ctx, tx, &types.Offer{
		UserID:      userID,
		Title:       "City bike",
		Description: "barely used",
		Price:       120.50,
		Category:    "sports",
		Status:      types.OfferStatusActive,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatalf("Create: identity not assigned")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatalf("Create: timestamps not assigned")
	}

	got, err := repo.GetByID(ctx, tx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Title != "City bike" || got.Price != 120.50 {
		t.Fatalf("GetByID: unexpected row: %+v", got)
	}

	// Partial update touches only the given columns, and the caller's map
	// stays as given.
	fields := map[string]any{"price": 99.0}
	affected, err := repo.UpdateFields(ctx, tx, created.ID, fields)
	if err != nil {
		t.Fatalf("UpdateFields: %v", err)
	}
	if affected != 1 {
		t.Fatalf("UpdateFields: expected 1 row, got %d", affected)
	}
	if len(fields) != 1 {
		t.Fatalf("UpdateFields: caller map mutated: %+v", fields)
	}
	got, err = repo.GetByID(ctx, tx, created.ID)
	if err != nil {
		t.Fatalf("GetByID after update: %v", err)
	}
	if got.Price != 99.0 {
		t.Fatalf("UpdateFields: price not updated: %+v", got)
	}
	if got.Title != "City bike" || got.Description != "barely used" {
		t.Fatalf("UpdateFields: untouched fields changed: %+v", got)
	}

	byUser, err := repo.ListByUserID(ctx, tx, userID)
	if err != nil {
		t.Fatalf("ListByUserID: %v", err)
	}
	if len(byUser) != 1 {
		t.Fatalf("ListByUserID: expected 1 offer, got %d", len(byUser))
	}

	exists, err := repo.ExistsByID(ctx, tx, created.ID)
	if err != nil || !exists {
		t.Fatalf("ExistsByID: got (%v, %v), want (true, nil)", exists, err)
	}

	deleted, err := repo.DeleteByID(ctx, tx, created.ID)
	if err != nil {
		t.Fatalf("DeleteByID: %v", err)
	}
	if deleted != 1 {
		t.Fatalf("DeleteByID: expected 1 row, got %d", deleted)
	}

	if _, err := repo.GetByID(ctx, tx, created.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("GetByID after delete: expected ErrNotFound, got %v", err)
	}

	// Deleting a missing id reports zero rows, not an error.
	deleted, err = repo.DeleteByID(ctx, tx, uuid.New())
	if err != nil {
		t.Fatalf("DeleteByID (missing): %v", err)
	}
	if deleted != 0 {
		t.Fatalf("DeleteByID (missing): expected 0 rows, got %d", deleted)
	}
}
