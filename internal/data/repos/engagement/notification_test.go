package engagement

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/offermart/marketplace-backend/internal/data/repos/testutil"
)

func TestNotificationRepo_MarkAllRead(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewNotificationRepo(db, testutil.Logger(t))
	ctx := context.Background()

	userID := uuid.New()
	otherID := uuid.New()

	testutil.SeedNotification(t, ctx, tx, userID, false)
	testutil.SeedNotification(t, ctx, tx, userID, false)
	testutil.SeedNotification(t, ctx, tx, userID, true)
	testutil.SeedNotification(t, ctx, tx, otherID, false)

	unread, err := repo.ListUnreadByUserID(ctx, tx, userID)
	if err != nil {
		t.Fatalf("ListUnreadByUserID: %v", err)
	}
	if len(unread) != 2 {
		t.Fatalf("ListUnreadByUserID: expected 2, got %d", len(unread))
	}

	affected, err := repo.MarkAllReadByUserID(ctx, tx, userID)
	if err != nil {
		t.Fatalf("MarkAllReadByUserID: %v", err)
	}
	if affected != 2 {
		t.Fatalf("MarkAllReadByUserID: expected 2 rows, got %d", affected)
	}

	unread, err = repo.ListUnreadByUserID(ctx, tx, userID)
	if err != nil {
		t.Fatalf("ListUnreadByUserID after mark: %v", err)
	}
	if len(unread) != 0 {
		t.Fatalf("ListUnreadByUserID after mark: expected 0, got %d", len(unread))
	}

	// Other users' rows stay untouched.
	otherUnread, err := repo.ListUnreadByUserID(ctx, tx, otherID)
	if err != nil {
		t.Fatalf("ListUnreadByUserID (other): %v", err)
	}
	if len(otherUnread) != 1 {
		t.Fatalf("ListUnreadByUserID (other): expected 1, got %d", len(otherUnread))
	}
}

func TestNotificationRepo_ExistsForRelated(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewNotificationRepo(db, testutil.Logger(t))
	ctx := context.Background()

	userID := uuid.New()
	relatedID := uuid.New()

	ok, err := repo.ExistsForRelated(ctx, tx, userID, "coupon_expiring", relatedID)
	if err != nil {
		t.Fatalf("ExistsForRelated: %v", err)
	}
	if ok {
		t.Fatalf("ExistsForRelated: expected false before create")
	}

	n := testutil.SeedNotification(t, ctx, tx, userID, false)
	n.Code = "coupon_expiring"
	n.RelatedID = &relatedID
	if err := tx.WithContext(ctx).Save(n).Error; err != nil {
		t.Fatalf("save: %v", err)
	}

	ok, err = repo.ExistsForRelated(ctx, tx, userID, "coupon_expiring", relatedID)
	if err != nil {
		t.Fatalf("ExistsForRelated after create: %v", err)
	}
	if !ok {
		t.Fatalf("ExistsForRelated after create: expected true")
	}
}
