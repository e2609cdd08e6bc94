package repository

import (
	"context"
	"testing"
	"time"

	"github.com/giftforge/giftforge/internal/domain"
	"github.com/giftforge/giftforge/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationRepo_UnreadOrderingAndMarkRead(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	users := NewSQLiteUserRepo(db)
	notifications := NewSQLiteNotificationRepo(db)
	gp, _ := seedParties(t, users)

	older := testutil.NewTestNotification(gp.ID, domain.RoleGrandparent, "gift_created")
	older.CreatedAt = time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	newer := testutil.NewTestNotification(gp.ID, domain.RoleGrandparent, "milestone_approved")
	newer.CreatedAt = time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)

	require.NoError(t, notifications.Create(ctx, older))
	require.NoError(t, notifications.Create(ctx, newer))

	unread, err := notifications.ListUnreadByRecipient(ctx, gp.ID)
	require.NoError(t, err)
	require.Len(t, unread, 2)
	assert.Equal(t, "milestone_approved", unread[0].EventType, "newest first")

	require.NoError(t, notifications.MarkRead(ctx, newer.ID))

	unread, err = notifications.ListUnreadByRecipient(ctx, gp.ID)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, older.ID, unread[0].ID)

	got, err := notifications.GetByID(ctx, newer.ID)
	require.NoError(t, err)
	assert.True(t, got.Read)
}

func TestNotificationRepo_MarkRead_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	notifications := NewSQLiteNotificationRepo(db)

	assert.ErrorIs(t, notifications.MarkRead(context.Background(), "missing"), ErrNotFound)
}
