package service

import (
	"context"
	"testing"

	"github.com/giftforge/giftforge/internal/domain"
	"github.com/giftforge/giftforge/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_SendAndAcknowledge(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// The recipient row must exist for the FK.
	_, err := env.giftSvc.CreateGift(ctx, testGrandparentID, milestoneProposal())
	require.NoError(t, err)

	url := "/gifts/123"
	n, err := env.notifySvc.Send(ctx, testGrandparentID, domain.RoleGrandparent,
		"milestone_approved", "Milestone reached.", &url)
	require.NoError(t, err)
	assert.False(t, n.Read)
	require.NotNil(t, n.ActionURL)
	assert.Equal(t, url, *n.ActionURL)

	read, err := env.notifySvc.MarkRead(ctx, n.ID)
	require.NoError(t, err)
	assert.True(t, read.Read)

	unread, err := env.notifySvc.UnreadForUser(ctx, testGrandparentID)
	require.NoError(t, err)
	for _, u := range unread {
		assert.NotEqual(t, n.ID, u.ID, "acknowledged notification must leave the unread list")
	}
}

func TestNotificationService_MarkRead_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.notifySvc.MarkRead(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserService_SeedsDemoUsersOnce(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	users := NewUserService(env.users)

	first, err := users.List(ctx)
	require.NoError(t, err)
	require.Len(t, first, 3)

	second, err := users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, second, 3, "seeding must not repeat")

	trustee, err := users.GetByID(ctx, DefaultTrusteeID)
	require.NoError(t, err)
	assert.Equal(t, "Trustee Sahil", trustee.Name)
}
