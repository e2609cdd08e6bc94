package service

import (
	"context"
	"testing"

	"github.com/giftforge/giftforge/internal/domain"
	"github.com/giftforge/giftforge/internal/repository"
	"github.com/giftforge/giftforge/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testGrandparentID = "11111111-1111-1111-1111-111111111111"
	testGrandchildID  = "22222222-2222-2222-2222-222222222222"
)

func milestoneProposal() GiftProposal {
	return GiftProposal{
		GrandchildID:   testGrandchildID,
		GrandchildName: "Arjun",
		Corpus:         decimal.NewFromInt(10000),
		Currency:       domain.CurrencyUSD,
		RiskProfile:    domain.RiskBalanced,
		RuleType:       domain.RuleMilestone,
		Milestones: []MilestoneDefinition{
			{Type: "Graduation", Percentage: 50},
			{Type: "First Job", Percentage: 50},
		},
	}
}

func TestCreateGift_AlwaysActive(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	gift, err := env.giftSvc.CreateGift(ctx, testGrandparentID, milestoneProposal())
	require.NoError(t, err)
	assert.Equal(t, domain.GiftActive, gift.Status, "gifts are created Active, never Draft")

	stored, err := env.gifts.GetByID(ctx, gift.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.GiftActive, stored.Status)
}

func TestCreateGift_MilestonesPendingAndWindowOpen(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	gift, err := env.giftSvc.CreateGift(ctx, testGrandparentID, milestoneProposal())
	require.NoError(t, err)

	milestones, err := env.milestones.ListByGift(ctx, gift.ID)
	require.NoError(t, err)
	require.Len(t, milestones, 2)
	for _, m := range milestones {
		assert.Equal(t, domain.MilestonePending, m.Status)
	}

	window, err := env.windows.GetByGift(ctx, gift.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OverrideOpen, window.Status)
	assert.Equal(t, window.CreatedAt.AddDate(0, 0, 7), window.ExpiresAt)
}

func TestCreateGift_LazyUserCreationIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.giftSvc.CreateGift(ctx, testGrandparentID, milestoneProposal())
	require.NoError(t, err)
	_, err = env.giftSvc.CreateGift(ctx, testGrandparentID, milestoneProposal())
	require.NoError(t, err)

	users, err := env.users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 3, "grandparent, grandchild, trustee created once")

	trustee, err := env.users.GetByID(ctx, DefaultTrusteeID)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleTrustee, trustee.Role)
}

func TestCreateGift_EmitsBothNotifications(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.giftSvc.CreateGift(ctx, testGrandparentID, milestoneProposal())
	require.NoError(t, err)

	assert.Equal(t, 1, env.countNotifications(t, "gift_created"))
	assert.Equal(t, 1, env.countNotifications(t, "gift_received"))

	unread, err := env.notifySvc.UnreadForUser(ctx, testGrandchildID)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, "gift_received", unread[0].EventType)
	assert.Equal(t, domain.RoleGrandchild, unread[0].Role)
}

func TestCreateGift_NegativeCorpusRejected(t *testing.T) {
	env := newTestEnv(t)

	proposal := milestoneProposal()
	proposal.Corpus = decimal.NewFromInt(-500)
	_, err := env.giftSvc.CreateGift(context.Background(), testGrandparentID, proposal)
	assert.Error(t, err)
}

func TestCreateGift_SinkFailureDoesNotFailCreation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	sink := &failingSink{}
	svc := NewGiftService(env.gifts, env.milestones, env.windows, testutil.NewTestUoW(env.db), sink, nil)

	gift, err := svc.CreateGift(ctx, testGrandparentID, milestoneProposal())
	require.NoError(t, err, "sink failure must not surface")
	assert.Equal(t, 2, sink.attempts)

	_, err = env.gifts.GetByID(ctx, gift.ID)
	assert.NoError(t, err)
}

func TestUpdateStatus_ValidTransition(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	gift, err := env.giftSvc.CreateGift(ctx, testGrandparentID, milestoneProposal())
	require.NoError(t, err)

	updated, err := env.giftSvc.UpdateStatus(ctx, gift.ID, domain.GiftUnderReview)
	require.NoError(t, err)
	assert.Equal(t, domain.GiftUnderReview, updated.Status)

	// Under Review -> Rejected -> Redirected is the fallback path.
	_, err = env.giftSvc.UpdateStatus(ctx, gift.ID, domain.GiftRejected)
	require.NoError(t, err)
	updated, err = env.giftSvc.UpdateStatus(ctx, gift.ID, domain.GiftRedirected)
	require.NoError(t, err)
	assert.Equal(t, domain.GiftRedirected, updated.Status)
}

func TestUpdateStatus_InvalidTransitionFailsClosed(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	gift, err := env.giftSvc.CreateGift(ctx, testGrandparentID, milestoneProposal())
	require.NoError(t, err)

	_, err = env.giftSvc.UpdateStatus(ctx, gift.ID, domain.GiftRedirected)
	var transErr *domain.InvalidTransitionError
	require.ErrorAs(t, err, &transErr)
	assert.Equal(t, []domain.GiftStatus{domain.GiftUnderReview, domain.GiftCompleted}, transErr.Allowed)

	stored, err := env.gifts.GetByID(ctx, gift.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.GiftActive, stored.Status, "status must be untouched on denial")
}

func TestUpdateStatus_GiftNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.giftSvc.UpdateStatus(context.Background(), "missing", domain.GiftUnderReview)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAllowedNextStates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	gift, err := env.giftSvc.CreateGift(ctx, testGrandparentID, milestoneProposal())
	require.NoError(t, err)

	states, err := env.giftSvc.AllowedNextStates(ctx, gift.ID)
	require.NoError(t, err)
	assert.Equal(t, []domain.GiftStatus{domain.GiftUnderReview, domain.GiftCompleted}, states)

	_, err = env.giftSvc.AllowedNextStates(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteGift_CascadesAndNotFound(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	gift, err := env.giftSvc.CreateGift(ctx, testGrandparentID, milestoneProposal())
	require.NoError(t, err)

	require.NoError(t, env.giftSvc.DeleteGift(ctx, gift.ID))

	_, err = env.gifts.GetByID(ctx, gift.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	milestones, err := env.milestones.ListByGift(ctx, gift.ID)
	require.NoError(t, err)
	assert.Empty(t, milestones)

	// Notifications from creation survive the delete.
	assert.Equal(t, 1, env.countNotifications(t, "gift_created"))

	assert.ErrorIs(t, env.giftSvc.DeleteGift(ctx, gift.ID), repository.ErrNotFound)
}

func TestDeleteGift_AnyStatus(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	gift, err := env.giftSvc.CreateGift(ctx, testGrandparentID, milestoneProposal())
	require.NoError(t, err)
	_, err = env.giftSvc.UpdateStatus(ctx, gift.ID, domain.GiftUnderReview)
	require.NoError(t, err)

	assert.NoError(t, env.giftSvc.DeleteGift(ctx, gift.ID), "deletion is not gated by status")
}

func TestListByUser_AttachesMilestones(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.giftSvc.CreateGift(ctx, testGrandparentID, milestoneProposal())
	require.NoError(t, err)

	views, err := env.giftSvc.ListByUser(ctx, testGrandparentID, true)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Len(t, views[0].Milestones, 2)

	asChild, err := env.giftSvc.ListByUser(ctx, testGrandchildID, false)
	require.NoError(t, err)
	assert.Len(t, asChild, 1)
}

func TestInspect_FullDetail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	gift, err := env.giftSvc.CreateGift(ctx, testGrandparentID, milestoneProposal())
	require.NoError(t, err)

	detail, err := env.giftSvc.Inspect(ctx, gift.ID)
	require.NoError(t, err)
	assert.Equal(t, gift.ID, detail.Gift.ID)
	assert.Len(t, detail.Milestones, 2)
	require.NotNil(t, detail.Override)
	assert.Equal(t, domain.OverrideOpen, detail.Override.Status)
}

func TestInspect_NotFound(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.giftSvc.Inspect(context.Background(), "no-such-gift")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
