package service

import (
	"context"
	"testing"

	"github.com/giftforge/giftforge/internal/domain"
	"github.com/giftforge/giftforge/internal/repository"
	"github.com/giftforge/giftforge/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The canonical disbursement scenario: Graduation 50% + First Job 50%,
// gift Active. Approving the first milestone leaves the gift Active;
// approving the last completes it.
func TestDisbursement_TwoMilestoneScenario(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	gift, err := env.giftSvc.CreateGift(ctx, testGrandparentID, milestoneProposal())
	require.NoError(t, err)

	milestones, err := env.milestones.ListByGift(ctx, gift.ID)
	require.NoError(t, err)
	require.Len(t, milestones, 2)
	graduation, firstJob := milestones[0], milestones[1]

	// Approve Graduation: gift stays Active.
	approved, err := env.trusteeSvc.ApproveMilestone(ctx, graduation.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.MilestoneApproved, approved.Status)

	stored, err := env.gifts.GetByID(ctx, gift.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.GiftActive, stored.Status)

	// Approve First Job: all approved, gift completes.
	_, err = env.trusteeSvc.ApproveMilestone(ctx, firstJob.ID)
	require.NoError(t, err)

	stored, err = env.gifts.GetByID(ctx, gift.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.GiftCompleted, stored.Status)
}

func TestDisbursement_EachApprovalNotifiesBothParties(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	gift, err := env.giftSvc.CreateGift(ctx, testGrandparentID, milestoneProposal())
	require.NoError(t, err)
	milestones, err := env.milestones.ListByGift(ctx, gift.ID)
	require.NoError(t, err)

	_, err = env.trusteeSvc.ApproveMilestone(ctx, milestones[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 2, env.countNotifications(t, "milestone_approved"))

	_, err = env.trusteeSvc.ApproveMilestone(ctx, milestones[1].ID)
	require.NoError(t, err)
	assert.Equal(t, 4, env.countNotifications(t, "milestone_approved"))

	unread, err := env.notifySvc.UnreadForUser(ctx, testGrandchildID)
	require.NoError(t, err)
	// gift_received + two milestone approvals.
	assert.Len(t, unread, 3)
}

// Approving a milestone while the gift is Under Review: the milestone write
// persists, the gift-completion attempt fails closed, and the two outcomes
// are independently observable.
func TestDisbursement_CascadeFailsWhenGiftCannotComplete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	proposal := milestoneProposal()
	proposal.Milestones = []MilestoneDefinition{{Type: "Graduation", Percentage: 100}}
	gift, err := env.giftSvc.CreateGift(ctx, testGrandparentID, proposal)
	require.NoError(t, err)

	_, err = env.giftSvc.UpdateStatus(ctx, gift.ID, domain.GiftUnderReview)
	require.NoError(t, err)

	milestones, err := env.milestones.ListByGift(ctx, gift.ID)
	require.NoError(t, err)
	require.Len(t, milestones, 1)

	_, err = env.trusteeSvc.ApproveMilestone(ctx, milestones[0].ID)
	var transErr *domain.InvalidTransitionError
	require.ErrorAs(t, err, &transErr)
	assert.Equal(t, domain.GiftUnderReview, transErr.From)
	assert.Equal(t, domain.GiftCompleted, transErr.To)

	// Milestone write survived the failed cascade.
	m, err := env.milestones.GetByID(ctx, milestones[0].ID)
	require.NoError(t, err)
	assert.Equal(t, domain.MilestoneApproved, m.Status)

	// Gift never moved.
	stored, err := env.gifts.GetByID(ctx, gift.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.GiftUnderReview, stored.Status)

	// No milestone_approved fan-out on a failed cascade.
	assert.Equal(t, 0, env.countNotifications(t, "milestone_approved"))
}

func TestDisbursement_MilestoneNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.trusteeSvc.ApproveMilestone(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDisbursement_SinkFailureDoesNotFailApproval(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	gift, err := env.giftSvc.CreateGift(ctx, testGrandparentID, milestoneProposal())
	require.NoError(t, err)
	milestones, err := env.milestones.ListByGift(ctx, gift.ID)
	require.NoError(t, err)

	sink := &failingSink{}
	trustee := NewTrusteeService(testutil.NewTestUoW(env.db), sink, nil)

	approved, err := trustee.ApproveMilestone(ctx, milestones[0].ID)
	require.NoError(t, err, "delivery failure must be swallowed")
	assert.Equal(t, domain.MilestoneApproved, approved.Status)
	assert.Equal(t, 2, sink.attempts, "both deliveries attempted despite failures")
}

// A failure during the gift write must roll back the milestone write too:
// the pair is atomic whenever the gift is supposed to advance.
func TestDisbursement_GiftWriteFailureRollsBackMilestone(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	proposal := milestoneProposal()
	proposal.Milestones = []MilestoneDefinition{{Type: "Graduation", Percentage: 100}}
	gift, err := env.giftSvc.CreateGift(ctx, testGrandparentID, proposal)
	require.NoError(t, err)

	milestones, err := env.milestones.ListByGift(ctx, gift.ID)
	require.NoError(t, err)
	require.Len(t, milestones, 1)

	// Exec 1 is the milestone update, exec 2 the gift completion write.
	injected := assert.AnError
	uow := &testutil.FailOnNthExecUoW{DB: env.db, FailOn: 2, Err: injected}
	trustee := NewTrusteeService(uow, env.notifySvc, nil)

	_, err = trustee.ApproveMilestone(ctx, milestones[0].ID)
	require.ErrorIs(t, err, injected)

	m, err := env.milestones.GetByID(ctx, milestones[0].ID)
	require.NoError(t, err)
	assert.Equal(t, domain.MilestonePending, m.Status, "milestone write rolled back with the gift write")

	stored, err := env.gifts.GetByID(ctx, gift.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.GiftActive, stored.Status)
	assert.Equal(t, 0, env.countNotifications(t, "milestone_approved"))
}

// Re-approving an already Approved milestone of a Completed gift: the
// completion cascade re-derives true but Completed has no Completed target,
// so the operation reports the transition error while the milestone remains
// Approved.
func TestDisbursement_ReapproveAfterCompletionFailsClosed(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	proposal := milestoneProposal()
	proposal.Milestones = []MilestoneDefinition{{Type: "Graduation", Percentage: 100}}
	gift, err := env.giftSvc.CreateGift(ctx, testGrandparentID, proposal)
	require.NoError(t, err)

	milestones, err := env.milestones.ListByGift(ctx, gift.ID)
	require.NoError(t, err)

	_, err = env.trusteeSvc.ApproveMilestone(ctx, milestones[0].ID)
	require.NoError(t, err)

	_, err = env.trusteeSvc.ApproveMilestone(ctx, milestones[0].ID)
	var transErr *domain.InvalidTransitionError
	require.ErrorAs(t, err, &transErr)
	assert.Equal(t, domain.GiftCompleted, transErr.From)

	stored, err := env.gifts.GetByID(ctx, gift.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.GiftCompleted, stored.Status)
}
