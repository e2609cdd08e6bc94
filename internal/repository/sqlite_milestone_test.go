package repository

import (
	"context"
	"testing"

	"github.com/giftforge/giftforge/internal/domain"
	"github.com/giftforge/giftforge/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMilestoneRepo_CreateAndList(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	users := NewSQLiteUserRepo(db)
	gifts := NewSQLiteGiftRepo(db)
	milestones := NewSQLiteMilestoneRepo(db)
	gp, gc := seedParties(t, users)

	gift := testutil.NewTestGift(gp.ID, gc.ID)
	require.NoError(t, gifts.Create(ctx, gift))

	m1 := testutil.NewTestMilestone(gift.ID, "Graduation", 50)
	m2 := testutil.NewTestMilestone(gift.ID, "First Job", 50)
	require.NoError(t, milestones.Create(ctx, m1))
	require.NoError(t, milestones.Create(ctx, m2))

	got, err := milestones.ListByGift(ctx, gift.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Graduation", got[0].Type)
	assert.Equal(t, "First Job", got[1].Type)
	assert.Equal(t, domain.MilestonePending, got[0].Status)
}

func TestMilestoneRepo_Update(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	users := NewSQLiteUserRepo(db)
	gifts := NewSQLiteGiftRepo(db)
	milestones := NewSQLiteMilestoneRepo(db)
	gp, gc := seedParties(t, users)

	gift := testutil.NewTestGift(gp.ID, gc.ID)
	require.NoError(t, gifts.Create(ctx, gift))

	m := testutil.NewTestMilestone(gift.ID, "Graduation", 100)
	require.NoError(t, milestones.Create(ctx, m))

	m.Status = domain.MilestoneApproved
	require.NoError(t, milestones.Update(ctx, m))

	got, err := milestones.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.MilestoneApproved, got.Status)
}

func TestMilestoneRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	milestones := NewSQLiteMilestoneRepo(db)

	_, err := milestones.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
