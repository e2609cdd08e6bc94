package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllApproved_EmptySetIsVacuouslyTrue(t *testing.T) {
	assert.True(t, AllApproved(nil))
	assert.True(t, AllApproved([]*Milestone{}))
}

func TestAllApproved_FalseWhileAnyNotApproved(t *testing.T) {
	milestones := []*Milestone{
		{Type: "Graduation", Percentage: 50, Status: MilestoneApproved},
		{Type: "First Job", Percentage: 50, Status: MilestonePending},
	}
	assert.False(t, AllApproved(milestones))

	milestones[1].Status = MilestoneSubmitted
	assert.False(t, AllApproved(milestones))

	milestones[1].Status = MilestoneRejected
	assert.False(t, AllApproved(milestones))

	milestones[1].Status = MilestoneApproved
	assert.True(t, AllApproved(milestones))
}
