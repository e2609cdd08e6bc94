package domain

// Milestone is a single release condition belonging to exactly one gift.
// Percentage is the share of the corpus released by this milestone; the
// shares of a gift's milestones are intended to sum to 100 but that is not
// validated here.
type Milestone struct {
	ID         string
	GiftID     string
	Type       string
	Percentage int
	Status     MilestoneStatus
}

// AllApproved reports whether every milestone in the set is Approved. An
// empty set is vacuously complete; callers decide whether a milestone-less
// gift may exist at all.
func AllApproved(milestones []*Milestone) bool {
	for _, m := range milestones {
		if m.Status != MilestoneApproved {
			return false
		}
	}
	return true
}
