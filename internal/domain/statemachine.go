package domain

import (
	"fmt"
	"strings"
)

// giftTransitions is the full transition policy for gift statuses, kept as
// data so the table can be audited and tested for exhaustiveness. Target
// slices are ordered; an empty slice marks a terminal state. The map is
// built once at init and never mutated.
var giftTransitions = map[GiftStatus][]GiftStatus{
	GiftDraft:       {GiftActive},
	GiftActive:      {GiftUnderReview, GiftCompleted},
	GiftUnderReview: {GiftApproved, GiftRejected},
	GiftApproved:    {GiftActive, GiftCompleted},
	GiftRejected:    {GiftActive, GiftRedirected},
	GiftRedirected:  {},
	GiftCompleted:   {},
}

// InvalidTransitionError reports a gift status change that the transition
// table does not permit. Allowed carries the legal targets for the current
// status so callers can surface actionable errors; it is empty for terminal
// states and nil when the current status has no table entry at all.
type InvalidTransitionError struct {
	From    GiftStatus
	To      GiftStatus
	Allowed []GiftStatus
	NoRule  bool
}

func (e *InvalidTransitionError) Error() string {
	if e.NoRule {
		return fmt.Sprintf("no transition rule defined for status %q", e.From)
	}
	targets := "none"
	if len(e.Allowed) > 0 {
		names := make([]string, len(e.Allowed))
		for i, s := range e.Allowed {
			names[i] = string(s)
		}
		targets = strings.Join(names, ", ")
	}
	return fmt.Sprintf("invalid transition from %q to %q (valid targets: %s)", e.From, e.To, targets)
}

// ValidateTransition returns nil iff the transition table allows moving a
// gift from current to next. Self-transitions are never allowed, terminal
// states allow nothing.
func ValidateTransition(current, next GiftStatus) error {
	targets, ok := giftTransitions[current]
	if !ok {
		return &InvalidTransitionError{From: current, To: next, NoRule: true}
	}
	for _, t := range targets {
		if t == next {
			return nil
		}
	}
	return &InvalidTransitionError{From: current, To: next, Allowed: targets}
}

// AllowedTransitions returns the legal target statuses for current, in table
// order. Terminal and unknown statuses yield an empty slice; the lookup
// never fails.
func AllowedTransitions(current GiftStatus) []GiftStatus {
	targets := giftTransitions[current]
	out := make([]GiftStatus, len(targets))
	copy(out, targets)
	return out
}
