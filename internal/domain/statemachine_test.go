package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTransition_AllowedPairs(t *testing.T) {
	allowed := []struct {
		from, to GiftStatus
	}{
		{GiftDraft, GiftActive},
		{GiftActive, GiftUnderReview},
		{GiftActive, GiftCompleted},
		{GiftUnderReview, GiftApproved},
		{GiftUnderReview, GiftRejected},
		{GiftApproved, GiftActive},
		{GiftApproved, GiftCompleted},
		{GiftRejected, GiftActive},
		{GiftRejected, GiftRedirected},
	}
	for _, pair := range allowed {
		assert.NoError(t, ValidateTransition(pair.from, pair.to),
			"%s -> %s should be allowed", pair.from, pair.to)
	}
}

// Every (from, to) pair not in the table must fail, including every
// self-transition.
func TestValidateTransition_DeniesEverythingElse(t *testing.T) {
	allowed := map[GiftStatus]map[GiftStatus]bool{
		GiftDraft:       {GiftActive: true},
		GiftActive:      {GiftUnderReview: true, GiftCompleted: true},
		GiftUnderReview: {GiftApproved: true, GiftRejected: true},
		GiftApproved:    {GiftActive: true, GiftCompleted: true},
		GiftRejected:    {GiftActive: true, GiftRedirected: true},
	}
	for _, from := range AllGiftStatuses {
		for _, to := range AllGiftStatuses {
			if allowed[from][to] {
				continue
			}
			err := ValidateTransition(from, to)
			require.Error(t, err, "%s -> %s must be denied", from, to)

			var transErr *InvalidTransitionError
			require.True(t, errors.As(err, &transErr))
			assert.Equal(t, from, transErr.From)
			assert.Equal(t, to, transErr.To)
			assert.False(t, transErr.NoRule, "every declared status has a rule")
		}
	}
}

func TestValidateTransition_NoSelfTransitions(t *testing.T) {
	for _, s := range AllGiftStatuses {
		assert.Error(t, ValidateTransition(s, s), "%s -> %s must be denied", s, s)
	}
}

func TestValidateTransition_UnknownStatus(t *testing.T) {
	err := ValidateTransition(GiftStatus("Bogus"), GiftActive)
	require.Error(t, err)

	var transErr *InvalidTransitionError
	require.True(t, errors.As(err, &transErr))
	assert.True(t, transErr.NoRule)
	assert.Contains(t, err.Error(), "no transition rule")
}

func TestValidateTransition_TerminalErrorRendersNone(t *testing.T) {
	err := ValidateTransition(GiftCompleted, GiftActive)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "valid targets: none")
}

func TestAllowedTransitions_TerminalStatesAreEmpty(t *testing.T) {
	assert.Empty(t, AllowedTransitions(GiftCompleted))
	assert.Empty(t, AllowedTransitions(GiftRedirected))
	assert.Empty(t, AllowedTransitions(GiftStatus("Bogus")))
}

func TestAllowedTransitions_ReturnsCopy(t *testing.T) {
	first := AllowedTransitions(GiftActive)
	require.Equal(t, []GiftStatus{GiftUnderReview, GiftCompleted}, first)

	first[0] = GiftDraft
	assert.Equal(t, []GiftStatus{GiftUnderReview, GiftCompleted}, AllowedTransitions(GiftActive),
		"mutating the returned slice must not corrupt the table")
}

// Table shape checks: every declared status is a key, every non-terminal key
// has targets, and every target appears as a key itself.
func TestTransitionTable_Exhaustive(t *testing.T) {
	for _, s := range AllGiftStatuses {
		_, ok := giftTransitions[s]
		assert.True(t, ok, "status %s missing from transition table", s)
	}
	require.Len(t, giftTransitions, len(AllGiftStatuses))

	declared := make(map[GiftStatus]bool, len(AllGiftStatuses))
	for _, s := range AllGiftStatuses {
		declared[s] = true
	}
	for from, targets := range giftTransitions {
		for _, to := range targets {
			assert.True(t, declared[to], "target %s of %s is not a declared status", to, from)
			assert.NotEqual(t, from, to, "self-transition in table for %s", from)
		}
	}
}
