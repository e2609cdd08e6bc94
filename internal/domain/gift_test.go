package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGiftValidate(t *testing.T) {
	gift := &Gift{
		GrandparentID: "gp",
		GrandchildID:  "gc",
		Corpus:        decimal.NewFromInt(10000),
	}
	require.NoError(t, gift.Validate())

	gift.Corpus = decimal.NewFromInt(-1)
	assert.Error(t, gift.Validate())

	gift.Corpus = decimal.Zero
	assert.NoError(t, gift.Validate(), "zero corpus is allowed")

	gift.GrandchildID = ""
	assert.Error(t, gift.Validate())
}

func TestOverrideWindow_DerivedExpiry(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	w := NewOverrideWindow("w1", "g1", now)

	assert.Equal(t, OverrideOpen, w.Status)
	assert.Equal(t, now.AddDate(0, 0, 7), w.ExpiresAt)

	assert.False(t, w.Expired(now))
	assert.False(t, w.Expired(now.AddDate(0, 0, 7)))
	assert.True(t, w.Expired(now.AddDate(0, 0, 7).Add(time.Second)))
}
