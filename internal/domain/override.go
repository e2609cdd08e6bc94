package domain

import "time"

// OverrideWindowDays is the fixed length of the post-decision objection
// period opened for every gift.
const OverrideWindowDays = 7

// OverrideWindow is a fixed objection window attached to a gift. Expiry is
// a derived observation, not an enforced transition: no sweeper moves Open
// windows to Expired.
type OverrideWindow struct {
	ID        string
	GiftID    string
	CreatedAt time.Time
	ExpiresAt time.Time
	Status    OverrideStatus
}

// Expired reports whether the window has lapsed as of now. The stored
// Status is not consulted; an Open window past its expiry is expired.
func (w *OverrideWindow) Expired(now time.Time) bool {
	return now.After(w.ExpiresAt)
}

// NewOverrideWindow builds an Open window for the gift starting at now.
func NewOverrideWindow(id, giftID string, now time.Time) *OverrideWindow {
	return &OverrideWindow{
		ID:        id,
		GiftID:    giftID,
		CreatedAt: now,
		ExpiresAt: now.AddDate(0, 0, OverrideWindowDays),
		Status:    OverrideOpen,
	}
}
