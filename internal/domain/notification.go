package domain

import "time"

// Notification is an at-most-once event record delivered to a single user.
// Immutable after creation except for Read, which flips false to true on
// explicit acknowledgment. Notifications outlive the gift that triggered
// them; deleting a gift never cleans them up.
type Notification struct {
	ID          string
	RecipientID string
	Role        UserRole
	EventType   string
	Message     string
	Read        bool
	ActionURL   *string
	CreatedAt   time.Time
}

// MediaMessage is a stored media artifact (photo, audio, video, or text)
// attached to a gift by one of the parties. The file itself lives on disk
// under the configured media directory.
type MediaMessage struct {
	ID         string
	GiftID     string
	UploaderID string
	Type       MediaType
	FilePath   string
	CreatedAt  time.Time
}
