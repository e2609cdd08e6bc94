package service

import (
	"context"
	"io"

	"github.com/giftforge/giftforge/internal/domain"
	"github.com/shopspring/decimal"
)

// Fixed demo party ids. The trustee is ensured at gift creation; the
// grandparent and grandchild are the CLI's default actors.
const (
	DefaultGrandparentID = "11111111-1111-1111-1111-111111111111"
	DefaultGrandchildID  = "22222222-2222-2222-2222-222222222222"
	DefaultTrusteeID     = "33333333-3333-3333-3333-333333333333"
)

// MilestoneDefinition is a caller-supplied milestone in a gift proposal.
type MilestoneDefinition struct {
	Type       string
	Percentage int
}

// GiftProposal is the input to gift creation.
type GiftProposal struct {
	GrandchildID   string
	GrandchildName string
	Message        string
	Corpus         decimal.Decimal
	Currency       domain.Currency
	RiskProfile    domain.RiskProfile
	RuleType       domain.RuleType
	FallbackNGOID  *string
	Milestones     []MilestoneDefinition
}

// GiftView is a gift with its milestone set attached, for listings.
type GiftView struct {
	Gift       *domain.Gift
	Milestones []*domain.Milestone
}

// GiftDetail is the full inspect view: gift, milestones, and the override
// window when one exists.
type GiftDetail struct {
	Gift       *domain.Gift
	Milestones []*domain.Milestone
	Override   *domain.OverrideWindow
}

type GiftService interface {
	// CreateGift creates the gift directly in Active status with Pending
	// milestones and an Open override window, lazily ensuring the party
	// users exist. Emits gift_created / gift_received notifications
	// best-effort.
	CreateGift(ctx context.Context, grandparentID string, proposal GiftProposal) (*domain.Gift, error)

	GetByID(ctx context.Context, id string) (*domain.Gift, error)

	// Inspect loads the gift with its milestones and override window.
	Inspect(ctx context.Context, giftID string) (*GiftDetail, error)

	// UpdateStatus drives a gift through the state machine; the only path
	// to Under Review, Approved, Rejected, and Redirected.
	UpdateStatus(ctx context.Context, giftID string, next domain.GiftStatus) (*domain.Gift, error)

	// DeleteGift removes a gift in any status, cascading to owned
	// milestones, media, and override window.
	DeleteGift(ctx context.Context, giftID string) error

	AllowedNextStates(ctx context.Context, giftID string) ([]domain.GiftStatus, error)

	ListByUser(ctx context.Context, userID string, asGrandparent bool) ([]*GiftView, error)
}

type TrusteeService interface {
	// ApproveMilestone marks the milestone Approved and, when that makes
	// the gift's milestone set fully approved, completes the gift through
	// the state machine. The milestone write persists even when the gift
	// cannot legally complete; in that case the transition error is
	// returned and the gift is left untouched.
	ApproveMilestone(ctx context.Context, milestoneID string) (*domain.Milestone, error)
}

// NotificationSink accepts fire-and-forget delivery requests. Workflow
// callers log and swallow its errors; a sink failure never aborts the
// triggering operation.
type NotificationSink interface {
	Send(ctx context.Context, recipientID string, role domain.UserRole, eventType, message string, actionURL *string) (*domain.Notification, error)
}

type NotificationService interface {
	NotificationSink
	UnreadForUser(ctx context.Context, userID string) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, notificationID string) (*domain.Notification, error)
}

type UserService interface {
	// List returns all users, seeding the demo trio on an empty store.
	List(ctx context.Context) ([]*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type MediaService interface {
	// Attach stores the byte stream under the media directory and records
	// a MediaMessage row for the gift.
	Attach(ctx context.Context, giftID, uploaderID string, mediaType domain.MediaType, filename string, r io.Reader) (*domain.MediaMessage, error)
	ListForGift(ctx context.Context, giftID string) ([]*domain.MediaMessage, error)
}
