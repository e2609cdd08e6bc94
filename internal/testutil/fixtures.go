package testutil

import (
	"time"

	"github.com/giftforge/giftforge/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// User options

func NewTestUser(name string, role domain.UserRole) *domain.User {
	return &domain.User{
		ID:        uuid.New().String(),
		Name:      name,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
}

// Gift options

type GiftOption func(*domain.Gift)

func WithGiftStatus(s domain.GiftStatus) GiftOption {
	return func(g *domain.Gift) {
		g.Status = s
	}
}

func WithCorpus(amount int64) GiftOption {
	return func(g *domain.Gift) {
		g.Corpus = decimal.NewFromInt(amount)
	}
}

func WithRiskProfile(p domain.RiskProfile) GiftOption {
	return func(g *domain.Gift) {
		g.RiskProfile = p
	}
}

func WithFallbackNGO(id string) GiftOption {
	return func(g *domain.Gift) {
		g.FallbackNGOID = &id
	}
}

func NewTestGift(grandparentID, grandchildID string, opts ...GiftOption) *domain.Gift {
	now := time.Now().UTC()
	g := &domain.Gift{
		ID:             uuid.New().String(),
		GrandparentID:  grandparentID,
		GrandchildID:   grandchildID,
		GrandchildName: "Arjun",
		Corpus:         decimal.NewFromInt(10000),
		Currency:       domain.CurrencyUSD,
		Status:         domain.GiftActive,
		RiskProfile:    domain.RiskBalanced,
		RuleType:       domain.RuleMilestone,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Milestone options

type MilestoneOption func(*domain.Milestone)

func WithMilestoneStatus(s domain.MilestoneStatus) MilestoneOption {
	return func(m *domain.Milestone) {
		m.Status = s
	}
}

func NewTestMilestone(giftID, milestoneType string, percentage int, opts ...MilestoneOption) *domain.Milestone {
	m := &domain.Milestone{
		ID:         uuid.New().String(),
		GiftID:     giftID,
		Type:       milestoneType,
		Percentage: percentage,
		Status:     domain.MilestonePending,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func NewTestNotification(recipientID string, role domain.UserRole, eventType string) *domain.Notification {
	return &domain.Notification{
		ID:          uuid.New().String(),
		RecipientID: recipientID,
		Role:        role,
		EventType:   eventType,
		Message:     "test notification",
		CreatedAt:   time.Now().UTC(),
	}
}
