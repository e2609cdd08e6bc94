package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Gift is a funding agreement from a grandparent to a grandchild. The corpus
// is released according to the gift's rule type; milestone-gated gifts own a
// set of Milestones whose collective approval completes the gift.
type Gift struct {
	ID             string
	GrandparentID  string
	GrandchildID   string
	GrandchildName string
	Message        string
	Corpus         decimal.Decimal
	Currency       Currency
	Status         GiftStatus
	RiskProfile    RiskProfile
	RuleType       RuleType
	FallbackNGOID  *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Validate checks the structural invariants a gift must hold before it is
// persisted. Status membership is enforced elsewhere by the transition table.
func (g *Gift) Validate() error {
	if g.GrandparentID == "" {
		return fmt.Errorf("grandparent id is required")
	}
	if g.GrandchildID == "" {
		return fmt.Errorf("grandchild id is required")
	}
	if g.Corpus.IsNegative() {
		return fmt.Errorf("corpus must be non-negative, got %s", g.Corpus)
	}
	return nil
}

// DisplayID returns a short identifier for CLI output.
func (g *Gift) DisplayID() string {
	if len(g.ID) >= 8 {
		return g.ID[:8]
	}
	return g.ID
}

type User struct {
	ID        string
	Name      string
	Role      UserRole
	CreatedAt time.Time
}
