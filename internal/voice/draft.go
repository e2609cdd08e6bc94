package voice

import (
	"errors"
	"fmt"

	"github.com/giftforge/giftforge/internal/domain"
	"github.com/giftforge/giftforge/internal/service"
	"github.com/shopspring/decimal"
)

// ErrLowConfidence indicates the parsed draft did not meet the configured
// confidence threshold and should be re-collected conversationally.
var ErrLowConfidence = errors.New("draft confidence below threshold")

// RuleDetail captures the disbursement condition attached to a rule type:
// a release age for Time, a milestone name for Milestone, a behavior
// condition for Behavior.
type RuleDetail struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// GiftDraft is the structured gift extracted from free-form speech or text.
// Status is "confirmed" only on the final turn of a conversation.
type GiftDraft struct {
	GrandchildName  string     `json:"grandchild_name"`
	RuleType        string     `json:"rule_type"`
	RuleDetail      RuleDetail `json:"rule_detail"`
	RiskProfile     string     `json:"risk_profile"`
	Corpus          float64    `json:"corpus"`
	Currency        string     `json:"currency"`
	CharityFallback bool       `json:"charity_fallback"`
	Message         string     `json:"message"`
	Status          string     `json:"status,omitempty"`
	Confidence      float64    `json:"confidence,omitempty"`
}

func validateGiftDraft(d GiftDraft) error {
	if d.GrandchildName == "" {
		return fmt.Errorf("grandchild_name is required")
	}
	if !domain.ValidRuleTypes[d.RuleType] {
		return fmt.Errorf("unknown rule_type: %q", d.RuleType)
	}
	if !domain.ValidRiskProfiles[d.RiskProfile] {
		return fmt.Errorf("unknown risk_profile: %q", d.RiskProfile)
	}
	if d.Corpus < 0 {
		return fmt.Errorf("corpus must be non-negative, got %f", d.Corpus)
	}
	if d.Currency != "" && d.Currency != string(domain.CurrencyUSD) && d.Currency != string(domain.CurrencyINR) {
		return fmt.Errorf("unknown currency: %q", d.Currency)
	}
	if d.Confidence < 0 || d.Confidence > 1 {
		return fmt.Errorf("confidence must be in [0,1], got %f", d.Confidence)
	}
	return nil
}

// ToProposal converts a draft into a gift proposal for the given grandchild.
// Milestone-rule drafts get a single 100% milestone from the rule detail.
func (d *GiftDraft) ToProposal(grandchildID string) service.GiftProposal {
	p := service.GiftProposal{
		GrandchildID:   grandchildID,
		GrandchildName: d.GrandchildName,
		Message:        d.Message,
		Corpus:         decimal.NewFromFloat(d.Corpus),
		Currency:       domain.Currency(d.Currency),
		RiskProfile:    domain.RiskProfile(d.RiskProfile),
		RuleType:       domain.RuleType(d.RuleType),
	}
	if p.Currency == "" {
		p.Currency = domain.CurrencyUSD
	}
	if d.RuleType == string(domain.RuleMilestone) && d.RuleDetail.Value != "" {
		p.Milestones = []service.MilestoneDefinition{
			{Type: d.RuleDetail.Value, Percentage: 100},
		}
	}
	return p
}
