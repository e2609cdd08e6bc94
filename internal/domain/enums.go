package domain

type UserRole string

const (
	RoleGrandparent UserRole = "grandparent"
	RoleGrandchild  UserRole = "grandchild"
	RoleTrustee     UserRole = "trustee"
)

type GiftStatus string

const (
	GiftDraft       GiftStatus = "Draft"
	GiftActive      GiftStatus = "Active"
	GiftUnderReview GiftStatus = "Under Review"
	GiftApproved    GiftStatus = "Approved"
	GiftRejected    GiftStatus = "Rejected"
	GiftRedirected  GiftStatus = "Redirected"
	GiftCompleted   GiftStatus = "Completed"
)

type MilestoneStatus string

const (
	MilestonePending   MilestoneStatus = "Pending"
	MilestoneSubmitted MilestoneStatus = "Submitted"
	MilestoneApproved  MilestoneStatus = "Approved"
	MilestoneRejected  MilestoneStatus = "Rejected"
)

type RiskProfile string

const (
	RiskConservative RiskProfile = "Conservative"
	RiskBalanced     RiskProfile = "Balanced"
	RiskGrowth       RiskProfile = "Growth"
)

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyINR Currency = "INR"
)

type RuleType string

const (
	RuleTime      RuleType = "Time"
	RuleMilestone RuleType = "Milestone"
	RuleBehavior  RuleType = "Behavior"
)

type MediaType string

const (
	MediaText  MediaType = "text"
	MediaPhoto MediaType = "photo"
	MediaAudio MediaType = "audio"
	MediaVideo MediaType = "video"
)

type OverrideStatus string

const (
	OverrideOpen       OverrideStatus = "Open"
	OverrideOverridden OverrideStatus = "Overridden"
	OverrideExpired    OverrideStatus = "Expired"
)

// ValidRiskProfiles is the canonical set of accepted risk profile strings.
var ValidRiskProfiles = map[string]bool{
	"Conservative": true, "Balanced": true, "Growth": true,
}

// ValidRuleTypes is the canonical set of accepted rule type strings.
var ValidRuleTypes = map[string]bool{
	"Time": true, "Milestone": true, "Behavior": true,
}

// ValidMediaTypes is the canonical set of accepted media type strings.
var ValidMediaTypes = map[string]bool{
	"text": true, "photo": true, "audio": true, "video": true,
}

// AllGiftStatuses lists every declared gift status. Used by the state machine
// exhaustiveness checks and CLI completion.
var AllGiftStatuses = []GiftStatus{
	GiftDraft, GiftActive, GiftUnderReview, GiftApproved,
	GiftRejected, GiftRedirected, GiftCompleted,
}
