package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/giftforge/giftforge/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// GiftStatusPill returns a colored status indicator for a gift status.
func GiftStatusPill(status domain.GiftStatus) string {
	switch status {
	case domain.GiftDraft:
		return StyleDim.Render("○ Draft")
	case domain.GiftActive:
		return StyleGreen.Render("● Active")
	case domain.GiftUnderReview:
		return StyleYellow.Render("◐ Under Review")
	case domain.GiftApproved:
		return StyleBlue.Render("● Approved")
	case domain.GiftRejected:
		return StyleRed.Render("✖ Rejected")
	case domain.GiftRedirected:
		return StylePurple.Render("→ Redirected")
	case domain.GiftCompleted:
		return StyleDim.Render("✔ Completed")
	default:
		return StyleDim.Render(string(status))
	}
}

// MilestonePill returns a colored status indicator for a milestone status.
func MilestonePill(status domain.MilestoneStatus) string {
	switch status {
	case domain.MilestonePending:
		return StyleBlue.Render("○ Pending")
	case domain.MilestoneSubmitted:
		return StyleYellow.Render("◐ Submitted")
	case domain.MilestoneApproved:
		return StyleGreen.Render("✔ Approved")
	case domain.MilestoneRejected:
		return StyleRed.Render("✖ Rejected")
	default:
		return StyleDim.Render(string(status))
	}
}

// RiskBadge returns a colored risk-profile label.
func RiskBadge(profile domain.RiskProfile) string {
	switch profile {
	case domain.RiskConservative:
		return StyleBlue.Render("Conservative")
	case domain.RiskBalanced:
		return StyleYellow.Render("Balanced")
	case domain.RiskGrowth:
		return StyleRed.Render("Growth")
	default:
		return StyleDim.Render(string(profile))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
