package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/giftforge/giftforge/internal/domain"
	"github.com/giftforge/giftforge/internal/simulation"
)

// GiftRow pairs a gift with its milestone set for list rendering.
type GiftRow struct {
	Gift       *domain.Gift
	Milestones []*domain.Milestone
}

// FormatGiftList renders a table of gifts with milestone progress.
func FormatGiftList(rows []GiftRow) string {
	headers := []string{"ID", "GRANDCHILD", "AMOUNT", "RULE", "RISK", "MILESTONES", "STATUS"}
	var data [][]string
	for _, r := range rows {
		g := r.Gift
		approved := 0
		for _, m := range r.Milestones {
			if m.Status == domain.MilestoneApproved {
				approved++
			}
		}
		progress := Dim("--")
		if len(r.Milestones) > 0 {
			progress = fmt.Sprintf("%d/%d approved", approved, len(r.Milestones))
		}
		data = append(data, []string{
			TruncID(g.ID),
			g.GrandchildName,
			Money(g.Corpus, g.Currency),
			string(g.RuleType),
			RiskBadge(g.RiskProfile),
			progress,
			GiftStatusPill(g.Status),
		})
	}
	return RenderTable(headers, data)
}

// FormatGiftInspect renders a full gift detail view with milestones and the
// override window when present.
func FormatGiftInspect(g *domain.Gift, milestones []*domain.Milestone, window *domain.OverrideWindow) string {
	var b strings.Builder

	b.WriteString(Header("Gift " + g.DisplayID()))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", Bold("Grandchild:"), g.GrandchildName)
	fmt.Fprintf(&b, "%s %s\n", Bold("Amount:"), Money(g.Corpus, g.Currency))
	fmt.Fprintf(&b, "%s %s\n", Bold("Rule:"), string(g.RuleType))
	fmt.Fprintf(&b, "%s %s\n", Bold("Risk:"), RiskBadge(g.RiskProfile))
	fmt.Fprintf(&b, "%s %s\n", Bold("Status:"), GiftStatusPill(g.Status))
	if g.Message != "" {
		fmt.Fprintf(&b, "%s %s\n", Bold("Message:"), g.Message)
	}
	if g.FallbackNGOID != nil {
		fmt.Fprintf(&b, "%s %s\n", Bold("Charity fallback:"), *g.FallbackNGOID)
	}
	fmt.Fprintf(&b, "%s %s\n", Bold("Created:"), HumanDate(g.CreatedAt))

	if len(milestones) > 0 {
		b.WriteString("\n")
		b.WriteString(FormatMilestones(milestones))
	}

	if window != nil {
		b.WriteString("\n")
		b.WriteString(Header("Override window"))
		b.WriteString("\n")
		state := string(window.Status)
		if window.Status == domain.OverrideOpen && window.Expired(time.Now()) {
			state = string(domain.OverrideExpired)
		}
		fmt.Fprintf(&b, "%s %s %s\n", state, Dim("expires"), HumanDate(window.ExpiresAt))
	}

	return b.String()
}

// FormatMilestones renders a milestone table.
func FormatMilestones(milestones []*domain.Milestone) string {
	headers := []string{"ID", "TYPE", "SHARE", "STATUS"}
	var rows [][]string
	for _, m := range milestones {
		rows = append(rows, []string{
			TruncID(m.ID),
			m.Type,
			fmt.Sprintf("%d%%", m.Percentage),
			MilestonePill(m.Status),
		})
	}
	return RenderTable(headers, rows)
}

// FormatNotifications renders an unread-notification table.
func FormatNotifications(notifications []*domain.Notification) string {
	if len(notifications) == 0 {
		return Dim("No unread notifications.")
	}
	headers := []string{"ID", "EVENT", "MESSAGE", "WHEN"}
	var rows [][]string
	for _, n := range notifications {
		rows = append(rows, []string{
			TruncID(n.ID),
			StylePurple.Render(n.EventType),
			n.Message,
			Dim(HumanTimestamp(n.CreatedAt)),
		})
	}
	return RenderTable(headers, rows)
}

// FormatUsers renders the user table.
func FormatUsers(users []*domain.User) string {
	headers := []string{"ID", "NAME", "ROLE"}
	var rows [][]string
	for _, u := range users {
		rows = append(rows, []string{
			Dim(u.ID),
			u.Name,
			string(u.Role),
		})
	}
	return RenderTable(headers, rows)
}

// FormatMedia renders attached media for a gift.
func FormatMedia(messages []*domain.MediaMessage) string {
	if len(messages) == 0 {
		return Dim("No media attached.")
	}
	headers := []string{"ID", "TYPE", "FILE", "WHEN"}
	var rows [][]string
	for _, m := range messages {
		rows = append(rows, []string{
			TruncID(m.ID),
			string(m.Type),
			m.FilePath,
			Dim(HumanTimestamp(m.CreatedAt)),
		})
	}
	return RenderTable(headers, rows)
}

// FormatProjection renders a growth projection as a year-by-year table.
func FormatProjection(points []simulation.Point, currency domain.Currency) string {
	headers := []string{"YEAR", "VALUE"}
	var rows [][]string
	for _, p := range points {
		rows = append(rows, []string{
			p.Label,
			Money(p.Value, currency),
		})
	}
	return RenderTable(headers, rows)
}
