package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/giftforge/giftforge/internal/cli/formatter"
	"github.com/giftforge/giftforge/internal/domain"
	"github.com/giftforge/giftforge/internal/service"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newGiftCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gift",
		Short: "Manage gifts",
	}

	cmd.AddCommand(
		newGiftCreateCmd(app),
		newGiftListCmd(app),
		newGiftInspectCmd(app),
		newGiftStatusCmd(app),
		newGiftAllowedCmd(app),
		newGiftRemoveCmd(app),
	)

	return cmd
}

// parseMilestoneFlags turns repeated "Type=Percentage" flags into milestone
// definitions.
func parseMilestoneFlags(specs []string) ([]service.MilestoneDefinition, error) {
	var defs []service.MilestoneDefinition
	for _, spec := range specs {
		parts := strings.SplitN(spec, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid --milestone format %q, expected TYPE=PERCENT", spec)
		}
		pct, err := strconv.Atoi(parts[1])
		if err != nil || pct <= 0 || pct > 100 {
			return nil, fmt.Errorf("invalid milestone percentage %q, expected 1-100", parts[1])
		}
		defs = append(defs, service.MilestoneDefinition{Type: parts[0], Percentage: pct})
	}
	return defs, nil
}

func newGiftCreateCmd(app *App) *cobra.Command {
	var grandparent, grandchild, name, message, amount, currency, risk, rule, charity string
	var milestones []string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new gift",
		RunE: func(cmd *cobra.Command, args []string) error {
			corpus, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", amount, err)
			}

			defs, err := parseMilestoneFlags(milestones)
			if err != nil {
				return err
			}

			proposal := service.GiftProposal{
				GrandchildID:   grandchild,
				GrandchildName: name,
				Message:        message,
				Corpus:         corpus,
				Currency:       domain.Currency(currency),
				RiskProfile:    domain.RiskProfile(risk),
				RuleType:       domain.RuleType(rule),
				Milestones:     defs,
			}
			if charity != "" {
				proposal.FallbackNGOID = &charity
			}

			gift, err := app.Gifts.CreateGift(context.Background(), grandparent, proposal)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created gift %s for %s (%s)\n",
				gift.DisplayID(), gift.GrandchildName, formatter.Money(gift.Corpus, gift.Currency))
			return nil
		},
	}

	cmd.Flags().StringVar(&grandparent, "grandparent", service.DefaultGrandparentID, "Grandparent user ID")
	cmd.Flags().StringVar(&grandchild, "grandchild", service.DefaultGrandchildID, "Grandchild user ID")
	cmd.Flags().StringVar(&name, "name", "", "Grandchild display name")
	cmd.Flags().StringVar(&message, "message", "", "Personal message")
	cmd.Flags().StringVar(&amount, "amount", "", "Gift corpus, e.g. 10000 or 2500.50")
	cmd.Flags().StringVar(&currency, "currency", "", "Currency (USD|INR), defaults to USD")
	cmd.Flags().StringVar(&risk, "risk", "", "Risk profile (Conservative|Balanced|Growth), defaults to Balanced")
	cmd.Flags().StringVar(&rule, "rule", "", "Rule type (Time|Milestone|Behavior), defaults to Milestone")
	cmd.Flags().StringVar(&charity, "charity", "", "Fallback NGO ID for missed conditions")
	cmd.Flags().StringArrayVar(&milestones, "milestone", nil, "Milestone (TYPE=PERCENT), repeatable")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newGiftListCmd(app *App) *cobra.Command {
	var user string
	var asGrandchild bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List gifts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if user == "" {
				user = service.DefaultGrandparentID
				if asGrandchild {
					user = service.DefaultGrandchildID
				}
			}

			views, err := app.Gifts.ListByUser(context.Background(), user, !asGrandchild)
			if err != nil {
				return err
			}

			if len(views) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No gifts found.")
				return nil
			}

			rows := make([]formatter.GiftRow, 0, len(views))
			for _, v := range views {
				rows = append(rows, formatter.GiftRow{Gift: v.Gift, Milestones: v.Milestones})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatGiftList(rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "User ID to list for (defaults to the demo grandparent)")
	cmd.Flags().BoolVar(&asGrandchild, "received", false, "List gifts received as grandchild")

	return cmd
}

func newGiftInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show gift details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			giftID, err := resolveGiftID(ctx, app, args[0])
			if err != nil {
				return err
			}
			detail, err := app.Gifts.Inspect(ctx, giftID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n",
				formatter.FormatGiftInspect(detail.Gift, detail.Milestones, detail.Override))
			return nil
		},
	}
}

func newGiftStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status ID NEXT",
		Short: "Move a gift to the next status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			giftID, err := resolveGiftID(ctx, app, args[0])
			if err != nil {
				return err
			}
			gift, err := app.Gifts.UpdateStatus(ctx, giftID, domain.GiftStatus(args[1]))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Gift %s is now %s\n", gift.DisplayID(), gift.Status)
			return nil
		},
	}
}

func newGiftAllowedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "allowed ID",
		Short: "Show the statuses a gift may move to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			giftID, err := resolveGiftID(ctx, app, args[0])
			if err != nil {
				return err
			}
			allowed, err := app.Gifts.AllowedNextStates(ctx, giftID)
			if err != nil {
				return err
			}
			if len(allowed) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No further transitions (terminal status).")
				return nil
			}
			targets := make([]string, 0, len(allowed))
			for _, s := range allowed {
				targets = append(targets, string(s))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Allowed: %s\n", strings.Join(targets, ", "))
			return nil
		},
	}
}

func newGiftRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a gift and everything it owns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			giftID, err := resolveGiftID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Gifts.DeleteGift(ctx, giftID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed gift %s\n", giftID)
			return nil
		},
	}
}
