package cli

import (
	"context"
	"fmt"

	"github.com/giftforge/giftforge/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTrusteeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trustee",
		Short: "Trustee disbursement actions",
	}

	cmd.AddCommand(newTrusteeApproveCmd(app))

	return cmd
}

func newTrusteeApproveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "approve MILESTONE_ID",
		Short: "Approve a milestone and disburse its share",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("milestone ID is required")
			}

			milestone, err := app.Trustee.ApproveMilestone(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Approved milestone %q (%d%% of gift %s)\n",
				milestone.Type, milestone.Percentage, milestone.GiftID[:8])

			detail, err := app.Gifts.Inspect(context.Background(), milestone.GiftID)
			if err != nil {
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Gift status: %s\n", formatter.GiftStatusPill(detail.Gift.Status))
			return nil
		},
	}
}
