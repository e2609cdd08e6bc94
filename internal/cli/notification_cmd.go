package cli

import (
	"context"
	"fmt"

	"github.com/giftforge/giftforge/internal/cli/formatter"
	"github.com/giftforge/giftforge/internal/service"
	"github.com/spf13/cobra"
)

func newNotificationsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "Read and acknowledge notifications",
	}

	cmd.AddCommand(
		newNotificationsListCmd(app),
		newNotificationsReadCmd(app),
	)

	return cmd
}

func newNotificationsListCmd(app *App) *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List unread notifications for a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			notifications, err := app.Notifications.UnreadForUser(context.Background(), user)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatNotifications(notifications))
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", service.DefaultGrandparentID, "Recipient user ID")

	return cmd
}

func newNotificationsReadCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "read ID",
		Short: "Mark a notification as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.Notifications.MarkRead(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Marked read: %s\n", n.Message)
			return nil
		},
	}
}
