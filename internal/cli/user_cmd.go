package cli

import (
	"context"
	"fmt"

	"github.com/giftforge/giftforge/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newUsersCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List users (seeds the demo family on first run)",
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := app.Users.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatUsers(users))
			return nil
		},
	}
}
