package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/giftforge/giftforge/internal/cli/formatter"
	"github.com/giftforge/giftforge/internal/domain"
	"github.com/giftforge/giftforge/internal/service"
	"github.com/spf13/cobra"
)

func newMediaCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "media",
		Short: "Attach and list gift media",
	}

	cmd.AddCommand(
		newMediaAttachCmd(app),
		newMediaListCmd(app),
	)

	return cmd
}

func newMediaAttachCmd(app *App) *cobra.Command {
	var gift, uploader, mediaType string

	cmd := &cobra.Command{
		Use:   "attach FILE",
		Short: "Attach a media file to a gift",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			giftID, err := resolveGiftID(ctx, app, gift)
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			msg, err := app.Media.Attach(ctx, giftID, uploader,
				domain.MediaType(mediaType), filepath.Base(args[0]), f)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Attached %s media %s to gift %s\n",
				msg.Type, msg.ID[:8], giftID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&gift, "gift", "", "Gift ID")
	cmd.Flags().StringVar(&uploader, "uploader", service.DefaultGrandparentID, "Uploader user ID")
	cmd.Flags().StringVar(&mediaType, "type", string(domain.MediaPhoto), "Media type (text|photo|audio|video)")
	_ = cmd.MarkFlagRequired("gift")

	return cmd
}

func newMediaListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list GIFT_ID",
		Short: "List media attached to a gift",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			giftID, err := resolveGiftID(ctx, app, args[0])
			if err != nil {
				return err
			}
			messages, err := app.Media.ListForGift(ctx, giftID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatMedia(messages))
			return nil
		},
	}
}
