package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/giftforge/giftforge/internal/cli/formatter"
	"github.com/giftforge/giftforge/internal/service"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newVoiceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "voice",
		Short: "Create gifts from natural language",
	}

	cmd.AddCommand(
		newVoiceParseCmd(app),
		newVoiceChatCmd(app),
	)

	return cmd
}

func requireVoice(app *App) error {
	if app.Voice == nil {
		return fmt.Errorf("voice features are disabled; set GIFTFORGE_LLM_ENABLED=true and run an Ollama server")
	}
	return nil
}

func newVoiceParseCmd(app *App) *cobra.Command {
	var create bool

	cmd := &cobra.Command{
		Use:   "parse TEXT",
		Short: "Parse a one-shot gift description",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireVoice(app); err != nil {
				return err
			}

			ctx := context.Background()
			draft, err := app.Voice.ParseGiftDraft(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", formatter.Header("Parsed draft"))
			fmt.Fprintf(out, "Grandchild:  %s\n", draft.GrandchildName)
			fmt.Fprintf(out, "Rule:        %s -> %s\n", draft.RuleType, draft.RuleDetail.Value)
			fmt.Fprintf(out, "Risk:        %s\n", draft.RiskProfile)
			fmt.Fprintf(out, "Amount:      %.2f %s\n", draft.Corpus, draft.Currency)
			fmt.Fprintf(out, "Confidence:  %.0f%%\n", draft.Confidence*100)

			if !create {
				fmt.Fprintln(out, formatter.Dim("Re-run with --create to create this gift."))
				return nil
			}

			gift, err := app.Gifts.CreateGift(ctx, service.DefaultGrandparentID,
				draft.ToProposal(service.DefaultGrandchildID))
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Created gift %s\n", gift.DisplayID())
			return nil
		},
	}

	cmd.Flags().BoolVar(&create, "create", false, "Create the gift when parsing succeeds")

	return cmd
}

func newVoiceChatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Collect a gift through multi-turn conversation",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireVoice(app); err != nil {
				return err
			}
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("voice chat requires an interactive terminal")
			}

			ctx := context.Background()
			sessionID := uuid.New().String()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, formatter.Dim("Describe the gift you want to create. Type 'quit' to stop."))

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(out, "> ")
				if !scanner.Scan() {
					app.Voice.ClearSession(sessionID)
					return scanner.Err()
				}
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				if line == "quit" || line == "exit" {
					app.Voice.ClearSession(sessionID)
					return nil
				}

				turn, err := app.Voice.Chat(ctx, sessionID, line)
				if err != nil {
					return err
				}

				fmt.Fprintln(out, turn.AssistantReply)

				if turn.Confirmed {
					gift, err := app.Gifts.CreateGift(ctx, service.DefaultGrandparentID,
						turn.Draft.ToProposal(service.DefaultGrandchildID))
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "Created gift %s for %s\n", gift.DisplayID(), gift.GrandchildName)
					return nil
				}
			}
		},
	}
}
