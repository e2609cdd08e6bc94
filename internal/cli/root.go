package cli

import (
	"github.com/giftforge/giftforge/internal/service"
	"github.com/giftforge/giftforge/internal/voice"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Gifts         service.GiftService
	Trustee       service.TrusteeService
	Notifications service.NotificationService
	Users         service.UserService
	Media         service.MediaService

	// Voice is nil when the LLM subsystem is disabled.
	Voice voice.Service

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "giftforge" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "giftforge",
		Short: "Legacy gift lifecycle and disbursement manager",
	}

	root.AddCommand(
		newGiftCmd(app),
		newTrusteeCmd(app),
		newNotificationsCmd(app),
		newUsersCmd(app),
		newMediaCmd(app),
		newSimulateCmd(app),
		newVoiceCmd(app),
	)

	return root
}
