package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/giftforge/giftforge/internal/cli"
	"github.com/giftforge/giftforge/internal/db"
	"github.com/giftforge/giftforge/internal/llm"
	"github.com/giftforge/giftforge/internal/repository"
	"github.com/giftforge/giftforge/internal/service"
	"github.com/giftforge/giftforge/internal/voice"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.giftforge/giftforge.db
	dbPath := os.Getenv("GIFTFORGE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".giftforge", "giftforge.db")
	}

	// Media files live next to the database unless overridden.
	mediaDir := os.Getenv("GIFTFORGE_MEDIA_DIR")
	if mediaDir == "" {
		mediaDir = filepath.Join(filepath.Dir(dbPath), "media")
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	userRepo := repository.NewSQLiteUserRepo(database)
	giftRepo := repository.NewSQLiteGiftRepo(database)
	milestoneRepo := repository.NewSQLiteMilestoneRepo(database)
	notificationRepo := repository.NewSQLiteNotificationRepo(database)
	mediaRepo := repository.NewSQLiteMediaRepo(database)
	windowRepo := repository.NewSQLiteOverrideWindowRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Workflow failures that must not abort operations are logged to stderr.
	observer := service.NewLogUseCaseObserver(os.Stderr)

	notifySvc := service.NewNotificationService(notificationRepo)

	app := &cli.App{
		Gifts:         service.NewGiftService(giftRepo, milestoneRepo, windowRepo, uow, notifySvc, observer),
		Trustee:       service.NewTrusteeService(uow, notifySvc, observer),
		Notifications: notifySvc,
		Users:         service.NewUserService(userRepo),
		Media:         service.NewMediaService(mediaRepo, giftRepo, mediaDir),
	}

	// Detect interactive terminal for the conversational entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Wire voice services (only when LLM is enabled)
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var llmObserver llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			llmObserver = llm.NewLogObserver(os.Stderr)
		}
		llmClient := llm.NewOllamaClient(llmCfg, llmObserver)
		app.Voice = voice.NewService(llmClient, llmCfg, voice.NewSessionStore(voice.DefaultSessionTTL))
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
