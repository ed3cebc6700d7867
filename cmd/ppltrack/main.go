package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"ppltrack/internal/catalog"
	"ppltrack/internal/cli"
	"ppltrack/internal/coaching"
	"ppltrack/internal/db"
	"ppltrack/internal/llm"
	"ppltrack/internal/repository"
	"ppltrack/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.ppltrack/ppltrack.db
	dbPath := os.Getenv("PPLTRACK_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".ppltrack", "ppltrack.db")
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	checklistRepo := repository.NewSQLiteChecklistRepo(database)
	preferencesRepo := repository.NewSQLitePreferencesRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	cat := catalog.Default()

	// Wire the LLM coach. Calls fail soft at the coaching layer, so the
	// client is always constructed even without an API key.
	llmCfg := llm.LoadConfig()
	var observer llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		observer = llm.NewLogObserver(os.Stderr)
	}
	coach := coaching.NewCoach(llm.NewGeminiClient(llmCfg, observer))

	app := &cli.App{
		Workouts:    service.NewWorkoutService(sessionRepo, preferencesRepo, cat, uow),
		Reports:     service.NewReportService(sessionRepo, cat),
		Checklist:   service.NewChecklistService(checklistRepo),
		Export:      service.NewExportService(sessionRepo, cat),
		Preferences: service.NewPreferencesService(preferencesRepo),
		Coach:       coach,
		Catalog:     cat,
	}

	// Detect interactive terminal for the session editor and prompts.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
