package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/mseverin/brandforge/internal/cli"
	"github.com/mseverin/brandforge/internal/db"
	"github.com/mseverin/brandforge/internal/llm"
	"github.com/mseverin/brandforge/internal/repository"
	"github.com/mseverin/brandforge/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.brandforge/brandforge.db
	dbPath := os.Getenv("BRANDFORGE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".brandforge", "brandforge.db")
	}
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	projectRepo := repository.NewSQLiteProjectRepo(database)
	answerRepo := repository.NewSQLiteAnswerRepo(database)
	brandscriptRepo := repository.NewSQLiteBrandscriptRepo(database)
	assetRepo := repository.NewSQLiteAssetRepo(database)
	conversationRepo := repository.NewSQLiteConversationRepo(database)
	storyRepo := repository.NewSQLiteStoryRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire generation client
	llmCfg := llm.LoadConfig()
	var observer llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		observer = llm.NewLogObserver(os.Stderr)
	}
	llmClient := llm.NewOllamaClient(llmCfg, observer)

	// Wire services
	discoverySvc := service.NewDiscoveryService(answerRepo, uow)

	app := &cli.App{
		Projects:     service.NewProjectService(projectRepo),
		Discovery:    discoverySvc,
		Story:        service.NewStoryService(storyRepo, answerRepo, discoverySvc, llmClient),
		Import:       service.NewImportService(answerRepo, discoverySvc, llmClient),
		Brandscripts: service.NewBrandscriptService(brandscriptRepo, answerRepo, llmClient),
		Assets:       service.NewAssetService(assetRepo, brandscriptRepo, answerRepo, conversationRepo, llmClient),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
