package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"wax/internal/adapter"
	"wax/internal/catalog"
	"wax/internal/collection"
	"wax/internal/search"
	"wax/internal/tui"
	"wax/internal/tui/styles"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	// Handle version flag
	var showVersion bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.Parse()

	if showVersion {
		fmt.Printf("wax %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("wax requires an interactive terminal")
	}

	// Load configuration
	cfg, err := adapter.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting wax", "version", Version)

	styles.SetAccent(cfg.UI.Accent)

	// Open the local collection store
	store, err := collection.Open(cfg.Storage.Path, logger)
	if err != nil {
		return fmt.Errorf("failed to open collection store: %w", err)
	}
	defer store.Close()

	// Create the catalog client and services
	client := catalog.NewClient(cfg.Catalog.URL, logger)
	svc := collection.NewService(store, client, logger)
	session := search.NewSession(catalog.DefaultFilters(), cfg.Search.PerPage, logger)

	// Create TUI model
	model := tui.NewModel(session, client, svc, logger)

	// Run the TUI
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}
