package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/watchlist/internal/adapter"
	"github.com/mmcdole/watchlist/internal/provider/itunes"
	"github.com/mmcdole/watchlist/internal/provider/tvmaze"
	"github.com/mmcdole/watchlist/internal/search"
	"github.com/mmcdole/watchlist/internal/store"
	"github.com/mmcdole/watchlist/internal/tui"
	"github.com/mmcdole/watchlist/internal/watchlist"
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
		fmt.Printf("watchlist %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
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

	logger.Info("starting watchlist", "version", Version)

	// Open the on-disk store
	st, err := store.Open(cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer st.Close()

	// Create the watchlist service and hydrate it
	svc := watchlist.NewService(st, logger)
	svc.Load()

	// Create provider clients
	movies := itunes.NewClient(cfg.Providers.ITunes.BaseURL,
		time.Duration(cfg.Providers.ITunes.TimeoutSeconds)*time.Second, logger)
	shows := tvmaze.NewClient(cfg.Providers.TVMaze.BaseURL,
		time.Duration(cfg.Providers.TVMaze.TimeoutSeconds)*time.Second, logger)

	agg := search.NewAggregator(movies, shows, cfg.Search.MaxResults, logger)
	deb := search.NewDebouncer(time.Duration(cfg.Search.DebounceMS) * time.Millisecond)

	// Create TUI model
	model := tui.NewModel(svc, agg, deb, cfg, logger)

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
