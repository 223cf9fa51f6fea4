package main

import (
	"context"
	_ "embed"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"
	"time"

	"dexsearch/internal/api"
	"dexsearch/internal/config"
	"dexsearch/internal/folders"
	"dexsearch/internal/http"
	"dexsearch/internal/storage"
)

// activityRetention is how many journal entries survive a restart.
const activityRetention = 1000

//go:embed index.html
var indexHTML string

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	if err := cfg.EnsureDataDir(); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	// Initialize activity journal
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	ctx := context.Background()
	activityRepo := storage.NewActivityRepo(db)
	if pruned, err := activityRepo.Prune(ctx, activityRetention); err != nil {
		slog.Warn("Failed to prune activity journal", "error", err)
	} else if pruned > 0 {
		slog.Info("Activity journal pruned", "removed", pruned)
	}

	// Create backend client and folder store
	client := api.NewClient(cfg.APIBase, api.WithHTTPClient(&nethttp.Client{Timeout: 30 * time.Second}))
	store := folders.NewStore(client,
		folders.WithMessages(folders.MessagesFor(cfg.Locale)),
		folders.WithRecorder(activityRepo),
		folders.WithLogger(logger),
	)

	loadCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	err = store.Reload(loadCtx)
	cancel()
	if err != nil {
		slog.Warn("Initial folder load failed, dashboard starts empty", "error", store.Message(folders.ActionLoad, err), "api_base", cfg.APIBase)
	} else {
		slog.Info("Folders loaded", "count", len(store.Folders()), "files", store.TotalFileCount())
	}

	store.Subscribe(func(s folders.State) {
		slog.Debug("Folder store changed", "folders", len(s.Folders), "loading", s.Loading, "indexing", len(s.Indexing))
	})

	// Create router with dependencies
	deps := &http.Deps{
		Store:     store,
		Backend:   client,
		Journal:   activityRepo,
		IndexHTML: indexHTML,
	}
	router := http.NewRouter(deps)

	// Start dashboard server
	addr := ":" + cfg.APIPort
	slog.Info("Starting dashboard server", "addr", addr, "api_base", cfg.APIBase, "locale", cfg.Locale)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("Dashboard server failed to start: %v", err)
	}
}
