package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"dexsearch/internal/api"
	"dexsearch/internal/config"
	"dexsearch/internal/contextutil"
	"dexsearch/internal/folders"
	"dexsearch/internal/storage"
)

// Globals are flags shared by every command.
type Globals struct {
	APIBase string        `name:"api-base" default:"${api_base}" help:"Dex Search backend URL (API_BASE)."`
	JSON    bool          `name:"json" help:"Print raw JSON instead of tables."`
	Timeout time.Duration `default:"60s" help:"Per-request timeout."`
	Locale  string        `default:"${locale}" enum:"cs,en" help:"Language of error messages (LOCALE)."`
	DB      string        `name:"db" default:"${db_path}" help:"Activity journal path (DB_PATH). Empty disables journaling."`

	out    io.Writer    `kong:"-"`
	logger *slog.Logger `kong:"-"`
}

// CLI is the dexctl command tree.
type CLI struct {
	Globals

	Health   HealthCmd   `cmd:"" help:"Check that the backend is up."`
	Folders  FoldersCmd  `cmd:"" help:"Manage watched folders."`
	Browse   BrowseCmd   `cmd:"" help:"List a directory on the backend host."`
	Validate ValidateCmd `cmd:"" help:"Check whether a path can be watched."`
	Search   SearchCmd   `cmd:"" help:"Keyword search over indexed files."`
	AISearch AISearchCmd `cmd:"" name:"ai-search" help:"Semantic search over indexed files."`
	Suggest  SuggestCmd  `cmd:"" help:"Query completions."`
	Ask      AskCmd      `cmd:"" help:"Answer a question from indexed files with the local model."`
	Stats    StatsCmd    `cmd:"" help:"Index statistics."`
	Reindex  ReindexCmd  `cmd:"" help:"Rebuild a search index."`
	Activity ActivityCmd `cmd:"" help:"Show the local activity journal."`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("dexctl"),
		kong.Description("Command line client for the Dex Search file search service."),
		kong.UsageOnError(),
		kong.Vars{
			"api_base": cfg.APIBase,
			"locale":   cfg.Locale,
			"db_path":  cfg.DBPath,
		},
	)
	cli.out = os.Stdout
	cli.logger = logger

	if err := ctx.Run(&cli.Globals); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger writes to w, as JSON when format is "json" and as text otherwise.
func newLogger(w io.Writer, level slog.Level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// client returns a backend client honoring --api-base and --timeout.
func (g *Globals) client() *api.Client {
	return api.NewClient(g.APIBase, api.WithHTTPClient(&http.Client{Timeout: g.Timeout}))
}

// context returns the context commands run under.
func (g *Globals) context() context.Context {
	return contextutil.WithLogger(context.Background(), g.log())
}

func (g *Globals) log() *slog.Logger {
	if g.logger == nil {
		return slog.Default()
	}
	return g.logger
}

func (g *Globals) writer() io.Writer {
	if g.out == nil {
		return os.Stdout
	}
	return g.out
}

// store builds a folder store over the backend. When --db is set, store
// actions are journaled there; a journal that cannot be opened is skipped.
// The returned func releases the journal.
func (g *Globals) store() (*folders.Store, func()) {
	opts := []folders.Option{
		folders.WithMessages(folders.MessagesFor(g.Locale)),
		folders.WithLogger(g.log()),
	}
	closeFn := func() {}

	if g.DB != "" {
		journal, closeJournal, err := openJournal(g.DB)
		if err != nil {
			g.log().Warn("activity journal unavailable", "path", g.DB, "error", err)
		} else {
			opts = append(opts, folders.WithRecorder(journal))
			closeFn = closeJournal
		}
	}

	return folders.NewStore(g.client(), opts...), closeFn
}

func openJournal(path string) (*storage.ActivityRepo, func(), error) {
	cfg := config.Config{DBPath: path}
	if err := cfg.EnsureDataDir(); err != nil {
		return nil, nil, err
	}
	db, err := storage.New(path)
	if err != nil {
		return nil, nil, err
	}
	if err := storage.Migrate(db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return storage.NewActivityRepo(db), func() { _ = db.Close() }, nil
}
