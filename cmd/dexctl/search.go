package main

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"dexsearch/internal/api"
	"dexsearch/internal/render"
)

// HealthCmd checks the backend.
type HealthCmd struct{}

func (c *HealthCmd) Run(g *Globals) error {
	health, err := g.client().Health(g.context())
	if err != nil {
		return fmt.Errorf("backend at %s is not reachable: %w", g.APIBase, err)
	}

	p := g.printer()
	return p.emit(health, func() {
		p.ok(fmt.Sprintf("%s: %s", health.Status, health.Message))
	})
}

// BrowseCmd lists a directory on the backend host.
type BrowseCmd struct {
	Path string `arg:"" optional:"" default:"/" help:"Directory to list."`
}

func (c *BrowseCmd) Run(g *Globals) error {
	result, err := g.client().Browse(g.context(), c.Path)
	if err != nil {
		return err
	}

	p := g.printer()
	return p.emit(result, func() {
		p.title(result.CurrentPath)
		if result.ParentPath != nil {
			p.muted("parent: " + *result.ParentPath)
		}
		rows := make([][]string, 0, len(result.Items))
		for _, item := range result.Items {
			size := "-"
			if item.Size != nil {
				size = strconv.FormatInt(*item.Size, 10)
			}
			rows = append(rows, []string{item.Name, item.Type, size, yesNo(item.Readable)})
		}
		p.table([]string{"Name", "Type", "Size", "Readable"}, rows)
	})
}

// ValidateCmd checks a candidate folder path.
type ValidateCmd struct {
	Path string `arg:"" help:"Path to check."`
}

func (c *ValidateCmd) Run(g *Globals) error {
	validation, err := g.client().ValidatePath(g.context(), c.Path)
	if err != nil {
		return err
	}

	p := g.printer()
	return p.emit(validation, func() {
		if validation.Valid {
			p.ok(fmt.Sprintf("%s is a valid %s", c.Path, validation.Type))
			return
		}
		p.fail(fmt.Sprintf("%s cannot be watched: %s", c.Path, validation.Error))
	})
}

// SearchCmd runs a keyword search.
type SearchCmd struct {
	Query string `arg:"" help:"Search terms."`
	Limit int    `default:"50" help:"Maximum number of results."`
}

func (c *SearchCmd) Run(g *Globals) error {
	resp, err := g.client().SearchFiles(g.context(), c.Query, c.Limit)
	if err != nil {
		return err
	}

	p := g.printer()
	return p.emit(resp, func() {
		p.title(fmt.Sprintf("%d results for %q", resp.TotalResults, resp.Query))
		rows := make([][]string, 0, len(resp.Results))
		for _, r := range resp.Results {
			rows = append(rows, []string{r.FileName, r.FileType, r.WatchedItemName, truncate(r.FilePath, 60)})
		}
		p.table([]string{"File", "Type", "Folder", "Path"}, rows)
	})
}

// AISearchCmd runs a semantic search, via the embedding index or the local model.
type AISearchCmd struct {
	Query    string   `arg:"" help:"Natural language query."`
	Limit    int      `default:"10" help:"Maximum number of results."`
	Type     string   `name:"type" default:"semantic" enum:"semantic,keyword,hybrid" help:"Search type."`
	FileType []string `name:"file-type" help:"Restrict to these extensions (repeatable)."`
	Ollama   bool     `help:"Use the local model index."`
}

func (c *AISearchCmd) Run(g *Globals) error {
	resp, err := c.search(g.context(), g.client())
	if err != nil {
		return err
	}

	p := g.printer()
	return p.emit(resp, func() { printAIResults(p, resp) })
}

func (c *AISearchCmd) search(ctx context.Context, client *api.Client) (api.AISearchResponse, error) {
	if c.Ollama {
		return client.OllamaSearch(ctx, api.OllamaSearchRequest{
			Query:      c.Query,
			Limit:      c.Limit,
			SearchType: c.Type,
			FileTypes:  c.FileType,
		})
	}
	return client.AISearch(ctx, api.AISearchRequest{
		Query:      c.Query,
		Limit:      c.Limit,
		SearchType: c.Type,
		FileTypes:  c.FileType,
	})
}

func printAIResults(p *printer, resp api.AISearchResponse) {
	p.title(fmt.Sprintf("%d %s results for %q", resp.TotalResults, resp.SearchType, resp.Query))
	rows := make([][]string, 0, len(resp.Results))
	for _, r := range resp.Results {
		rows = append(rows, []string{
			fmt.Sprintf("%.2f", r.RelevanceScore),
			r.FileName,
			r.WatchedItemName,
			truncate(strings.Join(strings.Fields(r.ContentText), " "), 60),
		})
	}
	p.table([]string{"Score", "File", "Folder", "Excerpt"}, rows)
}

// SuggestCmd prints completions for a partial query.
type SuggestCmd struct {
	Query  string `arg:"" help:"Partial query."`
	Limit  int    `help:"Maximum number of suggestions (0 uses the backend default)."`
	Source string `default:"keyword" enum:"keyword,ai,ollama" help:"Which index to ask."`
}

func (c *SuggestCmd) Run(g *Globals) error {
	client := g.client()
	ctx := g.context()

	var (
		s   api.Suggestions
		err error
	)
	switch c.Source {
	case "ai":
		s, err = client.AISuggestions(ctx, c.Query, c.Limit)
	case "ollama":
		s, err = client.OllamaSuggestions(ctx, c.Query, c.Limit)
	default:
		s, err = client.SearchSuggestions(ctx, c.Query, c.Limit)
	}
	if err != nil {
		return err
	}

	p := g.printer()
	return p.emit(s, func() {
		for _, suggestion := range s.Suggestions {
			p.line("%s", suggestion)
		}
	})
}

// AskCmd retrieves context with the local model search and asks for an answer.
type AskCmd struct {
	Query     string `arg:"" help:"Question."`
	Context   int    `name:"context" default:"5" help:"Number of documents passed to the model."`
	MaxLength int    `name:"max-length" default:"500" help:"Maximum answer length."`
	HTML      bool   `name:"html" help:"Print the answer rendered as HTML."`
}

// AskResult is printed by ask with --json.
type AskResult struct {
	api.GeneratedAnswer
	HTML    string   `json:"html,omitempty"`
	Sources []string `json:"sources"`
}

func (c *AskCmd) Run(g *Globals) error {
	client := g.client()
	ctx := g.context()

	docs := []map[string]any{}
	sources := []string{}
	if c.Context > 0 {
		found, err := client.OllamaSearch(ctx, api.OllamaSearchRequest{Query: c.Query, Limit: c.Context})
		if err != nil {
			return fmt.Errorf("failed to find context documents: %w", err)
		}
		for _, r := range found.Results {
			docs = append(docs, map[string]any{
				"file_name":    r.FileName,
				"file_path":    r.FilePath,
				"content_text": r.ContentText,
			})
			sources = append(sources, r.FilePath)
		}
	}

	answer, err := client.OllamaGenerateAnswer(ctx, api.GenerateAnswerRequest{
		Query:            c.Query,
		ContextDocuments: docs,
		MaxLength:        c.MaxLength,
	})
	if err != nil {
		return fmt.Errorf("failed to generate answer: %w", err)
	}

	result := AskResult{GeneratedAnswer: answer, Sources: sources}
	if c.HTML {
		html, err := render.Markdown(answer.Answer)
		if err != nil {
			return err
		}
		result.HTML = html
	}

	p := g.printer()
	return p.emit(result, func() {
		if c.HTML {
			p.line("%s", result.HTML)
		} else {
			p.line("%s", answer.Answer)
		}
		if len(sources) > 0 {
			p.muted("Sources:")
			for _, s := range sources {
				p.muted("  " + s)
			}
		}
	})
}

// StatsCmd prints file, keyword and semantic index statistics.
type StatsCmd struct {
	Ollama bool `help:"Report the local model index instead of the embedding index."`
}

// Stats is printed by stats with --json.
type Stats struct {
	Files  api.FileStats   `json:"files"`
	Search api.SearchStats `json:"search"`
	Index  api.IndexStats  `json:"index"`
}

func (c *StatsCmd) Run(g *Globals) error {
	client := g.client()
	ctx := g.context()

	var (
		stats Stats
		err   error
	)
	if stats.Files, err = client.FileStats(ctx); err != nil {
		return err
	}
	if stats.Search, err = client.SearchStats(ctx); err != nil {
		return err
	}
	if c.Ollama {
		stats.Index, err = client.OllamaStats(ctx)
	} else {
		stats.Index, err = client.AIStats(ctx)
	}
	if err != nil {
		return err
	}

	p := g.printer()
	return p.emit(stats, func() {
		p.title("Files")
		p.line("Watched items:  %d (%d enabled)", stats.Files.TotalWatchedItems, stats.Files.EnabledItems)
		p.line("Indexed files:  %d", stats.Files.TotalIndexedFiles)
		p.line("Searchable:     %d", stats.Search.TotalIndexedFiles)

		types := make([]string, 0, len(stats.Files.FileTypes))
		for t := range stats.Files.FileTypes {
			types = append(types, t)
		}
		sort.Strings(types)
		rows := make([][]string, 0, len(types))
		for _, t := range types {
			rows = append(rows, []string{t, strconv.Itoa(stats.Files.FileTypes[t])})
		}
		p.table([]string{"Type", "Files"}, rows)

		p.title("Semantic index")
		p.line("Indexed files:  %d", stats.Index.TotalIndexedFiles)
		keys := make([]string, 0, len(stats.Index.AIIndexStats))
		for k := range stats.Index.AIIndexStats {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			p.line("%-15s %v", k+":", stats.Index.AIIndexStats[k])
		}
	})
}

// ReindexCmd rebuilds or clears a semantic index.
type ReindexCmd struct {
	Ollama bool `help:"Rebuild the local model index instead of the embedding index."`
	Clear  bool `help:"Only empty the index."`
}

func (c *ReindexCmd) Run(g *Globals) error {
	client := g.client()
	ctx := g.context()
	p := g.printer()

	if c.Clear {
		var (
			msg api.Message
			err error
		)
		if c.Ollama {
			msg, err = client.OllamaClearIndex(ctx)
		} else {
			msg, err = client.AIClear(ctx)
		}
		if err != nil {
			return err
		}
		return p.emit(msg, func() { p.ok(msg.Message) })
	}

	var (
		result api.ReindexResult
		err    error
	)
	if c.Ollama {
		result, err = client.OllamaReindex(ctx)
	} else {
		result, err = client.AIReindex(ctx)
	}
	if err != nil {
		return err
	}

	return p.emit(result, func() {
		p.ok(result.Message)
		p.line("Indexed: %d", max(result.TotalIndexed, result.IndexedCount))
	})
}

// ActivityCmd prints the local activity journal.
type ActivityCmd struct {
	Limit int  `default:"20" help:"Number of entries."`
	Prune int  `help:"Keep only this many newest entries before listing (0 keeps all)."`
	Fails bool `help:"Only failed actions."`
}

func (c *ActivityCmd) Run(g *Globals) error {
	if g.DB == "" {
		return errors.New("activity journal is disabled (--db is empty)")
	}
	journal, done, err := openJournal(g.DB)
	if err != nil {
		return err
	}
	defer done()

	ctx := g.context()
	p := g.printer()

	if c.Prune > 0 {
		n, err := journal.Prune(ctx, c.Prune)
		if err != nil {
			return err
		}
		if !g.JSON && n > 0 {
			p.warn(fmt.Sprintf("Pruned %d entries", n))
		}
	}

	entries, err := journal.ListRecent(ctx, c.Limit)
	if err != nil {
		return err
	}
	if c.Fails {
		failed := entries[:0]
		for _, e := range entries {
			if !e.Success {
				failed = append(failed, e)
			}
		}
		entries = failed
	}

	return p.emit(entries, func() {
		rows := make([][]string, 0, len(entries))
		for _, e := range entries {
			result := "ok"
			if !e.Success {
				result = e.Message
			}
			rows = append(rows, []string{
				e.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				string(e.Action),
				string(e.FolderID),
				result,
			})
		}
		p.table([]string{"Time", "Action", "Folder", "Result"}, rows)
	})
}
