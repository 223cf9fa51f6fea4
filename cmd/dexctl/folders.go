package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"dexsearch/internal/api"
	"dexsearch/internal/folders"
)

// FoldersCmd groups the watched folder commands.
type FoldersCmd struct {
	List   FoldersListCmd   `cmd:"" default:"1" help:"List watched folders."`
	Add    FoldersAddCmd    `cmd:"" help:"Watch a new folder."`
	Update FoldersUpdateCmd `cmd:"" help:"Change settings of a watched folder."`
	Rm     FoldersRmCmd     `cmd:"" aliases:"remove" help:"Stop watching a folder."`
	Toggle FoldersToggleCmd `cmd:"" help:"Enable or disable a folder."`
	Index  FoldersIndexCmd  `cmd:"" help:"Start indexing a folder."`
	Status FoldersStatusCmd `cmd:"" help:"Show indexing progress of a folder."`
}

// errStore turns a failed store action into the error dexctl reports.
func errStore(store *folders.Store, err error) error {
	if msg := store.Err(); msg != "" {
		return errors.New(msg)
	}
	return err
}

// FoldersListCmd lists watched folders.
type FoldersListCmd struct {
	Tag     string `help:"Only folders with this tag."`
	Enabled bool   `help:"Only enabled folders."`
}

func (c *FoldersListCmd) Run(g *Globals) error {
	store, done := g.store()
	defer done()

	store.LoadFolders(g.context())
	if msg := store.Err(); msg != "" {
		return errors.New(msg)
	}

	var list []api.WatchedFolder
	switch {
	case c.Tag != "":
		list = store.FoldersByTag(c.Tag)
	case c.Enabled:
		list = store.EnabledFolders()
	default:
		list = store.Folders()
	}
	if c.Tag != "" && c.Enabled {
		filtered := list[:0]
		for _, f := range list {
			if f.Enabled {
				filtered = append(filtered, f)
			}
		}
		list = filtered
	}

	p := g.printer()
	return p.emit(list, func() {
		rows := make([][]string, 0, len(list))
		total := 0
		for _, f := range list {
			total += f.FileCount
			rows = append(rows, []string{
				string(f.ID),
				f.Path,
				strings.Join(f.Tags, ", "),
				strconv.Itoa(f.FileCount),
				yesNo(f.Enabled),
				yesNo(f.Recursive),
				formatTimestamp(f.LastIndexed),
			})
		}
		p.table([]string{"ID", "Path", "Tags", "Files", "Enabled", "Recursive", "Last indexed"}, rows)
		p.muted(fmt.Sprintf("%d folders, %d files", len(list), total))
	})
}

// FoldersAddCmd watches a new folder.
type FoldersAddCmd struct {
	Path      string   `arg:"" help:"Absolute folder path on the backend host."`
	Name      string   `help:"Display name (defaults to the last path element)."`
	Tag       []string `name:"tag" short:"t" help:"Tag to attach (repeatable)."`
	FileType  []string `name:"file-type" help:"File extension to index, e.g. .pdf (repeatable)."`
	Recursive bool     `default:"true" negatable:"" help:"Include subfolders."`
	Disabled  bool     `help:"Add the folder disabled (applied with an update after the create)."`
}

func (c *FoldersAddCmd) Run(g *Globals) error {
	store, done := g.store()
	defer done()

	folder, err := store.AddFolder(g.context(), folders.NewFolder{
		Path:      c.Path,
		Name:      c.Name,
		Tags:      c.Tag,
		Recursive: c.Recursive,
		FileTypes: c.FileType,
		Disabled:  c.Disabled,
	})
	if err != nil {
		return errStore(store, err)
	}

	p := g.printer()
	return p.emit(folder, func() {
		p.ok(fmt.Sprintf("Watching %s (id %s)", folder.Path, folder.ID))
	})
}

// FoldersUpdateCmd sends a partial update. Only given flags are sent.
type FoldersUpdateCmd struct {
	ID              string   `arg:"" help:"Folder id."`
	Enabled         string   `help:"true or false."`
	Recursive       string   `help:"true or false."`
	ReindexOnChange string   `name:"reindex-on-change" help:"true or false."`
	Tag             []string `name:"tag" short:"t" help:"Replace tags (repeatable)."`
	ClearTags       bool     `name:"clear-tags" help:"Remove all tags."`
	FileType        []string `name:"file-type" help:"Replace indexed extensions (repeatable)."`
}

func (c *FoldersUpdateCmd) update() (api.FolderUpdate, error) {
	var u api.FolderUpdate
	var err error
	if u.Enabled, err = optionalBool("enabled", c.Enabled); err != nil {
		return u, err
	}
	if u.Recursive, err = optionalBool("recursive", c.Recursive); err != nil {
		return u, err
	}
	if u.ReindexOnChange, err = optionalBool("reindex-on-change", c.ReindexOnChange); err != nil {
		return u, err
	}
	switch {
	case c.ClearTags:
		tags := []string{}
		u.Tags = &tags
	case len(c.Tag) > 0:
		tags := c.Tag
		u.Tags = &tags
	}
	if len(c.FileType) > 0 {
		types := c.FileType
		u.FileTypes = &types
	}
	if u.IsEmpty() {
		return u, errors.New("nothing to update")
	}
	return u, nil
}

func (c *FoldersUpdateCmd) Run(g *Globals) error {
	u, err := c.update()
	if err != nil {
		return err
	}

	store, done := g.store()
	defer done()

	// Seed the store so a bare acknowledgement can be merged into the known entry.
	store.LoadFolders(g.context())

	folder, err := store.UpdateFolder(g.context(), api.FolderID(c.ID), u)
	if err != nil {
		return errStore(store, err)
	}

	p := g.printer()
	return p.emit(folder, func() {
		p.ok(fmt.Sprintf("Updated folder %s", c.ID))
	})
}

func optionalBool(name, raw string) (*bool, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("--%s must be true or false", name)
	}
	return &v, nil
}

// FoldersRmCmd stops watching a folder.
type FoldersRmCmd struct {
	ID string `arg:"" help:"Folder id."`
}

func (c *FoldersRmCmd) Run(g *Globals) error {
	store, done := g.store()
	defer done()

	if err := store.DeleteFolder(g.context(), api.FolderID(c.ID)); err != nil {
		return errStore(store, err)
	}

	p := g.printer()
	return p.emit(api.Message{Message: "removed"}, func() {
		p.ok(fmt.Sprintf("Removed folder %s", c.ID))
	})
}

// FoldersToggleCmd flips the enabled flag of a folder.
type FoldersToggleCmd struct {
	ID string `arg:"" help:"Folder id."`
}

func (c *FoldersToggleCmd) Run(g *Globals) error {
	store, done := g.store()
	defer done()

	ctx := g.context()
	id := api.FolderID(c.ID)

	store.LoadFolders(ctx)
	if msg := store.Err(); msg != "" {
		return errors.New(msg)
	}
	if _, ok := store.FolderByID(id); !ok {
		return fmt.Errorf("folder %s not found", c.ID)
	}

	if err := store.ToggleFolder(ctx, id); err != nil {
		return errStore(store, err)
	}

	folder, _ := store.FolderByID(id)
	p := g.printer()
	return p.emit(folder, func() {
		state := "disabled"
		if folder.Enabled {
			state = "enabled"
		}
		p.ok(fmt.Sprintf("Folder %s %s", c.ID, state))
	})
}

// FoldersIndexCmd starts indexing, optionally waiting for it to finish.
type FoldersIndexCmd struct {
	ID         string        `arg:"" help:"Folder id."`
	Wait       bool          `help:"Poll the indexing status until it finishes."`
	Interval   time.Duration `default:"2s" help:"Polling interval with --wait."`
	StartPolls int           `name:"start-polls" default:"5" help:"Give up with --wait when indexing has not started after this many polls."`
}

func (c *FoldersIndexCmd) Run(g *Globals) error {
	store, done := g.store()
	defer done()

	ctx := g.context()
	id := api.FolderID(c.ID)

	if err := store.TriggerIndex(ctx, id); err != nil {
		return errStore(store, err)
	}

	p := g.printer()
	if !c.Wait {
		return p.emit(IndexStarted{FolderID: id, Indexing: true}, func() {
			p.ok(fmt.Sprintf("Indexing of folder %s started", c.ID))
		})
	}

	ticker := time.NewTicker(c.Interval)
	defer ticker.Stop()
	waiting := 0
	for {
		status, err := store.FolderStatus(ctx, id)
		if err != nil {
			return err
		}
		if isFinished(status.Status) {
			return p.emit(status, func() { printStatus(p, status) })
		}
		// The backend reports not_started until the indexing task writes its
		// first status row, and forever if the task never runs.
		if status.Status == "not_started" {
			waiting++
			if waiting >= c.StartPolls {
				return fmt.Errorf("indexing of folder %s has not started after %d polls", c.ID, waiting)
			}
		}
		if !p.json {
			p.muted(fmt.Sprintf("%s %.0f%% (%d/%d)", status.Status, status.Progress, status.FilesProcessed, status.TotalFiles))
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// IndexStarted is printed by "folders index" with --json.
type IndexStarted struct {
	FolderID api.FolderID `json:"folder_id"`
	Indexing bool         `json:"indexing"`
}

func isFinished(status string) bool {
	switch status {
	case "completed", "failed", "error", "idle":
		return true
	}
	return false
}

// FoldersStatusCmd shows indexing progress.
type FoldersStatusCmd struct {
	ID string `arg:"" help:"Folder id."`
}

func (c *FoldersStatusCmd) Run(g *Globals) error {
	store, done := g.store()
	defer done()

	status, err := store.FolderStatus(g.context(), api.FolderID(c.ID))
	if err != nil {
		return err
	}

	p := g.printer()
	return p.emit(status, func() { printStatus(p, status) })
}

func printStatus(p *printer, status api.IndexStatus) {
	p.title(fmt.Sprintf("Folder %s: %s", status.FolderID, status.Status))
	p.line("Progress:  %.0f%%", status.Progress)
	p.line("Files:     %d/%d", status.FilesProcessed, status.TotalFiles)
	p.line("Started:   %s", formatTimestamp(status.StartTime))
	p.line("Finished:  %s", formatTimestamp(status.EndTime))
	if status.ErrorMessage != "" {
		p.fail(status.ErrorMessage)
	}
}

func formatTimestamp(t *api.Timestamp) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}
