package folders

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_folders.go -package=mocks dexsearch/internal/folders FolderAPI,Recorder

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"dexsearch/internal/api"
	"dexsearch/internal/contextutil"
)

// FolderAPI is the part of the backend client the store needs.
// *api.Client satisfies it.
type FolderAPI interface {
	ListFolders(ctx context.Context) ([]api.WatchedFolder, error)
	CreateFolder(ctx context.Context, req api.CreateFolderRequest) (api.WatchedFolder, error)
	UpdateFolder(ctx context.Context, id api.FolderID, update api.FolderUpdate) (api.WatchedFolder, error)
	DeleteFolder(ctx context.Context, id api.FolderID) error
	TriggerIndex(ctx context.Context, id api.FolderID) (api.Message, error)
	FolderStatus(ctx context.Context, id api.FolderID) (api.IndexStatus, error)
	ValidatePath(ctx context.Context, path string) (api.PathValidation, error)
}

// NewFolder is the input of AddFolder.
type NewFolder struct {
	Path string
	// Name defaults to the last element of Path.
	Name      string
	Tags      []string
	Recursive bool
	FileTypes []string
	// The backend always creates folders enabled. Disabled is applied with
	// an update right after the create.
	Disabled bool
}

func (n NewFolder) request() api.CreateFolderRequest {
	name := n.Name
	if name == "" {
		name = filepath.Base(filepath.Clean(n.Path))
	}
	recursive := n.Recursive
	return api.CreateFolderRequest{
		Path:      n.Path,
		Name:      name,
		Type:      "folder",
		Recursive: &recursive,
		Tags:      slices.Clone(n.Tags),
		FileTypes: slices.Clone(n.FileTypes),
	}
}

// folder is the entity the backend stored for n, with the column defaults
// of fields the create body does not carry.
func (n NewFolder) folder(id api.FolderID) api.WatchedFolder {
	return api.WatchedFolder{
		ID:        id,
		Path:      n.Path,
		Tags:      nonNil(n.Tags),
		Recursive: n.Recursive,
		FileTypes: nonNil(n.FileTypes),
		Enabled:   true,
	}
}

// State is a point-in-time copy of the store.
type State struct {
	Folders  []api.WatchedFolder `json:"folders"`
	Loading  bool                `json:"loading"`
	Error    string              `json:"error,omitempty"`
	Indexing []api.FolderID      `json:"indexing"`
}

// Option configures a Store.
type Option func(*Store)

// WithMessages sets the catalog used for error strings.
func WithMessages(m Messages) Option {
	return func(s *Store) {
		s.messages = m
	}
}

// WithRecorder journals every action outcome to r.
func WithRecorder(r Recorder) Option {
	return func(s *Store) {
		s.recorder = r
	}
}

// WithLogger sets the logger used when the context carries none.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// Store mirrors the backend's watched folders for a UI.
//
// The local list is a cache of server state and is only changed after the
// backend accepted a change. Each failing action stores a display string in
// Err; every action except LoadFolders also returns the original error.
// Network calls never run under the store's lock, so actions on different
// folders may complete in any order.
type Store struct {
	api      FolderAPI
	messages Messages
	recorder Recorder
	logger   *slog.Logger

	mu       sync.Mutex
	folders  []api.WatchedFolder
	inflight int
	err      string
	indexing []api.FolderID

	listeners      map[int]func(State)
	nextListenerID int
}

// NewStore creates a Store backed by client.
func NewStore(client FolderAPI, opts ...Option) *Store {
	s := &Store{
		api:       client,
		messages:  MessagesCS,
		logger:    slog.Default(),
		folders:   []api.WatchedFolder{},
		listeners: make(map[int]func(State)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers fn to receive a snapshot after every state change.
// fn runs on the goroutine that made the change; snapshots from concurrent
// actions may arrive out of order. The returned function removes the subscription.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	id := s.nextListenerID
	s.nextListenerID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// LoadFolders replaces the local list with the backend's. A failure is
// recorded in Err and logged, not returned.
func (s *Store) LoadFolders(ctx context.Context) {
	_ = s.Reload(ctx)
}

// Reload is LoadFolders for callers that need the outcome of their own
// call. Err is shared by every action and may already describe another one.
func (s *Store) Reload(ctx context.Context) error {
	logger := s.getLogger(ctx)
	s.begin()

	folders, err := s.api.ListFolders(ctx)
	if err != nil {
		msg := describe(err, s.messages.Load)
		s.mutate(func() {
			s.inflight--
			s.err = msg
		})
		logger.ErrorContext(ctx, "failed to load folders", "error", err)
		s.record(ctx, ActionLoad, "", msg)
		return err
	}

	s.mutate(func() {
		s.inflight--
		s.folders = cloneFolders(folders)
	})
	logger.DebugContext(ctx, "folders loaded", "count", len(folders))
	s.record(ctx, ActionLoad, "", "")
	return nil
}

// AddFolder creates a folder on the backend and appends it locally.
// The appended entity carries the server-assigned id.
func (s *Store) AddFolder(ctx context.Context, in NewFolder) (api.WatchedFolder, error) {
	logger := s.getLogger(ctx)
	s.begin()

	var (
		created api.WatchedFolder
		err     error
	)
	if strings.TrimSpace(in.Path) == "" {
		err = &ValidationError{Field: "path", Message: "cannot be empty"}
	} else {
		created, err = s.api.CreateFolder(ctx, in.request())
	}
	if err != nil {
		s.fail(ctx, ActionAdd, "", err, s.messages.Add)
		logger.ErrorContext(ctx, "failed to add folder", "path", in.Path, "error", err)
		return api.WatchedFolder{}, err
	}

	// The backend acknowledges creation with {id, message} only.
	folder := created
	if folder.Path == "" {
		folder = in.folder(created.ID)
	}

	s.mutate(func() {
		s.inflight--
		if i := s.indexOf(folder.ID); folder.ID != "" && i >= 0 {
			s.folders[i] = cloneFolder(folder)
			return
		}
		s.folders = append(s.folders, cloneFolder(folder))
	})
	logger.InfoContext(ctx, "folder added", "folder_id", folder.ID, "path", folder.Path)
	s.record(ctx, ActionAdd, folder.ID, "")

	if !in.Disabled || !folder.Enabled {
		return folder, nil
	}
	disabled := false
	updated, err := s.UpdateFolder(ctx, folder.ID, api.FolderUpdate{Enabled: &disabled})
	if err != nil {
		return folder, fmt.Errorf("folder %s was added enabled: %w", folder.ID, err)
	}
	return updated, nil
}

// UpdateFolder applies a partial update and replaces the local entry with
// the result. A folder unknown locally is left alone.
func (s *Store) UpdateFolder(ctx context.Context, id api.FolderID, update api.FolderUpdate) (api.WatchedFolder, error) {
	logger := s.getLogger(ctx)
	s.begin()

	updated, err := s.api.UpdateFolder(ctx, id, update)
	if err != nil {
		s.fail(ctx, ActionUpdate, id, err, s.messages.Update)
		logger.ErrorContext(ctx, "failed to update folder", "folder_id", id, "error", err)
		return api.WatchedFolder{}, err
	}

	var result api.WatchedFolder
	s.mutate(func() {
		s.inflight--
		i := s.indexOf(id)
		result = updated
		if result.ID == "" {
			// Bare acknowledgement: derive the new entity from the local copy.
			base := api.WatchedFolder{ID: id}
			if i >= 0 {
				base = s.folders[i]
			}
			result = update.Apply(base)
		}
		if i >= 0 {
			s.folders[i] = cloneFolder(result)
		}
	})
	logger.InfoContext(ctx, "folder updated", "folder_id", id)
	s.record(ctx, ActionUpdate, id, "")
	return cloneFolder(result), nil
}

// DeleteFolder removes a folder on the backend, then locally.
// The request is sent even when the folder is unknown locally.
func (s *Store) DeleteFolder(ctx context.Context, id api.FolderID) error {
	logger := s.getLogger(ctx)
	s.begin()

	if err := s.api.DeleteFolder(ctx, id); err != nil {
		s.fail(ctx, ActionDelete, id, err, s.messages.Delete)
		logger.ErrorContext(ctx, "failed to delete folder", "folder_id", id, "error", err)
		return err
	}

	s.mutate(func() {
		s.inflight--
		if i := s.indexOf(id); i >= 0 {
			s.folders = slices.Delete(s.folders, i, i+1)
		}
	})
	logger.InfoContext(ctx, "folder deleted", "folder_id", id)
	s.record(ctx, ActionDelete, id, "")
	return nil
}

// TriggerIndex asks the backend to index a folder. While a trigger for id
// is outstanding, further calls for the same id return nil at once without
// a request. id leaves the indexing set when the request finishes, whatever
// its outcome.
func (s *Store) TriggerIndex(ctx context.Context, id api.FolderID) error {
	logger := s.getLogger(ctx)

	if !s.claimIndexing(id) {
		logger.DebugContext(ctx, "indexing already being triggered", "folder_id", id)
		return nil
	}

	_, err := s.api.TriggerIndex(ctx, id)

	var msg string
	if err != nil {
		msg = describe(err, s.messages.Index)
	}
	s.mutate(func() {
		if i := slices.Index(s.indexing, id); i >= 0 {
			s.indexing = slices.Delete(s.indexing, i, i+1)
		}
		if err != nil {
			s.err = msg
		}
	})

	if err != nil {
		logger.ErrorContext(ctx, "failed to trigger index", "folder_id", id, "error", err)
		s.record(ctx, ActionIndex, id, msg)
		return err
	}
	logger.InfoContext(ctx, "indexing triggered", "folder_id", id)
	s.record(ctx, ActionIndex, id, "")
	return nil
}

// FolderStatus fetches indexing progress. It does not touch the store.
func (s *Store) FolderStatus(ctx context.Context, id api.FolderID) (api.IndexStatus, error) {
	status, err := s.api.FolderStatus(ctx, id)
	if err != nil {
		s.getLogger(ctx).ErrorContext(ctx, "failed to get folder status", "folder_id", id, "error", err)
		return api.IndexStatus{}, err
	}
	return status, nil
}

// ValidatePath asks the backend whether path can be watched. It does not touch the store.
func (s *Store) ValidatePath(ctx context.Context, path string) (api.PathValidation, error) {
	validation, err := s.api.ValidatePath(ctx, path)
	if err != nil {
		s.getLogger(ctx).ErrorContext(ctx, "failed to validate path", "path", path, "error", err)
		return api.PathValidation{}, err
	}
	return validation, nil
}

// ToggleFolder flips the enabled flag of a locally known folder through
// UpdateFolder. Unknown ids are ignored.
func (s *Store) ToggleFolder(ctx context.Context, id api.FolderID) error {
	folder, ok := s.FolderByID(id)
	if !ok {
		return nil
	}

	enabled := !folder.Enabled
	if _, err := s.UpdateFolder(ctx, id, api.FolderUpdate{Enabled: &enabled}); err != nil {
		s.getLogger(ctx).ErrorContext(ctx, "failed to toggle folder", "folder_id", id, "error", err)
		return err
	}
	return nil
}

// State returns a snapshot of the whole store.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Folders returns the folders in server order.
func (s *Store) Folders() []api.WatchedFolder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneFolders(s.folders)
}

// Loading reports whether any action is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inflight > 0
}

// Message returns the display string action would store in Err for err.
func (s *Store) Message(action Action, err error) string {
	return describe(err, s.messages.For(action))
}

// Err returns the display message of the last failure, or "".
func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// IsIndexing reports whether a trigger for id is outstanding.
func (s *Store) IsIndexing(id api.FolderID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Contains(s.indexing, id)
}

// FolderByID looks a folder up by id.
func (s *Store) FolderByID(id api.FolderID) (api.WatchedFolder, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i >= 0 {
		return cloneFolder(s.folders[i]), true
	}
	return api.WatchedFolder{}, false
}

// EnabledFolders returns the enabled folders in order.
func (s *Store) EnabledFolders() []api.WatchedFolder {
	return s.filter(func(f api.WatchedFolder) bool { return f.Enabled })
}

// FoldersByTag returns the folders tagged tag, in order.
func (s *Store) FoldersByTag(tag string) []api.WatchedFolder {
	return s.filter(func(f api.WatchedFolder) bool { return f.HasTag(tag) })
}

// IndexingFolders returns the folders with an outstanding index trigger.
func (s *Store) IndexingFolders() []api.WatchedFolder {
	return s.filter(func(f api.WatchedFolder) bool { return slices.Contains(s.indexing, f.ID) })
}

// TotalFileCount sums file_count over all folders.
func (s *Store) TotalFileCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, f := range s.folders {
		total += f.FileCount
	}
	return total
}

// filter runs keep under the lock.
func (s *Store) filter(keep func(api.WatchedFolder) bool) []api.WatchedFolder {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []api.WatchedFolder{}
	for _, f := range s.folders {
		if keep(f) {
			out = append(out, cloneFolder(f))
		}
	}
	return out
}

// begin marks an action as in flight and clears the previous error.
func (s *Store) begin() {
	s.mutate(func() {
		s.inflight++
		s.err = ""
	})
}

// fail ends an in-flight action with err.
func (s *Store) fail(ctx context.Context, action Action, id api.FolderID, err error, fallback string) {
	msg := describe(err, fallback)
	s.mutate(func() {
		s.inflight--
		s.err = msg
	})
	s.record(ctx, action, id, msg)
}

// claimIndexing adds id to the indexing set, reporting false if it was already there.
func (s *Store) claimIndexing(id api.FolderID) bool {
	s.mu.Lock()
	if slices.Contains(s.indexing, id) {
		s.mu.Unlock()
		return false
	}
	s.indexing = append(s.indexing, id)
	s.err = ""
	state, listeners := s.snapshotLocked(), s.listenersLocked()
	s.mu.Unlock()

	notify(listeners, state)
	return true
}

// mutate applies fn under the lock and notifies subscribers afterwards.
func (s *Store) mutate(fn func()) {
	s.mu.Lock()
	fn()
	state, listeners := s.snapshotLocked(), s.listenersLocked()
	s.mu.Unlock()

	notify(listeners, state)
}

func (s *Store) record(ctx context.Context, action Action, id api.FolderID, msg string) {
	if s.recorder == nil {
		return
	}
	activity := Activity{
		Action:    action,
		FolderID:  id,
		Success:   msg == "",
		Message:   msg,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.recorder.Record(ctx, activity); err != nil {
		s.getLogger(ctx).WarnContext(ctx, "failed to record activity", "action", action, "error", err)
	}
}

func (s *Store) getLogger(ctx context.Context) *slog.Logger {
	if l := contextutil.LoggerFromContext(ctx); l != slog.Default() {
		return l
	}
	return s.logger
}

func (s *Store) indexOf(id api.FolderID) int {
	return slices.IndexFunc(s.folders, func(f api.WatchedFolder) bool { return f.ID == id })
}

func (s *Store) snapshotLocked() State {
	return State{
		Folders:  cloneFolders(s.folders),
		Loading:  s.inflight > 0,
		Error:    s.err,
		Indexing: append([]api.FolderID{}, s.indexing...),
	}
}

func (s *Store) listenersLocked() []func(State) {
	out := make([]func(State), 0, len(s.listeners))
	for _, fn := range s.listeners {
		out = append(out, fn)
	}
	return out
}

func notify(listeners []func(State), state State) {
	for _, fn := range listeners {
		fn(state)
	}
}

func cloneFolder(f api.WatchedFolder) api.WatchedFolder {
	f.Tags = slices.Clone(f.Tags)
	f.FileTypes = slices.Clone(f.FileTypes)
	return f
}

func cloneFolders(in []api.WatchedFolder) []api.WatchedFolder {
	out := make([]api.WatchedFolder, len(in))
	for i, f := range in {
		out[i] = cloneFolder(f)
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return slices.Clone(s)
}
