package handlers

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_handlers.go -package=mocks dexsearch/internal/handlers Store,Backend,ActivityLister

import (
	"context"

	"dexsearch/internal/api"
	"dexsearch/internal/folders"
)

// Store is the folder store as seen by the dashboard. *folders.Store satisfies it.
type Store interface {
	Reload(ctx context.Context) error
	AddFolder(ctx context.Context, in folders.NewFolder) (api.WatchedFolder, error)
	UpdateFolder(ctx context.Context, id api.FolderID, update api.FolderUpdate) (api.WatchedFolder, error)
	DeleteFolder(ctx context.Context, id api.FolderID) error
	ToggleFolder(ctx context.Context, id api.FolderID) error
	TriggerIndex(ctx context.Context, id api.FolderID) error
	FolderStatus(ctx context.Context, id api.FolderID) (api.IndexStatus, error)
	ValidatePath(ctx context.Context, path string) (api.PathValidation, error)

	State() folders.State
	Folders() []api.WatchedFolder
	FolderByID(id api.FolderID) (api.WatchedFolder, bool)
	EnabledFolders() []api.WatchedFolder
	FoldersByTag(tag string) []api.WatchedFolder
	TotalFileCount() int
	Message(action folders.Action, err error) string
}

// Backend covers the search API calls the dashboard makes directly.
type Backend interface {
	Health(ctx context.Context) (api.HealthStatus, error)
	OllamaGenerateAnswer(ctx context.Context, req api.GenerateAnswerRequest) (api.GeneratedAnswer, error)
}

// ActivityLister reads the activity journal.
type ActivityLister interface {
	ListRecent(ctx context.Context, limit int) ([]folders.Activity, error)
}
