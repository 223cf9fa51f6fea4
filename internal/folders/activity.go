package folders

import (
	"context"
	"time"

	"dexsearch/internal/api"
)

// Action names a store action in the activity journal.
type Action string

const (
	ActionLoad   Action = "load"
	ActionAdd    Action = "add"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionIndex  Action = "index"
)

// Activity is the outcome of one store action.
type Activity struct {
	ID        string       `json:"id"`
	Action    Action       `json:"action"`
	FolderID  api.FolderID `json:"folder_id,omitempty"`
	Success   bool         `json:"success"`
	Message   string       `json:"message,omitempty"` // display error, empty on success
	CreatedAt time.Time    `json:"created_at"`
}

// Recorder persists activities. Failures are logged by the store and never
// reach the caller of the action.
type Recorder interface {
	Record(ctx context.Context, activity Activity) error
}
