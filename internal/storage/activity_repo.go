package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"dexsearch/internal/api"
	"dexsearch/internal/folders"

	"github.com/google/uuid"
)

// createdAtLayout is fixed width so that text order equals time order.
const createdAtLayout = "2006-01-02 15:04:05.000000000"

// DefaultActivityLimit is used by ListRecent when limit is not positive.
const DefaultActivityLimit = 50

// ActivityRepo journals folder store actions. It implements folders.Recorder.
type ActivityRepo struct {
	db  *sql.DB
	now func() time.Time
}

// NewActivityRepo creates a new ActivityRepo.
func NewActivityRepo(db *sql.DB) *ActivityRepo {
	return &ActivityRepo{db: db, now: time.Now}
}

// Record inserts an activity. A missing id is generated and a zero
// CreatedAt is set to the current time.
func (r *ActivityRepo) Record(ctx context.Context, activity folders.Activity) error {
	if activity.ID == "" {
		activity.ID = uuid.NewString()
	}
	if activity.CreatedAt.IsZero() {
		activity.CreatedAt = r.now()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO activities (id, action, folder_id, success, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		activity.ID,
		string(activity.Action),
		string(activity.FolderID),
		activity.Success,
		activity.Message,
		activity.CreatedAt.UTC().Format(createdAtLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to insert activity: %w", err)
	}
	return nil
}

// ListRecent returns up to limit activities, newest first.
func (r *ActivityRepo) ListRecent(ctx context.Context, limit int) ([]folders.Activity, error) {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, action, folder_id, success, message, created_at
		FROM activities
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query activities: %w", err)
	}
	defer rows.Close()

	activities := []folders.Activity{}
	for rows.Next() {
		var (
			a         folders.Activity
			action    string
			folderID  string
			createdAt string
		)
		if err := rows.Scan(&a.ID, &action, &folderID, &a.Success, &a.Message, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		a.Action = folders.Action(action)
		a.FolderID = api.FolderID(folderID)
		a.CreatedAt, err = parseCreatedAt(createdAt)
		if err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate activities: %w", err)
	}

	return activities, nil
}

// Prune deletes all but the keep newest activities and reports how many went.
func (r *ActivityRepo) Prune(ctx context.Context, keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}

	result, err := r.db.ExecContext(ctx,
		`DELETE FROM activities WHERE id NOT IN (
			SELECT id FROM activities ORDER BY created_at DESC, rowid DESC LIMIT ?
		)`,
		keep,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to prune activities: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count pruned activities: %w", err)
	}
	return n, nil
}

// parseCreatedAt accepts our own layout plus the RFC 3339 form the sqlite
// driver produces when it hands a DATETIME back as text.
func parseCreatedAt(s string) (time.Time, error) {
	for _, layout := range []string{createdAtLayout, time.RFC3339Nano, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("failed to parse activity timestamp %q", s)
}
