package handlers

import (
	"net/http"
	"strconv"
	"time"

	"dexsearch/internal/api"
	"dexsearch/internal/contextutil"
	"dexsearch/internal/folders"
)

const maxActivityLimit = 500

// ActivityHandler serves the activity journal.
type ActivityHandler struct {
	journal ActivityLister
}

// NewActivityHandler creates a new ActivityHandler.
func NewActivityHandler(journal ActivityLister) *ActivityHandler {
	return &ActivityHandler{journal: journal}
}

// ActivityResponse is one journal entry.
type ActivityResponse struct {
	ID        string         `json:"id"`
	Action    folders.Action `json:"action"`
	FolderID  api.FolderID   `json:"folder_id,omitempty"`
	Success   bool           `json:"success"`
	Message   string         `json:"message,omitempty"`
	CreatedAt string         `json:"created_at"`
}

// ServeHTTP handles GET /api/activity?limit=.
func (h *ActivityHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			logger.WarnContext(ctx, "invalid limit", "value", raw)
			writeError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = min(n, maxActivityLimit)
	}

	activities, err := h.journal.ListRecent(ctx, limit)
	if err != nil {
		logger.ErrorContext(ctx, "failed to list activity", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to list activity")
		return
	}

	resp := make([]ActivityResponse, 0, len(activities))
	for _, a := range activities {
		resp = append(resp, ActivityResponse{
			ID:        a.ID,
			Action:    a.Action,
			FolderID:  a.FolderID,
			Success:   a.Success,
			Message:   a.Message,
			CreatedAt: a.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	writeJSON(ctx, w, http.StatusOK, resp)
}
