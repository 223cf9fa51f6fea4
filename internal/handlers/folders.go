package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"dexsearch/internal/api"
	"dexsearch/internal/contextutil"
	"dexsearch/internal/folders"
)

// FolderHandler exposes the folder store over HTTP.
type FolderHandler struct {
	store Store
}

// NewFolderHandler creates a new FolderHandler.
func NewFolderHandler(store Store) *FolderHandler {
	return &FolderHandler{store: store}
}

// StateResponse is the dashboard's view of the store.
type StateResponse struct {
	folders.State
	TotalFileCount int `json:"total_file_count"`
}

// AddFolderRequest is the body of POST /api/folders.
// Recursive and Enabled default to true.
type AddFolderRequest struct {
	Path      string   `json:"path"`
	Name      string   `json:"name,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	Recursive *bool    `json:"recursive,omitempty"`
	FileTypes []string `json:"file_types,omitempty"`
	Enabled   *bool    `json:"enabled,omitempty"`
}

func (req AddFolderRequest) newFolder() folders.NewFolder {
	return folders.NewFolder{
		Path:      strings.TrimSpace(req.Path),
		Name:      req.Name,
		Tags:      req.Tags,
		Recursive: req.Recursive == nil || *req.Recursive,
		FileTypes: req.FileTypes,
		Disabled:  req.Enabled != nil && !*req.Enabled,
	}
}

// IndexResponse acknowledges an index trigger.
type IndexResponse struct {
	FolderID api.FolderID `json:"folder_id"`
	Indexing bool         `json:"indexing"`
}

// State handles GET /api/state.
func (h *FolderHandler) State(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, StateResponse{
		State:          h.store.State(),
		TotalFileCount: h.store.TotalFileCount(),
	})
}

// Refresh handles POST /api/folders/refresh.
func (h *FolderHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.store.Reload(ctx); err != nil {
		msg := h.store.Message(folders.ActionLoad, err)
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "folder refresh failed", "error", err)
		writeError(w, http.StatusBadGateway, msg)
		return
	}

	h.State(w, r)
}

// List handles GET /api/folders. Optional filters: tag and enabled.
func (h *FolderHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tag := strings.TrimSpace(r.URL.Query().Get("tag"))

	var enabled *bool
	if raw := r.URL.Query().Get("enabled"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			contextutil.LoggerFromContext(ctx).WarnContext(ctx, "invalid enabled filter", "value", raw)
			writeError(w, http.StatusBadRequest, "Invalid enabled filter")
			return
		}
		enabled = &v
	}

	var result []api.WatchedFolder
	switch {
	case tag != "":
		result = h.store.FoldersByTag(tag)
	case enabled != nil && *enabled:
		result = h.store.EnabledFolders()
	default:
		result = h.store.Folders()
	}

	if enabled != nil {
		filtered := make([]api.WatchedFolder, 0, len(result))
		for _, f := range result {
			if f.Enabled == *enabled {
				filtered = append(filtered, f)
			}
		}
		result = filtered
	}

	writeJSON(ctx, w, http.StatusOK, result)
}

// Create handles POST /api/folders.
func (h *FolderHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req AddFolderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	folder, err := h.store.AddFolder(ctx, req.newFolder())
	if err != nil {
		handleBackendError(ctx, w, err, h.store.Message(folders.ActionAdd, err), "Failed to add folder")
		return
	}

	writeJSON(ctx, w, http.StatusCreated, folder)
}

// Get handles GET /api/folders/{id}.
func (h *FolderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := folderID(w, r)
	if !ok {
		return
	}

	folder, found := h.store.FolderByID(id)
	if !found {
		writeError(w, http.StatusNotFound, "Folder not found")
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, folder)
}

// Update handles PUT /api/folders/{id}.
func (h *FolderHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := folderID(w, r)
	if !ok {
		return
	}

	var update api.FolderUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if update.IsEmpty() {
		writeError(w, http.StatusBadRequest, "Nothing to update")
		return
	}

	folder, err := h.store.UpdateFolder(ctx, id, update)
	if err != nil {
		handleBackendError(ctx, w, err, h.store.Message(folders.ActionUpdate, err), "Failed to update folder")
		return
	}

	writeJSON(ctx, w, http.StatusOK, folder)
}

// Delete handles DELETE /api/folders/{id}.
func (h *FolderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := folderID(w, r)
	if !ok {
		return
	}

	if err := h.store.DeleteFolder(ctx, id); err != nil {
		handleBackendError(ctx, w, err, h.store.Message(folders.ActionDelete, err), "Failed to delete folder")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Toggle handles POST /api/folders/{id}/toggle and returns the updated folder.
func (h *FolderHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := folderID(w, r)
	if !ok {
		return
	}

	if _, found := h.store.FolderByID(id); !found {
		writeError(w, http.StatusNotFound, "Folder not found")
		return
	}

	if err := h.store.ToggleFolder(ctx, id); err != nil {
		handleBackendError(ctx, w, err, h.store.Message(folders.ActionUpdate, err), "Failed to toggle folder")
		return
	}

	folder, _ := h.store.FolderByID(id)
	writeJSON(ctx, w, http.StatusOK, folder)
}

// Index handles POST /api/folders/{id}/index.
func (h *FolderHandler) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := folderID(w, r)
	if !ok {
		return
	}

	if err := h.store.TriggerIndex(ctx, id); err != nil {
		handleBackendError(ctx, w, err, h.store.Message(folders.ActionIndex, err), "Failed to start indexing")
		return
	}

	writeJSON(ctx, w, http.StatusAccepted, IndexResponse{FolderID: id, Indexing: true})
}

// Status handles GET /api/folders/{id}/status.
func (h *FolderHandler) Status(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := folderID(w, r)
	if !ok {
		return
	}

	status, err := h.store.FolderStatus(ctx, id)
	if err != nil {
		handleBackendError(ctx, w, err, "", "Failed to get indexing status")
		return
	}

	writeJSON(ctx, w, http.StatusOK, status)
}

// ValidatePath handles GET /api/validate-path?path=.
func (h *FolderHandler) ValidatePath(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	path := strings.TrimSpace(r.URL.Query().Get("path"))
	if path == "" {
		writeError(w, http.StatusBadRequest, "Path is required")
		return
	}

	validation, err := h.store.ValidatePath(ctx, path)
	if err != nil {
		handleBackendError(ctx, w, err, "", "Failed to validate path")
		return
	}

	writeJSON(ctx, w, http.StatusOK, validation)
}

// folderID reads the {id} route parameter, writing a 400 when it is empty.
func folderID(w http.ResponseWriter, r *http.Request) (api.FolderID, bool) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		writeError(w, http.StatusBadRequest, "Folder id is required")
		return "", false
	}
	return api.FolderID(id), true
}
