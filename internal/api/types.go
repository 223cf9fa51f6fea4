package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"time"
)

// FolderID identifies a watched folder. The backend assigns integer ids,
// so FolderID decodes from JSON numbers as well as strings.
type FolderID string

// UnmarshalJSON accepts a JSON string, a JSON number or null.
func (id *FolderID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = FolderID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("folder id must be a string or number: %w", err)
	}
	*id = FolderID(n.String())
	return nil
}

// timestampLayouts are tried in order. The backend serializes naive
// datetimes without a zone, which are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Timestamp is a time.Time that tolerates the backend's zone-less ISO format.
type Timestamp struct {
	time.Time
}

// UnmarshalJSON parses any of timestampLayouts. Null and "" leave the zero time.
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	if s == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp %q", s)
}

// MarshalJSON writes RFC3339.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.Format(time.RFC3339Nano))
}

// WatchedFolder is a folder the backend watches and indexes.
// ID is empty until the backend has accepted the folder.
type WatchedFolder struct {
	ID              FolderID   `json:"id,omitempty"`
	Path            string     `json:"path"`
	Tags            []string   `json:"tags"`
	Recursive       bool       `json:"recursive"`
	FileTypes       []string   `json:"file_types"`
	ReindexOnChange bool       `json:"reindex_on_change"`
	Enabled         bool       `json:"enabled"`
	LastIndexed     *Timestamp `json:"last_indexed,omitempty"`
	NextScheduled   *Timestamp `json:"next_scheduled,omitempty"`
	FileCount       int        `json:"file_count"`
}

// HasTag reports whether tag is one of the folder's tags.
func (f WatchedFolder) HasTag(tag string) bool {
	return slices.Contains(f.Tags, tag)
}

// FolderUpdate is a partial update. Nil fields are left out of the request.
type FolderUpdate struct {
	Enabled         *bool     `json:"enabled,omitempty"`
	Recursive       *bool     `json:"recursive,omitempty"`
	Tags            *[]string `json:"tags,omitempty"`
	FileTypes       *[]string `json:"file_types,omitempty"`
	ReindexOnChange *bool     `json:"reindex_on_change,omitempty"`
}

// IsEmpty reports whether no field is set.
func (u FolderUpdate) IsEmpty() bool {
	return u.Enabled == nil && u.Recursive == nil && u.Tags == nil && u.FileTypes == nil && u.ReindexOnChange == nil
}

// Apply returns f with every set field of u written over it.
func (u FolderUpdate) Apply(f WatchedFolder) WatchedFolder {
	if u.Enabled != nil {
		f.Enabled = *u.Enabled
	}
	if u.Recursive != nil {
		f.Recursive = *u.Recursive
	}
	if u.Tags != nil {
		f.Tags = slices.Clone(*u.Tags)
	}
	if u.FileTypes != nil {
		f.FileTypes = slices.Clone(*u.FileTypes)
	}
	if u.ReindexOnChange != nil {
		f.ReindexOnChange = *u.ReindexOnChange
	}
	return f
}

// CreateFolderRequest is the body of POST /api/files/.
type CreateFolderRequest struct {
	Path      string   `json:"path"`
	Name      string   `json:"name"`
	Type      string   `json:"type"` // "folder" or "file"
	Recursive *bool    `json:"recursive,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	FileTypes []string `json:"file_types,omitempty"`
}

// IndexStatus reports indexing progress for one folder.
type IndexStatus struct {
	FolderID       FolderID   `json:"folder_id"`
	Status         string     `json:"status"`
	Progress       float64    `json:"progress"`
	FilesProcessed int        `json:"files_processed"`
	TotalFiles     int        `json:"total_files"`
	StartTime      *Timestamp `json:"start_time,omitempty"`
	EndTime        *Timestamp `json:"end_time,omitempty"`
	ErrorMessage   string     `json:"error_message,omitempty"`
}

// Message is the generic {"message": ...} acknowledgement.
type Message struct {
	Message string `json:"message"`
}

// HealthStatus is the body of GET /api/health.
type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// BrowseItem is one entry of a directory listing.
type BrowseItem struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Type     string `json:"type"`
	Size     *int64 `json:"size"`
	Readable bool   `json:"readable"`
}

// BrowseResult is a directory listing on the backend host.
type BrowseResult struct {
	CurrentPath string       `json:"current_path"`
	ParentPath  *string      `json:"parent_path"`
	Items       []BrowseItem `json:"items"`
}

// PathValidation is the backend's verdict on a candidate folder path.
type PathValidation struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
	Type  string `json:"type,omitempty"`
	Name  string `json:"name,omitempty"`
	Path  string `json:"path,omitempty"`
}

// FileStats is the body of GET /api/files/stats.
type FileStats struct {
	TotalWatchedItems int            `json:"total_watched_items"`
	TotalIndexedFiles int            `json:"total_indexed_files"`
	FileTypes         map[string]int `json:"file_types"`
	EnabledItems      int            `json:"enabled_items"`
}

// SearchRequest is the body of POST /api/search/files.
type SearchRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
}

// SearchResult is one keyword search hit.
type SearchResult struct {
	ID              FolderID `json:"id"`
	FilePath        string   `json:"file_path"`
	FileName        string   `json:"file_name"`
	FileSize        int64    `json:"file_size"`
	FileType        string   `json:"file_type"`
	ContentText     string   `json:"content_text"`
	WatchedItemName string   `json:"watched_item_name"`
	WatchedItemPath string   `json:"watched_item_path"`
	IndexedAt       string   `json:"indexed_at"`
}

// SearchResponse wraps keyword search hits.
type SearchResponse struct {
	Query        string         `json:"query"`
	TotalResults int            `json:"total_results"`
	Results      []SearchResult `json:"results"`
}

// Suggestions is returned by every suggestions endpoint.
type Suggestions struct {
	Query       string   `json:"query,omitempty"`
	Suggestions []string `json:"suggestions"`
}

// FileTypeStat is a per-item entry of SearchStats.
type FileTypeStat struct {
	Count   int    `json:"count"`
	Type    string `json:"type"`
	Enabled bool   `json:"enabled"`
}

// SearchStats is the body of GET /api/search/stats.
type SearchStats struct {
	TotalIndexedFiles int                     `json:"total_indexed_files"`
	TotalWatchedItems int                     `json:"total_watched_items"`
	FileTypeStats     map[string]FileTypeStat `json:"file_type_stats"`
}

// AISearchRequest is the body of POST /api/ai-search/search.
type AISearchRequest struct {
	Query        string   `json:"query"`
	Limit        int      `json:"limit,omitempty"`
	SearchType   string   `json:"search_type,omitempty"`
	FileTypes    []string `json:"file_types,omitempty"`
	WatchedItems []string `json:"watched_items,omitempty"`
}

// OllamaSearchRequest is the body of POST /api/ollama-ai-search/search.
type OllamaSearchRequest struct {
	Query      string   `json:"query"`
	Limit      int      `json:"limit"`
	SearchType string   `json:"search_type"`
	FileTypes  []string `json:"file_types,omitempty"`
}

// AISearchResult is one semantic search hit.
type AISearchResult struct {
	ID                string         `json:"id"`
	FilePath          string         `json:"file_path"`
	FileName          string         `json:"file_name"`
	FileType          string         `json:"file_type"`
	WatchedItemName   string         `json:"watched_item_name"`
	ContentText       string         `json:"content_text"`
	RelevanceScore    float64        `json:"relevance_score"`
	Distance          float64        `json:"distance"`
	RelevanceAnalysis map[string]any `json:"relevance_analysis,omitempty"`
	ContextSnippets   []string       `json:"context_snippets,omitempty"`
}

// AISearchResponse wraps semantic search hits.
type AISearchResponse struct {
	Query        string           `json:"query"`
	SearchType   string           `json:"search_type"`
	TotalResults int              `json:"total_results"`
	Results      []AISearchResult `json:"results"`
}

// GenerateAnswerRequest is the body of POST /api/ollama-ai-search/generate-answer.
type GenerateAnswerRequest struct {
	Query            string           `json:"query"`
	ContextDocuments []map[string]any `json:"context_documents"`
	MaxLength        int              `json:"max_length"`
}

// GeneratedAnswer is the local model's answer to a query.
type GeneratedAnswer struct {
	Query                 string `json:"query"`
	Answer                string `json:"answer"`
	ContextDocumentsCount int    `json:"context_documents_count"`
}

// IndexStats is returned by the AI and Ollama stats endpoints.
type IndexStats struct {
	AIIndexStats      map[string]any `json:"ai_index_stats"`
	TotalWatchedItems int            `json:"total_watched_items"`
	TotalIndexedFiles int            `json:"total_indexed_files"`
}

// ReindexResult is returned by both reindex endpoints. The AI route
// reports TotalIndexed, the Ollama route IndexedCount.
type ReindexResult struct {
	Message      string         `json:"message"`
	TotalIndexed int            `json:"total_indexed,omitempty"`
	IndexedCount int            `json:"indexed_count,omitempty"`
	Stats        map[string]any `json:"stats,omitempty"`
}
