package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"dexsearch/internal/contextutil"
)

// Defaults the frontend used when a caller passed no limit.
const (
	DefaultSearchLimit       = 50
	DefaultSuggestionLimit   = 10
	DefaultAISuggestionLimit = 5
	DefaultAnswerMaxLength   = 500
	DefaultSearchType        = "semantic"
)

// RequestIDHeader carries a per-request UUID so backend logs can be correlated.
const RequestIDHeader = "X-Request-ID"

// Client is a client for the Dex Search backend API.
// Every method issues exactly one request. Failures are returned unchanged
// apart from wrapping: no retries, no caching, no timeout beyond the
// underlying http.Client and the caller's context.
type Client struct {
	BaseURL string
	client  *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.client = hc
		}
	}
}

// NewClient creates a new backend client for baseURL (e.g. "http://localhost:8000").
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		client:  http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Health calls GET /api/health.
func (c *Client) Health(ctx context.Context) (HealthStatus, error) {
	var out HealthStatus
	err := c.do(ctx, http.MethodGet, "/api/health", nil, nil, &out)
	return out, err
}

// ListFolders returns every watched folder in server order.
func (c *Client) ListFolders(ctx context.Context) ([]WatchedFolder, error) {
	var out []WatchedFolder
	if err := c.do(ctx, http.MethodGet, "/api/files/", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateFolder asks the backend to watch a new folder.
func (c *Client) CreateFolder(ctx context.Context, req CreateFolderRequest) (WatchedFolder, error) {
	var out WatchedFolder
	err := c.do(ctx, http.MethodPost, "/api/files/", nil, req, &out)
	return out, err
}

// DeleteFolder stops watching a folder.
func (c *Client) DeleteFolder(ctx context.Context, id FolderID) error {
	return c.do(ctx, http.MethodDelete, folderPath(id, ""), nil, nil, nil)
}

// UpdateFolder sends a partial update for a folder.
func (c *Client) UpdateFolder(ctx context.Context, id FolderID, update FolderUpdate) (WatchedFolder, error) {
	var out WatchedFolder
	err := c.do(ctx, http.MethodPut, folderPath(id, ""), nil, update, &out)
	return out, err
}

// TriggerIndex starts indexing a folder in the background on the server.
func (c *Client) TriggerIndex(ctx context.Context, id FolderID) (Message, error) {
	var out Message
	err := c.do(ctx, http.MethodPost, folderPath(id, "/index"), nil, nil, &out)
	return out, err
}

// FolderStatus returns the indexing progress of a folder.
func (c *Client) FolderStatus(ctx context.Context, id FolderID) (IndexStatus, error) {
	var out IndexStatus
	err := c.do(ctx, http.MethodGet, folderPath(id, "/indexing-status"), nil, nil, &out)
	if err == nil && out.FolderID == "" {
		out.FolderID = id
	}
	return out, err
}

// Browse lists a directory on the backend host. Relative paths are made absolute.
func (c *Client) Browse(ctx context.Context, path string) (BrowseResult, error) {
	var out BrowseResult
	err := c.do(ctx, http.MethodGet, "/api/files/browse"+escapePath(NormalizePath(path)), nil, nil, &out)
	return out, err
}

// ValidatePath asks the backend whether path can be watched.
func (c *Client) ValidatePath(ctx context.Context, path string) (PathValidation, error) {
	var out PathValidation
	err := c.do(ctx, http.MethodGet, "/api/files/validate-path", url.Values{"path": {path}}, nil, &out)
	return out, err
}

// FileStats returns aggregate counts over watched folders.
func (c *Client) FileStats(ctx context.Context) (FileStats, error) {
	var out FileStats
	err := c.do(ctx, http.MethodGet, "/api/files/stats", nil, nil, &out)
	return out, err
}

// SearchFiles runs a keyword search. A limit <= 0 means DefaultSearchLimit.
func (c *Client) SearchFiles(ctx context.Context, query string, limit int) (SearchResponse, error) {
	var out SearchResponse
	req := SearchRequest{Query: query, Limit: orDefault(limit, DefaultSearchLimit)}
	err := c.do(ctx, http.MethodPost, "/api/search/files", nil, req, &out)
	return out, err
}

// SearchSuggestions returns keyword completions. A limit <= 0 means DefaultSuggestionLimit.
func (c *Client) SearchSuggestions(ctx context.Context, query string, limit int) (Suggestions, error) {
	return c.suggestions(ctx, "/api/search/suggestions", query, orDefault(limit, DefaultSuggestionLimit))
}

// SearchStats returns keyword index statistics.
func (c *Client) SearchStats(ctx context.Context) (SearchStats, error) {
	var out SearchStats
	err := c.do(ctx, http.MethodGet, "/api/search/stats", nil, nil, &out)
	return out, err
}

// AISearch runs a search against the embedding index.
func (c *Client) AISearch(ctx context.Context, req AISearchRequest) (AISearchResponse, error) {
	var out AISearchResponse
	err := c.do(ctx, http.MethodPost, "/api/ai-search/search", nil, req, &out)
	return out, err
}

// AISuggestions returns completions from the embedding index. A limit <= 0 means DefaultAISuggestionLimit.
func (c *Client) AISuggestions(ctx context.Context, query string, limit int) (Suggestions, error) {
	return c.suggestions(ctx, "/api/ai-search/suggestions", query, orDefault(limit, DefaultAISuggestionLimit))
}

// AIStats returns embedding index statistics.
func (c *Client) AIStats(ctx context.Context) (IndexStats, error) {
	var out IndexStats
	err := c.do(ctx, http.MethodGet, "/api/ai-search/stats", nil, nil, &out)
	return out, err
}

// AIReindex rebuilds the embedding index from scratch.
func (c *Client) AIReindex(ctx context.Context) (ReindexResult, error) {
	var out ReindexResult
	err := c.do(ctx, http.MethodPost, "/api/ai-search/reindex", nil, nil, &out)
	return out, err
}

// AIClear empties the embedding index.
func (c *Client) AIClear(ctx context.Context) (Message, error) {
	var out Message
	err := c.do(ctx, http.MethodDelete, "/api/ai-search/clear", nil, nil, &out)
	return out, err
}

// OllamaSearch runs a search backed by the local model.
// Zero Limit and empty SearchType are filled with the defaults.
func (c *Client) OllamaSearch(ctx context.Context, req OllamaSearchRequest) (AISearchResponse, error) {
	req.Limit = orDefault(req.Limit, 10)
	if req.SearchType == "" {
		req.SearchType = DefaultSearchType
	}
	var out AISearchResponse
	err := c.do(ctx, http.MethodPost, "/api/ollama-ai-search/search", nil, req, &out)
	return out, err
}

// OllamaGenerateAnswer asks the local model to answer query from the given documents.
func (c *Client) OllamaGenerateAnswer(ctx context.Context, req GenerateAnswerRequest) (GeneratedAnswer, error) {
	req.MaxLength = orDefault(req.MaxLength, DefaultAnswerMaxLength)
	if req.ContextDocuments == nil {
		req.ContextDocuments = []map[string]any{}
	}
	var out GeneratedAnswer
	err := c.do(ctx, http.MethodPost, "/api/ollama-ai-search/generate-answer", nil, req, &out)
	return out, err
}

// OllamaSuggestions returns completions from the local model index. A limit <= 0 means DefaultAISuggestionLimit.
func (c *Client) OllamaSuggestions(ctx context.Context, query string, limit int) (Suggestions, error) {
	return c.suggestions(ctx, "/api/ollama-ai-search/suggestions", query, orDefault(limit, DefaultAISuggestionLimit))
}

// OllamaReindex rebuilds the local model index.
func (c *Client) OllamaReindex(ctx context.Context) (ReindexResult, error) {
	var out ReindexResult
	err := c.do(ctx, http.MethodPost, "/api/ollama-ai-search/index", nil, nil, &out)
	return out, err
}

// OllamaClearIndex empties the local model index.
func (c *Client) OllamaClearIndex(ctx context.Context) (Message, error) {
	var out Message
	err := c.do(ctx, http.MethodPost, "/api/ollama-ai-search/clear-index", nil, nil, &out)
	return out, err
}

// OllamaStats returns local model index statistics.
func (c *Client) OllamaStats(ctx context.Context) (IndexStats, error) {
	var out IndexStats
	err := c.do(ctx, http.MethodGet, "/api/ollama-ai-search/stats", nil, nil, &out)
	return out, err
}

// Get issues a GET for any backend route and decodes the body into out (if non-nil).
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues a POST with body encoded as JSON and decodes the reply into out (if non-nil).
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	if body == nil {
		body = struct{}{}
	}
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// Delete issues a DELETE and decodes the reply into out (if non-nil).
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}

func (c *Client) suggestions(ctx context.Context, path, query string, limit int) (Suggestions, error) {
	var out Suggestions
	q := url.Values{
		"query": {query},
		"limit": {strconv.Itoa(limit)},
	}
	err := c.do(ctx, http.MethodGet, path, q, nil, &out)
	return out, err
}

// do sends one request and decodes a JSON reply into out.
// An empty reply body leaves out untouched.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	logger := contextutil.LoggerFromContext(ctx)

	endpoint := c.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logger.DebugContext(ctx, "backend request", "method", method, "url", endpoint, "request_id", requestID)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		logger.DebugContext(ctx, "backend request failed", "method", method, "url", endpoint, "status", resp.StatusCode, "request_id", requestID)
		return newStatusError(method, endpoint, resp.StatusCode, raw)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
