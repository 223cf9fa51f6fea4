package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func TestNewClient(t *testing.T) {
	client := NewClient("http://localhost:8000/")
	if client == nil {
		t.Fatal("NewClient() returned nil")
	}
	if client.BaseURL != "http://localhost:8000" {
		t.Errorf("NewClient() BaseURL = %v, want http://localhost:8000", client.BaseURL)
	}
	if client.client != http.DefaultClient {
		t.Error("NewClient() should default to http.DefaultClient")
	}

	custom := &http.Client{}
	client = NewClient("http://localhost:8000", WithHTTPClient(custom))
	if client.client != custom {
		t.Error("WithHTTPClient() did not replace the http client")
	}
}

// recordedRequest is what the fake backend saw.
type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Body   map[string]any
}

// newBackend starts a fake backend answering every route with reply.
func newBackend(t *testing.T, status int, reply string) (*httptest.Server, *[]recordedRequest) {
	t.Helper()
	var (
		mu   sync.Mutex
		seen []recordedRequest
	)

	r := chi.NewRouter()
	r.HandleFunc("/*", func(w http.ResponseWriter, req *http.Request) {
		rec := recordedRequest{
			Method: req.Method,
			Path:   req.URL.Path,
			Query:  req.URL.RawQuery,
		}
		raw, _ := io.ReadAll(req.Body)
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &rec.Body); err != nil {
				t.Errorf("request body is not a JSON object: %s", raw)
			}
		}
		mu.Lock()
		seen = append(seen, rec)
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(reply))
	})

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server, &seen
}

func boolPtr(b bool) *bool { return &b }

func TestClient_Routes(t *testing.T) {
	tests := []struct {
		name       string
		call       func(ctx context.Context, c *Client) error
		wantMethod string
		wantPath   string
		wantQuery  string
		wantBody   map[string]any
	}{
		{
			name: "health",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Health(ctx)
				return err
			},
			wantMethod: http.MethodGet,
			wantPath:   "/api/health",
		},
		{
			name: "list folders",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.ListFolders(ctx)
				return err
			},
			wantMethod: http.MethodGet,
			wantPath:   "/api/files/",
		},
		{
			name: "create folder",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.CreateFolder(ctx, CreateFolderRequest{
					Path:      "/home/docs",
					Name:      "docs",
					Type:      "folder",
					Recursive: boolPtr(true),
					FileTypes: []string{".pdf"},
				})
				return err
			},
			wantMethod: http.MethodPost,
			wantPath:   "/api/files/",
			wantBody: map[string]any{
				"path":       "/home/docs",
				"name":       "docs",
				"type":       "folder",
				"recursive":  true,
				"file_types": []any{".pdf"},
			},
		},
		{
			name: "delete folder",
			call: func(ctx context.Context, c *Client) error {
				return c.DeleteFolder(ctx, "7")
			},
			wantMethod: http.MethodDelete,
			wantPath:   "/api/files/7",
		},
		{
			name: "update folder sends only set fields",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.UpdateFolder(ctx, "7", FolderUpdate{Enabled: boolPtr(false)})
				return err
			},
			wantMethod: http.MethodPut,
			wantPath:   "/api/files/7",
			wantBody:   map[string]any{"enabled": false},
		},
		{
			name: "trigger index",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.TriggerIndex(ctx, "7")
				return err
			},
			wantMethod: http.MethodPost,
			wantPath:   "/api/files/7/index",
		},
		{
			name: "folder status",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.FolderStatus(ctx, "7")
				return err
			},
			wantMethod: http.MethodGet,
			wantPath:   "/api/files/7/indexing-status",
		},
		{
			name: "file stats",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.FileStats(ctx)
				return err
			},
			wantMethod: http.MethodGet,
			wantPath:   "/api/files/stats",
		},
		{
			name: "search files with default limit",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.SearchFiles(ctx, "faktura", 0)
				return err
			},
			wantMethod: http.MethodPost,
			wantPath:   "/api/search/files",
			wantBody:   map[string]any{"query": "faktura", "limit": float64(50)},
		},
		{
			name: "search suggestions",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.SearchSuggestions(ctx, "fak tura", 0)
				return err
			},
			wantMethod: http.MethodGet,
			wantPath:   "/api/search/suggestions",
			wantQuery:  "limit=10&query=fak+tura",
		},
		{
			name: "search stats",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.SearchStats(ctx)
				return err
			},
			wantMethod: http.MethodGet,
			wantPath:   "/api/search/stats",
		},
		{
			name: "ai search",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.AISearch(ctx, AISearchRequest{Query: "smlouva", Limit: 3, WatchedItems: []string{"1"}})
				return err
			},
			wantMethod: http.MethodPost,
			wantPath:   "/api/ai-search/search",
			wantBody:   map[string]any{"query": "smlouva", "limit": float64(3), "watched_items": []any{"1"}},
		},
		{
			name: "ai suggestions",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.AISuggestions(ctx, "sml", 0)
				return err
			},
			wantMethod: http.MethodGet,
			wantPath:   "/api/ai-search/suggestions",
			wantQuery:  "limit=5&query=sml",
		},
		{
			name: "ai stats",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.AIStats(ctx)
				return err
			},
			wantMethod: http.MethodGet,
			wantPath:   "/api/ai-search/stats",
		},
		{
			name: "ai reindex",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.AIReindex(ctx)
				return err
			},
			wantMethod: http.MethodPost,
			wantPath:   "/api/ai-search/reindex",
		},
		{
			name: "ai clear",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.AIClear(ctx)
				return err
			},
			wantMethod: http.MethodDelete,
			wantPath:   "/api/ai-search/clear",
		},
		{
			name: "ollama search fills defaults",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.OllamaSearch(ctx, OllamaSearchRequest{Query: "q"})
				return err
			},
			wantMethod: http.MethodPost,
			wantPath:   "/api/ollama-ai-search/search",
			wantBody:   map[string]any{"query": "q", "limit": float64(10), "search_type": "semantic"},
		},
		{
			name: "ollama generate answer",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.OllamaGenerateAnswer(ctx, GenerateAnswerRequest{Query: "q"})
				return err
			},
			wantMethod: http.MethodPost,
			wantPath:   "/api/ollama-ai-search/generate-answer",
			wantBody:   map[string]any{"query": "q", "context_documents": []any{}, "max_length": float64(500)},
		},
		{
			name: "ollama suggestions",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.OllamaSuggestions(ctx, "q", 2)
				return err
			},
			wantMethod: http.MethodGet,
			wantPath:   "/api/ollama-ai-search/suggestions",
			wantQuery:  "limit=2&query=q",
		},
		{
			name: "ollama reindex",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.OllamaReindex(ctx)
				return err
			},
			wantMethod: http.MethodPost,
			wantPath:   "/api/ollama-ai-search/index",
		},
		{
			name: "ollama clear index",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.OllamaClearIndex(ctx)
				return err
			},
			wantMethod: http.MethodPost,
			wantPath:   "/api/ollama-ai-search/clear-index",
		},
		{
			name: "ollama stats",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.OllamaStats(ctx)
				return err
			},
			wantMethod: http.MethodGet,
			wantPath:   "/api/ollama-ai-search/stats",
		},
		{
			name: "generic get",
			call: func(ctx context.Context, c *Client) error {
				return c.Get(ctx, "/api/schedule/config", nil, nil)
			},
			wantMethod: http.MethodGet,
			wantPath:   "/api/schedule/config",
		},
		{
			name: "generic post without body",
			call: func(ctx context.Context, c *Client) error {
				return c.Post(ctx, "/api/schedule/run", nil, nil)
			},
			wantMethod: http.MethodPost,
			wantPath:   "/api/schedule/run",
			wantBody:   map[string]any{},
		},
		{
			name: "generic delete",
			call: func(ctx context.Context, c *Client) error {
				return c.Delete(ctx, "/api/settings/cache", nil)
			},
			wantMethod: http.MethodDelete,
			wantPath:   "/api/settings/cache",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, seen := newBackend(t, http.StatusOK, `{}`)
			client := NewClient(server.URL)

			if err := tt.call(context.Background(), client); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(*seen) != 1 {
				t.Fatalf("backend saw %d requests, want 1", len(*seen))
			}
			got := (*seen)[0]
			if got.Method != tt.wantMethod {
				t.Errorf("method = %v, want %v", got.Method, tt.wantMethod)
			}
			if got.Path != tt.wantPath {
				t.Errorf("path = %v, want %v", got.Path, tt.wantPath)
			}
			if got.Query != tt.wantQuery {
				t.Errorf("query = %v, want %v", got.Query, tt.wantQuery)
			}
			if tt.wantBody != nil && !reflect.DeepEqual(got.Body, tt.wantBody) {
				t.Errorf("body = %v, want %v", got.Body, tt.wantBody)
			}
		})
	}
}

func TestClient_Browse_NormalizesPath(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		wantPath    string
		wantEscaped string
	}{
		{
			name:        "relative path gets leading separator",
			path:        "docs/sub",
			wantPath:    "/api/files/browse/docs/sub",
			wantEscaped: "/api/files/browse/docs/sub",
		},
		{
			name:        "absolute path unchanged",
			path:        "/docs",
			wantPath:    "/api/files/browse/docs",
			wantEscaped: "/api/files/browse/docs",
		},
		{
			name:        "segments are percent-encoded",
			path:        "home/my docs/50%",
			wantPath:    "/api/files/browse/home/my docs/50%",
			wantEscaped: "/api/files/browse/home/my%20docs/50%25",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath, gotEscaped string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				gotEscaped = r.URL.EscapedPath()
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"current_path":"/docs","parent_path":"/","items":[{"name":"a.pdf","path":"/docs/a.pdf","type":"file","size":12,"readable":true}]}`))
			}))
			defer server.Close()

			result, err := NewClient(server.URL).Browse(context.Background(), tt.path)
			if err != nil {
				t.Fatalf("Browse() unexpected error: %v", err)
			}
			if gotPath != tt.wantPath {
				t.Errorf("Browse() path = %v, want %v", gotPath, tt.wantPath)
			}
			if gotEscaped != tt.wantEscaped {
				t.Errorf("Browse() escaped path = %v, want %v", gotEscaped, tt.wantEscaped)
			}
			if len(result.Items) != 1 || result.Items[0].Name != "a.pdf" {
				t.Errorf("Browse() items = %+v", result.Items)
			}
		})
	}
}

func TestClient_ValidatePath_EncodesQuery(t *testing.T) {
	var gotPath, gotRaw string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Query().Get("path")
		gotRaw = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"valid":false,"error":"Cesta neexistuje"}`))
	}))
	defer server.Close()

	result, err := NewClient(server.URL).ValidatePath(context.Background(), "/home/a b&c")
	if err != nil {
		t.Fatalf("ValidatePath() unexpected error: %v", err)
	}
	if gotPath != "/home/a b&c" {
		t.Errorf("ValidatePath() path param = %q, want %q", gotPath, "/home/a b&c")
	}
	if gotRaw != "path=%2Fhome%2Fa+b%26c" {
		t.Errorf("ValidatePath() raw query = %q", gotRaw)
	}
	if result.Valid || result.Error != "Cesta neexistuje" {
		t.Errorf("ValidatePath() = %+v", result)
	}
}

func TestClient_SetsRequestID(t *testing.T) {
	var gotID, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Header.Get(RequestIDHeader)
		gotAccept = r.Header.Get("Accept")
		_, _ = w.Write([]byte(`{"status":"healthy"}`))
	}))
	defer server.Close()

	status, err := NewClient(server.URL).Health(context.Background())
	if err != nil {
		t.Fatalf("Health() unexpected error: %v", err)
	}
	if status.Status != "healthy" {
		t.Errorf("Health() status = %v, want healthy", status.Status)
	}
	if _, err := uuid.Parse(gotID); err != nil {
		t.Errorf("%s header %q is not a UUID: %v", RequestIDHeader, gotID, err)
	}
	if gotAccept != "application/json" {
		t.Errorf("Accept header = %q, want application/json", gotAccept)
	}
}

func TestClient_ListFolders_DecodesBackendShapes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 1, "path": "/home/docs", "tags": ["pdf"], "recursive": true, "file_types": [".pdf"],
			 "reindex_on_change": true, "enabled": true, "last_indexed": "2024-03-01T10:20:30.123456", "file_count": 4},
			{"id": "b2", "path": "/mnt/share", "tags": [], "recursive": false, "file_types": [],
			 "reindex_on_change": false, "enabled": false, "last_indexed": null, "file_count": 0}
		]`))
	}))
	defer server.Close()

	folders, err := NewClient(server.URL).ListFolders(context.Background())
	if err != nil {
		t.Fatalf("ListFolders() unexpected error: %v", err)
	}
	if len(folders) != 2 {
		t.Fatalf("ListFolders() returned %d folders, want 2", len(folders))
	}
	if folders[0].ID != "1" || folders[1].ID != "b2" {
		t.Errorf("ListFolders() ids = %q, %q", folders[0].ID, folders[1].ID)
	}
	if folders[0].LastIndexed == nil || folders[0].LastIndexed.Year() != 2024 || folders[0].LastIndexed.Nanosecond() != 123456000 {
		t.Errorf("ListFolders() last_indexed = %v", folders[0].LastIndexed)
	}
	if folders[1].LastIndexed != nil {
		t.Errorf("ListFolders() null last_indexed should stay nil, got %v", folders[1].LastIndexed)
	}
	if !folders[0].HasTag("pdf") || folders[1].HasTag("pdf") {
		t.Error("HasTag() mismatch")
	}
}

func TestClient_Errors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
		wantDetail string
	}{
		{
			name:       "fastapi string detail",
			status:     http.StatusNotFound,
			body:       `{"detail":"Cesta neexistuje"}`,
			wantStatus: http.StatusNotFound,
			wantDetail: "Cesta neexistuje",
		},
		{
			name:       "fastapi validation detail",
			status:     http.StatusUnprocessableEntity,
			body:       `{"detail":[{"loc":["body","path"],"msg":"field required"},{"loc":["body","name"],"msg":"field required"}]}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantDetail: "field required; field required",
		},
		{
			name:       "plain text body",
			status:     http.StatusInternalServerError,
			body:       `internal server error`,
			wantStatus: http.StatusInternalServerError,
			wantDetail: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, _ := newBackend(t, tt.status, tt.body)

			_, err := NewClient(server.URL).ListFolders(context.Background())
			if err == nil {
				t.Fatal("ListFolders() expected error, got nil")
			}

			var statusErr *StatusError
			if !errors.As(err, &statusErr) {
				t.Fatalf("error %v is not a *StatusError", err)
			}
			if statusErr.StatusCode != tt.wantStatus {
				t.Errorf("StatusCode = %v, want %v", statusErr.StatusCode, tt.wantStatus)
			}
			if statusErr.Body != tt.body {
				t.Errorf("Body = %q, want %q", statusErr.Body, tt.body)
			}
			if got := Detail(err); got != tt.wantDetail {
				t.Errorf("Detail() = %q, want %q", got, tt.wantDetail)
			}
		})
	}
}

func TestClient_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	err := NewClient(url).DeleteFolder(context.Background(), "1")
	if err == nil {
		t.Fatal("DeleteFolder() expected error, got nil")
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		t.Errorf("transport failure should not be a StatusError: %v", err)
	}
	if Detail(err) != "" {
		t.Errorf("Detail() of transport failure = %q, want empty", Detail(err))
	}
}

func TestClient_EmptyReply(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	folder, err := NewClient(server.URL).UpdateFolder(context.Background(), "3", FolderUpdate{Enabled: boolPtr(true)})
	if err != nil {
		t.Fatalf("UpdateFolder() unexpected error: %v", err)
	}
	if folder.ID != "" {
		t.Errorf("UpdateFolder() with empty reply should return zero folder, got %+v", folder)
	}
}

func TestClient_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(server.URL).ListFolders(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ListFolders() error = %v, want context.Canceled", err)
	}
}
