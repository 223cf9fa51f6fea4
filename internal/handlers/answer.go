package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"dexsearch/internal/api"
	"dexsearch/internal/contextutil"
	"dexsearch/internal/render"
)

// AnswerHandler asks the backend's local model for an answer and renders it.
type AnswerHandler struct {
	backend Backend
	render  func(string) (string, error)
}

// NewAnswerHandler creates a new AnswerHandler.
func NewAnswerHandler(backend Backend) *AnswerHandler {
	return &AnswerHandler{
		backend: backend,
		render:  render.Markdown,
	}
}

// AnswerRequest is the body of POST /api/answer.
type AnswerRequest struct {
	Query            string           `json:"query"`
	ContextDocuments []map[string]any `json:"context_documents,omitempty"`
	MaxLength        int              `json:"max_length,omitempty"`
}

// AnswerResponse carries the answer as markdown and as HTML.
type AnswerResponse struct {
	Query                 string `json:"query"`
	Answer                string `json:"answer"`
	HTML                  string `json:"html"`
	ContextDocumentsCount int    `json:"context_documents_count"`
}

// ServeHTTP handles POST /api/answer.
func (h *AnswerHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Query = strings.TrimSpace(req.Query)
	if req.Query == "" {
		logger.WarnContext(ctx, "empty query in request")
		writeError(w, http.StatusBadRequest, "Query is required")
		return
	}
	if req.ContextDocuments == nil {
		req.ContextDocuments = []map[string]any{}
	}

	answer, err := h.backend.OllamaGenerateAnswer(ctx, api.GenerateAnswerRequest{
		Query:            req.Query,
		ContextDocuments: req.ContextDocuments,
		MaxLength:        req.MaxLength,
	})
	if err != nil {
		handleBackendError(ctx, w, err, "", "Failed to generate answer")
		return
	}

	html, err := h.render(answer.Answer)
	if err != nil {
		logger.ErrorContext(ctx, "failed to render answer", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to render answer")
		return
	}

	writeJSON(ctx, w, http.StatusOK, AnswerResponse{
		Query:                 answer.Query,
		Answer:                answer.Answer,
		HTML:                  html,
		ContextDocumentsCount: answer.ContextDocumentsCount,
	})
}
