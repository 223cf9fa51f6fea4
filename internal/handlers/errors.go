package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"dexsearch/internal/api"
	"dexsearch/internal/contextutil"
	"dexsearch/internal/folders"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes v with the given status code.
func writeJSON(ctx context.Context, w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error: message,
	})
}

// handleBackendError maps a failed backend call to an HTTP status.
// Client errors from the backend pass through with their own code; server
// errors and transport failures become 502. message is preferred over the
// backend detail when set.
func handleBackendError(ctx context.Context, w http.ResponseWriter, err error, message, defaultMsg string) {
	logger := contextutil.LoggerFromContext(ctx)
	logger.ErrorContext(ctx, "backend error", "error", err)

	if message == "" {
		message = api.Detail(err)
	}
	if message == "" {
		message = defaultMsg
	}

	var validationErr *folders.ValidationError
	if errors.As(err, &validationErr) {
		writeError(w, http.StatusBadRequest, validationErr.Error())
		return
	}

	var statusErr *api.StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode >= 400 && statusErr.StatusCode < 500 {
		writeError(w, statusErr.StatusCode, message)
		return
	}

	writeError(w, http.StatusBadGateway, message)
}
