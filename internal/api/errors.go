package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// StatusError is returned for any response outside the 2xx range.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	// Detail is the backend's human readable reason, if it sent one.
	Detail string
	Body   string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s %s: bad status %d: %s", e.Method, e.URL, e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("%s %s: bad status %d", e.Method, e.URL, e.StatusCode)
}

// Detail returns the backend's reason carried by err, or "" when err
// is not a StatusError or the backend sent none.
func Detail(err error) string {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Detail
	}
	return ""
}

func newStatusError(method, url string, status int, body []byte) *StatusError {
	return &StatusError{
		Method:     method,
		URL:        url,
		StatusCode: status,
		Detail:     parseDetail(body),
		Body:       string(body),
	}
}

// parseDetail reads FastAPI error bodies: {"detail": "..."} for raised
// HTTPExceptions and {"detail": [{"msg": ...}, ...]} for validation errors.
func parseDetail(body []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(envelope.Detail, &text); err == nil {
		return text
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(envelope.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, item := range items {
			if item.Msg != "" {
				msgs = append(msgs, item.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}

	return ""
}
