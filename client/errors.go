package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the two failure classes a caller branches on.
var (
	// ErrNotFound is terminal: a lookup on a nonexistent id is never retried.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized means the credential was missing, invalid, or expired.
	// The session has already been cleared when this surfaces.
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is a non-validation failure reported by the backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}

// ValidationError carries field-level messages from a rejected mutation.
// Validation failures are surfaced to the user and never retried.
type ValidationError struct {
	StatusCode int
	Message    string
	Fields     map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("validation failed: %s", e.Message)
	}
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// errorBody covers both backend error shapes: {"detail": ...} and
// {"error": ...}. Detail may be a plain message or a list of field errors.
type errorBody struct {
	Detail json.RawMessage `json:"detail"`
	Error  string          `json:"error"`
}

type fieldDetail struct {
	Loc []json.RawMessage `json:"loc"`
	Msg string            `json:"msg"`
}

// parseErrorBody extracts a message and optional field errors from a
// non-2xx response body. Unparsable bodies produce an empty message.
func parseErrorBody(body []byte) (string, map[string]string) {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return "", nil
	}
	if eb.Error != "" {
		return eb.Error, nil
	}
	if len(eb.Detail) == 0 {
		return "", nil
	}

	var msg string
	if err := json.Unmarshal(eb.Detail, &msg); err == nil {
		return msg, nil
	}

	var details []fieldDetail
	if err := json.Unmarshal(eb.Detail, &details); err == nil {
		fields := make(map[string]string, len(details))
		for _, d := range details {
			name := "body"
			if n := len(d.Loc); n > 0 {
				var s string
				if err := json.Unmarshal(d.Loc[n-1], &s); err == nil {
					name = s
				}
			}
			fields[name] = d.Msg
		}
		return "invalid request", fields
	}

	return string(eb.Detail), nil
}
