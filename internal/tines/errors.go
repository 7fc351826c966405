package tines

import (
	"errors"
	"fmt"
)

// ErrValidation marks failures caused by the caller's arguments, detected
// before any HTTP request is issued.
var ErrValidation = errors.New("validation error")

// APIError is returned when the Tines API responds with an error status.
// Body holds the parsed JSON error payload when the response body was
// valid JSON, otherwise the raw response text.
type APIError struct {
	StatusCode int
	Body       any
}

func (e *APIError) Error() string {
	return fmt.Sprintf("tines API error: status %d: %v", e.StatusCode, e.Body)
}

// TransportError is returned when no response was obtained at all
// (connection, DNS or TLS failure).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("tines request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DraftCreationError indicates that the sentinel mutation used to force a
// draft into existence succeeded, but the story then reported no drafts.
// The remote state is inconsistent; no synthetic draft is fabricated.
type DraftCreationError struct {
	StoryID int64
}

func (e *DraftCreationError) Error() string {
	return fmt.Sprintf("no draft was created for story %d", e.StoryID)
}

// DraftCleanupError is a partial-success outcome of draft creation: the
// draft exists and is usable, but removing the sentinel tag from it
// failed. Draft carries the created draft so callers can still use it.
type DraftCleanupError struct {
	Draft map[string]any
	Err   error
}

func (e *DraftCleanupError) Error() string {
	return fmt.Sprintf("draft created but sentinel tag cleanup failed: %v", e.Err)
}

func (e *DraftCleanupError) Unwrap() error { return e.Err }
