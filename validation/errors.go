package validation

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// EngineError reports a failed call to a validation engine. It never means
// the data conforms.
type EngineError struct {
	Op         string // "available" or "validate"
	Endpoint   string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *EngineError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("validation: %s %s: status %d: %v", e.Op, e.Endpoint, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("validation: %s %s: %v", e.Op, e.Endpoint, e.Err)
}

func (e *EngineError) Unwrap() error { return e.Err }

// Temporary reports whether retrying the call may succeed: transport
// failures, 429 and 5xx responses.
func (e *EngineError) Temporary() bool {
	if errors.Is(e.Err, context.Canceled) {
		return false
	}
	switch {
	case e.StatusCode == 0:
		return true
	case e.StatusCode == http.StatusTooManyRequests:
		return true
	case e.StatusCode >= 500:
		return true
	default:
		return false
	}
}

// IsTemporary reports whether err wraps a temporary *EngineError.
func IsTemporary(err error) bool {
	var engineErr *EngineError
	return errors.As(err, &engineErr) && engineErr.Temporary()
}
