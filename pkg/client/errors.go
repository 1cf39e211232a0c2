package client

import (
	"fmt"
	"time"

	"github.com/limbo/tendril/pkg/entity"
)

const (
	GenericFailureMessage = "Something went wrong. Please try again."
	BlockedMessage        = "Your content contains negative talk. Please edit your message to remove negative words before posting."
)

// ValidationError is raised locally before any request is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// RateLimitError carries the server's 429 message, which is shown as is.
// Nothing is retried automatically.
type RateLimitError struct {
	Message    string
	Info       entity.RateLimitInfo
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return e.Message
}

// ModerationBlockedError means the analysis succeeded but the text was refused
// and no rewrite is available. Only an edit resolves it.
type ModerationBlockedError struct {
	Analysis *entity.ModerationAnalysis
}

func (e *ModerationBlockedError) Error() string {
	return BlockedMessage
}

// TransportError covers network failures and every non-2xx status besides 429.
// StatusCode is 0 when no response arrived.
type TransportError struct {
	StatusCode int
	// Message is the server's message, if any. It is for diagnostics only.
	Message string
	Err     error
}

func (e *TransportError) Error() string {
	return GenericFailureMessage
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Diagnostic() string {
	if e.Err != nil {
		return fmt.Sprintf("status %d: %s: %s", e.StatusCode, e.Message, e.Err.Error())
	}
	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Message)
}
