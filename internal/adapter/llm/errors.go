package llm

import "fmt"

// ErrorKind classifies a generation failure so callers can map each mode
// to its own user-facing reply and log signal.
type ErrorKind string

const (
	// KindTransport covers network-level failures reaching the API.
	KindTransport ErrorKind = "transport"
	// KindRateLimited covers quota exhaustion (HTTP 429).
	KindRateLimited ErrorKind = "rate_limited"
	// KindAPI covers any other non-2xx or malformed response.
	KindAPI ErrorKind = "api"
	// KindEmpty covers a successful call whose completion is blank.
	KindEmpty ErrorKind = "empty"
)

// Error is a classified generation failure.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("llm: %s", e.Kind)
	}
	return fmt.Sprintf("llm: %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf extracts the error kind, defaulting to KindAPI for errors that
// did not come from this package.
func KindOf(err error) ErrorKind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return KindAPI
}
