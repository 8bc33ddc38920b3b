package octoprint

import (
	"fmt"
	"strings"
)

// ValidationError reports an argument that was rejected locally, before
// any network request was made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// HTTPError reports a non-2xx response from the OctoPrint server. The
// body is surfaced verbatim; the client does not interpret individual
// status codes.
type HTTPError struct {
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	body := strings.TrimSpace(string(e.Body))
	if body == "" {
		return fmt.Sprintf("octoprint returned status %d", e.StatusCode)
	}
	if len(body) > 200 {
		body = body[:200] + "..."
	}
	return fmt.Sprintf("octoprint returned status %d: %s", e.StatusCode, body)
}

// TransportError wraps a failure to complete the HTTP exchange itself:
// DNS resolution, connection refused, timeout.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
