package todoclient

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/pkg/errors"
)

// TransportError means the request did not produce an HTTP response at all: the URL was
// malformed, the connection failed, or the request timed out.
type TransportError struct {
	Method string
	URL    string
	cause  error
}

func newTransportError(method, url string, err error) *TransportError {
	return &TransportError{
		Method: method,
		URL:    url,
		cause:  errors.Wrapf(err, "%s %s", method, url),
	}
}

func (e *TransportError) Error() string {
	return e.cause.Error()
}

func (e *TransportError) Unwrap() error {
	return e.cause
}

// Timeout is true if the request failed because it took too long.
func (e *TransportError) Timeout() bool {
	if errors.Is(e.cause, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.cause, &netErr) && netErr.Timeout()
}

// StatusError means the service responded with a 4xx or 5xx status.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: HTTP %d %s", e.Method, e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// StatusCode returns the HTTP status of a *StatusError anywhere in err's chain, or 0.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}

// IsNotFound is true if err is a 404 response.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}
