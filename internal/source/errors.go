// Package source holds what the three platform clients share: upstream error
// classification, the retry policy, and a rate-paced JSON transport.
package source

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// APIError is a non-2xx upstream response with a capped body snippet.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("api status %d", e.Status)
	}
	return fmt.Sprintf("api status %d: %s", e.Status, e.Body)
}

// Temporary reports whether the response is worth retrying.
func (e *APIError) Temporary() bool {
	switch e.Status {
	case 429, 500, 502, 503, 504:
		return true
	}
	return false
}

// NotFound reports a permanent target-gone response.
func (e *APIError) NotFound() bool {
	return e.Status == 403 || e.Status == 404
}

// IsTemporary classifies transient upstream failures: retryable HTTP
// statuses, network errors and timeouts.
func IsTemporary(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Temporary()
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}

// IsNotFound classifies permanent failures that mean the target itself is
// gone or forbidden. These are never retried.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.NotFound()
}
