// Package remote defines the failure taxonomy shared by remote API clients.
package remote

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
)

// APIError is a failed remote call. StatusCode is zero when no response
// was received.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s %s returned %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s %s failed: %v", e.Method, e.Path, e.Err)
	}
	return fmt.Sprintf("%s %s failed: %s", e.Method, e.Path, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

var connectivityHints = []string{"connection", "timeout", "timed out", "resolve", "no such host"}

// IsRetryable reports whether err is a connectivity failure (timeouts, DNS,
// refused connections, 5xx, 429, 408) as opposed to a semantic rejection
// that needs an operator.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	code := StatusCode(err)
	switch {
	case code >= http.StatusInternalServerError:
		return true
	case code == http.StatusTooManyRequests, code == http.StatusRequestTimeout:
		return true
	case code >= http.StatusBadRequest:
		return false
	}

	msg := strings.ToLower(err.Error())
	for _, hint := range connectivityHints {
		if strings.Contains(msg, hint) {
			return true
		}
	}

	var apiErr *APIError
	return !errors.As(err, &apiErr)
}
