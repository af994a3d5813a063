package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"syscall"
)

var (
	// ErrServiceUnreachable means the backend could not be reached at all
	ErrServiceUnreachable = errors.New("recommendation service unreachable")
	// ErrNotFound matches 404 responses
	ErrNotFound = errors.New("not found")
	// ErrMalformedResponse means a 2xx body could not be decoded
	ErrMalformedResponse = errors.New("malformed response")
)

// StatusError is a non-2xx response from the backend
type StatusError struct {
	Op         string
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: backend returned %d: %s", e.Op, e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("%s: backend returned %d", e.Op, e.StatusCode)
}

// Is lets errors.Is(err, ErrNotFound) match 404s
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == 404
}

// IsUnreachable reports whether err came from a transport-level failure
func IsUnreachable(err error) bool {
	return errors.Is(err, ErrServiceUnreachable)
}

// Detail returns the most useful human-readable message for err
func Detail(err error) string {
	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.Detail != "" {
		return statusErr.Detail
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

// transportFailure classifies a client.Do error. Context cancellation is
// the caller's doing and never counts as the service being down.
func transportFailure(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}

// parseDetail pulls the "detail" member out of an error body. The backend
// sends either a string or a list of validation problems.
func parseDetail(body []byte) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Detail) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(payload.Detail, &text); err == nil {
		return text
	}
	return string(payload.Detail)
}
