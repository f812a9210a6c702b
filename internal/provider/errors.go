package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// ErrCallerDone marks a failure caused by the caller's context ending
// before the upstream answered.
var ErrCallerDone = errors.New("caller context done")

// StatusError is an unexpected HTTP status from an upstream API.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d", e.Code)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
}

// CallerErr tags err with ErrCallerDone when ctx has already ended.
func CallerErr(ctx context.Context, err error) error {
	if err == nil || ctx.Err() == nil {
		return err
	}
	return fmt.Errorf("%w: %w", ErrCallerDone, err)
}

// upstreamHealthy reports whether err leaves the upstream's health unknown
// or good: nil, the caller going away, or a 4xx rejection of the request
// itself. A 429 still counts against the upstream.
func upstreamHealthy(err error) bool {
	if err == nil {
		return true
	}
	if errors.Is(err, ErrCallerDone) || errors.Is(err, context.Canceled) {
		return true
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code >= 400 && se.Code < 500 && se.Code != http.StatusTooManyRequests
	}
	return false
}
