package upstream

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound    = errors.New("upstream: not found")
	ErrNoAPIKey    = errors.New("upstream: api key not configured")
	ErrEmptyResult = errors.New("upstream: empty result")
)

// StatusError is returned when an upstream answers with a non-2xx status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream: status %d: %s", e.Code, e.Body)
}
