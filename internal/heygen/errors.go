package heygen

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized = errors.New("heygen: unauthorized")
	ErrNotFound     = errors.New("heygen: resource not found")
	ErrRateLimited  = errors.New("heygen: rate limited")
)

// APIError is a provider-side failure, carried through with whatever detail
// the provider supplied.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("heygen: HTTP %d: %s", e.Status, e.Message)
	}
	return "heygen: " + e.Message
}

// IsNotFound reports whether err means the provider does not know the
// referenced resource.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
