package port

import "context"

// HTTPRenderer mediates between HTTP handlers and the status getter use case.
// It provides caching capabilities for terminal statuses and returns both the
// JSON representation of the result and an ETag value derived from it.
type HTTPRenderer interface {
	// RenderVideoStatus returns the cached JSON result and its ETag if
	// available or executes the underlying use case and caches terminal
	// outputs otherwise.
	RenderVideoStatus(ctx context.Context, getter StatusGetter, videoID string) ([]byte, string, error)
}
