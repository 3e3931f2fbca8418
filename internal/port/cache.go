package port

import "context"

// Cache provides caching capabilities for terminal job statuses. Only
// completed and failed statuses belong here; in-flight renders must always be
// re-polled from the provider.
type Cache interface {
	GetJobStatus(ctx context.Context, videoID string) ([]byte, error)
	GetEtagJobStatus(ctx context.Context, videoID string) (string, error)
	SetJobStatus(ctx context.Context, videoID string, data []byte)
	SetEtagJobStatus(ctx context.Context, videoID string, etag string)
	DeleteJobStatus(ctx context.Context, videoID string) error
	DeleteEtagJobStatus(ctx context.Context, videoID string) error
}
