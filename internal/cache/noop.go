package cache

import (
	"context"

	"github.com/mleroux/videogen-ms-go/internal/port"
)

type NoopCache struct{}

// compile-time check: *NoopCache must satisfy port.Cache
var _ port.Cache = (*NoopCache)(nil)

func NewNoop() *NoopCache {
	return &NoopCache{}
}

func (n *NoopCache) GetJobStatus(ctx context.Context, videoID string) ([]byte, error) {
	return nil, nil // always cache miss
}

func (n *NoopCache) GetEtagJobStatus(ctx context.Context, videoID string) (string, error) {
	return "", nil
}

func (n *NoopCache) SetJobStatus(ctx context.Context, videoID string, data []byte) {}

func (n *NoopCache) SetEtagJobStatus(ctx context.Context, videoID string, etag string) {}

func (n *NoopCache) DeleteJobStatus(ctx context.Context, videoID string) error { return nil }

func (n *NoopCache) DeleteEtagJobStatus(ctx context.Context, videoID string) error { return nil }
