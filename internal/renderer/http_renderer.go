package renderer

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/crc32"

	"github.com/mleroux/videogen-ms-go/internal/port"
)

type httpRenderer struct {
	cache port.Cache
}

// compile-time check: *httpRenderer must satisfy port.HTTPRenderer
var _ port.HTTPRenderer = (*httpRenderer)(nil)

// NewHTTPRenderer creates a new HTTPRenderer implementation.
func NewHTTPRenderer(cache port.Cache) port.HTTPRenderer {
	return &httpRenderer{cache: cache}
}

// RenderVideoStatus fetches the job status either from cache or from the
// wrapped use case. It returns the JSON encoded output and a quoted ETag
// string. Only terminal statuses are cached: they can never change again,
// while an in-flight render must be re-polled on every request.
func (r *httpRenderer) RenderVideoStatus(ctx context.Context, getter port.StatusGetter, videoID string) ([]byte, string, error) {
	raw, err := r.cache.GetJobStatus(ctx, videoID)
	etag, errEtag := r.cache.GetEtagJobStatus(ctx, videoID)
	if err == nil && errEtag == nil && raw != nil && etag != "" {
		return raw, etag, nil
	}

	out, err := getter.GetVideoStatus(ctx, videoID)
	if err != nil {
		return nil, "", err
	}

	raw, err = json.Marshal(out)
	if err != nil {
		return nil, "", fmt.Errorf("json marshal: %w", err)
	}

	etag = fmt.Sprintf("\"%08x\"", crc32.ChecksumIEEE(raw))
	if out.State.Terminal() {
		r.cache.SetJobStatus(ctx, videoID, raw)
		r.cache.SetEtagJobStatus(ctx, videoID, etag)
	}

	return raw, etag, nil
}
