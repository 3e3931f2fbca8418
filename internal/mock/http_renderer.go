package mock

import (
	"context"

	"github.com/mleroux/videogen-ms-go/internal/port"
)

// HTTPRenderer implements renderer behaviour for tests.
type HTTPRenderer struct {
	DataOut []byte
	EtagOut string
	Err     error

	VideoIDIn string
	Called    bool
}

func (r *HTTPRenderer) RenderVideoStatus(ctx context.Context, getter port.StatusGetter, videoID string) ([]byte, string, error) {
	r.Called = true
	r.VideoIDIn = videoID
	if r.Err != nil {
		return nil, "", r.Err
	}
	return r.DataOut, r.EtagOut, nil
}
