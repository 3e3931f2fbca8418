package video

import (
	"context"

	"github.com/mleroux/videogen-ms-go/internal/port"
)

type listerSrv struct {
	gw port.Gateway
}

// compile-time check: *listerSrv must satisfy port.VideoLister
var _ port.VideoLister = (*listerSrv)(nil)

// NewLister constructs a VideoLister implementation.
func NewLister(gw port.Gateway) port.VideoLister {
	return &listerSrv{gw}
}

func (s *listerSrv) ListVideos(ctx context.Context, token string) (port.ListVideosOutput, error) {
	videos, next, err := s.gw.ListVideos(ctx, token)
	if err != nil {
		return port.ListVideosOutput{}, err
	}
	return port.ListVideosOutput{Videos: videos, NextToken: next}, nil
}
