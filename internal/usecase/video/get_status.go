package video

import (
	"context"
	"fmt"

	"github.com/mleroux/videogen-ms-go/internal/heygen"
	"github.com/mleroux/videogen-ms-go/internal/model"
	"github.com/mleroux/videogen-ms-go/internal/port"
)

type statusGetterSrv struct {
	gw port.Gateway
}

// compile-time check: *statusGetterSrv must satisfy port.StatusGetter
var _ port.StatusGetter = (*statusGetterSrv)(nil)

// NewStatusGetter constructs a StatusGetter implementation.
func NewStatusGetter(gw port.Gateway) port.StatusGetter {
	return &statusGetterSrv{gw}
}

// GetVideoStatus polls the provider and interprets the raw response. An
// unknown video ID surfaces as ErrVideoNotFound, which is distinct from a
// render that failed.
func (s *statusGetterSrv) GetVideoStatus(ctx context.Context, videoID string) (*model.JobStatus, error) {
	if videoID == "" {
		return nil, fmt.Errorf("%w: video_id", ErrMissingRequiredField)
	}

	raw, err := s.gw.GetVideoStatus(ctx, videoID)
	if err != nil {
		if heygen.IsNotFound(err) {
			return nil, fmt.Errorf("video #%s: %w", videoID, ErrVideoNotFound)
		}
		return nil, err
	}
	return jobStatusFromProvider(videoID, raw), nil
}
