package video

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mleroux/videogen-ms-go/internal/heygen"
	"github.com/mleroux/videogen-ms-go/internal/logger"
	"github.com/mleroux/videogen-ms-go/internal/model"
	"github.com/mleroux/videogen-ms-go/internal/port"
)

type trackerSrv struct {
	gw     port.Gateway
	repo   port.GenerationRepository
	cache  port.Cache
	strg   port.Storage
	bucket string
}

// compile-time check: *trackerSrv must satisfy port.GenerationTracker
var _ port.GenerationTracker = (*trackerSrv)(nil)

// NewTracker constructs a GenerationTracker implementation. bucket is the
// archive bucket completed videos are copied into.
func NewTracker(gw port.Gateway, repo port.GenerationRepository, cache port.Cache, strg port.Storage, bucket string) port.GenerationTracker {
	return &trackerSrv{gw, repo, cache, strg, bucket}
}

// TrackGeneration polls the provider once for one in-flight render. A
// non-terminal status returns ErrStillProcessing so the task queue schedules
// another attempt; a terminal status settles the history row, caches the
// result and archives the video file.
func (s *trackerSrv) TrackGeneration(ctx context.Context, videoID string) error {
	raw, err := s.gw.GetVideoStatus(ctx, videoID)
	if err != nil {
		if heygen.IsNotFound(err) {
			// Permanent: the provider no longer knows this render. Any
			// cached status predates the disappearance, so drop it before
			// settling.
			logger.Warnf(ctx, "video #%s unknown at provider, settling as failed", videoID)
			s.cache.DeleteJobStatus(ctx, videoID)
			s.cache.DeleteEtagJobStatus(ctx, videoID)
			s.settle(ctx, videoID, &model.JobStatus{
				VideoID: videoID,
				State:   model.JobFailed,
				Error:   &model.JobError{Message: "video not found at provider"},
			})
			return nil
		}
		return fmt.Errorf("polling video #%s: %w", videoID, err)
	}

	st := jobStatusFromProvider(videoID, raw)
	if !st.State.Terminal() {
		s.updateStatus(ctx, videoID, st.State)
		return fmt.Errorf("video #%s: %w", videoID, ErrStillProcessing)
	}

	s.settle(ctx, videoID, st)

	if st.State == model.JobCompleted && st.VideoURL != "" {
		if err := s.archive(ctx, videoID, st.VideoURL); err != nil {
			logger.Warnf(ctx, "failed to archive video #%s: %v", videoID, err)
		}
	}
	logger.Infof(ctx, "video #%s settled as %s", videoID, st.State)
	return nil
}

func (s *trackerSrv) updateStatus(ctx context.Context, videoID string, state model.JobState) {
	gen, err := s.repo.GetByVideoID(ctx, videoID)
	if err != nil {
		logger.Warnf(ctx, "failed to load generation for video #%s: %v", videoID, err)
		return
	}
	gen.Status = string(state)
	gen.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, gen); err != nil {
		logger.Warnf(ctx, "failed to update generation for video #%s: %v", videoID, err)
	}
}

// settle writes the terminal result to the history row and the cache. Both
// writes are best-effort: the provider remains the source of truth.
func (s *trackerSrv) settle(ctx context.Context, videoID string, st *model.JobStatus) {
	gen, err := s.repo.GetByVideoID(ctx, videoID)
	if err != nil {
		logger.Warnf(ctx, "failed to load generation for video #%s: %v", videoID, err)
	} else {
		gen.Status = string(st.State)
		if st.VideoURL != "" {
			gen.VideoURL = &st.VideoURL
		}
		if st.Error != nil {
			gen.FailureMessage = &st.Error.Message
		}
		gen.UpdatedAt = time.Now()
		if err := s.repo.Update(ctx, gen); err != nil {
			logger.Warnf(ctx, "failed to settle generation for video #%s: %v", videoID, err)
		}
	}

	data, err := json.Marshal(st)
	if err != nil {
		logger.Warnf(ctx, "failed to marshal status for video #%s: %v", videoID, err)
		return
	}
	s.cache.SetJobStatus(ctx, videoID, data)
}

func (s *trackerSrv) archive(ctx context.Context, videoID, videoURL string) error {
	key := videoID + ".mp4"

	exists, err := s.strg.FileExists(ctx, s.bucket, key)
	if err != nil {
		return fmt.Errorf("checking archive for video #%s: %w", videoID, err)
	}
	if exists {
		return nil
	}

	body, size, err := s.gw.DownloadFile(ctx, videoURL)
	if err != nil {
		return fmt.Errorf("downloading video #%s: %w", videoID, err)
	}
	defer body.Close()

	opts := map[string]string{"ContentType": "video/mp4"}
	if err := s.strg.SaveFile(ctx, s.bucket, key, body, size, opts); err != nil {
		return fmt.Errorf("saving video #%s to archive: %w", videoID, err)
	}

	gen, err := s.repo.GetByVideoID(ctx, videoID)
	if err != nil {
		return fmt.Errorf("loading generation for video #%s: %w", videoID, err)
	}
	gen.ArchiveKey = &key
	gen.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, gen); err != nil {
		return fmt.Errorf("recording archive key for video #%s: %w", videoID, err)
	}
	return nil
}
