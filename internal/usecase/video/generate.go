package video

import (
	"context"
	"time"

	"github.com/mleroux/videogen-ms-go/internal/db"
	"github.com/mleroux/videogen-ms-go/internal/logger"
	"github.com/mleroux/videogen-ms-go/internal/model"
	"github.com/mleroux/videogen-ms-go/internal/port"
)

type generatorSrv struct {
	gw      port.Gateway
	repo    port.GenerationRepository
	tasks   port.TaskDispatcher
	genUUID port.UUIDGen
}

// compile-time check: *generatorSrv must satisfy port.VideoGenerator
var _ port.VideoGenerator = (*generatorSrv)(nil)

// NewGenerator constructs a VideoGenerator implementation.
func NewGenerator(gw port.Gateway, repo port.GenerationRepository, tasks port.TaskDispatcher, genUUID port.UUIDGen) port.VideoGenerator {
	return &generatorSrv{gw, repo, tasks, genUUID}
}

// GenerateVideo validates the input, submits the render to the provider and
// records it for tracking. Validation failures never reach the network.
func (s *generatorSrv) GenerateVideo(ctx context.Context, in port.GenerateVideoInput) (port.GenerateVideoOutput, error) {
	req, err := BuildGenerateRequest(in)
	if err != nil {
		return port.GenerateVideoOutput{}, err
	}

	videoID, err := s.gw.GenerateVideo(ctx, req)
	if err != nil {
		return port.GenerateVideoOutput{}, err
	}
	logger.Infof(ctx, "video generation submitted, provider ID #%s", videoID)

	// The render already exists provider-side: history and tracking are
	// best-effort from here on.
	s.record(ctx, videoID, in.Title, in.AvatarID, in.VoiceID)

	return port.GenerateVideoOutput{VideoID: videoID}, nil
}

func (s *generatorSrv) record(ctx context.Context, videoID, title, avatarID, voiceID string) {
	gen := generationRecord(s.genUUID(), videoID, title, avatarID, voiceID)
	if err := s.repo.Create(ctx, gen); err != nil {
		logger.Warnf(ctx, "failed to record generation for video #%s: %v", videoID, err)
	}
	if err := s.tasks.EnqueueTrackGeneration(ctx, videoID); err != nil {
		logger.Warnf(ctx, "failed to enqueue tracking for video #%s: %v", videoID, err)
	}
}

func generationRecord(id db.UUID, videoID, title, avatarID, voiceID string) *model.Generation {
	now := time.Now()
	return &model.Generation{
		ID:        id,
		VideoID:   videoID,
		Title:     title,
		AvatarID:  avatarID,
		VoiceID:   voiceID,
		Status:    string(model.JobSubmitted),
		CreatedAt: now,
		UpdatedAt: now,
	}
}
