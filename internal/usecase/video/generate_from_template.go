package video

import (
	"context"
	"fmt"

	"github.com/mleroux/videogen-ms-go/internal/logger"
	"github.com/mleroux/videogen-ms-go/internal/model"
	"github.com/mleroux/videogen-ms-go/internal/port"
)

type templateGeneratorSrv struct {
	gw      port.Gateway
	repo    port.GenerationRepository
	tasks   port.TaskDispatcher
	genUUID port.UUIDGen
}

// compile-time check: *templateGeneratorSrv must satisfy port.TemplateVideoGenerator
var _ port.TemplateVideoGenerator = (*templateGeneratorSrv)(nil)

// NewTemplateGenerator constructs a TemplateVideoGenerator implementation.
func NewTemplateGenerator(gw port.Gateway, repo port.GenerationRepository, tasks port.TaskDispatcher, genUUID port.UUIDGen) port.TemplateVideoGenerator {
	return &templateGeneratorSrv{gw, repo, tasks, genUUID}
}

func (s *templateGeneratorSrv) GenerateFromTemplate(ctx context.Context, in port.GenerateFromTemplateInput) (port.GenerateVideoOutput, error) {
	if in.TemplateID == "" {
		return port.GenerateVideoOutput{}, fmt.Errorf("%w: template_id", ErrMissingRequiredField)
	}

	req := &model.TemplateGenerateRequest{
		Test:      in.Test,
		Caption:   in.Caption,
		Title:     in.Title,
		Variables: in.Variables,
	}
	videoID, err := s.gw.GenerateVideoFromTemplate(ctx, in.TemplateID, req)
	if err != nil {
		return port.GenerateVideoOutput{}, err
	}
	logger.Infof(ctx, "template render submitted, provider ID #%s", videoID)

	gen := generationRecord(s.genUUID(), videoID, in.Title, "", "")
	if err := s.repo.Create(ctx, gen); err != nil {
		logger.Warnf(ctx, "failed to record generation for video #%s: %v", videoID, err)
	}
	if err := s.tasks.EnqueueTrackGeneration(ctx, videoID); err != nil {
		logger.Warnf(ctx, "failed to enqueue tracking for video #%s: %v", videoID, err)
	}

	return port.GenerateVideoOutput{VideoID: videoID}, nil
}
