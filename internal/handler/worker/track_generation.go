package worker

import (
	"context"
	"errors"
	"log"

	"github.com/mleroux/videogen-ms-go/internal/port"
	"github.com/mleroux/videogen-ms-go/internal/task"
	"github.com/mleroux/videogen-ms-go/internal/usecase/video"
)

// TrackGenerationHandler handles a track-generation task.
// It polls the provider through the video.Tracker service and
// returns ErrStillProcessing untouched so the queue retries later.
func TrackGenerationHandler(ctx context.Context, p task.TrackGenerationPayload, svc port.GenerationTracker) error {
	if p.VideoID == "" {
		log.Printf("❌  Track task has no video ID")
		return errors.New("empty video ID")
	}

	if err := svc.TrackGeneration(ctx, p.VideoID); err != nil {
		if errors.Is(err, video.ErrStillProcessing) {
			log.Printf("⏳  Video #%s still processing, will retry", p.VideoID)
		} else {
			log.Printf("❌  Failed to track video #%s: %v", p.VideoID, err)
		}
		return err
	}

	log.Printf("✅  Video #%s reached a terminal state", p.VideoID)
	return nil
}
