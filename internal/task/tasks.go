package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const TypeTrackGeneration = "generation:track"

type TrackGenerationPayload struct {
	VideoID string `json:"video_id"`
}

// NewTrackGenerationTask creates an Asynq task for tracking a render by its
// provider video ID.
func NewTrackGenerationTask(videoID string) (*asynq.Task, error) {
	p := TrackGenerationPayload{VideoID: videoID}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("could not marshal track-generation payload: %w", err)
	}
	return asynq.NewTask(TypeTrackGeneration, data), nil
}

// ParseTrackGenerationPayload parses the task payload to TrackGenerationPayload.
func ParseTrackGenerationPayload(t *asynq.Task) (TrackGenerationPayload, error) {
	var p TrackGenerationPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return TrackGenerationPayload{}, fmt.Errorf("could not unmarshal payload: %w", err)
	}
	return p, nil
}
