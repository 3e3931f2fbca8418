package task

import (
	"context"
	"time"

	"github.com/hibiken/asynq"
	"github.com/mleroux/videogen-ms-go/internal/port"
)

// Renders take a while; allow many retries per tracking task so asynq's
// backoff acts as the polling schedule.
const trackMaxRetry = 25

type Dispatcher struct {
	client *asynq.Client
}

// compile-time check: *Dispatcher must satisfy port.TaskDispatcher
var _ port.TaskDispatcher = (*Dispatcher)(nil)

func NewDispatcher(addr, password string) *Dispatcher {
	c := asynq.NewClient(asynq.RedisClientOpt{Addr: addr, Password: password})
	return &Dispatcher{client: c}
}

func (d *Dispatcher) EnqueueTrackGeneration(ctx context.Context, videoID string) error {
	t, err := NewTrackGenerationTask(videoID)
	if err != nil {
		return err
	}
	opts := []asynq.Option{
		asynq.MaxRetry(trackMaxRetry),
		asynq.Timeout(2 * time.Minute),
	}
	if _, err := d.client.EnqueueContext(ctx, t, opts...); err != nil {
		return err
	}
	return nil
}
