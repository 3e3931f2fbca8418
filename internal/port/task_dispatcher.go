package port

import "context"

// TaskDispatcher enqueues asynchronous tasks related to generation tracking.
type TaskDispatcher interface {
	EnqueueTrackGeneration(ctx context.Context, videoID string) error
}
