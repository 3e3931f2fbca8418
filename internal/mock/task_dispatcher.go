package mock

import "context"

// TaskDispatcher implements task dispatching behaviour for tests.
type TaskDispatcher struct {
	EnqueueErr error

	EnqueuedIDs   []string
	EnqueueCalled bool
}

func (d *TaskDispatcher) EnqueueTrackGeneration(ctx context.Context, videoID string) error {
	d.EnqueueCalled = true
	if d.EnqueueErr != nil {
		return d.EnqueueErr
	}
	d.EnqueuedIDs = append(d.EnqueuedIDs, videoID)
	return nil
}
