package video

import (
	"context"

	"github.com/mleroux/videogen-ms-go/internal/logger"
	"github.com/mleroux/videogen-ms-go/internal/port"
)

type reconcilerSrv struct {
	repo  port.GenerationRepository
	tasks port.TaskDispatcher
}

// compile-time check: *reconcilerSrv must satisfy port.BacklogReconciler
var _ port.BacklogReconciler = (*reconcilerSrv)(nil)

// NewReconciler constructs a BacklogReconciler implementation.
func NewReconciler(repo port.GenerationRepository, tasks port.TaskDispatcher) port.BacklogReconciler {
	return &reconcilerSrv{repo, tasks}
}

// ReconcileGenerations re-enqueues tracking for every generation the history
// still records as in-flight, e.g. after a worker outage. Returns the number
// of renders enqueued.
func (s *reconcilerSrv) ReconcileGenerations(ctx context.Context) (int, error) {
	ids, err := s.repo.ListInFlight(ctx)
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		logger.Info(ctx, "no in-flight generations found")
		return 0, nil
	}

	enqueued := 0
	for _, id := range ids {
		logger.Infof(ctx, "re-enqueueing tracking for video #%s", id)
		if err := s.tasks.EnqueueTrackGeneration(ctx, id); err != nil {
			logger.Warnf(ctx, "failed to enqueue tracking for video #%s: %v", id, err)
			continue
		}
		enqueued++
	}
	return enqueued, nil
}
