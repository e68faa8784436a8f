package queue

import (
	"context"
	"sync"

	"image-resizer/internal/usecases"

	"go.uber.org/zap"
)

type Worker struct {
	ID      int        // worker id
	JobChan <-chan Job // iş kuyruğu
	Wg      *sync.WaitGroup
	Trigger usecases.TriggerService
	Log     *zap.Logger
}

func (w *Worker) Start(ctx context.Context) {
	go func() {
		defer w.Wg.Done()
		for {
			select {
			case job, ok := <-w.JobChan:
				if !ok {
					w.Log.Debug("job channel closed", zap.Int("worker", w.ID))
					return
				}
				w.processJob(ctx, job)
			case <-ctx.Done():
				w.Log.Debug("stopping due to context cancellation", zap.Int("worker", w.ID))
				return
			}
		}
	}()
}

func (w *Worker) processJob(ctx context.Context, job Job) {
	reports, err := w.Trigger.HandleS3Event(ctx, job.Event)
	if err != nil {
		w.Log.Warn("job interrupted",
			zap.Int("worker", w.ID),
			zap.Int("records", len(job.Event.Records)),
			zap.Error(err),
		)
		return
	}

	failed := 0
	for _, r := range reports {
		failed += r.Failed()
	}
	w.Log.Debug("job done",
		zap.Int("worker", w.ID),
		zap.Int("reports", len(reports)),
		zap.Int("failed_variants", failed),
	)
}
