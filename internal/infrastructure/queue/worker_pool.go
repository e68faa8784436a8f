package queue

import (
	"context"
	"sync"

	"image-resizer/internal/usecases"

	"go.uber.org/zap"
)

type WorkerPool struct {
	JobChan chan Job
	wg      sync.WaitGroup
	ctx     context.Context    //graceful shutdown için
	cancel  context.CancelFunc //graceful shutdown için

	mu     sync.RWMutex
	closed bool
}

func NewWorkerPool(workerCount int, trigger usecases.TriggerService, log *zap.Logger) *WorkerPool {
	if workerCount < 1 {
		workerCount = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	pool := &WorkerPool{
		JobChan: make(chan Job, workerCount),
		ctx:     ctx,
		cancel:  cancel,
	}
	for i := 0; i < workerCount; i++ {
		worker := &Worker{
			ID:      i,
			JobChan: pool.JobChan,
			Wg:      &pool.wg,
			Trigger: trigger,
			Log:     log,
		}
		pool.wg.Add(1)
		worker.Start(pool.ctx)
	}
	return pool
}

// AddJob blocks until a worker has room or ctx ends. It reports whether the job was queued.
func (p *WorkerPool) AddJob(ctx context.Context, job Job) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return false
	}

	select {
	case p.JobChan <- job:
		return true
	case <-ctx.Done():
		return false
	case <-p.ctx.Done():
		return false
	}
}

// Drain stops accepting jobs and waits for queued ones to finish.
func (p *WorkerPool) Drain() {
	p.close()
	p.wg.Wait()
	p.cancel()
}

// Shutdown cancels in-flight jobs and waits for the workers to exit.
func (p *WorkerPool) Shutdown() {
	p.cancel()
	p.close()
	p.wg.Wait()
}

func (p *WorkerPool) close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		close(p.JobChan)
	}
}
