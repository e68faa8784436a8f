package queue

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	popTimeout   = 5 * time.Second
	retryBackoff = time.Second
)

// Listener pops S3 event documents from a Redis list and hands them to a worker pool.
// Producers LPUSH, the listener BRPOPs, so documents are handled oldest first.
type Listener struct {
	rdb   *redis.Client
	queue string
	pool  *WorkerPool
	log   *zap.Logger

	// PopTimeout bounds each BRPOP so cancellation is noticed. Redis counts whole seconds.
	PopTimeout time.Duration
}

func NewListener(rdb *redis.Client, queue string, pool *WorkerPool, log *zap.Logger) *Listener {
	return &Listener{
		rdb:   rdb,
		queue: queue,
		pool:  pool,
		log:   log.Named("listener"),

		PopTimeout: popTimeout,
	}
}

// Run blocks until ctx is cancelled.
func (l *Listener) Run(ctx context.Context) error {
	l.log.Info("listening", zap.String("queue", l.queue))
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		val, err := l.rdb.BRPop(ctx, l.PopTimeout, l.queue).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			l.log.Warn("BRPop failed", zap.Error(err))
			select {
			case <-time.After(retryBackoff):
			case <-ctx.Done():
				return ctx.Err()
			}
			continue
		}

		job, err := DeserializeJob(val[1])
		if err != nil {
			l.log.Error("dropping malformed job", zap.Error(err))
			continue
		}
		if !l.pool.AddJob(ctx, *job) {
			return ctx.Err()
		}
	}
}

// Enqueue pushes job onto the queue.
func (l *Listener) Enqueue(ctx context.Context, job Job) error {
	payload, err := SerializeJob(job)
	if err != nil {
		return err
	}
	return l.rdb.LPush(ctx, l.queue, payload).Err()
}
