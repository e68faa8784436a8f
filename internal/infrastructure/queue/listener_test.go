package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"image-resizer/internal/domain/entities"

	"github.com/alicebob/miniredis/v2"
	"github.com/aws/aws-lambda-go/events"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

type recordingTrigger struct {
	mu     sync.Mutex
	events []events.S3Event
	seen   chan struct{}
}

func newRecordingTrigger() *recordingTrigger {
	return &recordingTrigger{seen: make(chan struct{}, 16)}
}

func (r *recordingTrigger) HandleS3Event(ctx context.Context, event events.S3Event) ([]*entities.Report, error) {
	r.mu.Lock()
	r.events = append(r.events, event)
	r.mu.Unlock()
	r.seen <- struct{}{}
	return []*entities.Report{{Source: event.Records[0].S3.Object.Key}}, nil
}

func (r *recordingTrigger) keys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var keys []string
	for _, e := range r.events {
		keys = append(keys, e.Records[0].S3.Object.Key)
	}
	return keys
}

func waitSeen(t *testing.T, r *recordingTrigger, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-r.seen:
		case <-time.After(5 * time.Second):
			t.Fatalf("only %d of %d jobs handled", i, n)
		}
	}
}

func newTestListener(t *testing.T, trigger *recordingTrigger) (*Listener, *miniredis.Miniredis, *WorkerPool) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	pool := NewWorkerPool(1, trigger, zap.NewNop())
	l := NewListener(rdb, "resize_events", pool, zap.NewNop())
	l.PopTimeout = time.Second
	return l, mr, pool
}

func TestListenerDispatchesQueuedEvents(t *testing.T) {
	trigger := newRecordingTrigger()
	l, _, pool := newTestListener(t, trigger)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	for _, key := range []string{"images/a/original-1.png", "images/a/original-2.png"} {
		if err := l.Enqueue(ctx, NewObjectCreatedJob("catalog", key, 10)); err != nil {
			t.Fatal(err)
		}
	}

	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()

	waitSeen(t, trigger, 2)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
	pool.Drain()

	// LPUSH + BRPOP: first in, first out
	got := trigger.keys()
	if len(got) != 2 || got[0] != "images/a/original-1.png" || got[1] != "images/a/original-2.png" {
		t.Fatalf("handled = %v", got)
	}
}

func TestListenerDropsMalformedJobs(t *testing.T) {
	trigger := newRecordingTrigger()
	l, mr, pool := newTestListener(t, trigger)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mr.Lpush("resize_events", "{not json")
	mr.Lpush("resize_events", `{"Records":[]}`)
	if err := l.Enqueue(ctx, NewObjectCreatedJob("catalog", "images/a/original-3.png", 1)); err != nil {
		t.Fatal(err)
	}

	go l.Run(ctx)
	waitSeen(t, trigger, 1)
	cancel()
	pool.Drain()

	if got := trigger.keys(); len(got) != 1 || got[0] != "images/a/original-3.png" {
		t.Fatalf("handled = %v", got)
	}
}

func TestJobSerialization(t *testing.T) {
	job := NewObjectCreatedJob("catalog", "images/e/original-x.jpg", 42)
	raw, err := SerializeJob(job)
	if err != nil {
		t.Fatal(err)
	}
	back, err := DeserializeJob(raw)
	if err != nil {
		t.Fatal(err)
	}
	rec := back.Event.Records[0]
	if rec.S3.Bucket.Name != "catalog" || rec.S3.Object.Key != "images/e/original-x.jpg" || rec.S3.Object.Size != 42 {
		t.Fatalf("record = %+v", rec)
	}
	if _, err := DeserializeJob(`{"Records":[]}`); err == nil {
		t.Fatal("expected error for empty records")
	}
}

func TestWorkerPoolShutdownRejectsJobs(t *testing.T) {
	pool := NewWorkerPool(2, newRecordingTrigger(), zap.NewNop())
	pool.Shutdown()
	if pool.AddJob(context.Background(), NewObjectCreatedJob("b", "k", 1)) {
		t.Fatal("AddJob succeeded on a stopped pool")
	}
	// Drain after Shutdown must not panic on a closed channel
	pool.Drain()
}
