package imports

import (
	"context"
	"testing"
	"time"
)

func TestWorkerPoolProcessesJobs(t *testing.T) {
	pool := NewWorkerPool(2, 4)
	done := make(chan string, 4)
	pool.SetProcessFunc(func(_ context.Context, job ImportJob) {
		done <- job.JobID
	})
	pool.Start()

	if !pool.Enqueue(ImportJob{JobID: "a"}) || !pool.Enqueue(ImportJob{JobID: "b"}) {
		t.Fatal("enqueue refused with empty queue")
	}

	seen := map[string]bool{}
	for i := 0; i < 2; i++ {
		select {
		case id := <-done:
			seen[id] = true
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for jobs")
		}
	}
	if !seen["a"] || !seen["b"] {
		t.Errorf("seen = %v", seen)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	pool.Stop(ctx)

	if pool.Enqueue(ImportJob{JobID: "c"}) {
		t.Error("enqueue should refuse after Stop")
	}
}

func TestWorkerPoolBoundedQueue(t *testing.T) {
	pool := NewWorkerPool(1, 1)
	// Never started, so the single slot fills and the next offer is refused.
	if !pool.Enqueue(ImportJob{JobID: "a"}) {
		t.Fatal("first enqueue should fit")
	}
	if pool.Enqueue(ImportJob{JobID: "b"}) {
		t.Error("second enqueue should be refused")
	}
}
