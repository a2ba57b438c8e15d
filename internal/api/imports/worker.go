package imports

import (
	"context"
	"sync"

	"github.com/pokerbase/bankroll-api/internal/utils"
	"go.uber.org/zap"
)

// WorkerPool runs import jobs in the background. Persisting a batch is a
// sequence of independent row inserts, so one pool of workers draining a
// bounded channel is all the machinery needed.
type WorkerPool struct {
	importJobs  chan ImportJob
	quit        chan struct{}
	started     bool
	wg          sync.WaitGroup
	numWorkers  int
	processFunc func(ctx context.Context, job ImportJob)
}

func NewWorkerPool(numWorkers, queueCapacity int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = 1
	}
	if queueCapacity <= 0 {
		queueCapacity = 100
	}
	return &WorkerPool{
		importJobs: make(chan ImportJob, queueCapacity),
		quit:       make(chan struct{}),
		numWorkers: numWorkers,
	}
}

func (wp *WorkerPool) SetProcessFunc(fn func(ctx context.Context, job ImportJob)) {
	wp.processFunc = fn
}

func (wp *WorkerPool) Start() {
	if wp.started {
		return
	}
	wp.started = true
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go func(workerID int) {
			defer wp.wg.Done()
			utils.Zlog.Info("Import worker started", zap.Int("workerId", workerID))
			for {
				select {
				case <-wp.quit:
					utils.Zlog.Info("Import worker stopping", zap.Int("workerId", workerID))
					return
				case job := <-wp.importJobs:
					if wp.processFunc != nil {
						wp.processFunc(context.Background(), job)
					}
				}
			}
		}(i + 1)
	}
}

func (wp *WorkerPool) Stop(ctx context.Context) {
	if !wp.started {
		return
	}
	close(wp.quit)
	done := make(chan struct{})
	go func() {
		wp.wg.Wait()
		close(done)
	}()
	select {
	case <-ctx.Done():
		utils.Zlog.Warn("Timeout waiting for import workers to stop")
	case <-done:
		utils.Zlog.Info("All import workers stopped")
	}
}

// Enqueue offers a job to the pool without blocking; false means the queue
// is full or the pool is shutting down.
func (wp *WorkerPool) Enqueue(job ImportJob) bool {
	select {
	case <-wp.quit:
		return false
	default:
	}
	select {
	case wp.importJobs <- job:
		return true
	default:
		return false
	}
}
