package qsim

import (
	"context"
	"fmt"
	"time"

	"github.com/theapemachine/errnie"
)

// Worker processes jobs
type Worker struct {
	id   int
	pool *Q
	jobs chan Job
}

/*
run offers the worker's job channel to the pool, takes one job, stores its
result and repeats until ctx is cancelled.
*/
func (w *Worker) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case w.pool.workers <- w.jobs:
		}

		select {
		case <-ctx.Done():
			return
		case job := <-w.jobs:
			result, err := w.processJob(ctx, job)
			w.pool.space.Store(job.ID, result, err, job.TTL)
		}
	}
}

func (w *Worker) processJob(ctx context.Context, job Job) (any, error) {
	type outcome struct {
		value any
		err   error
	}

	done := make(chan outcome, 1)

	go func() {
		value, err := job.Fn()
		done <- outcome{value: value, err: err}
	}()

	var (
		value any
		err   error
	)

	select {
	case out := <-done:
		value, err = out.value, out.err
	case <-ctx.Done():
		err = ctx.Err()
	case <-time.After(w.pool.config.jobTimeout()):
		err = fmt.Errorf("job %s exceeded %v: %w", job.ID, w.pool.config.jobTimeout(), context.DeadlineExceeded)
	}

	w.pool.metrics.recordJobExecution(job.StartTime, err == nil)

	if err != nil {
		errnie.Info("worker %d - job %s failed: %v", w.id, job.ID, err)
		return nil, err
	}

	return value, nil
}
