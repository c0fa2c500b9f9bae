package qsim

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/theapemachine/errnie"
)

/*
Q is the shot pool: a fixed set of workers fed from a buffered job queue.
Each job owns whatever register it builds, so no simulation state is shared
between workers.
*/
type Q struct {
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	workers chan chan Job
	jobs    chan Job
	space   *ShotSpace
	metrics *Metrics
	config  *Config
	once    sync.Once
}

// NewQ starts a pool; reg may be nil when metrics need not be exported.
func NewQ(ctx context.Context, config *Config, reg prometheus.Registerer) *Q {
	if config == nil {
		config = NewConfig()
	}

	ctx, cancel := context.WithCancel(ctx)

	q := &Q{
		ctx:     ctx,
		cancel:  cancel,
		workers: make(chan chan Job, config.workers()),
		jobs:    make(chan Job, config.queueSize()),
		space:   newShotSpace(config.resultTTL()),
		metrics: NewMetrics(reg),
		config:  config,
	}

	for i := 0; i < config.workers(); i++ {
		q.startWorker(i + 1)
	}

	q.metrics.setWorkers(config.workers())

	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		q.manage()
	}()

	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		q.collectMetrics()
	}()

	errnie.Info("NewQ - workers %d, queue %d, seed %d", config.workers(), config.queueSize(), config.Seed)

	return q
}

func (q *Q) manage() {
	for {
		select {
		case <-q.ctx.Done():
			return
		case job := <-q.jobs:
			select {
			case <-q.ctx.Done():
				return
			case workerChan := <-q.workers:
				select {
				case workerChan <- job:
				case <-q.ctx.Done():
					return
				}
			case <-time.After(q.config.schedulingTimeout()):
				errnie.Info("no available workers for job %s", job.ID)
				q.metrics.recordSchedulingFailure()
				q.space.Store(job.ID, nil, fmt.Errorf("job %s: %w", job.ID, ErrSchedulingTimeout), job.TTL)
			}
		}
	}
}

func (q *Q) collectMetrics() {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-q.ctx.Done():
			return
		case <-ticker.C:
			q.metrics.setQueueSize(len(q.jobs))
		}
	}
}

/*
Schedule queues fn under id and returns a channel that receives its result
once. Scheduling fails fast on a closed pool, and with ErrSchedulingTimeout
when the queue stays full past the configured timeout.
*/
func (q *Q) Schedule(id string, fn func() (any, error), opts ...JobOption) chan ShotValue {
	job := Job{
		ID:        id,
		Fn:        fn,
		TTL:       q.config.resultTTL(),
		StartTime: time.Now(),
	}

	for _, opt := range opts {
		opt(&job)
	}

	if q.ctx.Err() != nil {
		return failed(fmt.Errorf("job %s: %w", id, ErrPoolClosed))
	}

	timer := time.NewTimer(q.config.schedulingTimeout())
	defer timer.Stop()

	select {
	case q.jobs <- job:
		return q.space.Await(id)
	case <-q.ctx.Done():
		return failed(fmt.Errorf("job %s: %w", id, ErrPoolClosed))
	case <-timer.C:
		q.metrics.recordSchedulingFailure()
		return failed(fmt.Errorf("job %s: %w", id, ErrSchedulingTimeout))
	}
}

// Metrics exposes the pool's counters.
func (q *Q) Metrics() *Metrics {
	return q.metrics
}

func (q *Q) startWorker(id int) {
	worker := &Worker{
		id:   id,
		pool: q,
		jobs: make(chan Job),
	}

	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		worker.run(q.ctx)
	}()
}

// Close stops every worker and waits for them to exit.
func (q *Q) Close() {
	if q == nil {
		return
	}

	q.once.Do(func() {
		q.cancel()
		q.wg.Wait()
		q.space.Close()
		q.metrics.setWorkers(0)

		errnie.Info("Q closed")
	})
}

func failed(err error) chan ShotValue {
	ch := make(chan ShotValue, 1)
	ch <- ShotValue{Error: err, CreatedAt: time.Now()}
	close(ch)
	return ch
}
