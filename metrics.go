package qsim

import (
	"errors"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

/*
Metrics tracks the shot pool. The plain fields are the in-process view used
by ExportMetrics; the Prometheus collectors mirror them for scraping when a
Registerer is supplied.
*/
type Metrics struct {
	mu                 sync.RWMutex
	WorkerCount        int
	JobQueueSize       int
	TotalJobTime       time.Duration
	JobCount           int64
	FailedJobs         int64
	AverageJobLatency  time.Duration
	JobSuccessRate     float64
	SchedulingFailures int64

	shots    *prometheus.CounterVec
	duration prometheus.Histogram
	workers  prometheus.Gauge
	queue    prometheus.Gauge
}

// NewMetrics builds the pool metrics; reg may be nil to skip registration.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		shots: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "qsim_shots_total",
			Help: "Circuit shots executed by the pool, by result.",
		}, []string{"result"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "qsim_shot_duration_seconds",
			Help:    "Wall time from scheduling to completion of a shot.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		workers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "qsim_workers",
			Help: "Running pool workers.",
		}),
		queue: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "qsim_queue_size",
			Help: "Shots waiting for a worker.",
		}),
	}

	if reg != nil {
		m.shots = register(reg, m.shots)
		m.duration = register(reg, m.duration)
		m.workers = register(reg, m.workers)
		m.queue = register(reg, m.queue)
	}

	return m
}

// register reuses an identical collector that is already registered.
func register[T prometheus.Collector](reg prometheus.Registerer, c T) T {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(T); ok {
				return existing
			}
		}
	}

	return c
}

func (m *Metrics) recordJobExecution(startTime time.Time, success bool) {
	duration := time.Since(startTime)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.TotalJobTime += duration
	m.JobCount++

	if !success {
		m.FailedJobs++
	}

	m.AverageJobLatency = m.TotalJobTime / time.Duration(m.JobCount)
	m.JobSuccessRate = float64(m.JobCount-m.FailedJobs) / float64(m.JobCount)

	result := "ok"
	if !success {
		result = "error"
	}

	m.shots.WithLabelValues(result).Inc()
	m.duration.Observe(duration.Seconds())
}

func (m *Metrics) recordSchedulingFailure() {
	m.mu.Lock()
	m.SchedulingFailures++
	m.mu.Unlock()

	m.shots.WithLabelValues("unscheduled").Inc()
}

func (m *Metrics) setWorkers(n int) {
	m.mu.Lock()
	m.WorkerCount = n
	m.mu.Unlock()

	m.workers.Set(float64(n))
}

func (m *Metrics) setQueueSize(n int) {
	m.mu.Lock()
	m.JobQueueSize = n
	m.mu.Unlock()

	m.queue.Set(float64(n))
}

// ExportMetrics returns a snapshot of the in-process counters.
func (m *Metrics) ExportMetrics() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"worker_count":        m.WorkerCount,
		"queue_size":          m.JobQueueSize,
		"job_count":           m.JobCount,
		"failed_jobs":         m.FailedJobs,
		"scheduling_failures": m.SchedulingFailures,
		"success_rate":        m.JobSuccessRate,
		"avg_latency":         m.AverageJobLatency.Milliseconds(),
	}
}
