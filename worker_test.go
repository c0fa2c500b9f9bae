package qsim

import (
	"context"
	"errors"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

const timeoutMsg = "Test timed out waiting for value retrieval"

func TestWorker(t *testing.T) {
	Convey("Given a worker attached to a bare pool", t, func() {
		ctx, cancel := context.WithCancel(context.Background())

		config := NewConfig()
		config.JobTimeout = 50 * time.Millisecond

		pool := &Q{
			ctx:     ctx,
			workers: make(chan chan Job, 1),
			space:   newShotSpace(time.Minute),
			metrics: NewMetrics(nil),
			config:  config,
		}

		worker := &Worker{
			id:   1,
			pool: pool,
			jobs: make(chan Job, 1),
		}

		Reset(func() {
			cancel()
			pool.space.Close()
		})

		Convey("It should execute a circuit shot", func() {
			job := Job{
				ID: "shot",
				Fn: func() (any, error) {
					return NewCircuit(2).X(2).Execute(draws(0.5))
				},
				StartTime: time.Now(),
				TTL:       10 * time.Second,
			}

			worker.jobs <- job
			go worker.run(ctx)

			select {
			case <-time.After(2 * time.Second):
				t.Fatal(timeoutMsg)
			case value := <-pool.space.Await(job.ID):
				So(value.Error, ShouldBeNil)
				So(value.Value.(ClassicalRegister).String(), ShouldEqual, "01")
			}

			So(pool.metrics.ExportMetrics()["job_count"], ShouldEqual, int64(1))
		})

		Convey("It should give up on a job that overruns", func() {
			job := Job{
				ID: "slow",
				Fn: func() (any, error) {
					time.Sleep(200 * time.Millisecond)
					return nil, nil
				},
				StartTime: time.Now(),
				TTL:       10 * time.Second,
			}

			worker.jobs <- job
			go worker.run(ctx)

			select {
			case <-time.After(2 * time.Second):
				t.Fatal(timeoutMsg)
			case value := <-pool.space.Await(job.ID):
				So(errors.Is(value.Error, context.DeadlineExceeded), ShouldBeTrue)
			}

			So(pool.metrics.ExportMetrics()["failed_jobs"], ShouldEqual, int64(1))
		})

		Convey("It should stop when its context is cancelled", func() {
			stopped := make(chan struct{})

			go func() {
				worker.run(ctx)
				close(stopped)
			}()

			cancel()

			select {
			case <-time.After(2 * time.Second):
				t.Fatal("worker did not stop")
			case <-stopped:
			}
		})
	})
}
