package qsim

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetrics(t *testing.T) {
	Convey("Given metrics on a fresh registry", t, func() {
		reg := prometheus.NewRegistry()
		m := NewMetrics(reg)

		Convey("When jobs are recorded", func() {
			m.recordJobExecution(time.Now().Add(-time.Millisecond), true)
			m.recordJobExecution(time.Now(), true)
			m.recordJobExecution(time.Now(), false)
			m.recordSchedulingFailure()

			Convey("Then the in-process view is updated", func() {
				snapshot := m.ExportMetrics()
				So(snapshot["job_count"], ShouldEqual, int64(3))
				So(snapshot["failed_jobs"], ShouldEqual, int64(1))
				So(snapshot["scheduling_failures"], ShouldEqual, int64(1))
				So(snapshot["success_rate"], ShouldAlmostEqual, 2.0/3.0, tolerance)
			})

			Convey("Then the collectors are updated", func() {
				So(testutil.ToFloat64(m.shots.WithLabelValues("ok")), ShouldEqual, 2.0)
				So(testutil.ToFloat64(m.shots.WithLabelValues("error")), ShouldEqual, 1.0)
				So(testutil.ToFloat64(m.shots.WithLabelValues("unscheduled")), ShouldEqual, 1.0)
			})
		})

		Convey("When the gauges are set", func() {
			m.setWorkers(3)
			m.setQueueSize(7)

			So(testutil.ToFloat64(m.workers), ShouldEqual, 3.0)
			So(testutil.ToFloat64(m.queue), ShouldEqual, 7.0)
		})

		Convey("When a second set registers against the same registry", func() {
			again := NewMetrics(reg)

			Convey("Then it shares the registered collectors", func() {
				So(again.shots, ShouldEqual, m.shots)
				So(again.workers, ShouldEqual, m.workers)
			})
		})
	})

	Convey("Given a pool exporting to a registry", t, func() {
		reg := prometheus.NewRegistry()
		ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
		q := NewQ(ctx, testConfig(5), reg)

		Reset(func() {
			q.Close()
			cancel()
		})

		Convey("When shots complete", func() {
			_, err := q.RunShots(ctx, NewCircuit(2).H(1), 10)
			So(err, ShouldBeNil)

			Convey("Then they are counted as ok", func() {
				So(testutil.ToFloat64(q.Metrics().shots.WithLabelValues("ok")), ShouldEqual, 10.0)

				count, err := testutil.GatherAndCount(reg, "qsim_shot_duration_seconds")
				So(err, ShouldBeNil)
				So(count, ShouldEqual, 1)

				So(testutil.ToFloat64(q.Metrics().workers), ShouldEqual, 3.0)
			})
		})
	})
}
