package qsim

import (
	"errors"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestShotSpace(t *testing.T) {
	Convey("Given a shot space", t, func() {
		ss := newShotSpace(10 * time.Millisecond)

		Reset(func() {
			ss.Close()
		})

		Convey("When a result is stored before anyone awaits it", func() {
			ss.Store("early", "value", nil, time.Minute)
			So(ss.Pending(), ShouldEqual, 1)

			Convey("Then it is delivered once and removed", func() {
				value := <-ss.Await("early")
				So(value.Value, ShouldEqual, "value")
				So(value.Error, ShouldBeNil)
				So(ss.Pending(), ShouldEqual, 0)
			})
		})

		Convey("When a result arrives after the await", func() {
			ch := ss.Await("late")
			ss.Store("late", nil, errors.New("failed"), time.Minute)

			value, ok := <-ch
			So(ok, ShouldBeTrue)
			So(value.Error, ShouldNotBeNil)

			_, ok = <-ch
			So(ok, ShouldBeFalse)
		})

		Convey("When a parked result outlives its TTL", func() {
			ss.Store("stale", "value", nil, 5*time.Millisecond)

			Convey("Then the sweeper drops it", func() {
				So(func() bool {
					deadline := time.Now().Add(time.Second)
					for time.Now().Before(deadline) {
						if ss.Pending() == 0 {
							return true
						}
						time.Sleep(5 * time.Millisecond)
					}
					return false
				}(), ShouldBeTrue)
			})
		})

		Convey("When closed twice", func() {
			ss.Store("dropped", "value", nil, 0)
			ss.Close()
			ss.Close()

			So(ss.Pending(), ShouldEqual, 0)
		})
	})
}
