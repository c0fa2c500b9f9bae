package qsim

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestQuantumComputer(t *testing.T) {
	Convey("Given a two-qubit computer", t, func() {
		qc, err := NewQuantumComputer(2, WithSource(draws(0.9)))
		So(err, ShouldBeNil)

		Convey("Then the classical register starts at zero", func() {
			So(qc.Classical().String(), ShouldEqual, "00")
		})

		Convey("When a Bell pair is measured", func() {
			So(qc.H(1), ShouldBeNil)
			So(qc.CNOT(1, 2), ShouldBeNil)

			outcome, err := qc.Measure()

			Convey("Then the outcome is stored classically", func() {
				So(err, ShouldBeNil)
				So(outcome.String(), ShouldEqual, "11")
				So(qc.Classical().Equal(outcome), ShouldBeTrue)
				So(qc.Register().Measured(), ShouldBeTrue)
			})

			Convey("Then measuring again fails and keeps the stored outcome", func() {
				_, err := qc.Measure()
				So(errors.Is(err, ErrAlreadyMeasured), ShouldBeTrue)
				So(qc.Classical().String(), ShouldEqual, "11")
			})
		})

		Convey("When a circuit is run on it", func() {
			So(qc.Run(NewCircuit(2).X(1).Z(1).Y(2)), ShouldBeNil)
			So(qc.Register().State(), approx, []complex128{0, 0, 0, -1i})
		})
	})

	Convey("Given an unsupported width", t, func() {
		_, err := NewQuantumComputer(0)
		So(errors.Is(err, ErrTooManyQubits), ShouldBeTrue)
	})
}
