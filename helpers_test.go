package qsim

import (
	"math"
	"math/cmplx"

	"github.com/davecgh/go-spew/spew"
)

const tolerance = 1e-9

var invSqrt2 = complex(1/math.Sqrt2, 0)

// sequence replays fixed draws, cycling when exhausted.
type sequence struct {
	draws []float64
	next  int
}

func (s *sequence) Float64() float64 {
	r := s.draws[s.next%len(s.draws)]
	s.next++
	return r
}

func draws(values ...float64) Source {
	return &sequence{draws: values}
}

/*
approx compares amplitude vectors within tolerance. On mismatch it returns
a dump of both, which goconvey prints as the failure message.
*/
func approx(actual interface{}, expected ...interface{}) string {
	got := actual.([]complex128)
	want := expected[0].([]complex128)

	if len(got) == len(want) {
		ok := true
		for i := range got {
			if cmplx.Abs(got[i]-want[i]) > tolerance {
				ok = false
				break
			}
		}

		if ok {
			return ""
		}
	}

	return "amplitudes differ\nexpected: " + spew.Sdump(want) + "actual: " + spew.Sdump(got)
}

func norm(amps []complex128) float64 {
	var sum float64
	for _, a := range amps {
		sum += real(a)*real(a) + imag(a)*imag(a)
	}
	return sum
}
