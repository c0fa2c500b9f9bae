package qsim

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// UnitaryTolerance bounds the entry-wise deviation of U·U† from I.
const UnitaryTolerance = 1e-9

/*
Gate is an immutable single-qubit unitary, stored as a 2x2 complex matrix in
the computational basis (row/column 0 is |0⟩).
*/
type Gate struct {
	Name   string
	matrix *mat.CDense
}

func newGate(name string, a, b, c, d complex128) Gate {
	return Gate{
		Name:   name,
		matrix: mat.NewCDense(2, 2, []complex128{a, b, c, d}),
	}
}

/*
NewGate builds a custom gate from its row-major entries

	| a b |
	| c d |

and rejects matrices that are not unitary.
*/
func NewGate(name string, a, b, c, d complex128) (Gate, error) {
	g := newGate(name, a, b, c, d)

	if !g.IsUnitary(UnitaryTolerance) {
		return Gate{}, fmt.Errorf("gate %q: %w", name, ErrNotUnitary)
	}

	return g, nil
}

// Identity leaves the qubit unchanged.
func Identity() Gate {
	return newGate("I", 1, 0, 0, 1)
}

// PauliX is the NOT gate, |0⟩ ↔ |1⟩.
func PauliX() Gate {
	return newGate("X", 0, 1, 1, 0)
}

// PauliY maps |0⟩ → i|1⟩ and |1⟩ → -i|0⟩.
func PauliY() Gate {
	return newGate("Y", 0, -1i, 1i, 0)
}

// PauliZ flips the phase of |1⟩.
func PauliZ() Gate {
	return newGate("Z", 1, 0, 0, -1)
}

// Hadamard = 1/√2 [[1, 1], [1, -1]].
func Hadamard() Gate {
	h := complex(1/math.Sqrt2, 0)
	return newGate("H", h, h, h, -h)
}

// Phase is the S gate, sqrt(Z).
func Phase() Gate {
	return newGate("S", 1, 0, 0, 1i)
}

// PhaseDagger is S†.
func PhaseDagger() Gate {
	return newGate("S†", 1, 0, 0, -1i)
}

// PiOver8 is the T gate, sqrt(S).
func PiOver8() Gate {
	return newGate("T", 1, 0, 0, cmplx.Exp(complex(0, math.Pi/4)))
}

// PiOver8Dagger is T†.
func PiOver8Dagger() Gate {
	return newGate("T†", 1, 0, 0, cmplx.Exp(complex(0, -math.Pi/4)))
}

// Rotation is the real rotation [[cos θ, -sin θ], [sin θ, cos θ]].
func Rotation(theta float64) Gate {
	c := complex(math.Cos(theta), 0)
	s := complex(math.Sin(theta), 0)

	return newGate(fmt.Sprintf("R(%g)", theta), c, -s, s, c)
}

// At returns the entry at row, col (0 or 1).
func (g Gate) At(row, col int) complex128 {
	return g.matrix.At(row, col)
}

// Matrix returns a copy of the gate's 2x2 matrix.
func (g Gate) Matrix() *mat.CDense {
	out := mat.NewCDense(2, 2, nil)
	out.Copy(g.matrix)
	return out
}

/*
IsUnitary reports whether U·U† is the identity within tol, entry by entry.
*/
func (g Gate) IsUnitary(tol float64) bool {
	if g.matrix == nil {
		return false
	}

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			var sum complex128
			for k := 0; k < 2; k++ {
				sum += g.matrix.At(i, k) * cmplx.Conj(g.matrix.At(j, k))
			}

			want := complex(0, 0)
			if i == j {
				want = 1
			}

			if cmplx.Abs(sum-want) > tol {
				return false
			}
		}
	}

	return true
}

func (g Gate) String() string {
	return g.Name
}
