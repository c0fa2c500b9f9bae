package qsim

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/mat"
)

/*
ExpandGate lifts a single-qubit gate onto an n-qubit register as the tensor
product F1 ⊗ F2 ⊗ … ⊗ Fn, where F_target is the gate and every other factor
is the identity. Qubit 1 is the leftmost factor, so it occupies the most
significant bit of the basis index.
*/
func ExpandGate(g Gate, target, n int) (*mat.CDense, error) {
	if err := checkQubitCount(n); err != nil {
		return nil, err
	}

	if err := checkQubit(target, n); err != nil {
		return nil, err
	}

	identity := Identity().matrix
	op := mat.NewCDense(1, 1, []complex128{1})

	for qubit := 1; qubit <= n; qubit++ {
		factor := identity
		if qubit == target {
			factor = g.matrix
		}

		op = kron(op, factor)
	}

	return op, nil
}

/*
kron returns the Kronecker product a ⊗ b:

	(a ⊗ b)[i·rb + k][j·cb + l] = a[i][j] · b[k][l]
*/
func kron(a, b *mat.CDense) *mat.CDense {
	ra, ca := a.Dims()
	rb, cb := b.Dims()

	out := mat.NewCDense(ra*rb, ca*cb, nil)

	for i := 0; i < ra; i++ {
		for j := 0; j < ca; j++ {
			aij := a.At(i, j)
			if aij == 0 {
				continue
			}

			for k := 0; k < rb; k++ {
				for l := 0; l < cb; l++ {
					out.Set(i*rb+k, j*cb+l, aij*b.At(k, l))
				}
			}
		}
	}

	return out
}

/*
applyOperator left-multiplies amps by op and returns the new vector. The
input slice is not modified.
*/
func applyOperator(op *mat.CDense, amps []complex128) ([]complex128, error) {
	r, c := op.Dims()
	if r != c || c != len(amps) {
		return nil, fmt.Errorf(
			"operator %dx%d on vector of %d: %w", r, c, len(amps), ErrDimensionMismatch,
		)
	}

	out := make([]complex128, r)

	cblas128.Gemv(
		blas.NoTrans,
		1,
		op.RawCMatrix(),
		cblas128.Vector{N: c, Inc: 1, Data: amps},
		0,
		cblas128.Vector{N: r, Inc: 1, Data: out},
	)

	return out, nil
}

func checkQubit(qubit, n int) error {
	if qubit < 1 || qubit > n {
		return fmt.Errorf("qubit %d not in [1, %d]: %w", qubit, n, ErrInvalidIndex)
	}

	return nil
}

func checkQubitCount(n int) error {
	if n < 1 || n > MaxQubits {
		return fmt.Errorf("%d qubits not in [1, %d]: %w", n, MaxQubits, ErrTooManyQubits)
	}

	return nil
}
