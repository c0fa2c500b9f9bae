package qsim

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/floats"
)

// MaxQubits caps the register size; operators are dense 2^n x 2^n matrices.
const MaxQubits = 10

/*
AmplitudeState owns the 2^n complex amplitudes of an n-qubit register.
Index i is the basis state whose n-bit big-endian expansion is
ClassicalFromValue(n, i), so qubit 1 is the most significant bit.
*/
type AmplitudeState struct {
	amplitudes []complex128
	qubits     int
}

// NewAmplitudeState returns an all-zero state, to be initialized later.
func NewAmplitudeState(n int) (*AmplitudeState, error) {
	if err := checkQubitCount(n); err != nil {
		return nil, err
	}

	return &AmplitudeState{
		amplitudes: make([]complex128, 1<<n),
		qubits:     n,
	}, nil
}

/*
FromBasisIndex returns the basis state |index⟩: amplitude 1 at index and 0
everywhere else.
*/
func FromBasisIndex(n int, index uint64) (*AmplitudeState, error) {
	state, err := NewAmplitudeState(n)
	if err != nil {
		return nil, err
	}

	if index >= uint64(len(state.amplitudes)) {
		return nil, fmt.Errorf(
			"basis index %d for %d qubits: %w", index, n, ErrDimensionMismatch,
		)
	}

	state.amplitudes[index] = 1
	return state, nil
}

// FromClassicalRegister seeds the basis state named by cr.
func FromClassicalRegister(cr ClassicalRegister) (*AmplitudeState, error) {
	return FromBasisIndex(cr.Width(), cr.Value())
}

// Amplitudes returns a snapshot of the amplitude vector.
func (state *AmplitudeState) Amplitudes() []complex128 {
	out := make([]complex128, len(state.amplitudes))
	copy(out, state.amplitudes)
	return out
}

// Qubits is the declared qubit count n.
func (state *AmplitudeState) Qubits() int {
	return state.qubits
}

// Len is the amplitude vector length, 2^n.
func (state *AmplitudeState) Len() int {
	return len(state.amplitudes)
}

/*
ApplySingleQubitGate expands g onto the full register and left-multiplies the
amplitude vector by it. target is 1-based.
*/
func (state *AmplitudeState) ApplySingleQubitGate(g Gate, target int) error {
	if err := state.validate(); err != nil {
		return err
	}

	op, err := ExpandGate(g, target, state.qubits)
	if err != nil {
		return err
	}

	next, err := applyOperator(op, state.amplitudes)
	if err != nil {
		return err
	}

	state.amplitudes = next
	return nil
}

/*
ApplyControlledNot flips the target bit of every basis index whose control
bit is 1, by swapping amplitude pairs. Indices with control bit 0 are left
alone. A controlled gate has no per-qubit Kronecker factorization, so this is
done as a permutation of basis indices.
*/
func (state *AmplitudeState) ApplyControlledNot(control, target int) error {
	if err := state.checkDistinct(control, target); err != nil {
		return err
	}

	cmask := state.mask(control)
	tmask := state.mask(target)

	for i := range state.amplitudes {
		// Visit each pair once, from the member whose target bit is 0.
		if i&cmask != 0 && i&tmask == 0 {
			j := i | tmask
			state.amplitudes[i], state.amplitudes[j] = state.amplitudes[j], state.amplitudes[i]
		}
	}

	return nil
}

// ApplySwap exchanges qubits a and b.
func (state *AmplitudeState) ApplySwap(a, b int) error {
	if err := state.checkDistinct(a, b); err != nil {
		return err
	}

	amask := state.mask(a)
	bmask := state.mask(b)

	for i := range state.amplitudes {
		if i&amask != 0 && i&bmask == 0 {
			j := i ^ amask ^ bmask
			state.amplitudes[i], state.amplitudes[j] = state.amplitudes[j], state.amplitudes[i]
		}
	}

	return nil
}

// ApplyToffoli flips target on every basis index where both controls are 1.
func (state *AmplitudeState) ApplyToffoli(control1, control2, target int) error {
	if err := state.checkDistinct(control1, target); err != nil {
		return err
	}

	if err := state.checkDistinct(control2, target); err != nil {
		return err
	}

	if control1 == control2 {
		return fmt.Errorf("controls %d and %d: %w", control1, control2, ErrInvalidIndex)
	}

	cmask := state.mask(control1) | state.mask(control2)
	tmask := state.mask(target)

	for i := range state.amplitudes {
		if i&cmask == cmask && i&tmask == 0 {
			j := i | tmask
			state.amplitudes[i], state.amplitudes[j] = state.amplitudes[j], state.amplitudes[i]
		}
	}

	return nil
}

// Probabilities returns |amplitude_i|² for every basis index.
func (state *AmplitudeState) Probabilities() []float64 {
	probs := make([]float64, len(state.amplitudes))

	for i, a := range state.amplitudes {
		probs[i] = real(a)*real(a) + imag(a)*imag(a)
	}

	return probs
}

// Norm is the sum of the Born-rule probabilities; 1 for a valid state.
func (state *AmplitudeState) Norm() float64 {
	n := cmplxs.Norm(state.amplitudes, 2)
	return n * n
}

/*
Sample walks the basis indices in order, accumulating probability, and
returns the first index whose cumulative probability reaches r. If rounding
leaves the total below r the walk falls back to index 0.
*/
func (state *AmplitudeState) Sample(r float64) uint64 {
	var cum float64

	for i, p := range state.Probabilities() {
		cum += p
		if r <= cum {
			return uint64(i)
		}
	}

	return 0
}

// ProbabilityOne is the probability that measuring qubit yields 1.
func (state *AmplitudeState) ProbabilityOne(qubit int) (float64, error) {
	if err := state.validate(); err != nil {
		return 0, err
	}

	if err := checkQubit(qubit, state.qubits); err != nil {
		return 0, err
	}

	m := state.mask(qubit)
	probs := state.Probabilities()

	for i := range probs {
		if i&m == 0 {
			probs[i] = 0
		}
	}

	return floats.Sum(probs), nil
}

/*
Project restricts the state to the subspace where qubit reads outcome:
amplitudes inconsistent with it are zeroed and the survivors are rescaled by
1/sqrt(p), p being the probability of outcome. Projecting onto an outcome of
probability zero is a dimension error, since no state survives.
*/
func (state *AmplitudeState) Project(qubit int, outcome bool) error {
	p1, err := state.ProbabilityOne(qubit)
	if err != nil {
		return err
	}

	p := p1
	if !outcome {
		p = 1 - p1
	}

	if p <= 0 {
		return fmt.Errorf(
			"qubit %d has no support for outcome %t: %w", qubit, outcome, ErrDimensionMismatch,
		)
	}

	m := state.mask(qubit)

	for i := range state.amplitudes {
		if (i&m != 0) != outcome {
			state.amplitudes[i] = 0
		}
	}

	cmplxs.Scale(complex(1/math.Sqrt(p), 0), state.amplitudes)
	return nil
}

// Collapse replaces the state with the basis vector |index⟩.
func (state *AmplitudeState) Collapse(index uint64) error {
	if err := state.validate(); err != nil {
		return err
	}

	if index >= uint64(len(state.amplitudes)) {
		return fmt.Errorf("collapse to %d: %w", index, ErrDimensionMismatch)
	}

	collapsed := make([]complex128, len(state.amplitudes))
	collapsed[index] = 1
	state.amplitudes = collapsed

	return nil
}

// ApproxEqual compares amplitudes entry by entry within tol.
func (state *AmplitudeState) ApproxEqual(amps []complex128, tol float64) bool {
	if len(amps) != len(state.amplitudes) {
		return false
	}

	for i, a := range state.amplitudes {
		if cmplx.Abs(a-amps[i]) > tol {
			return false
		}
	}

	return true
}

func (state *AmplitudeState) validate() error {
	if state.qubits < 1 || state.qubits > MaxQubits || len(state.amplitudes) != 1<<state.qubits {
		return fmt.Errorf(
			"%d amplitudes for %d qubits: %w", len(state.amplitudes), state.qubits, ErrDimensionMismatch,
		)
	}

	return nil
}

func (state *AmplitudeState) checkDistinct(a, b int) error {
	if err := state.validate(); err != nil {
		return err
	}

	if err := checkQubit(a, state.qubits); err != nil {
		return err
	}

	if err := checkQubit(b, state.qubits); err != nil {
		return err
	}

	if a == b {
		return fmt.Errorf("qubit %d used twice: %w", a, ErrInvalidIndex)
	}

	return nil
}

// mask is the index bit of a 1-based qubit; qubit 1 is the MSB.
func (state *AmplitudeState) mask(qubit int) int {
	return 1 << (state.qubits - qubit)
}
