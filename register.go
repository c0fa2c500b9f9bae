package qsim

import "fmt"

/*
QuantumRegister is an n-qubit register: an AmplitudeState plus the one-shot
measurement guard. Qubits are addressed 1..n, qubit 1 being the most
significant bit of every basis index and of the ClassicalRegister returned
by Measure.

A register is owned by a single caller and is not safe for concurrent use.
*/
type QuantumRegister struct {
	state    *AmplitudeState
	qubits   int
	measured bool
	source   Source
}

// RegisterOption configures a QuantumRegister at construction.
type RegisterOption func(*QuantumRegister)

// WithSource injects the random source used for measurement.
func WithSource(source Source) RegisterOption {
	return func(qr *QuantumRegister) {
		if source != nil {
			qr.source = source
		}
	}
}

// NewQuantumRegister returns n qubits in |0…0⟩.
func NewQuantumRegister(n int, opts ...RegisterOption) (*QuantumRegister, error) {
	return NewQuantumRegisterFrom(ClassicalZeros(n), opts...)
}

// NewQuantumRegisterFrom returns a register in the basis state named by cr.
func NewQuantumRegisterFrom(cr ClassicalRegister, opts ...RegisterOption) (*QuantumRegister, error) {
	state, err := FromClassicalRegister(cr)
	if err != nil {
		return nil, err
	}

	qr := &QuantumRegister{
		state:  state,
		qubits: cr.Width(),
	}

	for _, opt := range opts {
		opt(qr)
	}

	if qr.source == nil {
		qr.source = DefaultSource()
	}

	return qr, nil
}

// Len is the number of qubits.
func (qr *QuantumRegister) Len() int {
	return qr.qubits
}

// Measured reports whether Measure has consumed the register.
func (qr *QuantumRegister) Measured() bool {
	return qr.measured
}

// State returns a snapshot of the amplitude vector.
func (qr *QuantumRegister) State() []complex128 {
	return qr.state.Amplitudes()
}

// Apply applies an arbitrary single-qubit gate to qubit.
func (qr *QuantumRegister) Apply(g Gate, qubit int) error {
	if err := qr.guard(); err != nil {
		return err
	}

	if err := qr.state.ApplySingleQubitGate(g, qubit); err != nil {
		return fmt.Errorf("%s on qubit %d: %w", g.Name, qubit, err)
	}

	return nil
}

// X applies Pauli-X to qubit i.
func (qr *QuantumRegister) X(i int) error { return qr.Apply(PauliX(), i) }

// Y applies Pauli-Y to qubit i.
func (qr *QuantumRegister) Y(i int) error { return qr.Apply(PauliY(), i) }

// Z applies Pauli-Z to qubit i.
func (qr *QuantumRegister) Z(i int) error { return qr.Apply(PauliZ(), i) }

// H applies the Hadamard gate to qubit i.
func (qr *QuantumRegister) H(i int) error { return qr.Apply(Hadamard(), i) }

// S applies the phase gate to qubit i.
func (qr *QuantumRegister) S(i int) error { return qr.Apply(Phase(), i) }

// Sdg applies S† to qubit i.
func (qr *QuantumRegister) Sdg(i int) error { return qr.Apply(PhaseDagger(), i) }

// T applies the π/8 gate to qubit i.
func (qr *QuantumRegister) T(i int) error { return qr.Apply(PiOver8(), i) }

// Tdg applies T† to qubit i.
func (qr *QuantumRegister) Tdg(i int) error { return qr.Apply(PiOver8Dagger(), i) }

// Rotate applies Rotation(theta) to qubit i.
func (qr *QuantumRegister) Rotate(i int, theta float64) error {
	return qr.Apply(Rotation(theta), i)
}

// CNOT flips target wherever control is 1.
func (qr *QuantumRegister) CNOT(control, target int) error {
	if err := qr.guard(); err != nil {
		return err
	}

	if err := qr.state.ApplyControlledNot(control, target); err != nil {
		return fmt.Errorf("CNOT(%d, %d): %w", control, target, err)
	}

	return nil
}

// Swap exchanges qubits a and b.
func (qr *QuantumRegister) Swap(a, b int) error {
	if err := qr.guard(); err != nil {
		return err
	}

	if err := qr.state.ApplySwap(a, b); err != nil {
		return fmt.Errorf("SWAP(%d, %d): %w", a, b, err)
	}

	return nil
}

// Toffoli flips target wherever both controls are 1.
func (qr *QuantumRegister) Toffoli(control1, control2, target int) error {
	if err := qr.guard(); err != nil {
		return err
	}

	if err := qr.state.ApplyToffoli(control1, control2, target); err != nil {
		return fmt.Errorf("CCNOT(%d, %d, %d): %w", control1, control2, target, err)
	}

	return nil
}

/*
Measure samples the whole register once under the Born rule and returns the
outcome as a ClassicalRegister. The state collapses to that basis vector and
the register is consumed: every later call fails with ErrAlreadyMeasured.
*/
func (qr *QuantumRegister) Measure() (ClassicalRegister, error) {
	if err := qr.guard(); err != nil {
		return ClassicalRegister{}, err
	}

	index := qr.state.Sample(qr.source.Float64())

	if err := qr.state.Collapse(index); err != nil {
		return ClassicalRegister{}, err
	}

	qr.measured = true
	return ClassicalFromValue(qr.qubits, index), nil
}

/*
MeasureQubit measures qubit i alone. It returns true with probability p1, the
total probability of basis states where bit i is 1, and projects the state
onto the observed outcome, renormalizing what survives. The other qubits keep
whatever superposition is consistent with the outcome, and the register stays
usable.
*/
func (qr *QuantumRegister) MeasureQubit(i int) (bool, error) {
	if err := qr.guard(); err != nil {
		return false, err
	}

	p1, err := qr.state.ProbabilityOne(i)
	if err != nil {
		return false, fmt.Errorf("measure qubit %d: %w", i, err)
	}

	outcome := qr.source.Float64() < p1

	if err := qr.state.Project(i, outcome); err != nil {
		return false, fmt.Errorf("measure qubit %d: %w", i, err)
	}

	return outcome, nil
}

func (qr *QuantumRegister) guard() error {
	if qr.measured {
		return ErrAlreadyMeasured
	}

	return nil
}
