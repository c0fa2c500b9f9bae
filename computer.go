package qsim

import "github.com/theapemachine/errnie"

/*
QuantumComputer pairs a quantum register with the classical register it
collapses into. It is a thin convenience layer for callers who want to run a
single program and read back one classical result.
*/
type QuantumComputer struct {
	quantum   *QuantumRegister
	classical ClassicalRegister
}

// NewQuantumComputer returns a computer with n qubits in |0…0⟩.
func NewQuantumComputer(n int, opts ...RegisterOption) (*QuantumComputer, error) {
	qr, err := NewQuantumRegister(n, opts...)
	if err != nil {
		return nil, err
	}

	errnie.Info("NewQuantumComputer - qubits %d", n)

	return &QuantumComputer{
		quantum:   qr,
		classical: ClassicalZeros(n),
	}, nil
}

func (qc *QuantumComputer) X(i int) error { return qc.quantum.X(i) }
func (qc *QuantumComputer) Y(i int) error { return qc.quantum.Y(i) }
func (qc *QuantumComputer) Z(i int) error { return qc.quantum.Z(i) }
func (qc *QuantumComputer) H(i int) error { return qc.quantum.H(i) }
func (qc *QuantumComputer) CNOT(c, t int) error { return qc.quantum.CNOT(c, t) }
func (qc *QuantumComputer) Run(c *Circuit) error { return c.Run(qc.quantum) }
func (qc *QuantumComputer) Register() *QuantumRegister { return qc.quantum }

/*
Measure collapses the quantum register and stores the outcome in the
classical register.
*/
func (qc *QuantumComputer) Measure() (ClassicalRegister, error) {
	outcome, err := qc.quantum.Measure()
	if err != nil {
		return ClassicalRegister{}, err
	}

	qc.classical = outcome
	errnie.Info("QuantumComputer measured - outcome %s", outcome)

	return outcome, nil
}

// Classical is the last measured outcome, all zeros before any measurement.
func (qc *QuantumComputer) Classical() ClassicalRegister {
	return qc.classical
}
