package qsim

import "fmt"

type step struct {
	name  string
	apply func(*QuantumRegister) error
}

/*
Circuit records an ordered sequence of register operations so the same
program can be replayed on fresh registers, one per shot. Building a circuit
never fails; qubit indices are checked when the circuit runs.
*/
type Circuit struct {
	qubits int
	steps  []step
}

// NewCircuit starts an empty circuit over n qubits.
func NewCircuit(n int) *Circuit {
	return &Circuit{qubits: n}
}

// Qubits is the register width the circuit runs on.
func (c *Circuit) Qubits() int {
	return c.qubits
}

// Len is the number of recorded steps.
func (c *Circuit) Len() int {
	return len(c.steps)
}

func (c *Circuit) add(name string, fn func(*QuantumRegister) error) *Circuit {
	c.steps = append(c.steps, step{name: name, apply: fn})
	return c
}

// Gate records an arbitrary single-qubit gate on qubit i.
func (c *Circuit) Gate(g Gate, i int) *Circuit {
	return c.add(fmt.Sprintf("%s(%d)", g.Name, i), func(qr *QuantumRegister) error {
		return qr.Apply(g, i)
	})
}

func (c *Circuit) X(i int) *Circuit { return c.Gate(PauliX(), i) }
func (c *Circuit) Y(i int) *Circuit { return c.Gate(PauliY(), i) }
func (c *Circuit) Z(i int) *Circuit { return c.Gate(PauliZ(), i) }
func (c *Circuit) H(i int) *Circuit { return c.Gate(Hadamard(), i) }
func (c *Circuit) S(i int) *Circuit { return c.Gate(Phase(), i) }
func (c *Circuit) Sdg(i int) *Circuit { return c.Gate(PhaseDagger(), i) }
func (c *Circuit) T(i int) *Circuit { return c.Gate(PiOver8(), i) }
func (c *Circuit) Tdg(i int) *Circuit { return c.Gate(PiOver8Dagger(), i) }

func (c *Circuit) Rotate(i int, theta float64) *Circuit {
	return c.Gate(Rotation(theta), i)
}

func (c *Circuit) CNOT(control, target int) *Circuit {
	return c.add(fmt.Sprintf("CNOT(%d,%d)", control, target), func(qr *QuantumRegister) error {
		return qr.CNOT(control, target)
	})
}

func (c *Circuit) Swap(a, b int) *Circuit {
	return c.add(fmt.Sprintf("SWAP(%d,%d)", a, b), func(qr *QuantumRegister) error {
		return qr.Swap(a, b)
	})
}

func (c *Circuit) Toffoli(control1, control2, target int) *Circuit {
	return c.add(fmt.Sprintf("CCNOT(%d,%d,%d)", control1, control2, target), func(qr *QuantumRegister) error {
		return qr.Toffoli(control1, control2, target)
	})
}

// Oracle records a black-box step.
func (c *Circuit) Oracle(o Oracle) *Circuit {
	return c.add("oracle", o.Apply)
}

// Run replays every step on qr, stopping at the first failure.
func (c *Circuit) Run(qr *QuantumRegister) error {
	if qr.Len() != c.qubits {
		return fmt.Errorf(
			"circuit of %d qubits on register of %d: %w", c.qubits, qr.Len(), ErrDimensionMismatch,
		)
	}

	for i, s := range c.steps {
		if err := s.apply(qr); err != nil {
			return fmt.Errorf("step %d %s: %w", i+1, s.name, err)
		}
	}

	return nil
}

/*
Execute runs the circuit on a fresh |0…0⟩ register drawing from source, and
returns the full-register measurement.
*/
func (c *Circuit) Execute(source Source) (ClassicalRegister, error) {
	qr, err := NewQuantumRegister(c.qubits, WithSource(source))
	if err != nil {
		return ClassicalRegister{}, err
	}

	if err := c.Run(qr); err != nil {
		return ClassicalRegister{}, err
	}

	return qr.Measure()
}
