/*
Package algorithms holds textbook quantum algorithms written purely against
the public register API of qsim.
*/
package algorithms

import (
	"fmt"

	"github.com/theapemachine/qsim"
)

/*
Deutsch decides whether a one-bit function f is constant or balanced with a
single oracle call. The oracle acts on a 2-qubit register as
|x, y⟩ → |x, y ⊕ f(x)⟩, qubit 1 being x and qubit 2 the ancilla y.
*/
func Deutsch(oracle qsim.Oracle, opts ...qsim.RegisterOption) (constant bool, err error) {
	qr, err := qsim.NewQuantumRegister(2, opts...)
	if err != nil {
		return false, err
	}

	prepare := qsim.NewCircuit(2).X(2).H(1).H(2).Oracle(oracle).H(1)

	if err = prepare.Run(qr); err != nil {
		return false, fmt.Errorf("deutsch: %w", err)
	}

	one, err := qr.MeasureQubit(1)
	if err != nil {
		return false, fmt.Errorf("deutsch: %w", err)
	}

	return !one, nil
}

/*
DeutschJozsa generalizes Deutsch to an n-bit function promised to be either
constant or balanced. The register has n input qubits followed by one
ancilla (qubit n+1); the oracle maps |x, y⟩ → |x, y ⊕ f(x)⟩. The function is
constant exactly when every input qubit reads 0.
*/
func DeutschJozsa(n int, oracle qsim.Oracle, opts ...qsim.RegisterOption) (constant bool, err error) {
	qr, err := qsim.NewQuantumRegister(n+1, opts...)
	if err != nil {
		return false, err
	}

	c := qsim.NewCircuit(n + 1).X(n + 1)

	for i := 1; i <= n+1; i++ {
		c.H(i)
	}

	c.Oracle(oracle)

	for i := 1; i <= n; i++ {
		c.H(i)
	}

	if err = c.Run(qr); err != nil {
		return false, fmt.Errorf("deutsch-jozsa: %w", err)
	}

	outcome, err := qr.Measure()
	if err != nil {
		return false, fmt.Errorf("deutsch-jozsa: %w", err)
	}

	// Drop the ancilla, the least significant bit.
	return outcome.Value()>>1 == 0, nil
}
