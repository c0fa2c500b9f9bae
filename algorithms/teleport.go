package algorithms

import (
	"fmt"

	"github.com/theapemachine/qsim"
)

/*
Teleport moves the state of qubit 1 onto qubit 3 of a fresh 3-qubit register.
prepare puts qubit 1 into the state to send; qubits 2 and 3 are turned into a
Bell pair. After Alice measures qubits 1 and 2, Bob corrects qubit 3 with X
and Z. The register is returned unmeasured as a whole, so callers can inspect
the amplitudes of qubit 3 alongside Alice's two classical bits.
*/
func Teleport(prepare qsim.Oracle, opts ...qsim.RegisterOption) (*qsim.QuantumRegister, bool, bool, error) {
	qr, err := qsim.NewQuantumRegister(3, opts...)
	if err != nil {
		return nil, false, false, err
	}

	alice := qsim.NewCircuit(3).
		Oracle(prepare).
		H(2).CNOT(2, 3).
		CNOT(1, 2).H(1)

	if err = alice.Run(qr); err != nil {
		return nil, false, false, fmt.Errorf("teleport: %w", err)
	}

	m1, err := qr.MeasureQubit(1)
	if err != nil {
		return nil, false, false, fmt.Errorf("teleport: %w", err)
	}

	m2, err := qr.MeasureQubit(2)
	if err != nil {
		return nil, false, false, fmt.Errorf("teleport: %w", err)
	}

	if m2 {
		if err = qr.X(3); err != nil {
			return nil, false, false, fmt.Errorf("teleport: %w", err)
		}
	}

	if m1 {
		if err = qr.Z(3); err != nil {
			return nil, false, false, fmt.Errorf("teleport: %w", err)
		}
	}

	return qr, m1, m2, nil
}
