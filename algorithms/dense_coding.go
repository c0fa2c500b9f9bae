package algorithms

import (
	"fmt"

	"github.com/theapemachine/qsim"
)

/*
SuperdenseCoding sends two classical bits through one qubit of a shared Bell
pair. Alice encodes message ("00", "01", "10" or "11") on qubit 1 with X for
the second bit and Z for the first; Bob decodes with CNOT(1,2), H(1) and a
full measurement.
*/
func SuperdenseCoding(message string, opts ...qsim.RegisterOption) (string, error) {
	if len(message) != 2 {
		return "", fmt.Errorf("superdense coding: message %q must be two bits", message)
	}

	c := qsim.NewCircuit(2).H(1).CNOT(1, 2)

	switch message[1] {
	case '0':
	case '1':
		c.X(1)
	default:
		return "", fmt.Errorf("superdense coding: message %q is not binary", message)
	}

	switch message[0] {
	case '0':
	case '1':
		c.Z(1)
	default:
		return "", fmt.Errorf("superdense coding: message %q is not binary", message)
	}

	c.CNOT(1, 2).H(1)

	qr, err := qsim.NewQuantumRegister(2, opts...)
	if err != nil {
		return "", err
	}

	if err = c.Run(qr); err != nil {
		return "", fmt.Errorf("superdense coding: %w", err)
	}

	outcome, err := qr.Measure()
	if err != nil {
		return "", fmt.Errorf("superdense coding: %w", err)
	}

	return outcome.String(), nil
}
