package qsim

import "errors"

/*
Sentinel errors returned by the simulator. They are wrapped with context via
fmt.Errorf("...: %w", ErrX) and matched with errors.Is. None of them is
transient, so nothing in the package retries on them.
*/
var (
	// ErrInvalidIndex is returned for a qubit index outside [1, n], or when a
	// controlled operation names the same qubit twice.
	ErrInvalidIndex = errors.New("qsim: invalid qubit index")

	// ErrAlreadyMeasured is returned for any operation on a register that has
	// been consumed by a full-register measurement.
	ErrAlreadyMeasured = errors.New("qsim: register already measured")

	// ErrDimensionMismatch signals an amplitude vector whose length is not 2^n
	// for the declared qubit count.
	ErrDimensionMismatch = errors.New("qsim: dimension mismatch")

	// ErrInvalidBit is returned when a classical register is built from an
	// element other than 0 or 1.
	ErrInvalidBit = errors.New("qsim: classical bit must be 0 or 1")

	// ErrNotUnitary is returned when a custom gate matrix fails U·U† = I.
	ErrNotUnitary = errors.New("qsim: gate is not unitary")

	// ErrTooManyQubits is returned for qubit counts outside [1, MaxQubits].
	ErrTooManyQubits = errors.New("qsim: unsupported qubit count")

	// ErrSchedulingTimeout is returned when no worker accepts a shot in time.
	ErrSchedulingTimeout = errors.New("qsim: shot scheduling timeout")

	// ErrPoolClosed is returned when scheduling on a closed pool.
	ErrPoolClosed = errors.New("qsim: pool closed")
)
