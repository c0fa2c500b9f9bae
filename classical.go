package qsim

import (
	"fmt"
	"strings"
)

/*
ClassicalRegister is a fixed-width bit vector, most-significant bit first.
It is the classical counterpart of a QuantumRegister: it seeds a register with
a basis state and carries the outcome of a full measurement.

Bit 1 of the register is the most significant bit of Value(), which is the
same convention the amplitude vector uses for qubit 1.
*/
type ClassicalRegister struct {
	bits []uint8
}

/*
NewClassicalRegister builds a register from explicit bits. Every element must
be 0 or 1.
*/
func NewClassicalRegister(bits []uint8) (ClassicalRegister, error) {
	cp := make([]uint8, len(bits))

	for i, b := range bits {
		if b > 1 {
			return ClassicalRegister{}, fmt.Errorf(
				"bit %d has value %d: %w", i+1, b, ErrInvalidBit,
			)
		}

		cp[i] = b
	}

	return ClassicalRegister{bits: cp}, nil
}

// ClassicalZeros returns a register of width zero bits.
func ClassicalZeros(width int) ClassicalRegister {
	return ClassicalRegister{bits: make([]uint8, max(width, 0))}
}

/*
ClassicalFromValue returns the width-bit big-endian expansion of value.
Bits of value above position width are dropped, so the result always
represents value mod 2^width.
*/
func ClassicalFromValue(width int, value uint64) ClassicalRegister {
	cr := ClassicalZeros(width)

	for i := range cr.bits {
		shift := width - 1 - i
		if shift >= 64 {
			continue
		}

		cr.bits[i] = uint8((value >> uint(shift)) & 1)
	}

	return cr
}

/*
Value interprets the register as a big-endian binary integer. Registers
wider than 64 bits only contribute their low 64 bits.
*/
func (cr ClassicalRegister) Value() uint64 {
	var value uint64

	for _, b := range cr.bits {
		value = value<<1 | uint64(b)
	}

	return value
}

// Bits returns a copy of the register's bits, most significant first.
func (cr ClassicalRegister) Bits() []uint8 {
	out := make([]uint8, len(cr.bits))
	copy(out, cr.bits)
	return out
}

// Width is the fixed number of bits in the register.
func (cr ClassicalRegister) Width() int {
	return len(cr.bits)
}

// Bit returns bit i, 1-based from the most significant end.
func (cr ClassicalRegister) Bit(i int) (bool, error) {
	if i < 1 || i > len(cr.bits) {
		return false, fmt.Errorf("bit %d of %d: %w", i, len(cr.bits), ErrInvalidIndex)
	}

	return cr.bits[i-1] == 1, nil
}

// Equal reports whether both registers have the same width and bits.
func (cr ClassicalRegister) Equal(other ClassicalRegister) bool {
	if len(cr.bits) != len(other.bits) {
		return false
	}

	for i := range cr.bits {
		if cr.bits[i] != other.bits[i] {
			return false
		}
	}

	return true
}

func (cr ClassicalRegister) String() string {
	var sb strings.Builder
	sb.Grow(len(cr.bits))

	for _, b := range cr.bits {
		sb.WriteByte('0' + b)
	}

	return sb.String()
}
