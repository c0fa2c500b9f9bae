package qsim

/*
Oracle is a black-box transformation of a register, the capability that
algorithms such as Deutsch-Jozsa are parameterized by.
*/
type Oracle interface {
	Apply(qr *QuantumRegister) error
}

// OracleFunc adapts a plain function to the Oracle interface.
type OracleFunc func(qr *QuantumRegister) error

// Apply calls f(qr).
func (f OracleFunc) Apply(qr *QuantumRegister) error {
	return f(qr)
}
