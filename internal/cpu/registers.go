package cpu

import "github.com/gabalah/gabalah/pkg/bits"

// Register is an 8-bit register.
type Register = uint8

// RegisterPair is a 16-bit view over two 8-bit registers. It holds pointers
// to the two cells rather than its own storage, so a write through the pair
// is immediately visible through the individual registers and vice versa.
type RegisterPair struct {
	High *Register
	Low  *Register
}

// Uint16 returns the value of the RegisterPair as a 16-bit word, high
// register first.
func (r *RegisterPair) Uint16() uint16 {
	return bits.Word(*r.High, *r.Low)
}

// SetUint16 decomposes the given word back into the two registers.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High = bits.Hi(value)
	*r.Low = bits.Lo(value)
}

// Registers contains the eight 8-bit registers, the two 16-bit registers
// and the pair views over AF, BC, DE and HL.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	F Register
	H Register
	L Register

	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// PC is the program counter, it points to the instruction being
	// executed.
	PC uint16

	AF *RegisterPair
	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
}

// NewRegisters returns a zeroed register file with the pair views wired up.
func NewRegisters() *Registers {
	r := &Registers{}
	r.AF = &RegisterPair{&r.A, &r.F}
	r.BC = &RegisterPair{&r.B, &r.C}
	r.DE = &RegisterPair{&r.D, &r.E}
	r.HL = &RegisterPair{&r.H, &r.L}
	return r
}
