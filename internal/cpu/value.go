package cpu

import "fmt"

// Value is a width-tagged quantity: either a single 8-bit value or a 16-bit
// word. Operands resolve to a Value so that instructions can move data
// around without knowing the width ahead of time. The narrowing accessors
// panic on a width mismatch: a mismatch means the instruction table paired
// a mnemonic with an operand it cannot take, which is a defect to surface,
// not a runtime condition to recover from.
type Value struct {
	v    uint16
	wide bool
}

// From8 returns a Value holding a single byte.
func From8(v uint8) Value {
	return Value{v: uint16(v)}
}

// From16 returns a Value holding a 16-bit word.
func From16(v uint16) Value {
	return Value{v: v, wide: true}
}

// FromBool returns an 8-bit Value of 1 if b is true, 0 otherwise.
func FromBool(b bool) Value {
	if b {
		return From8(1)
	}
	return From8(0)
}

// Wide reports whether the value is 16 bits.
func (v Value) Wide() bool {
	return v.wide
}

// Bytes returns the width of the value in bytes.
func (v Value) Bytes() int {
	if v.wide {
		return 2
	}
	return 1
}

// Uint8 returns the value as a byte.
func (v Value) Uint8() uint8 {
	if v.wide {
		panic(fmt.Sprintf("cpu: expected 8-bit value, got 16-bit 0x%04X", v.v))
	}
	return uint8(v.v)
}

// Uint16 returns the value as a 16-bit word.
func (v Value) Uint16() uint16 {
	if !v.wide {
		panic(fmt.Sprintf("cpu: expected 16-bit value, got 8-bit 0x%02X", v.v))
	}
	return v.v
}

// Bool returns true if the value is a non-zero byte. Condition operands
// read as 0 or 1, so this is how branches test them.
func (v Value) Bool() bool {
	return v.Uint8() != 0
}

func (v Value) String() string {
	if v.wide {
		return fmt.Sprintf("0x%04X", v.v)
	}
	return fmt.Sprintf("0x%02X", v.v)
}
