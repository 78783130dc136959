// Package bits provides small helpers for working with bytes and 16-bit
// words, used throughout the CPU core.
package bits

// Set sets the bit at the given index.
func Set(b, i uint8) uint8 {
	return b | (1 << i)
}

// Test tests the bit at the given index.
func Test(b, i uint8) bool {
	return (b>>i)&1 != 0
}

// Word composes a 16-bit word from a high and a low byte.
func Word(hi, lo uint8) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

// Hi returns the high byte of the given word.
func Hi(w uint16) uint8 {
	return uint8(w >> 8)
}

// Lo returns the low byte of the given word.
func Lo(w uint16) uint8 {
	return uint8(w)
}
