// Package ram provides the flat 64KiB byte-addressable memory of the
// emulated machine.
package ram

import "github.com/gabalah/gabalah/pkg/bits"

// Size is the size of the address space in bytes.
const Size = 64 * 1024

// RAM represents a block of RAM. Every address representable in 16 bits is
// backed by a cell, so reads and writes cannot fail; 16-bit address
// arithmetic wraps implicitly through the address type.
type RAM struct {
	data [Size]uint8
}

// NewRAM returns a new zeroed RAM.
func NewRAM() *RAM {
	return &RAM{}
}

// Read returns the byte at the given address.
func (r *RAM) Read(address uint16) uint8 {
	return r.data[address]
}

// Write writes the value to the given address.
func (r *RAM) Write(address uint16, value uint8) {
	r.data[address] = value
}

// ReadWord returns the 16-bit word at the given address, low byte at the
// lower address.
func (r *RAM) ReadWord(address uint16) uint16 {
	return bits.Word(r.data[address+1], r.data[address])
}

// WriteWord writes the 16-bit word to the given address, low byte at the
// lower address.
func (r *RAM) WriteWord(address uint16, value uint16) {
	r.data[address] = bits.Lo(value)
	r.data[address+1] = bits.Hi(value)
}

// Load copies b into memory starting at base.
func (r *RAM) Load(b []byte, base uint16) {
	copy(r.data[base:], b)
}
