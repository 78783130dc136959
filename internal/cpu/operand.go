package cpu

import (
	"fmt"

	"github.com/gabalah/gabalah/internal/ram"
)

// Location names a place an operand's value can come from or go to: a
// single register, a register pair, the stack pointer, an immediate
// constant encoded after the opcode, or a condition derived from the flags
// register. Immediates and conditions are read-only; writing to one is a
// defect in the instruction table and panics.
type Location uint8

const (
	// 8-bit registers
	A Location = iota
	B
	C
	D
	E
	H
	L
	// 16-bit register pairs
	AF
	BC
	DE
	HL
	// SP is the stack pointer
	SP
	// Const8 is an 8-bit constant fetched from the byte after the opcode
	Const8
	// Const16 is a 16-bit constant fetched from the two bytes after the
	// opcode
	Const16
	// conditions, reading as a byte of 0 or 1
	FlagNZ
	FlagZ
	FlagNC
	FlagC
)

var locationNames = [...]string{
	"A", "B", "C", "D", "E", "H", "L",
	"AF", "BC", "DE", "HL", "SP",
	"n", "nn",
	"NZ", "Z", "NC", "C",
}

func (l Location) String() string {
	if int(l) < len(locationNames) {
		return locationNames[l]
	}
	return fmt.Sprintf("Location(%d)", l)
}

// Bytes returns the width of the location in bytes.
func (l Location) Bytes() int {
	switch l {
	case AF, BC, DE, HL, SP, Const16:
		return 2
	default:
		return 1
	}
}

// read resolves the location against the register file and memory. The
// program counter still points at the opcode while an instruction
// executes, so immediates are fetched relative to it.
func (l Location) read(r *Registers, m *ram.RAM) Value {
	switch l {
	case A:
		return From8(r.A)
	case B:
		return From8(r.B)
	case C:
		return From8(r.C)
	case D:
		return From8(r.D)
	case E:
		return From8(r.E)
	case H:
		return From8(r.H)
	case L:
		return From8(r.L)
	case AF:
		return From16(r.AF.Uint16())
	case BC:
		return From16(r.BC.Uint16())
	case DE:
		return From16(r.DE.Uint16())
	case HL:
		return From16(r.HL.Uint16())
	case SP:
		return From16(r.SP)
	case Const8:
		return From8(m.Read(r.PC + 1))
	case Const16:
		return From16(m.ReadWord(r.PC + 1))
	case FlagNZ:
		return FromBool(!r.isFlagSet(FlagZero))
	case FlagZ:
		return FromBool(r.isFlagSet(FlagZero))
	case FlagNC:
		return FromBool(!r.isFlagSet(FlagCarry))
	case FlagC:
		return FromBool(r.isFlagSet(FlagCarry))
	}
	panic(fmt.Sprintf("cpu: read from unknown location %s", l))
}

// write stores the value at the location. Only registers, register pairs
// and the stack pointer are writable.
func (l Location) write(r *Registers, v Value) {
	switch l {
	case A:
		r.A = v.Uint8()
	case B:
		r.B = v.Uint8()
	case C:
		r.C = v.Uint8()
	case D:
		r.D = v.Uint8()
	case E:
		r.E = v.Uint8()
	case H:
		r.H = v.Uint8()
	case L:
		r.L = v.Uint8()
	case AF:
		r.AF.SetUint16(v.Uint16())
	case BC:
		r.BC.SetUint16(v.Uint16())
	case DE:
		r.DE.SetUint16(v.Uint16())
	case HL:
		r.HL.SetUint16(v.Uint16())
	case SP:
		r.SP = v.Uint16()
	default:
		panic(fmt.Sprintf("cpu: write to read-only location %s", l))
	}
}

// Imm wraps the location in a direct-value operand.
func (l Location) Imm() Operand {
	return Operand{Location: l, Mode: ModeImmediate}
}

// Mem wraps the location in a memory-indirect operand: the location's value
// is the address to access.
func (l Location) Mem() Operand {
	return Operand{Location: l, Mode: ModeMemory}
}

// MemInc is Mem with a post-increment of the location, for LD (HL+).
func (l Location) MemInc() Operand {
	return Operand{Location: l, Mode: ModeMemoryInc}
}

// MemDec is Mem with a post-decrement of the location, for LD (HL-).
func (l Location) MemDec() Operand {
	return Operand{Location: l, Mode: ModeMemoryDec}
}

// High wraps the location in a high-memory operand: the location's low byte
// is an offset from 0xFF00.
func (l Location) High() Operand {
	return Operand{Location: l, Mode: ModeHighMemory}
}

// AddressingMode selects how an Operand turns its Location into a value.
type AddressingMode uint8

const (
	// ModeImmediate uses the location's value directly.
	ModeImmediate AddressingMode = iota
	// ModeMemory treats the location's value as the address to access.
	ModeMemory
	// ModeMemoryInc is ModeMemory with a post-access increment of the
	// location.
	ModeMemoryInc
	// ModeMemoryDec is ModeMemory with a post-access decrement of the
	// location.
	ModeMemoryDec
	// ModeHighMemory adds the location's low byte to 0xFF00 to form the
	// address to access.
	ModeHighMemory
)

// highMemoryBase is the fixed base of the high-memory addressing mode,
// where the I/O registers are mapped.
const highMemoryBase = 0xFF00

// Operand combines a Location with an addressing mode. Operands are
// immutable; they are built once as part of the instruction table.
type Operand struct {
	Location Location
	Mode     AddressingMode
}

// address derives the effective address of a memory-mode operand.
func (o Operand) address(r *Registers, m *ram.RAM) uint16 {
	if o.Mode == ModeHighMemory {
		return highMemoryBase | uint16(o.Location.read(r, m).Uint8())
	}
	return o.Location.read(r, m).Uint16()
}

// postAdjust applies the HL increment or decrement after a MemInc or
// MemDec access.
func (o Operand) postAdjust(r *Registers, m *ram.RAM, addr uint16) {
	switch o.Mode {
	case ModeMemoryInc:
		o.Location.write(r, From16(addr+1))
	case ModeMemoryDec:
		o.Location.write(r, From16(addr-1))
	}
}

// Read resolves the operand to a value.
func (o Operand) Read(r *Registers, m *ram.RAM) Value {
	if o.Mode == ModeImmediate {
		return o.Location.read(r, m)
	}
	addr := o.address(r, m)
	v := From8(m.Read(addr))
	o.postAdjust(r, m, addr)
	return v
}

// Write stores the value through the operand. Memory-mode writes store one
// or two bytes depending on the value's width.
func (o Operand) Write(r *Registers, m *ram.RAM, v Value) {
	if o.Mode == ModeImmediate {
		o.Location.write(r, v)
		return
	}
	addr := o.address(r, m)
	if v.Wide() {
		m.WriteWord(addr, v.Uint16())
	} else {
		m.Write(addr, v.Uint8())
	}
	o.postAdjust(r, m, addr)
}

func (o Operand) String() string {
	switch o.Mode {
	case ModeMemory:
		return fmt.Sprintf("(%s)", o.Location)
	case ModeMemoryInc:
		return fmt.Sprintf("(%s+)", o.Location)
	case ModeMemoryDec:
		return fmt.Sprintf("(%s-)", o.Location)
	case ModeHighMemory:
		return fmt.Sprintf("(0xFF00+%s)", o.Location)
	default:
		return o.Location.String()
	}
}
