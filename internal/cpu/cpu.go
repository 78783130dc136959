// Package cpu implements the instruction-execution core: an 8-bit register
// file with 16-bit pair views, a pure ALU, a declarative 256-entry
// instruction table and the fetch-decode-execute engine that drives it.
package cpu

import (
	"fmt"

	"github.com/gabalah/gabalah/internal/ram"
	"github.com/gabalah/gabalah/pkg/log"
)

const (
	// ClockSpeed is the frequency of the CPU, in cycles per second.
	ClockSpeed = 4194304
	// EntryPoint is the address execution starts from once a program is
	// loaded, just past the cartridge header.
	EntryPoint = 0x0100
)

// CPU is the instruction-execution core. It owns the register file and a
// flat 64KiB memory, and advances one instruction per Step call.
type CPU struct {
	*Registers

	memory *ram.RAM
	halted bool

	log log.Logger
}

// NewCPU returns a CPU with zeroed registers and memory.
func NewCPU(logger log.Logger) *CPU {
	c := &CPU{
		Registers: NewRegisters(),
		memory:    ram.NewRAM(),
		log:       logger,
	}
	c.PC = EntryPoint
	return c
}

// Memory returns the CPU's address space.
func (c *CPU) Memory() *ram.RAM {
	return c.memory
}

// Halted reports whether a HALT or STOP instruction has been executed.
func (c *CPU) Halted() bool {
	return c.halted
}

// LoadROM copies the ROM image into the bottom of memory and points the
// program counter at the entry point.
func (c *CPU) LoadROM(rom []byte) {
	c.memory.Load(rom, 0)
	c.PC = EntryPoint
}

// Step fetches, decodes and executes the instruction at PC, returning the
// number of cycles it consumed. A halted CPU idles at 4 cycles per step.
// An invalid opcode is reported before any state changes; an
// unimplemented instruction advances PC first, so the caller may treat the
// error as a no-op and keep stepping.
func (c *CPU) Step() (uint8, error) {
	if c.halted {
		return 4, nil
	}

	opcode := c.memory.Read(c.PC)
	i := Decode(opcode)
	if i.Mnemonic == Invalid {
		return 0, InvalidOpcodeError{Opcode: opcode, PC: c.PC}
	}
	c.log.Debugf("0x%04X\t%s", c.PC, i)

	cycles, jumped, err := c.execute(i)
	if !jumped {
		c.PC += i.Length
	}
	return cycles, err
}

// execute performs the instruction's effect. It reports the cycles
// consumed and whether control flow was transferred; when it was, PC has
// already been set and Step must not advance it.
func (c *CPU) execute(i Instruction) (uint8, bool, error) {
	cycles := i.Cycles
	jumped := false
	var err error

	f := c.Registers.Flags()

	switch i.Mnemonic {
	case Nop:
	case Halt, Stop:
		c.halted = true
	case Ld:
		v := i.Operands[1].Read(c.Registers, c.memory)
		i.Operands[0].Write(c.Registers, c.memory, v)
	case Ldhl:
		offset := i.Operands[0].Read(c.Registers, c.memory).Uint8()
		result, nf := addSigned(c.SP, offset)
		c.HL.SetUint16(result)
		c.SetFlags(nf)
	case Inc:
		v := i.Operands[0].Read(c.Registers, c.memory)
		v, nf := inc(v, f)
		i.Operands[0].Write(c.Registers, c.memory, v)
		c.SetFlags(nf)
	case Dec:
		v := i.Operands[0].Read(c.Registers, c.memory)
		v, nf := dec(v, f)
		i.Operands[0].Write(c.Registers, c.memory, v)
		c.SetFlags(nf)
	case Add:
		if i.Operands[0].Location == SP {
			// ADD SP, r8 treats its operand as signed and takes its
			// flags from the low-byte carries
			offset := i.Operands[1].Read(c.Registers, c.memory).Uint8()
			result, nf := addSigned(c.SP, offset)
			c.SP = result
			c.SetFlags(nf)
			break
		}
		a := i.Operands[0].Read(c.Registers, c.memory)
		b := i.Operands[1].Read(c.Registers, c.memory)
		v, nf := add(a, b, f)
		i.Operands[0].Write(c.Registers, c.memory, v)
		c.SetFlags(nf)
	case Adc:
		a := i.Operands[0].Read(c.Registers, c.memory)
		b := i.Operands[1].Read(c.Registers, c.memory)
		v, nf := adc(a, b, f)
		i.Operands[0].Write(c.Registers, c.memory, v)
		c.SetFlags(nf)
	case Sub:
		a := i.Operands[0].Read(c.Registers, c.memory)
		b := i.Operands[1].Read(c.Registers, c.memory)
		v, nf := sub(a, b, f)
		i.Operands[0].Write(c.Registers, c.memory, v)
		c.SetFlags(nf)
	case Sbc:
		a := i.Operands[0].Read(c.Registers, c.memory)
		b := i.Operands[1].Read(c.Registers, c.memory)
		v, nf := sbc(a, b, f)
		i.Operands[0].Write(c.Registers, c.memory, v)
		c.SetFlags(nf)
	case And:
		a := i.Operands[0].Read(c.Registers, c.memory)
		b := i.Operands[1].Read(c.Registers, c.memory)
		v, nf := and(a, b, f)
		i.Operands[0].Write(c.Registers, c.memory, v)
		c.SetFlags(nf)
	case Xor:
		a := i.Operands[0].Read(c.Registers, c.memory)
		b := i.Operands[1].Read(c.Registers, c.memory)
		v, nf := xor(a, b, f)
		i.Operands[0].Write(c.Registers, c.memory, v)
		c.SetFlags(nf)
	case Or:
		a := i.Operands[0].Read(c.Registers, c.memory)
		b := i.Operands[1].Read(c.Registers, c.memory)
		v, nf := or(a, b, f)
		i.Operands[0].Write(c.Registers, c.memory, v)
		c.SetFlags(nf)
	case Cp:
		a := i.Operands[0].Read(c.Registers, c.memory)
		b := i.Operands[1].Read(c.Registers, c.memory)
		c.SetFlags(cp(a, b, f))
	case Rlca:
		v, nf := rlc(c.A, f)
		c.A = v
		c.SetFlags(nf)
	case Rrca:
		v, nf := rrc(c.A, f)
		c.A = v
		c.SetFlags(nf)
	case Rla:
		v, nf := rl(c.A, f)
		c.A = v
		c.SetFlags(nf)
	case Rra:
		v, nf := rr(c.A, f)
		c.A = v
		c.SetFlags(nf)
	case Daa:
		v, nf := daa(c.A, f)
		c.A = v
		c.SetFlags(nf)
	case Cpl:
		c.A = ^c.A
		f.Subtract = true
		f.HalfCarry = true
		c.SetFlags(f)
	case Scf:
		f.Subtract = false
		f.HalfCarry = false
		f.Carry = true
		c.SetFlags(f)
	case Ccf:
		f.Subtract = false
		f.HalfCarry = false
		f.Carry = !f.Carry
		c.SetFlags(f)
	case Jr:
		c.jumpRelative(i)
		jumped = true
	case Jrc:
		if i.Operands[0].Read(c.Registers, c.memory).Bool() {
			c.jumpRelative(i)
			jumped = true
		} else {
			cycles = i.CyclesNotTaken
		}
	case Jp:
		c.PC = i.Operands[0].Read(c.Registers, c.memory).Uint16()
		jumped = true
	case Jpc:
		if i.Operands[0].Read(c.Registers, c.memory).Bool() {
			c.PC = i.Operands[1].Read(c.Registers, c.memory).Uint16()
			jumped = true
		} else {
			cycles = i.CyclesNotTaken
		}
	case Call:
		c.push(c.PC + i.Length)
		c.PC = i.Operands[0].Read(c.Registers, c.memory).Uint16()
		jumped = true
	case Callc:
		if i.Operands[0].Read(c.Registers, c.memory).Bool() {
			addr := i.Operands[1].Read(c.Registers, c.memory).Uint16()
			c.push(c.PC + i.Length)
			c.PC = addr
			jumped = true
		} else {
			cycles = i.CyclesNotTaken
		}
	case Ret:
		c.PC = c.pop()
		jumped = true
	case Retc:
		if i.Operands[0].Read(c.Registers, c.memory).Bool() {
			c.PC = c.pop()
			jumped = true
		} else {
			cycles = i.CyclesNotTaken
		}
	case Rst:
		c.push(c.PC + i.Length)
		c.PC = uint16(i.Vector)
		jumped = true
	case Push:
		c.push(i.Operands[0].Read(c.Registers, c.memory).Uint16())
	case Pop:
		i.Operands[0].Write(c.Registers, c.memory, From16(c.pop()))
		if i.Operands[0].Location == AF {
			// the low nibble of F does not exist in hardware
			c.F &= 0xF0
		}
	case Ei, Di, Reti:
		err = UnimplementedError{Instruction: i, PC: c.PC}
	default:
		panic(fmt.Sprintf("cpu: no handler for mnemonic %s", i.Mnemonic))
	}

	return cycles, jumped, err
}

// jumpRelative moves PC by the instruction's signed 8-bit offset, measured
// from the end of the instruction.
func (c *CPU) jumpRelative(i Instruction) {
	var offset int8
	if i.Mnemonic == Jrc {
		offset = int8(i.Operands[1].Read(c.Registers, c.memory).Uint8())
	} else {
		offset = int8(i.Operands[0].Read(c.Registers, c.memory).Uint8())
	}
	c.PC = uint16(int32(c.PC) + int32(i.Length) + int32(offset))
}

// push writes a word to the stack, moving SP down past it.
func (c *CPU) push(value uint16) {
	c.SP -= 2
	c.memory.WriteWord(c.SP, value)
}

// pop reads the word at the top of the stack, moving SP back up past it.
func (c *CPU) pop() uint16 {
	value := c.memory.ReadWord(c.SP)
	c.SP += 2
	return value
}
