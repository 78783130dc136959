package cpu

import "fmt"

// Mnemonic is the operation kind an instruction performs. The execution
// engine switches exhaustively over this closed set; adding a mnemonic
// means teaching the engine about it.
type Mnemonic uint8

const (
	// Invalid marks a reserved or extended-prefix opcode. It is the zero
	// value, so a hole in the instruction table decodes as invalid rather
	// than silently becoming a no-op.
	Invalid Mnemonic = iota
	Nop
	Stop
	Halt
	Ld
	Ldhl
	Inc
	Dec
	Add
	Adc
	Sub
	Sbc
	And
	Xor
	Or
	Cp
	Rlca
	Rrca
	Rla
	Rra
	Daa
	Cpl
	Scf
	Ccf
	Jr
	Jrc
	Jp
	Jpc
	Call
	Callc
	Ret
	Retc
	Reti
	Push
	Pop
	Rst
	Ei
	Di
)

var mnemonicNames = [...]string{
	"INVALID", "NOP", "STOP", "HALT", "LD", "LDHL",
	"INC", "DEC", "ADD", "ADC", "SUB", "SBC",
	"AND", "XOR", "OR", "CP",
	"RLCA", "RRCA", "RLA", "RRA",
	"DAA", "CPL", "SCF", "CCF",
	"JR", "JR", "JP", "JP", "CALL", "CALL", "RET", "RET", "RETI",
	"PUSH", "POP", "RST", "EI", "DI",
}

func (m Mnemonic) String() string {
	if int(m) < len(mnemonicNames) {
		return mnemonicNames[m]
	}
	return fmt.Sprintf("Mnemonic(%d)", m)
}

// arity returns the number of operands the mnemonic requires.
func (m Mnemonic) arity() int {
	switch m {
	case Ld, Add, Adc, Sub, Sbc, And, Xor, Or, Cp, Jrc, Jpc, Callc:
		return 2
	case Stop, Ldhl, Inc, Dec, Jr, Jp, Call, Retc, Push, Pop:
		return 1
	default:
		return 0
	}
}

// Instruction is a decoded instruction definition: a mnemonic, its
// operands, its total encoded length in bytes, and its duration in cycles.
// Conditional branches carry a second cycle count for the not-taken path.
// Instructions carry no execution state and are never mutated after the
// table is built.
type Instruction struct {
	Mnemonic Mnemonic
	Operands []Operand
	// Vector is the fixed restart address of an Rst instruction.
	Vector uint8
	// Label identifies an Invalid entry for diagnostics.
	Label string
	// Length is the instruction's encoded length in bytes.
	Length uint16
	// Cycles is the instruction's duration; for conditional branches it
	// is the duration of the taken path.
	Cycles uint8
	// CyclesNotTaken is the duration of a conditional branch that falls
	// through. Zero for everything else.
	CyclesNotTaken uint8
}

// NewInstruction returns an instruction definition. The operand count must
// agree with the mnemonic's arity; a mismatch is a defect in the table and
// panics at construction.
func NewInstruction(m Mnemonic, length uint16, cycles uint8, operands ...Operand) Instruction {
	if len(operands) != m.arity() {
		panic(fmt.Sprintf("cpu: %s requires %d operands, got %d", m, m.arity(), len(operands)))
	}
	return Instruction{
		Mnemonic: m,
		Operands: operands,
		Length:   length,
		Cycles:   cycles,
	}
}

// NewBranchInstruction returns a conditional control-flow instruction with
// separate taken and not-taken cycle counts.
func NewBranchInstruction(m Mnemonic, length uint16, cyclesTaken, cyclesNotTaken uint8, operands ...Operand) Instruction {
	i := NewInstruction(m, length, cyclesTaken, operands...)
	i.CyclesNotTaken = cyclesNotTaken
	return i
}

// NewRstInstruction returns a restart instruction targeting the given fixed
// address.
func NewRstInstruction(vector uint8) Instruction {
	i := NewInstruction(Rst, 1, 32)
	i.Vector = vector
	return i
}

// NewInvalidInstruction returns an explicit invalid-opcode entry carrying a
// diagnostic label.
func NewInvalidInstruction(label string) Instruction {
	i := NewInstruction(Invalid, 1, 4)
	i.Label = label
	return i
}

func (i Instruction) String() string {
	switch i.Mnemonic {
	case Invalid:
		return fmt.Sprintf("INVALID %s", i.Label)
	case Rst:
		return fmt.Sprintf("RST 0x%02X", i.Vector)
	}
	s := i.Mnemonic.String()
	for n, op := range i.Operands {
		if n == 0 {
			s += " " + op.String()
		} else {
			s += ", " + op.String()
		}
	}
	return s
}
