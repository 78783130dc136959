package cpu

import "fmt"

// shorthands to keep the table readable
var (
	ins    = NewInstruction
	branch = NewBranchInstruction
	rst    = NewRstInstruction
	inv    = NewInvalidInstruction
)

// InstructionSet maps every one of the 256 opcode bytes to its instruction
// definition. Reserved opcodes and the CB-prefixed subtable are present as
// explicit invalid entries, so a lookup can never miss.
var InstructionSet = [256]Instruction{
	// no-op
	0x00: ins(Nop, 1, 4),
	// load nn into BC
	0x01: ins(Ld, 3, 12, BC.Imm(), Const16.Imm()),
	// load A into [BC]
	0x02: ins(Ld, 1, 8, BC.Mem(), A.Imm()),
	// increase BC
	0x03: ins(Inc, 1, 8, BC.Imm()),
	// increase B
	0x04: ins(Inc, 1, 4, B.Imm()),
	// decrease B
	0x05: ins(Dec, 1, 4, B.Imm()),
	// load n into B
	0x06: ins(Ld, 2, 8, B.Imm(), Const8.Imm()),
	// rotate A left; old bit 7 to carry flag
	0x07: ins(Rlca, 1, 4),
	// load SP into [nn]
	0x08: ins(Ld, 3, 20, Const16.Mem(), SP.Imm()),
	// add BC to HL
	0x09: ins(Add, 1, 8, HL.Imm(), BC.Imm()),
	// load [BC] into A
	0x0A: ins(Ld, 1, 8, A.Imm(), BC.Mem()),
	// decrease BC
	0x0B: ins(Dec, 1, 8, BC.Imm()),
	// increase C
	0x0C: ins(Inc, 1, 4, C.Imm()),
	// decrease C
	0x0D: ins(Dec, 1, 4, C.Imm()),
	// load n into C
	0x0E: ins(Ld, 2, 8, C.Imm(), Const8.Imm()),
	// rotate A right; old bit 0 to carry flag
	0x0F: ins(Rrca, 1, 4),
	// stop
	0x10: ins(Stop, 2, 4, Const8.Imm()),
	// load nn into DE
	0x11: ins(Ld, 3, 12, DE.Imm(), Const16.Imm()),
	// load A into [DE]
	0x12: ins(Ld, 1, 8, DE.Mem(), A.Imm()),
	// increase DE
	0x13: ins(Inc, 1, 8, DE.Imm()),
	// increase D
	0x14: ins(Inc, 1, 4, D.Imm()),
	// decrease D
	0x15: ins(Dec, 1, 4, D.Imm()),
	// load n into D
	0x16: ins(Ld, 2, 8, D.Imm(), Const8.Imm()),
	// rotate A left through carry flag
	0x17: ins(Rla, 1, 4),
	// jump relative by signed 8-bit offset
	0x18: ins(Jr, 2, 12, Const8.Imm()),
	// add DE to HL
	0x19: ins(Add, 1, 8, HL.Imm(), DE.Imm()),
	// load [DE] into A
	0x1A: ins(Ld, 1, 8, A.Imm(), DE.Mem()),
	// decrease DE
	0x1B: ins(Dec, 1, 8, DE.Imm()),
	// increase E
	0x1C: ins(Inc, 1, 4, E.Imm()),
	// decrease E
	0x1D: ins(Dec, 1, 4, E.Imm()),
	// load n into E
	0x1E: ins(Ld, 2, 8, E.Imm(), Const8.Imm()),
	// rotate A right through carry flag
	0x1F: ins(Rra, 1, 4),
	// jump relative if nonzero
	0x20: branch(Jrc, 2, 12, 8, FlagNZ.Imm(), Const8.Imm()),
	// load nn into HL
	0x21: ins(Ld, 3, 12, HL.Imm(), Const16.Imm()),
	// load A into [HL], increment HL
	0x22: ins(Ld, 1, 8, HL.MemInc(), A.Imm()),
	// increase HL
	0x23: ins(Inc, 1, 8, HL.Imm()),
	// increase H
	0x24: ins(Inc, 1, 4, H.Imm()),
	// decrease H
	0x25: ins(Dec, 1, 4, H.Imm()),
	// load n into H
	0x26: ins(Ld, 2, 8, H.Imm(), Const8.Imm()),
	// decimal adjust A
	0x27: ins(Daa, 1, 4),
	// jump relative if zero
	0x28: branch(Jrc, 2, 12, 8, FlagZ.Imm(), Const8.Imm()),
	// add HL to HL
	0x29: ins(Add, 1, 8, HL.Imm(), HL.Imm()),
	// load [HL] into A, increment HL
	0x2A: ins(Ld, 1, 8, A.Imm(), HL.MemInc()),
	// decrease HL
	0x2B: ins(Dec, 1, 8, HL.Imm()),
	// increase L
	0x2C: ins(Inc, 1, 4, L.Imm()),
	// decrease L
	0x2D: ins(Dec, 1, 4, L.Imm()),
	// load n into L
	0x2E: ins(Ld, 2, 8, L.Imm(), Const8.Imm()),
	// complement A
	0x2F: ins(Cpl, 1, 4),
	// jump relative if no carry
	0x30: branch(Jrc, 2, 12, 8, FlagNC.Imm(), Const8.Imm()),
	// load nn into SP
	0x31: ins(Ld, 3, 12, SP.Imm(), Const16.Imm()),
	// load A into [HL], decrement HL
	0x32: ins(Ld, 1, 8, HL.MemDec(), A.Imm()),
	// increase SP
	0x33: ins(Inc, 1, 8, SP.Imm()),
	// increase [HL]
	0x34: ins(Inc, 1, 12, HL.Mem()),
	// decrease [HL]
	0x35: ins(Dec, 1, 12, HL.Mem()),
	// load n into [HL]
	0x36: ins(Ld, 2, 12, HL.Mem(), Const8.Imm()),
	// set carry flag
	0x37: ins(Scf, 1, 4),
	// jump relative if carry
	0x38: branch(Jrc, 2, 12, 8, FlagC.Imm(), Const8.Imm()),
	// add SP to HL
	0x39: ins(Add, 1, 8, HL.Imm(), SP.Imm()),
	// load [HL] into A, decrement HL
	0x3A: ins(Ld, 1, 8, A.Imm(), HL.MemDec()),
	// decrease SP
	0x3B: ins(Dec, 1, 8, SP.Imm()),
	// increase A
	0x3C: ins(Inc, 1, 4, A.Imm()),
	// decrease A
	0x3D: ins(Dec, 1, 4, A.Imm()),
	// load n into A
	0x3E: ins(Ld, 2, 8, A.Imm(), Const8.Imm()),
	// complement carry flag
	0x3F: ins(Ccf, 1, 4),
	// load r into B
	0x40: ins(Ld, 1, 4, B.Imm(), B.Imm()),
	0x41: ins(Ld, 1, 4, B.Imm(), C.Imm()),
	0x42: ins(Ld, 1, 4, B.Imm(), D.Imm()),
	0x43: ins(Ld, 1, 4, B.Imm(), E.Imm()),
	0x44: ins(Ld, 1, 4, B.Imm(), H.Imm()),
	0x45: ins(Ld, 1, 4, B.Imm(), L.Imm()),
	0x46: ins(Ld, 1, 8, B.Imm(), HL.Mem()),
	0x47: ins(Ld, 1, 4, B.Imm(), A.Imm()),
	// load r into C
	0x48: ins(Ld, 1, 4, C.Imm(), B.Imm()),
	0x49: ins(Ld, 1, 4, C.Imm(), C.Imm()),
	0x4A: ins(Ld, 1, 4, C.Imm(), D.Imm()),
	0x4B: ins(Ld, 1, 4, C.Imm(), E.Imm()),
	0x4C: ins(Ld, 1, 4, C.Imm(), H.Imm()),
	0x4D: ins(Ld, 1, 4, C.Imm(), L.Imm()),
	0x4E: ins(Ld, 1, 8, C.Imm(), HL.Mem()),
	0x4F: ins(Ld, 1, 4, C.Imm(), A.Imm()),
	// load r into D
	0x50: ins(Ld, 1, 4, D.Imm(), B.Imm()),
	0x51: ins(Ld, 1, 4, D.Imm(), C.Imm()),
	0x52: ins(Ld, 1, 4, D.Imm(), D.Imm()),
	0x53: ins(Ld, 1, 4, D.Imm(), E.Imm()),
	0x54: ins(Ld, 1, 4, D.Imm(), H.Imm()),
	0x55: ins(Ld, 1, 4, D.Imm(), L.Imm()),
	0x56: ins(Ld, 1, 8, D.Imm(), HL.Mem()),
	0x57: ins(Ld, 1, 4, D.Imm(), A.Imm()),
	// load r into E
	0x58: ins(Ld, 1, 4, E.Imm(), B.Imm()),
	0x59: ins(Ld, 1, 4, E.Imm(), C.Imm()),
	0x5A: ins(Ld, 1, 4, E.Imm(), D.Imm()),
	0x5B: ins(Ld, 1, 4, E.Imm(), E.Imm()),
	0x5C: ins(Ld, 1, 4, E.Imm(), H.Imm()),
	0x5D: ins(Ld, 1, 4, E.Imm(), L.Imm()),
	0x5E: ins(Ld, 1, 8, E.Imm(), HL.Mem()),
	0x5F: ins(Ld, 1, 4, E.Imm(), A.Imm()),
	// load r into H
	0x60: ins(Ld, 1, 4, H.Imm(), B.Imm()),
	0x61: ins(Ld, 1, 4, H.Imm(), C.Imm()),
	0x62: ins(Ld, 1, 4, H.Imm(), D.Imm()),
	0x63: ins(Ld, 1, 4, H.Imm(), E.Imm()),
	0x64: ins(Ld, 1, 4, H.Imm(), H.Imm()),
	0x65: ins(Ld, 1, 4, H.Imm(), L.Imm()),
	0x66: ins(Ld, 1, 8, H.Imm(), HL.Mem()),
	0x67: ins(Ld, 1, 4, H.Imm(), A.Imm()),
	// load r into L
	0x68: ins(Ld, 1, 4, L.Imm(), B.Imm()),
	0x69: ins(Ld, 1, 4, L.Imm(), C.Imm()),
	0x6A: ins(Ld, 1, 4, L.Imm(), D.Imm()),
	0x6B: ins(Ld, 1, 4, L.Imm(), E.Imm()),
	0x6C: ins(Ld, 1, 4, L.Imm(), H.Imm()),
	0x6D: ins(Ld, 1, 4, L.Imm(), L.Imm()),
	0x6E: ins(Ld, 1, 8, L.Imm(), HL.Mem()),
	0x6F: ins(Ld, 1, 4, L.Imm(), A.Imm()),
	// load r into [HL]
	0x70: ins(Ld, 1, 8, HL.Mem(), B.Imm()),
	0x71: ins(Ld, 1, 8, HL.Mem(), C.Imm()),
	0x72: ins(Ld, 1, 8, HL.Mem(), D.Imm()),
	0x73: ins(Ld, 1, 8, HL.Mem(), E.Imm()),
	0x74: ins(Ld, 1, 8, HL.Mem(), H.Imm()),
	0x75: ins(Ld, 1, 8, HL.Mem(), L.Imm()),
	// halt
	0x76: ins(Halt, 1, 4),
	0x77: ins(Ld, 1, 8, HL.Mem(), A.Imm()),
	// load r into A
	0x78: ins(Ld, 1, 4, A.Imm(), B.Imm()),
	0x79: ins(Ld, 1, 4, A.Imm(), C.Imm()),
	0x7A: ins(Ld, 1, 4, A.Imm(), D.Imm()),
	0x7B: ins(Ld, 1, 4, A.Imm(), E.Imm()),
	0x7C: ins(Ld, 1, 4, A.Imm(), H.Imm()),
	0x7D: ins(Ld, 1, 4, A.Imm(), L.Imm()),
	0x7E: ins(Ld, 1, 8, A.Imm(), HL.Mem()),
	0x7F: ins(Ld, 1, 4, A.Imm(), A.Imm()),
	// add r to A
	0x80: ins(Add, 1, 4, A.Imm(), B.Imm()),
	0x81: ins(Add, 1, 4, A.Imm(), C.Imm()),
	0x82: ins(Add, 1, 4, A.Imm(), D.Imm()),
	0x83: ins(Add, 1, 4, A.Imm(), E.Imm()),
	0x84: ins(Add, 1, 4, A.Imm(), H.Imm()),
	0x85: ins(Add, 1, 4, A.Imm(), L.Imm()),
	0x86: ins(Add, 1, 8, A.Imm(), HL.Mem()),
	0x87: ins(Add, 1, 4, A.Imm(), A.Imm()),
	// add r to A with carry
	0x88: ins(Adc, 1, 4, A.Imm(), B.Imm()),
	0x89: ins(Adc, 1, 4, A.Imm(), C.Imm()),
	0x8A: ins(Adc, 1, 4, A.Imm(), D.Imm()),
	0x8B: ins(Adc, 1, 4, A.Imm(), E.Imm()),
	0x8C: ins(Adc, 1, 4, A.Imm(), H.Imm()),
	0x8D: ins(Adc, 1, 4, A.Imm(), L.Imm()),
	0x8E: ins(Adc, 1, 8, A.Imm(), HL.Mem()),
	0x8F: ins(Adc, 1, 4, A.Imm(), A.Imm()),
	// subtract r from A
	0x90: ins(Sub, 1, 4, A.Imm(), B.Imm()),
	0x91: ins(Sub, 1, 4, A.Imm(), C.Imm()),
	0x92: ins(Sub, 1, 4, A.Imm(), D.Imm()),
	0x93: ins(Sub, 1, 4, A.Imm(), E.Imm()),
	0x94: ins(Sub, 1, 4, A.Imm(), H.Imm()),
	0x95: ins(Sub, 1, 4, A.Imm(), L.Imm()),
	0x96: ins(Sub, 1, 8, A.Imm(), HL.Mem()),
	0x97: ins(Sub, 1, 4, A.Imm(), A.Imm()),
	// subtract r from A with carry
	0x98: ins(Sbc, 1, 4, A.Imm(), B.Imm()),
	0x99: ins(Sbc, 1, 4, A.Imm(), C.Imm()),
	0x9A: ins(Sbc, 1, 4, A.Imm(), D.Imm()),
	0x9B: ins(Sbc, 1, 4, A.Imm(), E.Imm()),
	0x9C: ins(Sbc, 1, 4, A.Imm(), H.Imm()),
	0x9D: ins(Sbc, 1, 4, A.Imm(), L.Imm()),
	0x9E: ins(Sbc, 1, 8, A.Imm(), HL.Mem()),
	0x9F: ins(Sbc, 1, 4, A.Imm(), A.Imm()),
	// and r with A
	0xA0: ins(And, 1, 4, A.Imm(), B.Imm()),
	0xA1: ins(And, 1, 4, A.Imm(), C.Imm()),
	0xA2: ins(And, 1, 4, A.Imm(), D.Imm()),
	0xA3: ins(And, 1, 4, A.Imm(), E.Imm()),
	0xA4: ins(And, 1, 4, A.Imm(), H.Imm()),
	0xA5: ins(And, 1, 4, A.Imm(), L.Imm()),
	0xA6: ins(And, 1, 8, A.Imm(), HL.Mem()),
	0xA7: ins(And, 1, 4, A.Imm(), A.Imm()),
	// xor r with A
	0xA8: ins(Xor, 1, 4, A.Imm(), B.Imm()),
	0xA9: ins(Xor, 1, 4, A.Imm(), C.Imm()),
	0xAA: ins(Xor, 1, 4, A.Imm(), D.Imm()),
	0xAB: ins(Xor, 1, 4, A.Imm(), E.Imm()),
	0xAC: ins(Xor, 1, 4, A.Imm(), H.Imm()),
	0xAD: ins(Xor, 1, 4, A.Imm(), L.Imm()),
	0xAE: ins(Xor, 1, 8, A.Imm(), HL.Mem()),
	0xAF: ins(Xor, 1, 4, A.Imm(), A.Imm()),
	// or r with A
	0xB0: ins(Or, 1, 4, A.Imm(), B.Imm()),
	0xB1: ins(Or, 1, 4, A.Imm(), C.Imm()),
	0xB2: ins(Or, 1, 4, A.Imm(), D.Imm()),
	0xB3: ins(Or, 1, 4, A.Imm(), E.Imm()),
	0xB4: ins(Or, 1, 4, A.Imm(), H.Imm()),
	0xB5: ins(Or, 1, 4, A.Imm(), L.Imm()),
	0xB6: ins(Or, 1, 8, A.Imm(), HL.Mem()),
	0xB7: ins(Or, 1, 4, A.Imm(), A.Imm()),
	// compare r with A
	0xB8: ins(Cp, 1, 4, A.Imm(), B.Imm()),
	0xB9: ins(Cp, 1, 4, A.Imm(), C.Imm()),
	0xBA: ins(Cp, 1, 4, A.Imm(), D.Imm()),
	0xBB: ins(Cp, 1, 4, A.Imm(), E.Imm()),
	0xBC: ins(Cp, 1, 4, A.Imm(), H.Imm()),
	0xBD: ins(Cp, 1, 4, A.Imm(), L.Imm()),
	0xBE: ins(Cp, 1, 8, A.Imm(), HL.Mem()),
	0xBF: ins(Cp, 1, 4, A.Imm(), A.Imm()),
	// return if nonzero
	0xC0: branch(Retc, 1, 20, 8, FlagNZ.Imm()),
	// pop BC
	0xC1: ins(Pop, 1, 12, BC.Imm()),
	// jump to nn if nonzero
	0xC2: branch(Jpc, 3, 16, 12, FlagNZ.Imm(), Const16.Imm()),
	// jump to nn
	0xC3: ins(Jp, 3, 16, Const16.Imm()),
	// call nn if nonzero
	0xC4: branch(Callc, 3, 24, 12, FlagNZ.Imm(), Const16.Imm()),
	// push BC
	0xC5: ins(Push, 1, 16, BC.Imm()),
	// add n to A
	0xC6: ins(Add, 2, 8, A.Imm(), Const8.Imm()),
	// restart from 0x00
	0xC7: rst(0x00),
	// return if zero
	0xC8: branch(Retc, 1, 20, 8, FlagZ.Imm()),
	// return
	0xC9: ins(Ret, 1, 16),
	// jump to nn if zero
	0xCA: branch(Jpc, 3, 16, 12, FlagZ.Imm(), Const16.Imm()),
	// extended operations
	0xCB: inv("0xCB"),
	// call nn if zero
	0xCC: branch(Callc, 3, 24, 12, FlagZ.Imm(), Const16.Imm()),
	// call nn
	0xCD: ins(Call, 3, 24, Const16.Imm()),
	// add n to A with carry
	0xCE: ins(Adc, 2, 8, A.Imm(), Const8.Imm()),
	// restart from 0x08
	0xCF: rst(0x08),
	// return if no carry
	0xD0: branch(Retc, 1, 20, 8, FlagNC.Imm()),
	// pop DE
	0xD1: ins(Pop, 1, 12, DE.Imm()),
	// jump to nn if no carry
	0xD2: branch(Jpc, 3, 16, 12, FlagNC.Imm(), Const16.Imm()),
	0xD3: inv("0xD3"),
	// call nn if no carry
	0xD4: branch(Callc, 3, 24, 12, FlagNC.Imm(), Const16.Imm()),
	// push DE
	0xD5: ins(Push, 1, 16, DE.Imm()),
	// subtract n from A
	0xD6: ins(Sub, 2, 8, A.Imm(), Const8.Imm()),
	// restart from 0x10
	0xD7: rst(0x10),
	// return if carry
	0xD8: branch(Retc, 1, 20, 8, FlagC.Imm()),
	// return and enable interrupts
	0xD9: ins(Reti, 1, 16),
	// jump to nn if carry
	0xDA: branch(Jpc, 3, 16, 12, FlagC.Imm(), Const16.Imm()),
	0xDB: inv("0xDB"),
	// call nn if carry
	0xDC: branch(Callc, 3, 24, 12, FlagC.Imm(), Const16.Imm()),
	0xDD: inv("0xDD"),
	// subtract n from A with carry
	0xDE: ins(Sbc, 2, 8, A.Imm(), Const8.Imm()),
	// restart from 0x18
	0xDF: rst(0x18),
	// load A into [0xFF00+n]
	0xE0: ins(Ld, 2, 12, Const8.High(), A.Imm()),
	// pop HL
	0xE1: ins(Pop, 1, 12, HL.Imm()),
	// load A into [0xFF00+C]
	0xE2: ins(Ld, 1, 8, C.High(), A.Imm()),
	0xE3: inv("0xE3"),
	0xE4: inv("0xE4"),
	// push HL
	0xE5: ins(Push, 1, 16, HL.Imm()),
	// and n with A
	0xE6: ins(And, 2, 8, A.Imm(), Const8.Imm()),
	// restart from 0x20
	0xE7: rst(0x20),
	// add signed n to SP
	0xE8: ins(Add, 2, 16, SP.Imm(), Const8.Imm()),
	// jump to HL
	0xE9: ins(Jp, 1, 4, HL.Imm()),
	// load A into [nn]
	0xEA: ins(Ld, 3, 16, Const16.Mem(), A.Imm()),
	0xEB: inv("0xEB"),
	0xEC: inv("0xEC"),
	0xED: inv("0xED"),
	// xor n with A
	0xEE: ins(Xor, 2, 8, A.Imm(), Const8.Imm()),
	// restart from 0x28
	0xEF: rst(0x28),
	// load [0xFF00+n] into A
	0xF0: ins(Ld, 2, 12, A.Imm(), Const8.High()),
	// pop AF
	0xF1: ins(Pop, 1, 12, AF.Imm()),
	// load [0xFF00+C] into A
	0xF2: ins(Ld, 1, 8, A.Imm(), C.High()),
	// disable interrupts
	0xF3: ins(Di, 1, 4),
	0xF4: inv("0xF4"),
	// push AF
	0xF5: ins(Push, 1, 16, AF.Imm()),
	// or n with A
	0xF6: ins(Or, 2, 8, A.Imm(), Const8.Imm()),
	// restart from 0x30
	0xF7: rst(0x30),
	// load SP + signed n into HL
	0xF8: ins(Ldhl, 2, 12, Const8.Imm()),
	// load HL into SP
	0xF9: ins(Ld, 1, 8, SP.Imm(), HL.Imm()),
	// load [nn] into A
	0xFA: ins(Ld, 3, 16, A.Imm(), Const16.Mem()),
	// enable interrupts
	0xFB: ins(Ei, 1, 4),
	0xFC: inv("0xFC"),
	0xFD: inv("0xFD"),
	// compare n with A
	0xFE: ins(Cp, 2, 8, A.Imm(), Const8.Imm()),
	// restart from 0x38
	0xFF: rst(0x38),
}

func init() {
	// the table must be total: a zero-length entry means an opcode was
	// missed above
	for opcode, i := range InstructionSet {
		if i.Length == 0 {
			panic(fmt.Sprintf("cpu: opcode 0x%02X has no instruction definition", opcode))
		}
	}
}

// Decode returns the instruction definition for the given opcode byte. The
// table covers all 256 byte values, so a lookup always succeeds; reserved
// opcodes decode to an entry whose mnemonic is Invalid.
func Decode(opcode uint8) Instruction {
	return InstructionSet[opcode]
}
