package cpu

import "fmt"

// InvalidOpcodeError is returned by Step when the fetched byte is a
// reserved opcode or the extended-operation prefix. The CPU state is left
// exactly as it was before the fetch, with PC still addressing the
// offending byte.
type InvalidOpcodeError struct {
	Opcode uint8
	PC     uint16
}

func (e InvalidOpcodeError) Error() string {
	return fmt.Sprintf("cpu: invalid opcode 0x%02X at 0x%04X", e.Opcode, e.PC)
}

// UnimplementedError is returned by Step for instructions that decode but
// have no effect yet, such as the interrupt-enable pair. PC has already
// advanced past the instruction, so a caller that treats these as no-ops
// can log the error and keep stepping.
type UnimplementedError struct {
	Instruction Instruction
	PC          uint16
}

func (e UnimplementedError) Error() string {
	return fmt.Sprintf("cpu: unimplemented instruction %s at 0x%04X", e.Instruction, e.PC)
}
