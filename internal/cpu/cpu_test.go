package cpu

import (
	"errors"
	"testing"

	"github.com/gabalah/gabalah/pkg/log"
)

// newTestCPU loads the program at the entry point and returns a CPU about
// to execute its first byte.
func newTestCPU(program ...byte) *CPU {
	c := NewCPU(log.NewNullLogger())
	rom := make([]byte, EntryPoint+len(program))
	copy(rom[EntryPoint:], program)
	c.LoadROM(rom)
	return c
}

// step advances the CPU once and fails the test on any error.
func step(t *testing.T, c *CPU) uint8 {
	t.Helper()
	cycles, err := c.Step()
	if err != nil {
		t.Fatalf("step at 0x%04X: %v", c.PC, err)
	}
	return cycles
}

func TestCPU_Loads(t *testing.T) {
	t.Run("register to register", func(t *testing.T) {
		c := newTestCPU(0x78) // LD A, B
		c.B = 0x5A
		step(t, c)
		if c.A != 0x5A {
			t.Errorf("expected A=0x5A, got 0x%02X", c.A)
		}
		if c.PC != EntryPoint+1 {
			t.Errorf("expected PC=0x%04X, got 0x%04X", EntryPoint+1, c.PC)
		}
	})
	t.Run("immediate word", func(t *testing.T) {
		c := newTestCPU(0x21, 0x34, 0x12) // LD HL, 0x1234
		step(t, c)
		if c.HL.Uint16() != 0x1234 {
			t.Errorf("expected HL=0x1234, got 0x%04X", c.HL.Uint16())
		}
	})
	t.Run("store and load with post-increment", func(t *testing.T) {
		c := newTestCPU(0x22, 0x2A) // LD (HL+), A; LD A, (HL+)
		c.A = 0x77
		c.HL.SetUint16(0xC000)
		step(t, c)
		if c.Memory().Read(0xC000) != 0x77 {
			t.Errorf("expected 0x77 at 0xC000, got 0x%02X", c.Memory().Read(0xC000))
		}
		if c.HL.Uint16() != 0xC001 {
			t.Errorf("expected HL=0xC001, got 0x%04X", c.HL.Uint16())
		}
		c.Memory().Write(0xC001, 0x88)
		step(t, c)
		if c.A != 0x88 || c.HL.Uint16() != 0xC002 {
			t.Errorf("expected A=0x88 HL=0xC002, got A=0x%02X HL=0x%04X", c.A, c.HL.Uint16())
		}
	})
	t.Run("store SP to memory", func(t *testing.T) {
		c := newTestCPU(0x08, 0x00, 0xC1) // LD (0xC100), SP
		c.SP = 0xFFFE
		step(t, c)
		if c.Memory().ReadWord(0xC100) != 0xFFFE {
			t.Errorf("expected 0xFFFE at 0xC100, got 0x%04X", c.Memory().ReadWord(0xC100))
		}
	})
	t.Run("high memory", func(t *testing.T) {
		c := newTestCPU(0xE0, 0x47, 0xF0, 0x47) // LDH (0x47), A; LDH A, (0x47)
		c.A = 0x91
		step(t, c)
		if c.Memory().Read(0xFF47) != 0x91 {
			t.Errorf("expected 0x91 at 0xFF47, got 0x%02X", c.Memory().Read(0xFF47))
		}
		c.A = 0x00
		step(t, c)
		if c.A != 0x91 {
			t.Errorf("expected A=0x91, got 0x%02X", c.A)
		}
	})
}

func TestCPU_Arithmetic(t *testing.T) {
	t.Run("inc", func(t *testing.T) {
		c := newTestCPU(0x3C) // INC A
		c.A = 0x10
		step(t, c)
		if c.A != 0x11 || c.F != 0x00 {
			t.Errorf("expected A=0x11 F=0x00, got A=0x%02X F=0x%02X", c.A, c.F)
		}
	})
	t.Run("inc wraps", func(t *testing.T) {
		c := newTestCPU(0x3C) // INC A
		c.A = 0xFF
		step(t, c)
		if c.A != 0x00 || c.F != 0xA0 {
			t.Errorf("expected A=0x00 F=0xA0, got A=0x%02X F=0x%02X", c.A, c.F)
		}
	})
	t.Run("sub immediate", func(t *testing.T) {
		c := newTestCPU(0xD6, 0x05) // SUB A, 0x05
		c.A = 0x10
		step(t, c)
		if c.A != 0x0B {
			t.Errorf("expected A=0x0B, got 0x%02X", c.A)
		}
		if !c.isFlagSet(FlagSubtract) {
			t.Errorf("expected subtract flag, got F=0x%02X", c.F)
		}
	})
	t.Run("16-bit inc leaves flags alone", func(t *testing.T) {
		c := newTestCPU(0x23) // INC HL
		c.F = 0xF0
		c.HL.SetUint16(0x00FF)
		step(t, c)
		if c.HL.Uint16() != 0x0100 || c.F != 0xF0 {
			t.Errorf("expected HL=0x0100 F=0xF0, got HL=0x%04X F=0x%02X", c.HL.Uint16(), c.F)
		}
	})
	t.Run("add HL keeps zero flag", func(t *testing.T) {
		c := newTestCPU(0x09) // ADD HL, BC
		c.SetFlags(Flags{Zero: true})
		c.HL.SetUint16(0x8A23)
		c.BC.SetUint16(0x0605)
		step(t, c)
		if c.HL.Uint16() != 0x9028 {
			t.Errorf("expected HL=0x9028, got 0x%04X", c.HL.Uint16())
		}
		if !c.isFlagSet(FlagZero) || !c.isFlagSet(FlagHalfCarry) {
			t.Errorf("expected Z preserved and H set, got F=0x%02X", c.F)
		}
	})
	t.Run("add signed to SP", func(t *testing.T) {
		c := newTestCPU(0xE8, 0xFE) // ADD SP, -2
		c.SP = 0xFFFE
		step(t, c)
		if c.SP != 0xFFFC {
			t.Errorf("expected SP=0xFFFC, got 0x%04X", c.SP)
		}
		if c.isFlagSet(FlagZero) || c.isFlagSet(FlagSubtract) {
			t.Errorf("expected Z and N clear, got F=0x%02X", c.F)
		}
	})
	t.Run("load HL from SP plus offset", func(t *testing.T) {
		c := newTestCPU(0xF8, 0x02) // LD HL, SP+2
		c.SP = 0xC000
		step(t, c)
		if c.HL.Uint16() != 0xC002 {
			t.Errorf("expected HL=0xC002, got 0x%04X", c.HL.Uint16())
		}
		if c.SP != 0xC000 {
			t.Errorf("expected SP untouched, got 0x%04X", c.SP)
		}
	})
	t.Run("compare leaves the accumulator alone", func(t *testing.T) {
		c := newTestCPU(0xFE, 0x42) // CP A, 0x42
		c.A = 0x42
		step(t, c)
		if c.A != 0x42 {
			t.Errorf("expected A untouched, got 0x%02X", c.A)
		}
		if !c.isFlagSet(FlagZero) || !c.isFlagSet(FlagSubtract) {
			t.Errorf("expected Z and N set, got F=0x%02X", c.F)
		}
	})
}

func TestCPU_Jumps(t *testing.T) {
	t.Run("relative forward", func(t *testing.T) {
		c := newTestCPU(0x18, 0x05) // JR +5
		step(t, c)
		if c.PC != EntryPoint+2+5 {
			t.Errorf("expected PC=0x%04X, got 0x%04X", EntryPoint+7, c.PC)
		}
	})
	t.Run("relative backward", func(t *testing.T) {
		c := newTestCPU(0x18, 0xFE) // JR -2
		step(t, c)
		if c.PC != EntryPoint {
			t.Errorf("expected PC=0x%04X, got 0x%04X", EntryPoint, c.PC)
		}
	})
	t.Run("conditional taken", func(t *testing.T) {
		c := newTestCPU(0x20, 0xFD) // JR NZ, -3
		cycles := step(t, c)
		if c.PC != EntryPoint-1 {
			t.Errorf("expected PC=0x%04X, got 0x%04X", EntryPoint-1, c.PC)
		}
		if cycles != 12 {
			t.Errorf("expected 12 cycles, got %d", cycles)
		}
	})
	t.Run("conditional not taken", func(t *testing.T) {
		c := newTestCPU(0x20, 0xFD) // JR NZ, -3
		c.SetFlags(Flags{Zero: true})
		cycles := step(t, c)
		if c.PC != EntryPoint+2 {
			t.Errorf("expected PC=0x%04X, got 0x%04X", EntryPoint+2, c.PC)
		}
		if cycles != 8 {
			t.Errorf("expected 8 cycles, got %d", cycles)
		}
	})
	t.Run("absolute", func(t *testing.T) {
		c := newTestCPU(0xC3, 0x00, 0xC0) // JP 0xC000
		step(t, c)
		if c.PC != 0xC000 {
			t.Errorf("expected PC=0xC000, got 0x%04X", c.PC)
		}
	})
	t.Run("to HL", func(t *testing.T) {
		c := newTestCPU(0xE9) // JP HL
		c.HL.SetUint16(0x0150)
		step(t, c)
		if c.PC != 0x0150 {
			t.Errorf("expected PC=0x0150, got 0x%04X", c.PC)
		}
	})
}

func TestCPU_Stack(t *testing.T) {
	t.Run("push and pop", func(t *testing.T) {
		c := newTestCPU(0xC5, 0xD1) // PUSH BC; POP DE
		c.SP = 0xFFFE
		c.BC.SetUint16(0x1234)
		step(t, c)
		if c.SP != 0xFFFC {
			t.Errorf("expected SP=0xFFFC, got 0x%04X", c.SP)
		}
		if c.Memory().Read(0xFFFD) != 0x12 || c.Memory().Read(0xFFFC) != 0x34 {
			t.Errorf("expected high byte below old SP, got 0x%02X 0x%02X",
				c.Memory().Read(0xFFFD), c.Memory().Read(0xFFFC))
		}
		step(t, c)
		if c.DE.Uint16() != 0x1234 {
			t.Errorf("expected DE=0x1234, got 0x%04X", c.DE.Uint16())
		}
		if c.SP != 0xFFFE {
			t.Errorf("expected SP restored to 0xFFFE, got 0x%04X", c.SP)
		}
	})
	t.Run("pop AF masks the low nibble", func(t *testing.T) {
		c := newTestCPU(0xF1) // POP AF
		c.SP = 0xFFFC
		c.Memory().WriteWord(0xFFFC, 0x12FF)
		step(t, c)
		if c.A != 0x12 || c.F != 0xF0 {
			t.Errorf("expected A=0x12 F=0xF0, got A=0x%02X F=0x%02X", c.A, c.F)
		}
	})
	t.Run("call and return", func(t *testing.T) {
		c := newTestCPU(0xCD, 0x00, 0xC0) // CALL 0xC000
		c.SP = 0xFFFE
		c.Memory().Write(0xC000, 0xC9) // RET
		step(t, c)
		if c.PC != 0xC000 {
			t.Errorf("expected PC=0xC000, got 0x%04X", c.PC)
		}
		if c.Memory().ReadWord(c.SP) != EntryPoint+3 {
			t.Errorf("expected return address 0x%04X on the stack, got 0x%04X",
				EntryPoint+3, c.Memory().ReadWord(c.SP))
		}
		step(t, c)
		if c.PC != EntryPoint+3 || c.SP != 0xFFFE {
			t.Errorf("expected PC=0x%04X SP=0xFFFE, got PC=0x%04X SP=0x%04X",
				EntryPoint+3, c.PC, c.SP)
		}
	})
	t.Run("conditional return", func(t *testing.T) {
		c := newTestCPU(0xC0) // RET NZ
		c.SP = 0xFFFC
		c.Memory().WriteWord(0xFFFC, 0xC123)
		c.SetFlags(Flags{Zero: true})
		cycles := step(t, c)
		if c.PC != EntryPoint+1 || cycles != 8 {
			t.Errorf("expected fall-through in 8 cycles, got PC=0x%04X in %d", c.PC, cycles)
		}
	})
	t.Run("restart", func(t *testing.T) {
		c := newTestCPU(0xEF) // RST 0x28
		c.SP = 0xFFFE
		step(t, c)
		if c.PC != 0x0028 {
			t.Errorf("expected PC=0x0028, got 0x%04X", c.PC)
		}
		if c.Memory().ReadWord(c.SP) != EntryPoint+1 {
			t.Errorf("expected return address 0x%04X, got 0x%04X",
				EntryPoint+1, c.Memory().ReadWord(c.SP))
		}
	})
}

func TestCPU_Misc(t *testing.T) {
	t.Run("complement", func(t *testing.T) {
		c := newTestCPU(0x2F) // CPL
		c.A = 0x35
		step(t, c)
		if c.A != 0xCA {
			t.Errorf("expected A=0xCA, got 0x%02X", c.A)
		}
		if !c.isFlagSet(FlagSubtract) || !c.isFlagSet(FlagHalfCarry) {
			t.Errorf("expected N and H set, got F=0x%02X", c.F)
		}
	})
	t.Run("carry flag pair", func(t *testing.T) {
		c := newTestCPU(0x37, 0x3F) // SCF; CCF
		step(t, c)
		if !c.isFlagSet(FlagCarry) {
			t.Errorf("expected carry set, got F=0x%02X", c.F)
		}
		step(t, c)
		if c.isFlagSet(FlagCarry) {
			t.Errorf("expected carry cleared, got F=0x%02X", c.F)
		}
	})
	t.Run("rotate accumulator", func(t *testing.T) {
		c := newTestCPU(0x07) // RLCA
		c.A = 0x85
		step(t, c)
		if c.A != 0x0B || !c.isFlagSet(FlagCarry) {
			t.Errorf("expected A=0x0B with carry, got A=0x%02X F=0x%02X", c.A, c.F)
		}
	})
	t.Run("decimal adjust", func(t *testing.T) {
		c := newTestCPU(0x80, 0x27) // ADD A, B; DAA
		c.A = 0x45
		c.B = 0x38
		step(t, c)
		step(t, c)
		if c.A != 0x83 {
			t.Errorf("expected A=0x83, got 0x%02X", c.A)
		}
	})
}

func TestCPU_Halt(t *testing.T) {
	c := newTestCPU(0x76, 0x3C) // HALT; INC A
	step(t, c)
	if !c.Halted() {
		t.Error("expected the CPU to be halted")
	}
	pc := c.PC
	cycles := step(t, c)
	if c.PC != pc || c.A != 0 {
		t.Error("expected a halted CPU to stay put")
	}
	if cycles != 4 {
		t.Errorf("expected a halted CPU to idle at 4 cycles, got %d", cycles)
	}
}

func TestCPU_InvalidOpcode(t *testing.T) {
	c := newTestCPU(0xDB)
	pc := c.PC
	_, err := c.Step()
	var invalid InvalidOpcodeError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected an invalid opcode error, got %v", err)
	}
	if invalid.Opcode != 0xDB || invalid.PC != pc {
		t.Errorf("expected opcode 0xDB at 0x%04X, got 0x%02X at 0x%04X",
			pc, invalid.Opcode, invalid.PC)
	}
	if c.PC != pc {
		t.Errorf("expected PC untouched at 0x%04X, got 0x%04X", pc, c.PC)
	}
}

func TestCPU_Unimplemented(t *testing.T) {
	c := newTestCPU(0xFB, 0x3C) // EI; INC A
	_, err := c.Step()
	var unimplemented UnimplementedError
	if !errors.As(err, &unimplemented) {
		t.Fatalf("expected an unimplemented error, got %v", err)
	}
	if c.PC != EntryPoint+1 {
		t.Errorf("expected PC advanced past EI, got 0x%04X", c.PC)
	}
	step(t, c)
	if c.A != 0x01 {
		t.Errorf("expected execution to continue, got A=0x%02X", c.A)
	}
}
