package cpu

import "github.com/gabalah/gabalah/pkg/bits"

type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// Flags is the unpacked view of the high nibble of the F register.
type Flags struct {
	Zero      bool
	Subtract  bool
	HalfCarry bool
	Carry     bool
}

// Flags unpacks the F register into its four named flags.
func (r *Registers) Flags() Flags {
	return Flags{
		Zero:      bits.Test(r.F, FlagZero),
		Subtract:  bits.Test(r.F, FlagSubtract),
		HalfCarry: bits.Test(r.F, FlagHalfCarry),
		Carry:     bits.Test(r.F, FlagCarry),
	}
}

// SetFlags repacks the four flags into F. The low nibble of F is always
// zeroed.
func (r *Registers) SetFlags(f Flags) {
	r.F = 0
	if f.Zero {
		r.F = bits.Set(r.F, FlagZero)
	}
	if f.Subtract {
		r.F = bits.Set(r.F, FlagSubtract)
	}
	if f.HalfCarry {
		r.F = bits.Set(r.F, FlagHalfCarry)
	}
	if f.Carry {
		r.F = bits.Set(r.F, FlagCarry)
	}
}

// isFlagSet returns true if the given flag is set in F.
func (r *Registers) isFlagSet(flag Flag) bool {
	return bits.Test(r.F, flag)
}
