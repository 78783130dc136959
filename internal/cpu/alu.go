package cpu

// The ALU is a set of pure functions: each takes its operand value(s) and
// the current flags, and returns the result and the new flags. Nothing in
// here touches registers or memory. 8-bit arithmetic wraps modulo 256 and
// 16-bit arithmetic wraps modulo 65536; overflow is only ever a flag
// signal.

// inc increments the value by one. For 8-bit values the zero, subtract and
// half-carry flags are updated and carry is left alone; 16-bit increments
// affect no flags at all.
func inc(v Value, f Flags) (Value, Flags) {
	if v.Wide() {
		return From16(v.Uint16() + 1), f
	}
	value := v.Uint8()
	result := value + 1
	f.Zero = result == 0
	f.Subtract = false
	f.HalfCarry = value&0x0F+1 > 0x0F
	return From8(result), f
}

// dec decrements the value by one. Flag behaviour mirrors inc, with the
// half-carry flag signalling a borrow out of the low nibble.
func dec(v Value, f Flags) (Value, Flags) {
	if v.Wide() {
		return From16(v.Uint16() - 1), f
	}
	value := v.Uint8()
	result := value - 1
	f.Zero = result == 0
	f.Subtract = true
	f.HalfCarry = value&0x0F == 0
	return From8(result), f
}

// add adds b to a. Both values must be the same width. The 16-bit form is
// the ADD HL, rr family: it reports half-carry out of bit 11 and carry out
// of bit 15 but leaves the zero flag untouched.
func add(a, b Value, f Flags) (Value, Flags) {
	if a.Wide() {
		v1, v2 := a.Uint16(), b.Uint16()
		result := v1 + v2
		f.Subtract = false
		f.HalfCarry = v1&0x0FFF+v2&0x0FFF > 0x0FFF
		f.Carry = uint32(v1)+uint32(v2) > 0xFFFF
		return From16(result), f
	}
	v1, v2 := a.Uint8(), b.Uint8()
	result := v1 + v2
	f.Zero = result == 0
	f.Subtract = false
	f.HalfCarry = v1&0x0F+v2&0x0F > 0x0F
	f.Carry = uint16(v1)+uint16(v2) > 0xFF
	return From8(result), f
}

// adc adds b and the carry flag to a. 8-bit only.
func adc(a, b Value, f Flags) (Value, Flags) {
	v1, v2 := a.Uint8(), b.Uint8()
	var carry uint8
	if f.Carry {
		carry = 1
	}
	result := v1 + v2 + carry
	f.Zero = result == 0
	f.Subtract = false
	f.HalfCarry = v1&0x0F+v2&0x0F+carry > 0x0F
	f.Carry = uint16(v1)+uint16(v2)+uint16(carry) > 0xFF
	return From8(result), f
}

// sub subtracts b from a. Both values must be the same width.
func sub(a, b Value, f Flags) (Value, Flags) {
	if a.Wide() {
		v1, v2 := a.Uint16(), b.Uint16()
		result := v1 - v2
		f.Subtract = true
		f.HalfCarry = v1&0x0FFF < v2&0x0FFF
		f.Carry = v1 < v2
		return From16(result), f
	}
	v1, v2 := a.Uint8(), b.Uint8()
	result := v1 - v2
	f.Zero = result == 0
	f.Subtract = true
	f.HalfCarry = v1&0x0F < v2&0x0F
	f.Carry = v1 < v2
	return From8(result), f
}

// sbc subtracts b and the carry flag from a. 8-bit only.
func sbc(a, b Value, f Flags) (Value, Flags) {
	v1, v2 := a.Uint8(), b.Uint8()
	var carry uint8
	if f.Carry {
		carry = 1
	}
	result := v1 - v2 - carry
	f.Zero = result == 0
	f.Subtract = true
	f.HalfCarry = v1&0x0F < v2&0x0F+carry
	f.Carry = uint16(v1) < uint16(v2)+uint16(carry)
	return From8(result), f
}

// and computes a & b. The half-carry flag is always set.
func and(a, b Value, f Flags) (Value, Flags) {
	result := a.Uint8() & b.Uint8()
	return From8(result), Flags{Zero: result == 0, HalfCarry: true}
}

// or computes a | b.
func or(a, b Value, f Flags) (Value, Flags) {
	result := a.Uint8() | b.Uint8()
	return From8(result), Flags{Zero: result == 0}
}

// xor computes a ^ b.
func xor(a, b Value, f Flags) (Value, Flags) {
	result := a.Uint8() ^ b.Uint8()
	return From8(result), Flags{Zero: result == 0}
}

// cp compares a against b: a subtraction that only produces flags.
func cp(a, b Value, f Flags) Flags {
	_, f = sub(a, b, f)
	return f
}

// rlc rotates the value left by one bit; bit 7 moves to bit 0 and into the
// carry flag.
func rlc(value uint8, f Flags) (uint8, Flags) {
	carry := value&0x80 != 0
	result := value<<1 | value>>7
	return result, Flags{Carry: carry}
}

// rrc rotates the value right by one bit; bit 0 moves to bit 7 and into the
// carry flag.
func rrc(value uint8, f Flags) (uint8, Flags) {
	carry := value&0x01 != 0
	result := value>>1 | value<<7
	return result, Flags{Carry: carry}
}

// rl rotates the value left through the carry flag: the old carry shifts
// into bit 0 and bit 7 becomes the new carry.
func rl(value uint8, f Flags) (uint8, Flags) {
	carry := value&0x80 != 0
	result := value << 1
	if f.Carry {
		result |= 0x01
	}
	return result, Flags{Carry: carry}
}

// rr rotates the value right through the carry flag: the old carry shifts
// into bit 7 and bit 0 becomes the new carry.
func rr(value uint8, f Flags) (uint8, Flags) {
	carry := value&0x01 != 0
	result := value >> 1
	if f.Carry {
		result |= 0x80
	}
	return result, Flags{Carry: carry}
}

// daa decimal-adjusts the accumulator after a BCD addition or subtraction,
// using the subtract, half-carry and carry flags to pick the correction.
func daa(a uint8, f Flags) (uint8, Flags) {
	if !f.Subtract {
		if f.Carry || a > 0x99 {
			a += 0x60
			f.Carry = true
		}
		if f.HalfCarry || a&0x0F > 0x09 {
			a += 0x06
			f.HalfCarry = false
		}
	} else if f.Carry && f.HalfCarry {
		a += 0x9A
		f.HalfCarry = false
	} else if f.Carry {
		a += 0xA0
	} else if f.HalfCarry {
		a += 0xFA
		f.HalfCarry = false
	}
	f.Zero = a == 0
	return a, f
}

// addSigned adds an 8-bit signed offset to a 16-bit value, reporting the
// carries of the unsigned low-byte addition. Used by ADD SP, r8 and
// LDHL SP, r8, which clear the zero and subtract flags.
func addSigned(value uint16, offset uint8) (uint16, Flags) {
	result := uint16(int32(value) + int32(int8(offset)))
	tmp := value ^ uint16(int8(offset)) ^ result
	return result, Flags{
		HalfCarry: tmp&0x10 == 0x10,
		Carry:     tmp&0x100 == 0x100,
	}
}
