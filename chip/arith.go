package chip

import (
	"hack/signal"
)

// HalfAdder adds two bits, returning (carry, sum).
func HalfAdder(a, b bool) (bool, bool) {
	// (and(a, b), xor(a, b)), with the shared nand fused
	tmp := Nand(a, b)
	return Not(tmp), Nand(Nand(a, tmp), Nand(tmp, b))
}

// FullAdder adds two bits and a carried bit, returning (carry, sum).
func FullAdder(a, b, c bool) (bool, bool) {
	nab := Nand(a, b)
	xorAB := Nand(Nand(a, nab), Nand(nab, b))
	tmp := Nand(xorAB, c)
	return Nand(nab, tmp), Nand(Nand(xorAB, tmp), Nand(tmp, c))
}

// Add is the 16-bit ripple-carry adder. Overflow wraps, which is exactly
// two's-complement addition mod 2^16.
func Add(a, b signal.Word) signal.Word {
	x := a.Split()
	y := b.Split()
	var out [16]bool
	carry, sum := HalfAdder(x[15], y[15])
	out[15] = sum
	for i := 1; i < 16; i++ {
		carry, sum = FullAdder(x[15-i], y[15-i], carry)
		out[15-i] = sum
	}
	return signal.FromBits(out)
}

// Inc adds one.
func Inc(in signal.Word) signal.Word {
	return Add(in, signal.Word(1))
}

// Alu is the Hack ALU. The six control bits are applied in order: zero x,
// negate x, zero y, negate y, add-or-and, negate output. It returns the
// result together with the zr (result is zero) and ng (sign bit set) flags.
func Alu(x, y signal.Word, zx, nx, zy, ny, f, no bool) (signal.Word, bool, bool) {
	x = And16(signal.Broadcast(Not(zx)), x)
	x = Mux16(x, Not16(x), nx)
	y = And16(signal.Broadcast(Not(zy)), y)
	y = Mux16(y, Not16(y), ny)
	out := Mux16(And16(x, y), Add(x, y), f)
	out = Mux16(out, Not16(out), no)

	bits := out.Split()
	anySet := false
	for _, b := range bits {
		anySet = Or(anySet, b)
	}
	return out, Not(anySet), bits[0]
}
