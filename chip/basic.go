// Package chip is the gate-level library of the Hack machine: combinational
// gates, the arithmetic chips and ALU, and the sequential chips up to the
// 16K RAM and the program counter. Everything is composed from the Nand
// primitive in signal; the 16-bit variants are the elementwise lift of the
// 1-bit gates.
//
// https://www.nand2tetris.org/project01
package chip

import (
	"hack/signal"
)

func Nand(a, b bool) bool {
	return signal.Nand(a, b)
}

func Not(in bool) bool {
	return Nand(in, in)
}

func And(a, b bool) bool {
	return Not(Nand(a, b))
}

func Or(a, b bool) bool {
	return Nand(Not(a), Not(b))
}

func Xor(a, b bool) bool {
	tmp := Nand(a, b)
	return Nand(Nand(a, tmp), Nand(tmp, b))
}

// Mux selects a if sel is false, b otherwise.
func Mux(a, b, sel bool) bool {
	// or(and(not(sel), a), and(sel, b)), with the inner gates fused
	return Nand(Nand(Not(sel), a), Nand(sel, b))
}

// Mux4Way selects between a, b, c, d by the two select bits, s1 being the
// higher-order one.
func Mux4Way(a, b, c, d, s1, s0 bool) bool {
	return Mux(Mux(a, b, s0), Mux(c, d, s0), s1)
}

func Mux8Way(a, b, c, d, e, f, g, h, s2, s1, s0 bool) bool {
	return Mux(Mux4Way(a, b, c, d, s1, s0), Mux4Way(e, f, g, h, s1, s0), s2)
}

// DMux routes in to the first output if sel is false, to the second
// otherwise.
func DMux(in, sel bool) (bool, bool) {
	return And(in, Not(sel)), And(in, sel)
}

func DMux4Way(in, s1, s0 bool) (bool, bool, bool, bool) {
	return And(in, And(Not(s1), Not(s0))),
		And(in, And(Not(s1), s0)),
		And(in, And(s1, Not(s0))),
		And(in, And(s1, s0))
}

func DMux8Way(in, s2, s1, s0 bool) (bool, bool, bool, bool, bool, bool, bool, bool) {
	return And(in, And(Not(s2), And(Not(s1), Not(s0)))),
		And(in, And(Not(s2), And(Not(s1), s0))),
		And(in, And(Not(s2), And(s1, Not(s0)))),
		And(in, And(Not(s2), And(s1, s0))),
		And(in, And(s2, And(Not(s1), Not(s0)))),
		And(in, And(s2, And(Not(s1), s0))),
		And(in, And(s2, And(s1, Not(s0)))),
		And(in, And(s2, And(s1, s0)))
}

// The 16-bit gates below mirror the 1-bit ones word-wide. Select lines stay
// 1-bit; signal.Broadcast turns them into word-wide masks.

func Nand16(a, b signal.Word) signal.Word {
	return a.Nand(b)
}

func Not16(in signal.Word) signal.Word {
	return Nand16(in, in)
}

func And16(a, b signal.Word) signal.Word {
	return Not16(Nand16(a, b))
}

func Or16(a, b signal.Word) signal.Word {
	return Nand16(Not16(a), Not16(b))
}

func Xor16(a, b signal.Word) signal.Word {
	tmp := Nand16(a, b)
	return Nand16(Nand16(a, tmp), Nand16(tmp, b))
}

func Mux16(a, b signal.Word, sel bool) signal.Word {
	return Nand16(
		Nand16(signal.Broadcast(Not(sel)), a),
		Nand16(signal.Broadcast(sel), b),
	)
}

func Mux4Way16(a, b, c, d signal.Word, s1, s0 bool) signal.Word {
	return Mux16(Mux16(a, b, s0), Mux16(c, d, s0), s1)
}

func Mux8Way16(a, b, c, d, e, f, g, h signal.Word, s2, s1, s0 bool) signal.Word {
	return Mux16(Mux4Way16(a, b, c, d, s1, s0), Mux4Way16(e, f, g, h, s1, s0), s2)
}

func DMux16(in signal.Word, sel bool) (signal.Word, signal.Word) {
	return And16(in, signal.Broadcast(Not(sel))), And16(in, signal.Broadcast(sel))
}

func DMux4Way16(in signal.Word, s1, s0 bool) (signal.Word, signal.Word, signal.Word, signal.Word) {
	return And16(in, signal.Broadcast(And(Not(s1), Not(s0)))),
		And16(in, signal.Broadcast(And(Not(s1), s0))),
		And16(in, signal.Broadcast(And(s1, Not(s0)))),
		And16(in, signal.Broadcast(And(s1, s0)))
}

func DMux8Way16(in signal.Word, s2, s1, s0 bool) (a, b, c, d, e, f, g, h signal.Word) {
	lo, hi := DMux16(in, s2)
	a, b, c, d = DMux4Way16(lo, s1, s0)
	e, f, g, h = DMux4Way16(hi, s1, s0)
	return
}
