// Package cpu implements the Hack CPU: a single-cycle fetch-decode-execute
// machine with two data registers and a program counter, built from the
// chip library.
package cpu

import (
	"hack/chip"
	"hack/signal"
)

// The Cpu has no memory of its own. Each Tick it is handed the word
// currently addressed in memory (inM) and the current instruction word from
// ROM; it latches the memory address, the write flag and the ALU result for
// the computer to act on.
//
// Instruction layout, bit 0 being the most significant bit of the word:
//
//	bit 0       opcode (0 = A-instruction, 1 = C-instruction)
//	bits 1..2   unused
//	bits 3..9   ALU control (a, c1..c6)
//	bits 10..12 dest (A, D, M)
//	bits 13..15 jump (lt, eq, gt)
type Cpu struct {
	address [15]bool
	writeM  bool
	result  signal.Word

	a  chip.Register
	d  chip.Register
	pc chip.Counter
}

// Out returns the signals latched by the last Tick: the 15-bit memory
// address, the memory write flag, the ALU result to be written, and the
// program counter.
func (c *Cpu) Out() ([15]bool, bool, signal.Word, signal.Word) {
	return c.address, c.writeM, c.result, c.pc.Out()
}

// Tick executes one instruction. reset forces the program counter to zero
// regardless of everything else.
func (c *Cpu) Tick(reset bool, inM, instruction signal.Word) {
	bits := instruction.Split()

	// an A-instruction always writes A; a C-instruction only on dest A
	writeToA := chip.Or(chip.Not(bits[0]), bits[10])
	// every other control line is dead unless this is a C-instruction
	useM := chip.And(bits[0], bits[3])
	zx := chip.And(bits[0], bits[4])
	nx := chip.And(bits[0], bits[5])
	zy := chip.And(bits[0], bits[6])
	ny := chip.And(bits[0], bits[7])
	f := chip.And(bits[0], bits[8])
	no := chip.And(bits[0], bits[9])
	writeToD := chip.And(bits[0], bits[11])
	c.writeM = chip.And(bits[0], bits[12])

	result, zr, ng := chip.Alu(
		c.d.Out(),
		chip.Mux16(c.a.Out(), inM, useM),
		zx, nx, zy, ny, f, no,
	)
	c.result = result

	// the jump target is the value A held while this instruction ran,
	// so the program counter must tick before A is written back
	jump := chip.Or(
		chip.And(bits[0], chip.And(bits[13], ng)),
		chip.Or(
			chip.And(bits[0], chip.And(bits[14], zr)),
			chip.And(bits[0], chip.And(bits[15], chip.And(chip.Not(zr), chip.Not(ng)))),
		),
	)
	c.pc.Tick(reset, jump, true, c.a.Out())

	aData := bits
	aData[0] = false // A-instructions carry only 15 payload bits
	c.a.Tick(writeToA, chip.Mux16(signal.FromBits(aData), c.result, bits[0]))
	c.d.Tick(writeToD, c.result)

	newA := c.a.Out().Split()
	copy(c.address[:], newA[1:])
}

// A reads the address register.
func (c *Cpu) A() signal.Word {
	return c.a.Out()
}

// D reads the data register.
func (c *Cpu) D() signal.Word {
	return c.d.Out()
}

// PC reads the program counter.
func (c *Cpu) PC() signal.Word {
	return c.pc.Out()
}
