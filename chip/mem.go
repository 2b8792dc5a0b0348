package chip

import (
	"hack/signal"
)

// The sequential chips own their state internally and expose a pure Tick
// that advances it. Out is combinational: it reads whatever the chip
// latched at the previous tick edge.

// A Dff latches its input on every tick. Between ticks the output is
// stable.
type Dff struct {
	out signal.Word
}

func (d *Dff) Out() signal.Word {
	return d.out
}

func (d *Dff) Tick(in signal.Word) {
	d.out = in
}

// A Register is a load-gated Dff: on tick, it latches the input if load is
// asserted and re-latches its own output otherwise.
type Register struct {
	dff Dff
}

func (r *Register) Out() signal.Word {
	return r.dff.Out()
}

func (r *Register) Tick(load bool, in signal.Word) {
	r.dff.Tick(Mux16(r.Out(), in, load))
}

// The RAM hierarchy fans out eight ways at each level (except the two
// topmost, which split in half). Addresses are top-bit-first: address[0] is
// the most significant select bit, matching the assembled instruction
// layout.

type Ram8 struct {
	registers [8]Register
	address   int
}

func (r *Ram8) Out() signal.Word {
	return r.registers[r.address].Out()
}

func (r *Ram8) Tick(address [3]bool, load bool, in signal.Word) {
	r.address = decode3(address[0], address[1], address[2])
	r.registers[r.address].Tick(load, in)
}

type Ram64 struct {
	rams    [8]Ram8
	address int
}

func (r *Ram64) Out() signal.Word {
	return r.rams[r.address].Out()
}

func (r *Ram64) Tick(address [6]bool, load bool, in signal.Word) {
	r.address = decode3(address[0], address[1], address[2])
	r.rams[r.address].Tick([3]bool{address[3], address[4], address[5]}, load, in)
}

type Ram512 struct {
	rams    [8]Ram64
	address int
}

func (r *Ram512) Out() signal.Word {
	return r.rams[r.address].Out()
}

func (r *Ram512) Tick(address [9]bool, load bool, in signal.Word) {
	r.address = decode3(address[0], address[1], address[2])
	var rest [6]bool
	copy(rest[:], address[3:])
	r.rams[r.address].Tick(rest, load, in)
}

type Ram4K struct {
	rams    [8]Ram512
	address int
}

func (r *Ram4K) Out() signal.Word {
	return r.rams[r.address].Out()
}

func (r *Ram4K) Tick(address [12]bool, load bool, in signal.Word) {
	r.address = decode3(address[0], address[1], address[2])
	var rest [9]bool
	copy(rest[:], address[3:])
	r.rams[r.address].Tick(rest, load, in)
}

type Ram8K struct {
	rams    [2]Ram4K
	address int
}

func (r *Ram8K) Out() signal.Word {
	return r.rams[r.address].Out()
}

func (r *Ram8K) Tick(address [13]bool, load bool, in signal.Word) {
	r.address = decode1(address[0])
	var rest [12]bool
	copy(rest[:], address[1:])
	r.rams[r.address].Tick(rest, load, in)
}

type Ram16K struct {
	rams    [2]Ram8K
	address int
}

func (r *Ram16K) Out() signal.Word {
	return r.rams[r.address].Out()
}

func (r *Ram16K) Tick(address [14]bool, load bool, in signal.Word) {
	r.address = decode1(address[0])
	var rest [13]bool
	copy(rest[:], address[1:])
	r.rams[r.address].Tick(rest, load, in)
}

func decode3(b2, b1, b0 bool) int {
	n := 0
	if b2 {
		n |= 4
	}
	if b1 {
		n |= 2
	}
	if b0 {
		n |= 1
	}
	return n
}

func decode1(b bool) int {
	if b {
		return 1
	}
	return 0
}

// A Counter is the program counter. Priority on each tick: reset beats
// load beats inc beats hold. The initial value is zero.
type Counter struct {
	register Register
}

func (c *Counter) Out() signal.Word {
	return c.register.Out()
}

func (c *Counter) Tick(reset, load, inc bool, in signal.Word) {
	c.register.Tick(
		Or(Or(reset, load), inc),
		Mux16(
			Mux16(
				Mux16(c.Out(), Inc(c.Out()), inc),
				in,
				load,
			),
			signal.Zero,
			reset,
		),
	)
}
