// Package asm implements the Hack assembler: a line-oriented lexer, a
// two-pass symbol resolver and the 16-bit instruction codec. The same
// codec decodes words back to mnemonics for the debugger.
package asm

// A Comp names one of the 28 computations the ALU can perform. Each
// projects onto seven control bits: the a-bit selecting A (0) or M (1) as
// the second operand, then c1..c6 driving the ALU's zero/negate/add lines.
type Comp uint8

const (
	CompZero Comp = iota
	CompOne
	CompMinusOne
	CompD
	CompA
	CompM
	CompNotD
	CompNotA
	CompNotM
	CompNegD
	CompNegA
	CompNegM
	CompDPlusOne
	CompAPlusOne
	CompMPlusOne
	CompDMinusOne
	CompAMinusOne
	CompMMinusOne
	CompDPlusA
	CompDPlusM
	CompDMinusA
	CompDMinusM
	CompAMinusD
	CompMMinusD
	CompDAndA
	CompDAndM
	CompDOrA
	CompDOrM
)

// compBits is the projection of each computation onto (a, c1..c6).
var compBits = map[Comp]uint16{
	CompZero:      0b0101010,
	CompOne:       0b0111111,
	CompMinusOne:  0b0111010,
	CompD:         0b0001100,
	CompA:         0b0110000,
	CompM:         0b1110000,
	CompNotD:      0b0001101,
	CompNotA:      0b0110001,
	CompNotM:      0b1110001,
	CompNegD:      0b0001111,
	CompNegA:      0b0110011,
	CompNegM:      0b1110011,
	CompDPlusOne:  0b0011111,
	CompAPlusOne:  0b0110111,
	CompMPlusOne:  0b1110111,
	CompDMinusOne: 0b0001110,
	CompAMinusOne: 0b0110010,
	CompMMinusOne: 0b1110010,
	CompDPlusA:    0b0000010,
	CompDPlusM:    0b1000010,
	CompDMinusA:   0b0010011,
	CompDMinusM:   0b1010011,
	CompAMinusD:   0b0000111,
	CompMMinusD:   0b1000111,
	CompDAndA:     0b0000000,
	CompDAndM:     0b1000000,
	CompDOrA:      0b0010101,
	CompDOrM:      0b1010101,
}

var compText = map[Comp]string{
	CompZero:      "0",
	CompOne:       "1",
	CompMinusOne:  "-1",
	CompD:         "D",
	CompA:         "A",
	CompM:         "M",
	CompNotD:      "!D",
	CompNotA:      "!A",
	CompNotM:      "!M",
	CompNegD:      "-D",
	CompNegA:      "-A",
	CompNegM:      "-M",
	CompDPlusOne:  "D+1",
	CompAPlusOne:  "A+1",
	CompMPlusOne:  "M+1",
	CompDMinusOne: "D-1",
	CompAMinusOne: "A-1",
	CompMMinusOne: "M-1",
	CompDPlusA:    "D+A",
	CompDPlusM:    "D+M",
	CompDMinusA:   "D-A",
	CompDMinusM:   "D-M",
	CompAMinusD:   "A-D",
	CompMMinusD:   "M-D",
	CompDAndA:     "D&A",
	CompDAndM:     "D&M",
	CompDOrA:      "D|A",
	CompDOrM:      "D|M",
}

// compFromText accepts the canonical spellings plus the commutative
// rewrites of + & and |.
var compFromText = func() map[string]Comp {
	m := make(map[string]Comp, len(compText)+7)
	for comp, text := range compText {
		m[text] = comp
	}
	m["1+D"] = CompDPlusOne
	m["A+D"] = CompDPlusA
	m["M+D"] = CompDPlusM
	m["A&D"] = CompDAndA
	m["M&D"] = CompDAndM
	m["A|D"] = CompDOrA
	m["M|D"] = CompDOrM
	return m
}()

var compFromBits = func() map[uint16]Comp {
	m := make(map[uint16]Comp, len(compBits))
	for comp, bits := range compBits {
		m[bits] = comp
	}
	return m
}()

func (c Comp) String() string {
	return compText[c]
}

// A Dest is a non-empty subset of {A, D, M}, encoded directly as the three
// destination bits (d_A, d_D, d_M). The zero value means "no destination".
type Dest uint8

const (
	DestM   Dest = 0b001
	DestD   Dest = 0b010
	DestMD  Dest = 0b011
	DestA   Dest = 0b100
	DestAM  Dest = 0b101
	DestAD  Dest = 0b110
	DestAMD Dest = 0b111
)

var destText = [8]string{"", "M", "D", "MD", "A", "AM", "AD", "AMD"}

func (d Dest) String() string {
	return destText[d&0b111]
}

// A Jump is the three jump bits (j1, j2, j3): jump if negative, if zero,
// if positive. The zero value means "never".
type Jump uint8

const (
	JumpJGT Jump = 0b001
	JumpJEQ Jump = 0b010
	JumpJGE Jump = 0b011
	JumpJLT Jump = 0b100
	JumpJNE Jump = 0b101
	JumpJLE Jump = 0b110
	JumpJMP Jump = 0b111
)

var jumpText = [8]string{"", "JGT", "JEQ", "JGE", "JLT", "JNE", "JLE", "JMP"}

var jumpFromText = map[string]Jump{
	"JGT": JumpJGT,
	"JEQ": JumpJEQ,
	"JGE": JumpJGE,
	"JLT": JumpJLT,
	"JNE": JumpJNE,
	"JLE": JumpJLE,
	"JMP": JumpJMP,
}

func (j Jump) String() string {
	return jumpText[j&0b111]
}
