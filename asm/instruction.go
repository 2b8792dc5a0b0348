package asm

import (
	"fmt"
	"strconv"

	"hack/mask"
	"hack/signal"
)

// An Instruction is a fully resolved Hack instruction, ready to encode.
type Instruction interface {
	Encode() signal.Word
	String() string
}

// An AInstruction loads a 15-bit constant into the A register. Value must
// not exceed 0x7fff; the parser guarantees it.
type AInstruction struct {
	Value uint16
}

func (i AInstruction) Encode() signal.Word {
	// the top bit is the opcode, leaving 15 payload bits
	return signal.Word(mask.Last(i.Value, mask.I15))
}

func (i AInstruction) String() string {
	return "@" + strconv.FormatUint(uint64(i.Value), 10)
}

// A CInstruction computes, optionally stores and optionally jumps.
type CInstruction struct {
	Comp Comp
	Dest Dest // zero when there is no destination
	Jump Jump // zero when there is no jump
}

func (i CInstruction) Encode() signal.Word {
	w := uint16(0b111) << 13
	w |= compBits[i.Comp] << 6
	w |= uint16(i.Dest) << 3
	w |= uint16(i.Jump)
	return signal.Word(w)
}

func (i CInstruction) String() string {
	s := ""
	if i.Dest != 0 {
		s += i.Dest.String() + "="
	}
	s += i.Comp.String()
	if i.Jump != 0 {
		s += ";" + i.Jump.String()
	}
	return s
}

// Decode is the inverse of Encode. It reports an error for a C-instruction
// whose ALU control bits name no computation.
func Decode(w signal.Word) (Instruction, error) {
	raw := w.Uint16()
	if !mask.IsSet(raw, mask.I1) {
		return AInstruction{Value: mask.Last(raw, mask.I15)}, nil
	}
	comp, ok := compFromBits[mask.Range(raw, mask.I4, mask.I10)]
	if !ok {
		return nil, &UnknownCompError{Text: fmt.Sprintf("%07b", mask.Range(raw, mask.I4, mask.I10))}
	}
	return CInstruction{
		Comp: comp,
		Dest: Dest(mask.Range(raw, mask.I11, mask.I13)),
		Jump: Jump(mask.Range(raw, mask.I14, mask.I16)),
	}, nil
}

// A Symbolic instruction is the parser's intermediate form: it may still
// reference a named address.
type Symbolic interface {
	isSymbolic()
}

// AImmediate is an A-instruction with a literal value.
type AImmediate struct {
	Value uint16
}

// ASymbol is an A-instruction referencing a label or variable.
type ASymbol struct {
	Name string
}

func (AImmediate) isSymbolic()   {}
func (ASymbol) isSymbolic()      {}
func (CInstruction) isSymbolic() {}
