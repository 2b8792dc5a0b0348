package asm

import (
	"regexp"
	"strconv"
	"strings"
)

// Symbols are ASCII letters, digits, underscore, dot, dollar and colon,
// and must not start with a digit.
var symbolPattern = regexp.MustCompile(`^[A-Za-z_.$:][A-Za-z0-9_.$:]*$`)

// Parse is the assembler's first pass. Each line is trimmed, stripped of
// its // comment and classified as an A-instruction, a label definition or
// a C-instruction. Labels bind to the index of the next emitted
// instruction; A-instructions naming a still-unknown symbol provisionally
// allocate a variable cell. The first error aborts the whole batch.
func Parse(lines []string, table *SymbolTable) ([]Symbolic, error) {
	var out []Symbolic
	for _, raw := range lines {
		line := raw
		if i := strings.Index(line, "//"); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "@"):
			inst, err := parseA(line[1:], table)
			if err != nil {
				return nil, err
			}
			out = append(out, inst)

		case strings.HasPrefix(line, "(") && strings.HasSuffix(line, ")"):
			name := strings.TrimSpace(line[1 : len(line)-1])
			if !symbolPattern.MatchString(name) {
				return nil, &InvalidSymbolError{Name: name}
			}
			if err := table.InsertLabel(name, uint16(len(out))); err != nil {
				return nil, err
			}

		default:
			inst, err := parseC(line)
			if err != nil {
				return nil, err
			}
			out = append(out, inst)
		}
	}
	return out, nil
}

func parseA(text string, table *SymbolTable) (Symbolic, error) {
	if text == "" {
		return nil, &InvalidSyntaxError{Line: "@"}
	}
	if isDigits(text) {
		value, err := strconv.ParseUint(text, 10, 16)
		if err != nil || value > 0x7fff {
			return nil, &TooLargeNumberError{Text: text}
		}
		return AImmediate{Value: uint16(value)}, nil
	}
	if !symbolPattern.MatchString(text) {
		return nil, &InvalidSymbolError{Name: text}
	}
	table.InsertVariable(text)
	return ASymbol{Name: text}, nil
}

func isDigits(text string) bool {
	for _, r := range text {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func parseC(line string) (Symbolic, error) {
	// dest=comp;jump with both parts optional; internal blanks are noise
	text := strings.NewReplacer(" ", "", "\t", "").Replace(line)

	var inst CInstruction
	if i := strings.Index(text, "="); i >= 0 {
		dest, ok := parseDest(text[:i])
		if !ok {
			return nil, &InvalidSyntaxError{Line: line}
		}
		inst.Dest = dest
		text = text[i+1:]
	}
	if i := strings.Index(text, ";"); i >= 0 {
		jump, ok := jumpFromText[text[i+1:]]
		if !ok {
			return nil, &InvalidSyntaxError{Line: line}
		}
		inst.Jump = jump
		text = text[:i]
	}
	if text == "" {
		return nil, &InvalidSyntaxError{Line: line}
	}
	comp, ok := compFromText[text]
	if !ok {
		return nil, &UnknownCompError{Text: text}
	}
	inst.Comp = comp
	return inst, nil
}

// parseDest accepts any permutation of a non-empty subset of {A, D, M}.
func parseDest(text string) (Dest, bool) {
	if text == "" {
		return 0, false
	}
	var dest Dest
	for _, r := range text {
		var bit Dest
		switch r {
		case 'A':
			bit = DestA
		case 'D':
			bit = DestD
		case 'M':
			bit = DestM
		default:
			return 0, false
		}
		if dest&bit != 0 {
			return 0, false
		}
		dest |= bit
	}
	return dest, true
}
