package asm

// A SymbolTable maps names to addresses. It starts with the predefined
// Hack symbols and grows by label definitions and variable allocations;
// variables occupy consecutive cells from 16 up.
type SymbolTable struct {
	table       map[string]uint16
	defined     map[string]struct{} // predefined names and bound labels
	nextAddress uint16
}

func NewSymbolTable() *SymbolTable {
	table := map[string]uint16{
		"SP":     0,
		"LCL":    1,
		"ARG":    2,
		"THIS":   3,
		"THAT":   4,
		"SCREEN": 0x4000,
		"KBD":    0x6000,
	}
	for i := uint16(0); i <= 9; i++ {
		table["R"+string(rune('0'+i))] = i
	}
	table["R10"] = 10
	table["R11"] = 11
	table["R12"] = 12
	table["R13"] = 13
	table["R14"] = 14
	table["R15"] = 15
	defined := make(map[string]struct{}, len(table))
	for name := range table {
		defined[name] = struct{}{}
	}
	return &SymbolTable{
		table:       table,
		defined:     defined,
		nextAddress: 0x0010,
	}
}

// InsertVariable binds name to the next free variable cell. Names that are
// already bound, predefined ones included, are left untouched.
func (t *SymbolTable) InsertVariable(name string) {
	if _, ok := t.table[name]; ok {
		return
	}
	t.table[name] = t.nextAddress
	t.nextAddress++
}

// InsertLabel binds name to an instruction address. The first definition
// wins: a second definition of the same label (or of a predefined name) is
// an error, never a silent shadow. A provisional variable binding from a
// forward reference is overwritten.
func (t *SymbolTable) InsertLabel(name string, address uint16) error {
	if _, ok := t.defined[name]; ok {
		return &DuplicateLabelError{Name: name}
	}
	t.table[name] = address
	t.defined[name] = struct{}{}
	return nil
}

// Resolve looks a name up.
func (t *SymbolTable) Resolve(name string) (uint16, bool) {
	address, ok := t.table[name]
	return address, ok
}

// ResolveAll is the assembler's second pass: every symbolic reference is
// replaced by its address. The parser has already interned every name, so
// a miss here is a bug.
func (t *SymbolTable) ResolveAll(symbolic []Symbolic) ([]Instruction, error) {
	instructions := make([]Instruction, 0, len(symbolic))
	for _, s := range symbolic {
		switch s := s.(type) {
		case AImmediate:
			instructions = append(instructions, AInstruction{Value: s.Value})
		case ASymbol:
			address, ok := t.table[s.Name]
			if !ok {
				return nil, &InvalidSymbolError{Name: s.Name}
			}
			instructions = append(instructions, AInstruction{Value: address})
		case CInstruction:
			instructions = append(instructions, s)
		}
	}
	return instructions, nil
}
