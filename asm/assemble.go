package asm

import (
	"fmt"
	"strings"

	"hack/signal"
)

// Assemble translates Hack assembly source into .hack binary text: one
// line of sixteen '0'/'1' characters per instruction, newline-terminated.
// Any parse error aborts the batch; no partial output is produced.
func Assemble(src string) (string, error) {
	table := NewSymbolTable()
	symbolic, err := Parse(strings.Split(src, "\n"), table)
	if err != nil {
		return "", err
	}
	instructions, err := table.ResolveAll(symbolic)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, inst := range instructions {
		b.WriteString(FormatWord(inst.Encode()))
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// FormatWord renders a word as its sixteen-character binary line.
func FormatWord(w signal.Word) string {
	return fmt.Sprintf("%016b", w.Uint16())
}
