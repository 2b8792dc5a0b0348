package asm

import "fmt"

// Every parse error is fatal and carries the offending text; the parser
// stops at the first one.

// InvalidSymbolError reports a symbol with illegal characters or a leading
// digit.
type InvalidSymbolError struct {
	Name string
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("invalid symbol %q", e.Name)
}

// UnknownCompError reports a computation expression that is not in the
// table.
type UnknownCompError struct {
	Text string
}

func (e *UnknownCompError) Error() string {
	return fmt.Sprintf("unknown computation %q", e.Text)
}

// InvalidSyntaxError reports a line that matched no instruction form.
type InvalidSyntaxError struct {
	Line string
}

func (e *InvalidSyntaxError) Error() string {
	return fmt.Sprintf("syntax error: %q", e.Line)
}

// TooLargeNumberError reports a decimal immediate beyond 32767.
type TooLargeNumberError struct {
	Text string
}

func (e *TooLargeNumberError) Error() string {
	return fmt.Sprintf("number %s does not fit in an A-instruction", e.Text)
}

// DuplicateLabelError reports a label defined more than once; the first
// definition wins and redefinition is refused rather than shadowed.
type DuplicateLabelError struct {
	Name string
}

func (e *DuplicateLabelError) Error() string {
	return fmt.Sprintf("label %q is already defined", e.Name)
}
