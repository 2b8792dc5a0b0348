// Package mem implements the Hack memory map: 16K of RAM, the 8K screen
// buffer and the keyboard register behind a single 15-bit address space.
//
//	0x0000 - 0x3FFF   RAM
//	0x4000 - 0x5FFF   screen
//	0x6000            keyboard
//
// Addresses beyond 0x6000 are unmapped; touching one is a hardware fault
// and panics.
package mem

import (
	"fmt"

	"hack/chip"
	"hack/signal"
)

// Memory multiplexes the RAM, the screen and the keyboard. Screen and
// keyboard are adapter interfaces so a front-end can swap in real ones; the
// dummies behave like plain memory.
type Memory struct {
	address  [15]bool
	ram      chip.Ram16K
	screen   Screen
	keyboard Keyboard
}

func New(screen Screen, keyboard Keyboard) *Memory {
	return &Memory{screen: screen, keyboard: keyboard}
}

// Out is the combinational read at the address latched by the last Tick:
// RAM below 0x4000, screen below 0x6000, keyboard at 0x6000.
func (m *Memory) Out() signal.Word {
	return chip.Mux16(
		m.ram.Out(),
		chip.Mux16(m.screen.Out(), m.keyboard.Out(), m.address[1]),
		m.address[0],
	)
}

// Tick latches the address and routes the load pulse to the selected
// device. The keyboard is driven by its adapter, never by the CPU.
func (m *Memory) Tick(address [15]bool, load bool, in signal.Word) {
	rest := false
	for _, bit := range address[2:] {
		rest = chip.Or(rest, bit)
	}
	if chip.And(chip.And(address[0], address[1]), rest) {
		panic(fmt.Sprintf("mem: access to unmapped address %#04x", addressToInt(address)))
	}

	m.address = address

	var ramAddr [14]bool
	copy(ramAddr[:], address[1:])
	m.ram.Tick(ramAddr, chip.And(chip.Not(address[0]), load), in)

	var screenAddr [13]bool
	copy(screenAddr[:], address[2:])
	m.screen.Tick(screenAddr, chip.And(chip.And(address[0], chip.Not(address[1])), load), in)
}

// SetKeyState forwards a host key event to the keyboard adapter.
func (m *Memory) SetKeyState(ev KeyEvent) {
	m.keyboard.SetState(ev)
}

// Screen exposes the screen adapter for the front-end to read.
func (m *Memory) Screen() Screen {
	return m.screen
}

func addressToInt(address [15]bool) int {
	n := 0
	for _, bit := range address {
		n <<= 1
		if bit {
			n |= 1
		}
	}
	return n
}
