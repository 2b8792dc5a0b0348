// Package computer wires the ROM, the CPU and the memory map into the
// complete Hack machine, advanced one clock cycle at a time.
package computer

import (
	"hack/cpu"
	"hack/mask"
	"hack/mem"
	"hack/signal"
)

// A Computer owns all machine state. A front-end drives it by calling
// Tick in a loop and reading the inspectors between calls; nothing here
// spawns goroutines or blocks.
type Computer struct {
	rom    *Rom
	cpu    cpu.Cpu
	memory *mem.Memory
}

// New builds a computer around the given screen and keyboard adapters;
// nil picks the dummy implementations.
func New(screen mem.Screen, keyboard mem.Keyboard) *Computer {
	if screen == nil {
		screen = &mem.DummyScreen{}
	}
	if keyboard == nil {
		keyboard = &mem.DummyKeyboard{}
	}
	return &Computer{
		rom:    NewRom(),
		memory: mem.New(screen, keyboard),
	}
}

// Tick advances one clock cycle. The memory write asserted by the
// previous cycle is performed first, so the CPU sees the value of M[A]
// that was latched at the previous tick edge, never the current one.
func (c *Computer) Tick(reset bool) {
	address, writeM, outM, pc := c.cpu.Out()
	c.memory.Tick(address, writeM, outM)
	data := c.memory.Out()

	pcBits := pc.Split()
	var romAddress [15]bool
	copy(romAddress[:], pcBits[1:])
	c.rom.SetAddress(romAddress)

	c.cpu.Tick(reset, data, c.rom.Out())
}

// SetRom replaces the program. The usual follow-up is Tick(true).
func (c *Computer) SetRom(rom *Rom) {
	c.rom = rom
}

// Rom exposes the installed program for the debugger to render.
func (c *Computer) Rom() *Rom {
	return c.rom
}

// SetKeyState forwards a host key event to the keyboard adapter.
func (c *Computer) SetKeyState(ev mem.KeyEvent) {
	c.memory.SetKeyState(ev)
}

// Screen exposes the screen adapter for the front-end to read.
func (c *Computer) Screen() mem.Screen {
	return c.memory.Screen()
}

// A reads the CPU's address register.
func (c *Computer) A() signal.Word {
	return c.cpu.A()
}

// D reads the CPU's data register.
func (c *Computer) D() signal.Word {
	return c.cpu.D()
}

// M reads the memory word the CPU is currently addressing.
func (c *Computer) M() signal.Word {
	return c.memory.Out()
}

// PC reads the program counter.
func (c *Computer) PC() signal.Word {
	return signal.Word(mask.Last(c.cpu.PC().Uint16(), mask.I15))
}
