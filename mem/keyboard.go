package mem

import (
	"strconv"

	"hack/chip"
	"hack/signal"
)

// A KeyEvent is a host key press or release. Key names follow the common
// terminal vocabulary ("a", "enter", "left", "f1", ...), which is also what
// bubbletea's KeyMsg.String() produces, so a TUI front-end can forward
// events verbatim.
type KeyEvent struct {
	Key     string
	Pressed bool
}

// A Keyboard is the input adapter: a read-only (for the program) register
// at 0x6000, driven by host key events.
type Keyboard interface {
	Out() signal.Word
	SetState(ev KeyEvent)
}

// DummyKeyboard ignores key events; the register reads as zero forever.
// Useful for batch runs that never look at 0x6000.
type DummyKeyboard struct {
	register chip.Register
}

func (k *DummyKeyboard) Out() signal.Word {
	return k.register.Out()
}

func (k *DummyKeyboard) SetState(ev KeyEvent) {}

// StateKeyboard tracks the set of currently held keys so that releasing
// the most recent one falls back to the previous, the way a rollover
// keyboard behaves. The translation from key names to Hack codes is a
// replaceable Keymap.
type StateKeyboard struct {
	register chip.Register
	held     []string
	keymap   Keymap
}

func NewStateKeyboard(keymap Keymap) *StateKeyboard {
	if keymap == nil {
		keymap = DefaultKeymap
	}
	return &StateKeyboard{keymap: keymap}
}

func (k *StateKeyboard) Out() signal.Word {
	return k.register.Out()
}

func (k *StateKeyboard) SetState(ev KeyEvent) {
	if ev.Pressed {
		k.remove(ev.Key)
		k.held = append([]string{ev.Key}, k.held...)
		if code, ok := k.keymap[ev.Key]; ok {
			k.register.Tick(true, signal.Word(code))
		}
		return
	}

	wasFront := len(k.held) > 0 && k.held[0] == ev.Key
	k.remove(ev.Key)
	if !wasFront {
		return
	}
	if len(k.held) > 0 {
		if code, ok := k.keymap[k.held[0]]; ok {
			k.register.Tick(true, signal.Word(code))
			return
		}
	}
	k.register.Tick(true, signal.Zero)
}

func (k *StateKeyboard) remove(key string) {
	for i, held := range k.held {
		if held == key {
			k.held = append(k.held[:i], k.held[i+1:]...)
			return
		}
	}
}

// A Keymap translates host key names to Hack keyboard codes.
type Keymap map[string]uint16

// DefaultKeymap maps printable ASCII to itself and the action keys to the
// Hack codes 128..152.
var DefaultKeymap = func() Keymap {
	m := Keymap{
		"enter":     128,
		"backspace": 129,
		"left":      130,
		"up":        131,
		"right":     132,
		"down":      133,
		"home":      134,
		"end":       135,
		"pgup":      136,
		"pgdown":    137,
		"insert":    138,
		"delete":    139,
		"esc":       140,
	}
	for r := rune(32); r <= 126; r++ {
		m[string(r)] = uint16(r)
	}
	m["space"] = 32
	for f := uint16(1); f <= 12; f++ {
		m["f"+strconv.Itoa(int(f))] = 140 + f
	}
	return m
}()
