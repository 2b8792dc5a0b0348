package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"hack/asm"
	"hack/computer"
	"hack/signal"
)

type model struct {
	computer *computer.Computer

	prevPC uint16
}

// Init is the first function that will be called. It returns an optional
// initial command. To not perform an initial command return nil.
func (m model) Init() tea.Cmd {
	return nil
}

// Update is called when a message is received. Use it to inspect messages
// and, in response, update the model and/or send a command.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case " ", "j", "n":
			m.prevPC = m.computer.PC().Uint16()
			m.computer.Tick(false)

		case "r":
			m.prevPC = m.computer.PC().Uint16()
			m.computer.Tick(true)
		}
	}
	return m, nil
}

// renderRom renders a window of the program around the current PC, one
// instruction per line, the current one highlighted.
func (m model) renderRom() string {
	pc := int(m.computer.PC().Uint16())
	start := max(pc-4, 0)

	var lines []string
	for n := start; n < start+12 && n < computer.RomSize; n++ {
		word := m.computer.Rom().At(n)
		text := asm.FormatWord(word)
		if inst, err := asm.Decode(word); err == nil {
			text += "  " + inst.String()
		}
		if n == pc {
			lines = append(lines, fmt.Sprintf("[%04x] %s", n, text))
		} else {
			lines = append(lines, fmt.Sprintf(" %04x  %s", n, text))
		}
	}
	return strings.Join(lines, "\n")
}

func (m model) status() string {
	return fmt.Sprintf(`
PC: %d (%d)
 A: %d
 D: %d
 M: %d
`,
		m.computer.PC().Uint16(),
		m.prevPC,
		m.computer.A().Uint16(),
		m.computer.D().Uint16(),
		m.computer.M().Uint16(),
	)
}

func (m model) current() signal.Word {
	return m.computer.Rom().At(int(m.computer.PC().Uint16()))
}

// View renders the program's UI, which is just a string. The view is
// rendered after every Update.
func (m model) View() string {
	dump := asm.FormatWord(m.current())
	if inst, err := asm.Decode(m.current()); err == nil {
		dump = spew.Sdump(inst)
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.renderRom(),
			m.status(),
		),
		"",
		dump,
		"space/j: step   r: reset   q: quit",
	)
}

// runTui starts the full-screen single-step interface.
func runTui(c *computer.Computer) error {
	_, err := tea.NewProgram(model{computer: c}).Run()
	return err
}
