// Package monitor provides an interactive terminal monitor for stepping
// the CPU: registers, flags, a memory window around the PC, and the
// disassembly of the next instruction.
package monitor

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"compy/cpu"
	"compy/disassemble"
	"compy/irq"
	"compy/memory"
)

type model struct {
	cpu    *cpu.Chip
	bank   memory.Bank
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
		case " ", "s":
			m.prevPC = m.cpu.PC
			m.cpu.Step(m.bank)
		case "t":
			m.cpu.Tick(m.bank)
		case "r":
			m.cpu.Intr |= irq.Reset
		}
	}
	return m, nil
}

// renderRow renders 16 bytes of memory as a line. The byte the PC
// addresses is bracketed.
func (m model) renderRow(start uint16) string {
	s := fmt.Sprintf("%04X | ", start)
	for i := uint16(0); i < 16; i++ {
		v := m.bank.Read(start + i)
		if start+i == m.cpu.PC {
			s += fmt.Sprintf("[%02X] ", v)
		} else {
			s += fmt.Sprintf(" %02X  ", v)
		}
	}
	return s
}

func (m model) memWindow() string {
	header := "addr | "
	for i := 0; i < 16; i++ {
		header += fmt.Sprintf("  %01X  ", i)
	}
	rows := []string{header}
	// Zero page, the stack page and a window around the PC.
	starts := []uint16{0x0000, 0x0010, 0x01F0}
	base := m.cpu.PC &^ 0x000F
	for i := uint16(0); i < 4; i++ {
		starts = append(starts, base+16*i)
	}
	for _, s := range starts {
		rows = append(rows, m.renderRow(s))
	}
	return strings.Join(rows, "\n")
}

func (m model) status() string {
	var flags string
	for _, f := range []uint8{
		cpu.P_NEGATIVE,
		cpu.P_OVERFLOW,
		cpu.P_S1,
		cpu.P_B,
		cpu.P_DECIMAL,
		cpu.P_INTERRUPT,
		cpu.P_ZERO,
		cpu.P_CARRY,
	} {
		if m.cpu.P&f != 0 {
			flags += "/ "
		} else {
			flags += "  "
		}
	}
	return fmt.Sprintf(`
PC: %04X (%04X)
SP: %02X
 A: %02X
 X: %02X
 Y: %02X
cyc: %d
N V - B D I Z C
`,
		m.cpu.PC,
		m.prevPC,
		m.cpu.SP,
		m.cpu.A,
		m.cpu.X,
		m.cpu.Y,
		m.cpu.Cycle,
	) + flags
}

// View renders the program's UI, which is just a string. The view is
// rendered after every Update.
func (m model) View() string {
	dis, _ := disassemble.Step(m.cpu.PC, m.bank)
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.memWindow(),
			m.status(),
		),
		"",
		dis,
		spew.Sdump(m.cpu.Intr),
		"space/s step  t tick  r reset  q quit",
	)
}

// Run starts the interactive monitor on the given CPU and bus and blocks
// until the user quits.
func Run(c *cpu.Chip, b memory.Bank) error {
	_, err := tea.NewProgram(model{cpu: c, bank: b}).Run()
	return err
}
