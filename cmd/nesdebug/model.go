package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/nes6502/core/console"
	"github.com/nes6502/core/cpu"
	"github.com/nes6502/core/trace"
)

var (
	panelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	pcStyle    = lipgloss.NewStyle().Reverse(true)
)

// model wraps a running NES for a bubbletea program, following the
// debugger.model shape from hejops-gone: a thin state holder whose Update
// advances the emulated machine and whose View renders read-only panels.
type model struct {
	nes     *console.NES
	page    uint16
	lastErr error
	quit    bool
}

func newModel(n *console.NES) model {
	return model{nes: n, page: n.CPU.PC &^ 0x00FF}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quit = true
			return m, tea.Quit
		case " ", "j":
			if m.lastErr == nil {
				m.lastErr = m.nes.Step()
			}
			m.page = m.nes.CPU.PC &^ 0x00FF
		case "pgup":
			m.page -= 0x100
		case "pgdown":
			m.page += 0x100
		}
	}
	return m, nil
}

func (m model) View() string {
	if m.quit {
		return ""
	}
	panels := lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Render(m.renderPage(m.page)),
		panelStyle.Render(m.status()),
	)
	help := "space/j: step   pgup/pgdown: scroll page   q: quit"
	body := []string{panels, help}
	if m.lastErr != nil {
		body = append(body, fmt.Sprintf("step error: %v", m.lastErr))
	}
	return lipgloss.JoinVertical(lipgloss.Left, body...)
}

// renderPage hex-dumps 16 rows of 16 bytes starting at start, with the
// byte at the current PC shown in reverse video.
func (m model) renderPage(start uint16) string {
	var b strings.Builder
	pc := m.nes.CPU.PC
	for row := uint16(0); row < 16; row++ {
		base := start + row*16
		fmt.Fprintf(&b, "%04X: ", base)
		for col := uint16(0); col < 16; col++ {
			addr := base + col
			v := m.nes.Bus.Read(addr)
			cell := fmt.Sprintf("%02X", v)
			if addr == pc {
				cell = pcStyle.Render(cell)
			}
			b.WriteString(cell)
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// status renders the register/flag panel, the last values written to the
// PPU/APU stub registers, and the decoded instruction under the cursor,
// dumped with go-spew for full field visibility.
func (m model) status() string {
	c := m.nes.CPU
	opcode := m.nes.Bus.Read(c.PC)
	inst := cpu.Opcodes[opcode]
	line := trace.Line(c.PC, m.nes.Bus, c.A, c.X, c.Y, c.P, c.S, c.Cycles)

	var b strings.Builder
	fmt.Fprintf(&b, "PC: %04X  SP: %02X\n", c.PC, c.S)
	fmt.Fprintf(&b, "A:  %02X    X:  %02X    Y: %02X\n", c.A, c.X, c.Y)
	fmt.Fprintf(&b, "P:  %02X    %s\n\n", c.P, flagString(c.P))
	fmt.Fprintf(&b, "next: %s\n\n", line)
	b.WriteString("PPU last written:")
	for i := 0; i < 8; i++ {
		fmt.Fprintf(&b, " %02X", m.nes.Bus.PPULastWritten(i))
	}
	b.WriteString("\nAPU last written:")
	for i := 0; i < 0x18; i++ {
		fmt.Fprintf(&b, " %02X", m.nes.Bus.APULastWritten(i))
	}
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "decoded:\n%s", spew.Sdump(inst))
	return b.String()
}

func flagString(p uint8) string {
	bits := []struct {
		mask byte
		name string
	}{
		{cpu.P_NEGATIVE, "N"}, {cpu.P_OVERFLOW, "V"}, {cpu.P_S1, "U"}, {cpu.P_B, "B"},
		{cpu.P_DECIMAL, "D"}, {cpu.P_INTERRUPT, "I"}, {cpu.P_ZERO, "Z"}, {cpu.P_CARRY, "C"},
	}
	var b strings.Builder
	for _, bit := range bits {
		if p&bit.mask != 0 {
			b.WriteString(bit.name)
		} else {
			b.WriteString(".")
		}
	}
	return b.String()
}
