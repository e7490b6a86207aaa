// Package console wires a parsed ROM, the NES bus, and the CPU into a
// runnable machine, following the teacher's atari2600.Init(VCSDef)
// composition style: one constructor that builds the chips in dependency
// order and returns a struct exposing Reset/Step.
package console

import (
	"github.com/nes6502/core/bus"
	"github.com/nes6502/core/cpu"
	"github.com/nes6502/core/irq"
	"github.com/nes6502/core/rom"
)

// NES is a runnable machine: a CPU driving a bus built from a cartridge's
// PRG-ROM.
type NES struct {
	CPU *cpu.Chip
	Bus *bus.NESBus
	ROM *rom.ROM

	// NMISource and IRQSource, when set, are polled once per Step before
	// the instruction fetch, following the teacher's edge/level-raised
	// irq.Sender contract. Nothing in this core drives these today (the
	// PPU/APU are stubs), but a caller wiring in its own NMI source (a
	// scanline timer, for instance) can set NMISource without touching
	// NES or Chip.
	NMISource irq.Sender
	IRQSource irq.Sender
}

// Def mirrors the teacher's *Def construction-options pattern
// (atari2600.VCSDef): zero-value-safe optional settings for New.
type Def struct {
	// Strict makes the CPU return IllegalInstructionError on an
	// undefined opcode instead of treating it as a zero-cost NOP.
	Strict bool
}

// New parses raw iNES bytes and wires a bus and CPU over the resulting
// PRG-ROM. The caller must still call Reset (or set CPU.PC directly, as
// a diagnostic driver does for nestest) before stepping.
func New(raw []byte, def Def) (*NES, error) {
	r, err := rom.New(raw, rom.Options{})
	if err != nil {
		return nil, err
	}
	b := bus.New(r.PRG)
	c := cpu.NewChip(b)
	c.Strict = def.Strict
	return &NES{CPU: c, Bus: b, ROM: r}, nil
}

// Reset powers on the bus and resets the CPU to its reset-vector entry
// point.
func (n *NES) Reset() {
	n.Bus.PowerOn()
	n.CPU.Reset()
}

// Step services one pending interrupt, if any is raised, or otherwise
// executes exactly one instruction. A serviced interrupt consumes its own
// Step the way the hardware's interrupt-acknowledge cycle does not
// overlap the next opcode fetch; the redirected PC is picked up on the
// following Step.
func (n *NES) Step() error {
	switch {
	case n.NMISource != nil && n.NMISource.Raised():
		n.CPU.NMI()
		return nil
	case n.IRQSource != nil && n.IRQSource.Raised() && n.CPU.P&cpu.P_INTERRUPT == 0:
		n.CPU.IRQ()
		return nil
	default:
		return n.CPU.Step()
	}
}
