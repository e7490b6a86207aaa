// Package bus implements the NES CPU address decode: 2KB internal RAM
// mirrored through 0x1FFF, PPU/APU register stub windows, and NROM
// PRG-ROM mirrored into the upper half of the address space.
package bus

import "github.com/nes6502/core/memory"

const (
	ramSize    = 0x0800
	ramMirror  = 0x1FFF
	ppuStart   = 0x2000
	ppuEnd     = 0x3FFF
	ppuRegs    = 8
	apuStart   = 0x4000
	apuEnd     = 0x4017
	apuRegs    = apuEnd - apuStart + 1
	prgStart   = 0x8000
)

// stubChip answers PPU/APU register reads with 0 and discards writes,
// keeping only the last value written per index for introspection by
// cmd/nesdebug. It implements memory.Bank so it can sit in the same
// Parent chain as the RAM bank.
type stubChip struct {
	parent     memory.Bank
	last       []uint8
	mask       uint16
	databusVal uint8
}

func newStubChip(regs int, parent memory.Bank) *stubChip {
	// Round the register array up to a power of two so the address mask
	// gives every register in the window its own slot.
	size := 1
	for size < regs {
		size <<= 1
	}
	return &stubChip{
		parent: parent,
		last:   make([]uint8, size),
		mask:   uint16(size - 1),
	}
}

func (s *stubChip) Read(addr uint16) uint8 {
	s.databusVal = 0
	return 0
}

func (s *stubChip) Write(addr uint16, val uint8) {
	s.last[addr&s.mask] = val
	s.databusVal = val
}

func (s *stubChip) PowerOn() {
	for i := range s.last {
		s.last[i] = 0
	}
}

func (s *stubChip) Parent() memory.Bank { return s.parent }
func (s *stubChip) DatabusVal() uint8   { return s.databusVal }

// LastWritten returns the most recent value written to register index i,
// for operator visibility only; the NES core never reads this back.
func (s *stubChip) LastWritten(i int) uint8 {
	return s.last[int(uint16(i)&s.mask)]
}

// NESBus implements memory.Bank over the CPU's 16-bit address space for
// an NROM (mapper 0) cartridge, per spec.md §4.1.
type NESBus struct {
	ram  memory.Bank
	ppu  *stubChip
	apu  *stubChip
	prg  []uint8

	databusVal uint8
}

// New builds a bus over the given PRG-ROM bytes. prg may be 16KB (NROM-128,
// mirrored into both halves of 0x8000-0xFFFF) or 32KB (NROM-256).
func New(prg []uint8) *NESBus {
	b := &NESBus{prg: prg}
	ram, err := memory.New8BitRAMBank(ramSize, b)
	if err != nil {
		// ramSize is a compile-time power of two well under 64k; this
		// can't happen.
		panic(err)
	}
	b.ram = ram
	b.ppu = newStubChip(ppuRegs, b)
	b.apu = newStubChip(apuRegs, b)
	return b
}

// Read implements memory.Bank.
func (b *NESBus) Read(addr uint16) uint8 {
	var val uint8
	switch {
	case addr <= ramMirror:
		val = b.ram.Read(addr & (ramSize - 1))
	case addr >= ppuStart && addr <= ppuEnd:
		val = b.ppu.Read(addr)
	case addr >= apuStart && addr <= apuEnd:
		val = b.apu.Read(addr)
	case addr >= prgStart:
		val = b.readPRG(addr)
	default:
		val = 0
	}
	b.databusVal = val
	return val
}

// Write implements memory.Bank. Writes landing on PRG-ROM are discarded.
func (b *NESBus) Write(addr uint16, val uint8) {
	b.databusVal = val
	switch {
	case addr <= ramMirror:
		b.ram.Write(addr&(ramSize-1), val)
	case addr >= ppuStart && addr <= ppuEnd:
		b.ppu.Write(addr, val)
	case addr >= apuStart && addr <= apuEnd:
		b.apu.Write(addr, val)
	case addr >= prgStart:
		// ROM: no-op.
	}
}

func (b *NESBus) readPRG(addr uint16) uint8 {
	if len(b.prg) == 0 {
		return 0
	}
	off := int(addr-prgStart) % len(b.prg)
	return b.prg[off]
}

// PowerOn implements memory.Bank. Work RAM is zero-filled rather than
// randomized: the teacher's ram.PowerOn() seeds math/rand from the wall
// clock, which is right for a console whose games tolerate (or rely on)
// unpredictable power-on noise, but wrong here, where the CPU must
// produce a byte-for-byte reproducible trace on every run. The original
// implementation this core is modeled on always zero-fills RAM on
// power-on, so that's what this does too.
func (b *NESBus) PowerOn() {
	for addr := uint16(0); addr < ramSize; addr++ {
		b.ram.Write(addr, 0)
	}
	b.ppu.PowerOn()
	b.apu.PowerOn()
}

// Parent implements memory.Bank; the bus is the top of its own chain.
func (b *NESBus) Parent() memory.Bank { return nil }

// DatabusVal implements memory.Bank.
func (b *NESBus) DatabusVal() uint8 { return b.databusVal }

// Read16 reads a little-endian 16-bit value at addr, addr+1, with no
// page wrap. The CPU uses it for absolute operands, the reset/interrupt
// vectors, and the indirect-JMP lookup when the pointer does not end in
// 0xFF; IndirectX/IndirectY use Read16ZeroPage instead.
func (b *NESBus) Read16(addr uint16) uint16 {
	lo := uint16(b.Read(addr))
	hi := uint16(b.Read(addr + 1))
	return lo | hi<<8
}

// Read16ZeroPage reads a little-endian 16-bit value from two zero-page
// bytes at addr, addr+1, wrapping within page zero instead of crossing
// into page one. Used by IndirectX and IndirectY.
func (b *NESBus) Read16ZeroPage(addr uint8) uint16 {
	lo := uint16(b.Read(uint16(addr)))
	hi := uint16(b.Read(uint16(addr + 1)))
	return lo | hi<<8
}

// Write16 writes a little-endian 16-bit value at addr, addr+1.
func (b *NESBus) Write16(addr uint16, val uint16) {
	b.Write(addr, uint8(val&0xFF))
	b.Write(addr+1, uint8(val>>8))
}

// PPULastWritten and APULastWritten expose the stub register windows for
// cmd/nesdebug's display panel. Neither is consulted by the CPU.
func (b *NESBus) PPULastWritten(reg int) uint8 { return b.ppu.LastWritten(reg) }
func (b *NESBus) APULastWritten(reg int) uint8 { return b.apu.LastWritten(reg) }
