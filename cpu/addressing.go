package cpu

// Memory is the narrow capability the addressing evaluator and
// interpreter need from the bus: byte read/write plus the two composite
// 16-bit reads that encode the zero-page-wrap and non-wrap distinctions
// spec §9 calls out as a first-class bus capability. bus.NESBus and any
// flat test double satisfy this structurally.
type Memory interface {
	Read(addr uint16) uint8
	Write(addr uint16, val uint8)
	Read16(addr uint16) uint16
	Read16ZeroPage(ptr uint8) uint16
	Write16(addr uint16, val uint16)
}

// resolved is the addressing evaluator's output: the effective address
// (unused for Implied/Accumulator) and whether the mode targets the
// accumulator directly rather than memory.
type resolved struct {
	addr  uint16
	accum bool
}

// resolve advances PC past the operand bytes for mode and returns the
// effective address, per spec §4.3.
func (c *Chip) resolve(mode AddrMode) resolved {
	switch mode {
	case Implied:
		return resolved{}
	case Accumulator:
		return resolved{accum: true}
	case Immediate:
		addr := c.PC
		c.PC++
		return resolved{addr: addr}
	case ZeroPage:
		return resolved{addr: uint16(c.fetch())}
	case ZeroPageX:
		return resolved{addr: uint16(c.fetch() + c.X)}
	case ZeroPageY:
		return resolved{addr: uint16(c.fetch() + c.Y)}
	case Relative:
		off := int8(c.fetch())
		return resolved{addr: uint16(int32(c.PC) + int32(off))}
	case Absolute:
		addr := c.Bus.Read16(c.PC)
		c.PC += 2
		return resolved{addr: addr}
	case AbsoluteX:
		base := c.Bus.Read16(c.PC)
		c.PC += 2
		return resolved{addr: base + uint16(c.X)}
	case AbsoluteY:
		base := c.Bus.Read16(c.PC)
		c.PC += 2
		return resolved{addr: base + uint16(c.Y)}
	case Indirect:
		ptr := c.Bus.Read16(c.PC)
		c.PC += 2
		return resolved{addr: c.readIndirectBug(ptr)}
	case IndirectX:
		zp := c.fetch()
		return resolved{addr: c.Bus.Read16ZeroPage(zp + c.X)}
	case IndirectY:
		zp := c.fetch()
		base := c.Bus.Read16ZeroPage(zp)
		return resolved{addr: base + uint16(c.Y)}
	default:
		return resolved{}
	}
}

// fetch reads the byte at PC and advances PC by one.
func (c *Chip) fetch() uint8 {
	v := c.Bus.Read(c.PC)
	c.PC++
	return v
}

// readIndirectBug reproduces the 6502 indirect-JMP hardware bug: when the
// low byte of ptr is 0xFF, the high byte of the target is read from the
// start of the same page rather than the next page.
func (c *Chip) readIndirectBug(ptr uint16) uint16 {
	if ptr&0x00FF == 0x00FF {
		lo := uint16(c.Bus.Read(ptr))
		hi := uint16(c.Bus.Read(ptr & 0xFF00))
		return lo | hi<<8
	}
	return c.Bus.Read16(ptr)
}
