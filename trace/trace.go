// Package trace formats one nestest-compatible line per instruction,
// decoding the instruction about to execute without mutating any CPU or
// bus state. It re-implements the addressing-mode byte consumption the
// cpu package's evaluator performs, but against a plain program counter
// value rather than a live Chip, so tracing can run strictly before a
// Step with no side effects (spec §5: "the tracer... must be called...
// via read-only bus operations").
package trace

import (
	"fmt"
	"strings"

	"github.com/nes6502/core/cpu"
)

// Line renders the trace line for the instruction at pc, given the
// register snapshot that held *before* that instruction executes.
func Line(pc uint16, mem cpu.Memory, a, x, y, p, sp uint8, cyc uint64) string {
	opcode := mem.Read(pc)
	inst := cpu.Opcodes[opcode]

	raw, operandText := decode(pc, inst, mem, x, y)

	bytesField := formatBytes(raw)
	regs := fmt.Sprintf("A:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%d", a, x, y, p, sp, cyc)
	return fmt.Sprintf("%04X  %-8s  %-32s%s", pc, bytesField, operandText, regs)
}

// decode returns the raw instruction bytes (including the opcode) and the
// formatted mnemonic+operand text, per spec §4.5's per-mode table. x and y
// are the index registers as they stood before this instruction, needed
// to render the effective address of indexed modes.
func decode(pc uint16, inst cpu.Instruction, mem cpu.Memory, x, y uint8) ([]uint8, string) {
	opcode := mem.Read(pc)
	mnem := inst.Mnemonic.String()

	switch inst.Mode {
	case cpu.Implied:
		return []uint8{opcode}, mnem

	case cpu.Accumulator:
		return []uint8{opcode}, mnem + " A"

	case cpu.Immediate:
		v := mem.Read(pc + 1)
		return []uint8{opcode, v}, fmt.Sprintf("%s #$%02X", mnem, v)

	case cpu.ZeroPage:
		zp := mem.Read(pc + 1)
		v := mem.Read(uint16(zp))
		return []uint8{opcode, zp}, fmt.Sprintf("%s $%02X = %02X", mnem, zp, v)

	case cpu.ZeroPageX:
		zp := mem.Read(pc + 1)
		eff := uint16(zp + x)
		v := mem.Read(eff)
		return []uint8{opcode, zp}, fmt.Sprintf("%s $%02X,X @ %02X = %02X", mnem, zp, eff, v)

	case cpu.ZeroPageY:
		zp := mem.Read(pc + 1)
		eff := uint16(zp + y)
		v := mem.Read(eff)
		return []uint8{opcode, zp}, fmt.Sprintf("%s $%02X,Y @ %02X = %02X", mnem, zp, eff, v)

	case cpu.Relative:
		off := int8(mem.Read(pc + 1))
		target := uint16(int32(pc+2) + int32(off))
		return []uint8{opcode, uint8(off)}, fmt.Sprintf("%s $%04X", mnem, target)

	case cpu.Absolute:
		lo, hi := mem.Read(pc+1), mem.Read(pc+2)
		addr := uint16(lo) | uint16(hi)<<8
		if inst.Mnemonic == cpu.JMP || inst.Mnemonic == cpu.JSR {
			return []uint8{opcode, lo, hi}, fmt.Sprintf("%s $%04X", mnem, addr)
		}
		v := mem.Read(addr)
		return []uint8{opcode, lo, hi}, fmt.Sprintf("%s $%04X = %02X", mnem, addr, v)

	case cpu.AbsoluteX:
		lo, hi := mem.Read(pc+1), mem.Read(pc+2)
		base := uint16(lo) | uint16(hi)<<8
		eff := base + uint16(x)
		v := mem.Read(eff)
		return []uint8{opcode, lo, hi}, fmt.Sprintf("%s $%04X,X @ %04X = %02X", mnem, base, eff, v)

	case cpu.AbsoluteY:
		lo, hi := mem.Read(pc+1), mem.Read(pc+2)
		base := uint16(lo) | uint16(hi)<<8
		eff := base + uint16(y)
		v := mem.Read(eff)
		return []uint8{opcode, lo, hi}, fmt.Sprintf("%s $%04X,Y @ %04X = %02X", mnem, base, eff, v)

	case cpu.Indirect:
		lo, hi := mem.Read(pc+1), mem.Read(pc+2)
		ptr := uint16(lo) | uint16(hi)<<8
		target := indirectBug(ptr, mem)
		return []uint8{opcode, lo, hi}, fmt.Sprintf("%s ($%04X) = %04X", mnem, ptr, target)

	case cpu.IndirectX:
		zp := mem.Read(pc + 1)
		ptr := zp + x
		eff := mem.Read16ZeroPage(ptr)
		v := mem.Read(eff)
		return []uint8{opcode, zp}, fmt.Sprintf("%s ($%02X,X) @ %02X = %04X = %02X", mnem, zp, ptr, eff, v)

	case cpu.IndirectY:
		zp := mem.Read(pc + 1)
		base := mem.Read16ZeroPage(zp)
		eff := base + uint16(y)
		v := mem.Read(eff)
		return []uint8{opcode, zp}, fmt.Sprintf("%s ($%02X),Y = %04X @ %04X = %02X", mnem, zp, base, eff, v)

	default:
		return []uint8{opcode}, mnem
	}
}

func formatBytes(raw []uint8) string {
	parts := make([]string, len(raw))
	for i, b := range raw {
		parts[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(parts, " ")
}

func indirectBug(ptr uint16, mem cpu.Memory) uint16 {
	if ptr&0x00FF == 0x00FF {
		lo := uint16(mem.Read(ptr))
		hi := uint16(mem.Read(ptr & 0xFF00))
		return lo | hi<<8
	}
	return mem.Read16(ptr)
}
