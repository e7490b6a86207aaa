package console

import "testing"

type alwaysRaised bool

func (a alwaysRaised) Raised() bool { return bool(a) }

func buildNROM(prgBanks byte, entry uint16) []byte {
	raw := make([]byte, 16)
	copy(raw[0:4], []byte{0x4E, 0x45, 0x53, 0x1A})
	raw[4] = prgBanks
	prg := make([]byte, int(prgBanks)*16384)
	// Reset vector lives at the end of the last PRG bank (0xFFFC/D maps
	// there once mirrored onto the bus).
	off := len(prg) - 4
	prg[off] = byte(entry & 0xFF)
	prg[off+1] = byte(entry >> 8)
	raw = append(raw, prg...)
	return raw
}

func TestNewAndResetSeedsPC(t *testing.T) {
	raw := buildNROM(1, 0x8123)
	n, err := New(raw, Def{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	n.Reset()
	if n.CPU.PC != 0x8123 {
		t.Errorf("PC after Reset = %#04x, want 0x8123", n.CPU.PC)
	}
}

func TestStepExecutesOneInstruction(t *testing.T) {
	raw := buildNROM(1, 0x8000)
	n, err := New(raw, Def{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	n.Reset()
	n.CPU.PC = 0x8000
	// Writes to PRG are discarded by the bus; seed the opcode directly
	// into the ROM's backing PRG array instead.
	n.ROM.PRG[0] = 0xEA

	if err := n.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if n.CPU.PC != 0x8001 {
		t.Errorf("PC after Step = %#04x, want 0x8001", n.CPU.PC)
	}
	if n.CPU.Cycles != 2 {
		t.Errorf("Cycles = %d, want 2", n.CPU.Cycles)
	}
}

func TestStepServicesNMIBeforeFetch(t *testing.T) {
	raw := buildNROM(1, 0x8000)
	n, err := New(raw, Def{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	n.Reset()
	n.CPU.PC = 0x8000
	n.ROM.PRG[0] = 0xEA
	nmiVectorOff := len(n.ROM.PRG) - 6 // 0xFFFA/B, two bytes before the reset vector
	n.ROM.PRG[nmiVectorOff] = 0x00
	n.ROM.PRG[nmiVectorOff+1] = 0x90
	n.NMISource = alwaysRaised(true)

	if err := n.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if n.CPU.PC != 0x9000 {
		t.Errorf("PC after NMI-serviced Step = %#04x, want 0x9000", n.CPU.PC)
	}
}
