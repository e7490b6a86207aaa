package rom

import (
	"testing"

	"github.com/go-test/deep"
)

func buildHeader(prgBanks, chrBanks, flags6, flags7 byte) []byte {
	h := make([]byte, headerSize)
	copy(h[0:4], magic[:])
	h[4] = prgBanks
	h[5] = chrBanks
	h[6] = flags6
	h[7] = flags7
	return h
}

func fill(n int, b byte) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}

func TestNewBasicNROM(t *testing.T) {
	raw := buildHeader(1, 1, 0x00, 0x00)
	raw = append(raw, fill(prgPageSize, 0xEA)...)
	raw = append(raw, fill(chrPageSize, 0x11)...)

	r, err := New(raw, Options{})
	if err != nil {
		t.Fatalf("New: unexpected error: %v", err)
	}
	if got, want := len(r.PRG), prgPageSize; got != want {
		t.Errorf("PRG size = %d, want %d", got, want)
	}
	if got, want := len(r.CHR), chrPageSize; got != want {
		t.Errorf("CHR size = %d, want %d", got, want)
	}
	if got, want := r.Mapper, uint8(0); got != want {
		t.Errorf("Mapper = %d, want %d", got, want)
	}
	if got, want := r.Mirroring, MirrorHorizontal; got != want {
		t.Errorf("Mirroring = %v, want %v", got, want)
	}
}

func TestNewTrainerOffset(t *testing.T) {
	raw := buildHeader(1, 0, flagsTrainer, 0x00)
	raw = append(raw, fill(trainerSize, 0xFF)...)
	raw = append(raw, fill(prgPageSize, 0xAA)...)

	r, err := New(raw, Options{})
	if err != nil {
		t.Fatalf("New: unexpected error: %v", err)
	}
	if got, want := r.PRG[0], byte(0xAA); got != want {
		t.Errorf("PRG[0] = %#02x, want %#02x (trainer should be skipped)", got, want)
	}
}

func TestNewMirroring(t *testing.T) {
	tests := []struct {
		name        string
		flags6      byte
		wantMirror  Mirroring
	}{
		{"horizontal", 0x00, MirrorHorizontal},
		{"vertical", flagsVertical, MirrorVertical},
		{"four-screen overrides vertical", flagsFourScreen | flagsVertical, MirrorFourScreen},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			raw := buildHeader(1, 0, tc.flags6, 0x00)
			raw = append(raw, fill(prgPageSize, 0)...)
			r, err := New(raw, Options{})
			if err != nil {
				t.Fatalf("New: unexpected error: %v", err)
			}
			if r.Mirroring != tc.wantMirror {
				t.Errorf("Mirroring = %v, want %v", r.Mirroring, tc.wantMirror)
			}
		})
	}
}

func TestNewMapperNumber(t *testing.T) {
	// Mapper 4 (MMC3): low nibble in flags6 bits 4-7, high nibble in flags7 bits 4-7.
	raw := buildHeader(1, 0, 0x40, 0x00)
	raw = append(raw, fill(prgPageSize, 0)...)
	r, err := New(raw, Options{})
	if err != nil {
		t.Fatalf("New: unexpected error: %v", err)
	}
	if got, want := r.Mapper, uint8(4); got != want {
		t.Errorf("Mapper = %d, want %d", got, want)
	}
}

func TestNewStrictMapperRejectsNonZero(t *testing.T) {
	raw := buildHeader(1, 0, 0x40, 0x00)
	raw = append(raw, fill(prgPageSize, 0)...)
	_, err := New(raw, Options{StrictMapper: true})
	if _, ok := err.(UnsupportedMapperError); !ok {
		t.Fatalf("New: got err %v, want UnsupportedMapperError", err)
	}
}

func TestNewInvalidHeader(t *testing.T) {
	raw := append([]byte{0x00, 0x00, 0x00, 0x00}, make([]byte, 12)...)
	_, err := New(raw, Options{})
	if _, ok := err.(InvalidHeaderError); !ok {
		t.Fatalf("New: got err %v, want InvalidHeaderError", err)
	}
}

func TestNewUnsupportedVersion(t *testing.T) {
	raw := buildHeader(1, 0, 0x00, 0x08) // NES 2.0 marker: bits 2-3 of flags7 == 10
	raw = append(raw, fill(prgPageSize, 0)...)
	_, err := New(raw, Options{})
	if _, ok := err.(UnsupportedVersionError); !ok {
		t.Fatalf("New: got err %v, want UnsupportedVersionError", err)
	}
}

func TestNewTruncated(t *testing.T) {
	raw := buildHeader(2, 0, 0x00, 0x00) // declares 32KB PRG
	raw = append(raw, fill(prgPageSize, 0)...) // only provide 16KB
	_, err := New(raw, Options{})
	if _, ok := err.(TruncatedError); !ok {
		t.Fatalf("New: got err %v, want TruncatedError", err)
	}
}

func TestBytesRoundTrip(t *testing.T) {
	raw := buildHeader(2, 1, flagsVertical, 0x00)
	raw = append(raw, fill(2*prgPageSize, 0x5A)...)
	raw = append(raw, fill(chrPageSize, 0xC3)...)

	r, err := New(raw, Options{})
	if err != nil {
		t.Fatalf("New: unexpected error: %v", err)
	}
	got := r.Bytes()
	if diff := deep.Equal(got, raw); diff != nil {
		t.Errorf("Bytes() round-trip mismatch: %v", diff)
	}
}

// TestBytesRoundTripPreservesPadding covers dumps that stamp header bytes
// 8-15 with a non-zero signature, such as the "DiskDude!" convention some
// ROM rippers use; those bytes must survive unchanged through New/Bytes
// rather than being re-zeroed.
func TestBytesRoundTripPreservesPadding(t *testing.T) {
	raw := buildHeader(1, 1, 0x00, 0x00)
	copy(raw[8:16], []byte("DiskDude!"))
	raw = append(raw, fill(prgPageSize, 0xEA)...)
	raw = append(raw, fill(chrPageSize, 0x11)...)

	r, err := New(raw, Options{})
	if err != nil {
		t.Fatalf("New: unexpected error: %v", err)
	}
	got := r.Bytes()
	if diff := deep.Equal(got, raw); diff != nil {
		t.Errorf("Bytes() round-trip mismatch: %v", diff)
	}
}
