// Package rom parses iNES v1 cartridge images into PRG/CHR byte slices
// plus mapper and mirroring metadata. Only mapper 0 (NROM) is executable
// by the bus package; other mapper ids are accepted unless the caller
// opts into strict validation (see Options.StrictMapper).
package rom

import "fmt"

// Mirroring identifies how the PPU nametables are aliased. The core does
// not implement a PPU; this is carried through for fidelity and for any
// caller that wants to drive one.
type Mirroring int

const (
	MirrorHorizontal Mirroring = iota
	MirrorVertical
	MirrorFourScreen
)

func (m Mirroring) String() string {
	switch m {
	case MirrorHorizontal:
		return "horizontal"
	case MirrorVertical:
		return "vertical"
	case MirrorFourScreen:
		return "four-screen"
	default:
		return "unknown"
	}
}

const (
	headerSize       = 16
	trainerSize      = 512
	prgPageSize      = 16384
	chrPageSize      = 8192
	flagsTrainer     = 0x04
	flagsFourScreen  = 0x08
	flagsVertical    = 0x01
	flagsVersionMask = 0x0C
)

var magic = [4]byte{0x4E, 0x45, 0x53, 0x1A} // "NES\x1A"

// InvalidHeaderError indicates the first four bytes are not the iNES magic.
type InvalidHeaderError struct{}

func (e InvalidHeaderError) Error() string {
	return "invalid iNES header: missing \"NES\\x1A\" magic"
}

// UnsupportedVersionError indicates an NES 2.0 header, which this core
// does not parse.
type UnsupportedVersionError struct{}

func (e UnsupportedVersionError) Error() string {
	return "unsupported ROM version: NES 2.0 headers are not supported"
}

// UnsupportedMapperError indicates a mapper id other than 0 (NROM) when
// the caller requested strict validation.
type UnsupportedMapperError struct {
	Mapper uint8
}

func (e UnsupportedMapperError) Error() string {
	return fmt.Sprintf("unsupported mapper: %d (only mapper 0/NROM is executable)", e.Mapper)
}

// TruncatedError indicates the header declares more PRG/CHR data than the
// file actually contains.
type TruncatedError struct {
	Want, Got int
}

func (e TruncatedError) Error() string {
	return fmt.Sprintf("truncated ROM: header declares a %d-byte file (header, trainer, PRG, CHR), file has %d", e.Want, e.Got)
}

// ROM holds the parsed contents of an iNES v1 cartridge image.
type ROM struct {
	PRG       []uint8
	CHR       []uint8
	Mapper    uint8
	Mirroring Mirroring

	// prgBanks/chrBanks record the unit counts from the header so Bytes
	// can round-trip even when PRG/CHR is empty (CHR-RAM boards).
	prgBanks uint8
	chrBanks uint8
	flags6   uint8
	flags7   uint8
	// padding carries header bytes 8-15 (reserved in iNES v1, but used by
	// some dumpers for ASCII signatures such as "DiskDude!") so Bytes can
	// replay them verbatim instead of re-zeroing them.
	padding [8]uint8
}

// Options controls optional strictness during New.
type Options struct {
	// StrictMapper rejects any mapper id other than 0 with
	// UnsupportedMapperError. Off by default: callers may tolerate and
	// simply ignore CHR/mapper-specific banking they don't implement.
	StrictMapper bool
}

// New parses raw iNES v1 bytes into a ROM. Validation order follows
// spec.md §4.2: magic, version, (optional) mapper, trainer offset, sizes,
// truncation, mirroring.
func New(raw []byte, opts Options) (*ROM, error) {
	if len(raw) < headerSize {
		return nil, TruncatedError{Want: headerSize, Got: len(raw)}
	}
	var hdr [4]byte
	copy(hdr[:], raw[0:4])
	if hdr != magic {
		return nil, InvalidHeaderError{}
	}

	flags6 := raw[6]
	flags7 := raw[7]

	if flags7&flagsVersionMask != 0 {
		return nil, UnsupportedVersionError{}
	}

	mapper := (flags7 & 0xF0) | (flags6 >> 4)
	if opts.StrictMapper && mapper != 0 {
		return nil, UnsupportedMapperError{Mapper: mapper}
	}

	trainerPresent := flags6&flagsTrainer != 0
	prgOff := headerSize
	if trainerPresent {
		prgOff += trainerSize
	}

	prgBanks := raw[4]
	chrBanks := raw[5]
	prgSize := int(prgBanks) * prgPageSize
	chrSize := int(chrBanks) * chrPageSize
	chrOff := prgOff + prgSize

	if need := chrOff + chrSize; len(raw) < need {
		return nil, TruncatedError{Want: need, Got: len(raw)}
	}

	fourScreen := flags6&flagsFourScreen != 0
	vertical := flags6&flagsVertical != 0
	mirroring := MirrorHorizontal
	switch {
	case fourScreen:
		mirroring = MirrorFourScreen
	case vertical:
		mirroring = MirrorVertical
	}

	r := &ROM{
		PRG:       append([]uint8(nil), raw[prgOff:prgOff+prgSize]...),
		CHR:       append([]uint8(nil), raw[chrOff:chrOff+chrSize]...),
		Mapper:    mapper,
		Mirroring: mirroring,
		prgBanks:  prgBanks,
		chrBanks:  chrBanks,
		flags6:    flags6,
		flags7:    flags7,
	}
	copy(r.padding[:], raw[8:16])
	return r, nil
}

// Bytes re-serializes the ROM into an iNES v1 byte stream: header, PRG,
// then CHR, with no trainer (trainers are stripped during parsing and not
// preserved). This round-trips the testable property in spec.md §8 for
// any ROM that had no trainer.
func (r *ROM) Bytes() []byte {
	out := make([]byte, headerSize, headerSize+len(r.PRG)+len(r.CHR))
	copy(out[0:4], magic[:])
	out[4] = r.prgBanks
	out[5] = r.chrBanks
	out[6] = r.flags6 &^ flagsTrainer // trainer is never re-emitted
	out[7] = r.flags7
	copy(out[8:16], r.padding[:])
	out = append(out, r.PRG...)
	out = append(out, r.CHR...)
	return out
}
