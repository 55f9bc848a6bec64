package flattrie

import (
	"errors"
	"math"

	"github.com/forestrie/go-flattrie/texttrie"
)

// Unit is a transition label, one UTF-16 code unit.
type Unit = texttrie.Unit

// Addr is the start of a record within an arena, measured in the arena's
// element width (words for EncodingWords, bytes for EncodingPacked).
//
// Address 0 is always the root record.
type Addr uint32

// MaxArenaSize is the largest arena, in elements, whose record starts can all
// be expressed as an Addr.
const MaxArenaSize = math.MaxUint32

// Encoding selects the physical record layout of an arena.
type Encoding uint8

const (
	// EncodingWords stores one uint32 per field. Records are
	// [childCount, terminal, units[n], targets[n]].
	EncodingWords Encoding = 1
	// EncodingPacked stores fields at their minimum byte width, big-endian:
	// childCount u32 | terminal u8 | units[n] u16 | targets[n] u32.
	EncodingPacked Encoding = 2
)

func (e Encoding) String() string {
	switch e {
	case EncodingWords:
		return "words"
	case EncodingPacked:
		return "packed"
	default:
		return "unknown"
	}
}

// Valid reports whether e names a supported encoding.
func (e Encoding) Valid() bool {
	return e == EncodingWords || e == EncodingPacked
}

var (
	ErrNilNode        = errors.New("flattrie: nil node")
	ErrBadEncoding    = errors.New("flattrie: encoding invalid")
	ErrArenaTooLarge  = errors.New("flattrie: arena does not fit 32-bit addresses")
	ErrBadSize        = errors.New("flattrie: arena size invalid")
	ErrBadRecord      = errors.New("flattrie: record overruns arena")
	ErrBadTarget      = errors.New("flattrie: target is not a record start")
	ErrBadRecordCount = errors.New("flattrie: record count mismatch")
	ErrBadMagic       = errors.New("flattrie: image magic invalid")
	ErrBadVersion     = errors.New("flattrie: image version invalid")

	ErrArenaFull   = errors.New("flattrie: fixed arena capacity exhausted")
	ErrBadCapacity = errors.New("flattrie: fixed arena capacity invalid")
)
