package texttrie

import (
	"unicode/utf16"
	"unicode/utf8"
)

// Unit is a single transition label: one UTF-16 code unit.
type Unit = uint16

// Reader yields the UTF-16 code units of a string without allocating.
//
// Invalid UTF-8 decodes to U+FFFD, as a `for range` over the string would.
type Reader struct {
	s      string
	off    int
	low    Unit
	hasLow bool
}

// NewReader returns a Reader positioned at the start of s.
func NewReader(s string) Reader {
	return Reader{s: s}
}

// Next returns the next code unit. ok=false indicates the string is exhausted.
func (r *Reader) Next() (u Unit, ok bool) {
	if r.hasLow {
		r.hasLow = false
		return r.low, true
	}
	if r.off >= len(r.s) {
		return 0, false
	}
	c := r.s[r.off]
	if c < utf8.RuneSelf {
		r.off++
		return Unit(c), true
	}
	rn, width := utf8.DecodeRuneInString(r.s[r.off:])
	r.off += width
	if rn < 0x10000 {
		return Unit(rn), true
	}
	hi, lo := utf16.EncodeRune(rn)
	r.low = Unit(lo)
	r.hasLow = true
	return Unit(hi), true
}

// UnitCount returns the number of code units in s.
func UnitCount(s string) int {
	n := 0
	for _, rn := range s {
		n += utf16.RuneLen(rn)
	}
	return n
}
