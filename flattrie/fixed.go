package flattrie

import (
	"errors"
	"fmt"

	"github.com/forestrie/go-flattrie/texttrie"
)

// Fixed record layout, big-endian, FixedRecordBytes wide:
//
//	[0:2]   unit u16 (unused for the root)
//	[2]     terminal
//	[3:7]   firstChild u32 (record index, 0 = none)
//	[7:11]  nextSibling u32 (record index, 0 = none)
//
// Record 0 is the root. No record ever links to the root, so 0 doubles as the
// "none" sentinel and a zero-filled arena is an empty trie.
const (
	FixedRecordBytes = 11

	fixedUnitOff     = 0
	fixedTerminalOff = 2
	fixedChildOff    = 3
	fixedSiblingOff  = 7

	// MaxFixedRecords bounds capacity so record indices fit 32 bits.
	MaxFixedRecords = MaxArenaSize / FixedRecordBytes

	fixedNone = 0
)

// FixedTrie is a trie built in place inside an arena whose capacity is chosen
// up front. Unlike Compile, which sizes its arena exactly, a FixedTrie fails
// an insertion that does not fit (ErrArenaFull) and leaves growth to the
// caller; see BuildFixed.
//
// A FixedTrie is not safe for concurrent use while inserting. Once building is
// finished it may be queried concurrently.
type FixedTrie struct {
	arena []byte
	next  uint32
	cap   uint32
	size  int
}

// NewFixedTrie preallocates an arena of capacity records, including the root.
func NewFixedTrie(capacity int) (*FixedTrie, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadCapacity, capacity)
	}
	if uint64(capacity) > MaxFixedRecords {
		return nil, fmt.Errorf("%w: capacity %d", ErrArenaTooLarge, capacity)
	}
	return &FixedTrie{
		arena: make([]byte, uint64(capacity)*FixedRecordBytes),
		next:  1,
		cap:   uint32(capacity),
	}, nil
}

// EstimateRecords returns an upper bound on the records needed to store
// words: the root plus one record per code unit.
func EstimateRecords(words []string) int {
	n := 1
	for _, w := range words {
		n += texttrie.UnitCount(w)
	}
	return n
}

// Len returns the number of distinct stored strings.
func (f *FixedTrie) Len() int {
	return f.size
}

// Cap returns the record capacity.
func (f *FixedTrie) Cap() int {
	return int(f.cap)
}

// Used returns the number of records in use, including the root.
func (f *FixedTrie) Used() int {
	return int(f.next)
}

func (f *FixedTrie) rec(i uint32) []byte {
	off := uint64(i) * FixedRecordBytes
	return f.arena[off : off+FixedRecordBytes]
}

func (f *FixedTrie) terminal(i uint32) bool {
	return f.rec(i)[fixedTerminalOff] != 0
}

// find returns the child of record i labelled u, or fixedNone.
func (f *FixedTrie) find(i uint32, u Unit) uint32 {
	c := readU32BE(f.rec(i)[fixedChildOff : fixedChildOff+4])
	for c != fixedNone {
		rec := f.rec(c)
		if readU16BE(rec[fixedUnitOff:fixedUnitOff+2]) == u {
			return c
		}
		c = readU32BE(rec[fixedSiblingOff : fixedSiblingOff+4])
	}
	return fixedNone
}

// Insert stores word. If the records word needs do not fit in the remaining
// capacity, Insert returns ErrArenaFull and the trie is left unchanged.
func (f *FixedTrie) Insert(word string) error {
	// Dry run: count the records this insertion would add.
	missing := 0
	at := uint32(0)
	r := texttrie.NewReader(word)
	for {
		u, ok := r.Next()
		if !ok {
			break
		}
		if missing > 0 {
			missing++
			continue
		}
		if c := f.find(at, u); c != fixedNone {
			at = c
			continue
		}
		missing = 1
	}
	if uint64(f.next)+uint64(missing) > uint64(f.cap) {
		return fmt.Errorf("%w: need %d records, %d free", ErrArenaFull, missing, f.cap-f.next)
	}

	at = 0
	r = texttrie.NewReader(word)
	for {
		u, ok := r.Next()
		if !ok {
			break
		}
		c := f.find(at, u)
		if c == fixedNone {
			c = f.next
			f.next++
			parent := f.rec(at)
			rec := f.rec(c)
			writeU16BE(rec[fixedUnitOff:fixedUnitOff+2], u)
			copy(rec[fixedSiblingOff:fixedSiblingOff+4], parent[fixedChildOff:fixedChildOff+4])
			writeU32BE(parent[fixedChildOff:fixedChildOff+4], c)
		}
		at = c
	}

	rec := f.rec(at)
	if rec[fixedTerminalOff] == 0 {
		rec[fixedTerminalOff] = 1
		f.size++
	}
	return nil
}

// StartsWith reports whether some stored string is a prefix of candidate,
// with the same first-terminal semantics as FlatTrie.StartsWith.
func (f *FixedTrie) StartsWith(candidate string) bool {
	at := uint32(0)
	r := texttrie.NewReader(candidate)
	for {
		u, ok := r.Next()
		if !ok {
			return false
		}
		if at = f.find(at, u); at == fixedNone {
			return false
		}
		if f.terminal(at) {
			return true
		}
	}
}

// ContainsExactly reports whether word itself is stored.
func (f *FixedTrie) ContainsExactly(word string) bool {
	at := uint32(0)
	r := texttrie.NewReader(word)
	for {
		u, ok := r.Next()
		if !ok {
			return f.terminal(at)
		}
		if at = f.find(at, u); at == fixedNone {
			return false
		}
	}
}

// BuildFixed builds a FixedTrie holding words, starting from a capacity of
// estimate records. Whenever an insertion reports ErrArenaFull the capacity
// is doubled and the whole build restarts.
func BuildFixed(words []string, estimate int, opts ...Option) (*FixedTrie, error) {
	o := newOptions(opts)

	capacity := max(estimate, 1)
	for attempt := 1; ; attempt++ {
		f, err := NewFixedTrie(capacity)
		if err != nil {
			return nil, err
		}
		err = f.insertAll(words)
		if err == nil {
			o.debugf("flattrie fixed build: attempt=%d capacity=%d used=%d", attempt, capacity, f.Used())
			return f, nil
		}
		if !errors.Is(err, ErrArenaFull) {
			return nil, err
		}
		if uint64(capacity)*2 > MaxFixedRecords {
			return nil, fmt.Errorf("%w: capacity %d exhausted", ErrArenaTooLarge, capacity)
		}
		o.debugf("flattrie fixed build: capacity=%d exhausted, retrying with %d", capacity, capacity*2)
		capacity *= 2
	}
}

func (f *FixedTrie) insertAll(words []string) error {
	for _, w := range words {
		if err := f.Insert(w); err != nil {
			return err
		}
	}
	return nil
}
