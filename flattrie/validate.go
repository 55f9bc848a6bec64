package flattrie

import (
	"fmt"
	"math"
	"slices"
)

// Validate checks the structural invariants of the arena: it holds at least
// the root record, records tile it exactly with no trailing space, terminal
// flags are 0 or 1, word-encoded units fit in 16 bits, and every target
// address is the start of a record.
//
// Tries produced by Compile always validate. Validate exists for arenas read
// back from storage.
func (t *FlatTrie) Validate() error {
	_, err := t.validate()
	return err
}

func (t *FlatTrie) validate() (Stats, error) {
	if !t.enc.Valid() {
		return Stats{}, ErrBadEncoding
	}
	size := uint64(t.Size())
	if size == 0 {
		return Stats{}, fmt.Errorf("%w: empty arena", ErrBadSize)
	}
	if size > MaxArenaSize {
		return Stats{}, ErrArenaTooLarge
	}

	header := uint64(t.enc.RecordSize(0))
	edge := uint64(t.enc.RecordSize(1)) - header

	// Records are laid out back to back, so the starts come out sorted.
	var starts []Addr
	var edges uint64
	at := uint64(0)
	for at < size {
		if size-at < header {
			return Stats{}, fmt.Errorf("%w: header at %d", ErrBadRecord, at)
		}
		n := uint64(t.At(Addr(at)).ChildCount())
		if n > (size-at-header)/edge {
			return Stats{}, fmt.Errorf("%w: record at %d claims %d children", ErrBadRecord, at, n)
		}
		if err := t.validateFields(Addr(at), int(n)); err != nil {
			return Stats{}, err
		}
		starts = append(starts, Addr(at))
		edges += n
		at += header + n*edge
	}

	for _, start := range starts {
		c := t.At(start)
		n := c.ChildCount()
		for i := 0; i < n; i++ {
			target := c.ChildTarget(i)
			if _, found := slices.BinarySearch(starts, target); !found {
				return Stats{}, fmt.Errorf("%w: record %d transition %d -> %d", ErrBadTarget, start, i, target)
			}
		}
	}

	return Stats{
		Records:   uint64(len(starts)),
		Edges:     edges,
		ArenaSize: size,
	}, nil
}

// validateFields rejects field values Compile never writes.
func (t *FlatTrie) validateFields(at Addr, n int) error {
	var terminal uint32
	if t.enc == EncodingWords {
		rec := t.words[int(at):]
		terminal = rec[wordTerminalOff]
		for i, u := range rec[WordHeaderWords : WordHeaderWords+n] {
			if u > math.MaxUint16 {
				return fmt.Errorf("%w: record %d transition %d unit %#x", ErrBadRecord, at, i, u)
			}
		}
	} else {
		terminal = uint32(t.arena[int(at)+packedTerminalOff])
	}
	if terminal > 1 {
		return fmt.Errorf("%w: record %d terminal %d", ErrBadRecord, at, terminal)
	}
	return nil
}
