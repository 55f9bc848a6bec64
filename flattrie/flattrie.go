package flattrie

import (
	"bytes"
	"slices"

	"github.com/forestrie/go-flattrie/texttrie"
)

// Stats describes a compiled arena.
type Stats struct {
	Records   uint64
	Edges     uint64
	ArenaSize uint64 // in arena elements, see Encoding.ElementBytes
}

// FlatTrie is a trie compiled into one contiguous arena of records.
//
// A FlatTrie is immutable. It holds no traversal state, so any number of
// goroutines may query it concurrently. The zero value is an empty trie that
// matches nothing; it is the target for UnmarshalBinary.
type FlatTrie struct {
	enc   Encoding
	words []uint32
	arena []byte
	stats Stats
}

// FromWords validates a word-encoded arena and returns a trie over a copy of
// it.
func FromWords(words []uint32) (*FlatTrie, error) {
	t := &FlatTrie{enc: EncodingWords, words: slices.Clone(words)}
	st, err := t.validate()
	if err != nil {
		return nil, err
	}
	t.stats = st
	return t, nil
}

// FromBytes validates a packed arena and returns a trie over a copy of it.
func FromBytes(arena []byte) (*FlatTrie, error) {
	t := &FlatTrie{enc: EncodingPacked, arena: bytes.Clone(arena)}
	st, err := t.validate()
	if err != nil {
		return nil, err
	}
	t.stats = st
	return t, nil
}

// Encoding returns the physical layout of the arena.
func (t *FlatTrie) Encoding() Encoding {
	return t.enc
}

// Stats returns the record, edge and size totals of the arena.
func (t *FlatTrie) Stats() Stats {
	return t.stats
}

// Size returns the arena length in elements.
func (t *FlatTrie) Size() int {
	if t.enc == EncodingWords {
		return len(t.words)
	}
	return len(t.arena)
}

// Words returns the backing arena of a word-encoded trie, or nil.
// The caller must not modify it.
func (t *FlatTrie) Words() []uint32 {
	return t.words
}

// Bytes returns the backing arena of a packed trie, or nil.
// The caller must not modify it.
func (t *FlatTrie) Bytes() []byte {
	return t.arena
}

// StartsWith reports whether some stored string is a prefix of candidate.
//
// Semantics match texttrie.Trie.StartsWith exactly, including stopping at the
// first terminal record reached and never consulting the root's flag.
func (t *FlatTrie) StartsWith(candidate string) bool {
	switch t.enc {
	case EncodingWords:
		return t.startsWithWords(candidate)
	case EncodingPacked:
		return t.startsWithPacked(candidate)
	default:
		return false
	}
}

func (t *FlatTrie) startsWithWords(candidate string) bool {
	words := t.words
	at := 0
	r := texttrie.NewReader(candidate)
	for {
		u, ok := r.Next()
		if !ok {
			return false
		}
		n := int(words[at+wordCountOff])
		units := words[at+WordHeaderWords : at+WordHeaderWords+n]
		i := 0
		for ; i < n; i++ {
			if Unit(units[i]) == u {
				break
			}
		}
		if i == n {
			return false
		}
		at = int(words[at+WordHeaderWords+n+i])
		if words[at+wordTerminalOff] != 0 {
			return true
		}
	}
}

func (t *FlatTrie) startsWithPacked(candidate string) bool {
	arena := t.arena
	at := 0
	r := texttrie.NewReader(candidate)
	for {
		u, ok := r.Next()
		if !ok {
			return false
		}
		n := int(readU32BE(arena[at : at+PackedCountBytes]))
		unitsOff := at + PackedHeaderBytes
		i := 0
		for ; i < n; i++ {
			off := unitsOff + PackedUnitBytes*i
			if readU16BE(arena[off:off+PackedUnitBytes]) == u {
				break
			}
		}
		if i == n {
			return false
		}
		off := unitsOff + PackedUnitBytes*n + PackedAddrBytes*i
		at = int(readU32BE(arena[off : off+PackedAddrBytes]))
		if arena[at+packedTerminalOff] != 0 {
			return true
		}
	}
}

// ContainsExactly reports whether word itself is stored.
func (t *FlatTrie) ContainsExactly(word string) bool {
	c := t.Root()
	r := texttrie.NewReader(word)
	for {
		u, ok := r.Next()
		if !ok {
			return c.Terminal()
		}
		var found bool
		if c, found = c.Step(u); !found {
			return false
		}
	}
}
