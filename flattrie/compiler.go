package flattrie

import (
	"fmt"

	"github.com/forestrie/go-flattrie/texttrie"
)

// layout is the result of the first compile pass: an address for every
// reachable node, keyed by node identity, and the total arena size.
type layout struct {
	enc   Encoding
	order []*texttrie.Node
	units [][]Unit
	addrs map[*texttrie.Node]Addr
	size  uint64
	edges uint64
}

// computeLayout assigns addresses depth first using an explicit stack.
//
// A node's address and size are fixed when it is first popped, before any of
// its children are, because a record's size depends only on its own child
// count. Nodes reachable through several parents (or through a cycle) are laid
// out once.
func computeLayout(root *texttrie.Node, enc Encoding) (layout, error) {
	if root == nil {
		return layout{}, ErrNilNode
	}

	l := layout{
		enc:   enc,
		addrs: make(map[*texttrie.Node]Addr),
	}

	stack := []*texttrie.Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, seen := l.addrs[n]; seen {
			continue
		}

		units := n.Units()
		size := uint64(enc.RecordSize(len(units)))
		if l.size+size > MaxArenaSize {
			return layout{}, fmt.Errorf("%w: records=%d, size=%d", ErrArenaTooLarge, len(l.order), l.size+size)
		}

		l.addrs[n] = Addr(l.size)
		l.order = append(l.order, n)
		l.units = append(l.units, units)
		l.size += size
		l.edges += uint64(len(units))

		// Push in reverse so the smallest unit is laid out first.
		for i := len(units) - 1; i >= 0; i-- {
			child := n.Child(units[i])
			if child == nil {
				return layout{}, fmt.Errorf("%w: transition %#04x", ErrNilNode, units[i])
			}
			if _, seen := l.addrs[child]; !seen {
				stack = append(stack, child)
			}
		}
	}
	return l, nil
}

// Compile converts the graph reachable from root into a FlatTrie using
// encoding enc.
//
// The arena is allocated once, at the exact size computed by the layout pass,
// and every record is then written with its targets already resolved.
func Compile(root *texttrie.Node, enc Encoding, opts ...Option) (*FlatTrie, error) {
	if !enc.Valid() {
		return nil, ErrBadEncoding
	}
	o := newOptions(opts)

	l, err := computeLayout(root, enc)
	if err != nil {
		return nil, err
	}

	t := &FlatTrie{
		enc: enc,
		stats: Stats{
			Records:   uint64(len(l.order)),
			Edges:     l.edges,
			ArenaSize: l.size,
		},
	}

	switch enc {
	case EncodingWords:
		t.words = make([]uint32, l.size)
		l.serialize(func(at Addr, terminal bool, units []Unit, targets []Addr) {
			WordWriteRecord(t.words, at, terminal, units, targets)
		})
	case EncodingPacked:
		t.arena = make([]byte, l.size)
		l.serialize(func(at Addr, terminal bool, units []Unit, targets []Addr) {
			PackedWriteRecord(t.arena, at, terminal, units, targets)
		})
	}

	o.debugf("flattrie compile: encoding=%s records=%d edges=%d arena=%d",
		enc, t.stats.Records, t.stats.Edges, t.stats.ArenaSize)
	return t, nil
}

// CompileWords compiles trie with EncodingWords.
func CompileWords(trie *texttrie.Trie, opts ...Option) (*FlatTrie, error) {
	return Compile(trie.Root(), EncodingWords, opts...)
}

// CompilePacked compiles trie with EncodingPacked.
func CompilePacked(trie *texttrie.Trie, opts ...Option) (*FlatTrie, error) {
	return Compile(trie.Root(), EncodingPacked, opts...)
}

// serialize is the second compile pass. Every address is known, so each
// record is written exactly once with resolved targets.
func (l *layout) serialize(write func(at Addr, terminal bool, units []Unit, targets []Addr)) {
	var targets []Addr
	for i, n := range l.order {
		units := l.units[i]
		targets = targets[:0]
		for _, u := range units {
			targets = append(targets, l.addrs[n.Child(u)])
		}
		write(l.addrs[n], n.Terminal(), units, targets)
	}
}
