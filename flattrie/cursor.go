package flattrie

// Cursor is a caller-owned position in a FlatTrie. It is a small value; every
// navigation method returns a new Cursor and leaves the receiver unchanged.
type Cursor struct {
	t  *FlatTrie
	at Addr
}

// Root returns a cursor at the root record.
func (t *FlatTrie) Root() Cursor {
	return Cursor{t: t}
}

// At returns a cursor at address at. The address is not checked; it must be
// a record start (every ChildTarget is).
func (t *FlatTrie) At(at Addr) Cursor {
	return Cursor{t: t, at: at}
}

// Addr returns the address of the current record.
func (c Cursor) Addr() Addr {
	return c.at
}

// ChildCount returns the number of transitions out of the current record.
// On a zero-value FlatTrie it is 0.
func (c Cursor) ChildCount() int {
	switch c.t.enc {
	case EncodingWords:
		return WordChildCount(c.t.words, c.at)
	case EncodingPacked:
		return PackedChildCount(c.t.arena, c.at)
	default:
		return 0
	}
}

// Terminal reports whether the current record ends a stored string.
func (c Cursor) Terminal() bool {
	switch c.t.enc {
	case EncodingWords:
		return WordTerminal(c.t.words, c.at)
	case EncodingPacked:
		return PackedTerminal(c.t.arena, c.at)
	default:
		return false
	}
}

// ChildUnit returns the label of transition i.
func (c Cursor) ChildUnit(i int) Unit {
	if c.t.enc == EncodingWords {
		return WordChildUnit(c.t.words, c.at, i)
	}
	return PackedChildUnit(c.t.arena, c.at, i)
}

// ChildTarget returns the target address of transition i.
func (c Cursor) ChildTarget(i int) Addr {
	if c.t.enc == EncodingWords {
		return WordChildTarget(c.t.words, c.at, i)
	}
	return PackedChildTarget(c.t.arena, c.at, i)
}

// Step follows the transition labelled u. ok=false indicates there is none,
// in which case the returned cursor is c.
func (c Cursor) Step(u Unit) (next Cursor, ok bool) {
	n := c.ChildCount()
	for i := 0; i < n; i++ {
		if c.ChildUnit(i) == u {
			return Cursor{t: c.t, at: c.ChildTarget(i)}, true
		}
	}
	return c, false
}
