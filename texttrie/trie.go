package texttrie

import "slices"

// Node is one transition state of the authoring trie.
type Node struct {
	children map[Unit]*Node
	terminal bool
}

// NewNode returns an empty, non-terminal node.
func NewNode() *Node {
	return &Node{}
}

// Terminal reports whether some stored string ends exactly at n.
func (n *Node) Terminal() bool {
	return n.terminal
}

// SetTerminal marks (or clears) n as the end of a stored string.
func (n *Node) SetTerminal(terminal bool) {
	n.terminal = terminal
}

// Len returns the number of outgoing transitions.
func (n *Node) Len() int {
	return len(n.children)
}

// Child returns the target of the transition labelled u, or nil.
func (n *Node) Child(u Unit) *Node {
	return n.children[u]
}

// Units returns the transition labels of n in ascending order.
func (n *Node) Units() []Unit {
	units := make([]Unit, 0, len(n.children))
	for u := range n.children {
		units = append(units, u)
	}
	slices.Sort(units)
	return units
}

// Link attaches child as the target of the transition labelled u, replacing
// any existing transition.
//
// Link allows shared-suffix graphs to be authored directly. Nothing prevents a
// cycle from being created; consumers that walk the whole graph must track
// visited nodes by identity.
func (n *Node) Link(u Unit, child *Node) {
	if n.children == nil {
		n.children = make(map[Unit]*Node)
	}
	n.children[u] = child
}

// Trie is a pointer-based prefix trie. The zero value is an empty trie.
type Trie struct {
	root *Node
	// inserted holds the terminal nodes Insert created. Terminals set through
	// Node.SetTerminal or reached through Node.Link are not counted.
	inserted map[*Node]struct{}
}

// New returns an empty trie.
func New() *Trie {
	return &Trie{root: NewNode()}
}

// FromStrings returns a trie holding every string in words.
func FromStrings(words ...string) *Trie {
	t := New()
	for _, w := range words {
		t.Insert(w)
	}
	return t
}

// Root returns the root node. It is never nil.
func (t *Trie) Root() *Node {
	if t.root == nil {
		t.root = NewNode()
	}
	return t.root
}

// Len returns the number of distinct strings stored with Insert and not since
// removed by Delete.
func (t *Trie) Len() int {
	return len(t.inserted)
}

// Insert stores word. Inserting the empty string marks the root terminal.
func (t *Trie) Insert(word string) {
	n := t.Root()
	r := NewReader(word)
	for {
		u, ok := r.Next()
		if !ok {
			break
		}
		next := n.children[u]
		if next == nil {
			next = NewNode()
			n.Link(u, next)
		}
		n = next
	}
	if !n.terminal {
		n.terminal = true
		if t.inserted == nil {
			t.inserted = make(map[*Node]struct{})
		}
		t.inserted[n] = struct{}{}
	}
}

// StartsWith reports whether some stored string is a prefix of candidate.
//
// The walk stops at the first terminal node reached, so a shorter stored
// prefix masks any longer one on the same path. The root is never consulted,
// so a stored empty string does not match.
func (t *Trie) StartsWith(candidate string) bool {
	if t.root == nil {
		return false
	}
	n := t.root
	r := NewReader(candidate)
	for {
		u, ok := r.Next()
		if !ok {
			return false
		}
		n = n.children[u]
		if n == nil {
			return false
		}
		if n.terminal {
			return true
		}
	}
}

// ContainsExactly reports whether word itself is stored.
func (t *Trie) ContainsExactly(word string) bool {
	if t.root == nil {
		return false
	}
	n := t.root
	r := NewReader(word)
	for {
		u, ok := r.Next()
		if !ok {
			return n.terminal
		}
		n = n.children[u]
		if n == nil {
			return false
		}
	}
}

type pathStep struct {
	parent *Node
	unit   Unit
}

// Delete removes word and prunes every ancestor left childless and
// non-terminal. It returns false if word was not stored.
//
// Delete clears the terminal flag of the node word ends at. If that node is
// shared through Node.Link, every string ending at it is removed; only the
// transitions on word's own path are pruned.
func (t *Trie) Delete(word string) bool {
	if t.root == nil {
		return false
	}

	var path []pathStep
	n := t.root
	r := NewReader(word)
	for {
		u, ok := r.Next()
		if !ok {
			break
		}
		next := n.children[u]
		if next == nil {
			return false
		}
		path = append(path, pathStep{parent: n, unit: u})
		n = next
	}
	if !n.terminal {
		return false
	}
	n.terminal = false
	delete(t.inserted, n)

	for i := len(path) - 1; i >= 0; i-- {
		if n.terminal || len(n.children) > 0 {
			break
		}
		delete(path[i].parent.children, path[i].unit)
		n = path[i].parent
	}
	return true
}
