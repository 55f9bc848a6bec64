package texttrie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStartsWith tests:
//
// 1. a stored string matches itself and any extension of itself
// 2. a strict prefix of a stored string does not match
// 3. a diverging candidate does not match
func TestStartsWith(t *testing.T) {
	trie := FromStrings("a.b", "a.c", "d.e")

	tests := []struct {
		candidate string
		expected  bool
	}{
		{"a", false},
		{"a.", false},
		{"a.b", true},
		{"a.b.c", true},
		{"a.c", true},
		{"a.d", false},
		{"d.e.f", true},
		{"x", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.candidate, func(t *testing.T) {
			assert.Equal(t, tt.expected, trie.StartsWith(tt.candidate))
		})
	}
}

func TestExactVersusPrefix(t *testing.T) {
	trie := FromStrings("ab")

	assert.False(t, trie.ContainsExactly("a"))
	assert.False(t, trie.StartsWith("a"))
	assert.True(t, trie.ContainsExactly("ab"))
	assert.True(t, trie.StartsWith("ab"))
	assert.True(t, trie.StartsWith("abc"))
	assert.False(t, trie.ContainsExactly("abc"))
}

func TestStartsWithShortestPrefixWins(t *testing.T) {
	trie := FromStrings("a", "ab")

	assert.True(t, trie.StartsWith("abc"))
	assert.True(t, trie.StartsWith("a"))
	assert.True(t, trie.ContainsExactly("ab"))
}

func TestEmptyString(t *testing.T) {
	trie := New()
	assert.False(t, trie.ContainsExactly(""))
	assert.False(t, trie.StartsWith(""))

	trie.Insert("")
	assert.True(t, trie.ContainsExactly(""))
	assert.True(t, trie.Root().Terminal())
	// The root is never consulted by a prefix walk.
	assert.False(t, trie.StartsWith(""))
	assert.False(t, trie.StartsWith("x"))
}

func TestZeroValue(t *testing.T) {
	var trie Trie

	assert.False(t, trie.StartsWith("a"))
	assert.False(t, trie.ContainsExactly("a"))
	assert.False(t, trie.Delete("a"))
	assert.Equal(t, 0, trie.Len())

	trie.Insert("abc")
	assert.True(t, trie.StartsWith("abcd"))
	assert.Equal(t, 1, trie.Len())
}

func TestInsertCountsDistinct(t *testing.T) {
	trie := FromStrings("one", "two", "one", "three")
	assert.Equal(t, 3, trie.Len())
}

func TestDeletePrunes(t *testing.T) {
	trie := FromStrings("abc", "abd", "x")

	require.True(t, trie.Delete("abc"))
	assert.False(t, trie.ContainsExactly("abc"))
	assert.True(t, trie.ContainsExactly("abd"))
	assert.Equal(t, 2, trie.Len())

	// "ab" is still needed by "abd".
	ab := trie.Root().Child('a').Child('b')
	require.NotNil(t, ab)
	assert.Nil(t, ab.Child('c'))
	assert.NotNil(t, ab.Child('d'))

	require.True(t, trie.Delete("abd"))
	assert.Nil(t, trie.Root().Child('a'))
	assert.NotNil(t, trie.Root().Child('x'))

	assert.False(t, trie.Delete("abd"))
	assert.False(t, trie.Delete("nope"))
	assert.Equal(t, 1, trie.Len())
}

func TestDeleteKeepsTerminalAncestor(t *testing.T) {
	trie := FromStrings("ab", "abcd")

	require.True(t, trie.Delete("abcd"))
	assert.True(t, trie.ContainsExactly("ab"))
	assert.Equal(t, 0, trie.Root().Child('a').Child('b').Len())

	// A non-terminal interior node is not a stored string.
	assert.False(t, trie.Delete("a"))
}

func TestNodeUnitsSorted(t *testing.T) {
	trie := FromStrings("c", "a", "b", "ab")

	assert.Equal(t, []Unit{'a', 'b', 'c'}, trie.Root().Units())
	assert.Equal(t, 3, trie.Root().Len())
}

func TestLinkSharesNode(t *testing.T) {
	shared := NewNode()
	shared.SetTerminal(true)

	trie := New()
	trie.Root().Link('x', shared)
	trie.Root().Link('y', shared)

	assert.True(t, trie.StartsWith("x"))
	assert.True(t, trie.StartsWith("yz"))
	assert.Same(t, trie.Root().Child('x'), trie.Root().Child('y'))
}

// TestDeleteSharedNode tests:
//
// 1. deleting a terminal that Insert never counted leaves Len at zero
// 2. clearing a shared terminal removes the string on every path to it
// 3. only the deleted path's transition is pruned
func TestDeleteSharedNode(t *testing.T) {
	shared := NewNode()
	shared.SetTerminal(true)

	trie := New()
	trie.Root().Link('x', shared)
	trie.Root().Link('y', shared)
	require.Equal(t, 0, trie.Len())

	assert.True(t, trie.Delete("x"))
	assert.Equal(t, 0, trie.Len())
	assert.False(t, trie.ContainsExactly("y"))
	assert.False(t, trie.StartsWith("y"))
	assert.Nil(t, trie.Root().Child('x'))
	assert.Same(t, shared, trie.Root().Child('y'))

	// Once Insert counts the shared terminal, a delete through the other path
	// uncounts it.
	trie.Insert("y")
	trie.Root().Link('x', shared)
	require.Equal(t, 1, trie.Len())
	assert.True(t, trie.Delete("x"))
	assert.Equal(t, 0, trie.Len())
	assert.False(t, trie.Delete("y"))
	assert.Equal(t, 0, trie.Len())
}

func TestNonBMPUnits(t *testing.T) {
	// U+1F600 is a surrogate pair in UTF-16.
	trie := FromStrings("a\U0001F600")

	first := trie.Root().Child('a')
	require.NotNil(t, first)
	require.Equal(t, 1, first.Len())
	assert.Equal(t, []Unit{0xD83D}, first.Units())
	assert.True(t, trie.StartsWith("a\U0001F600b"))
	assert.False(t, trie.StartsWith("a\U0001F601"))
}
