// Package matcher exposes every trie form behind one narrow prefix-matching
// interface.
package matcher

import (
	"errors"
	"fmt"

	"github.com/forestrie/go-flattrie/flattrie"
	"github.com/forestrie/go-flattrie/texttrie"
)

var ErrUnknownKind = errors.New("matcher: unknown kind")

// PrefixMatcher reports whether any of a fixed set of prefixes is a prefix of
// candidate.
type PrefixMatcher interface {
	Test(candidate string) bool
}

// Kind selects the representation behind a PrefixMatcher.
type Kind uint8

const (
	KindText Kind = iota + 1
	KindWords
	KindPacked
	KindFixed
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindWords:
		return "words"
	case KindPacked:
		return "packed"
	case KindFixed:
		return "fixed"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Kinds lists every supported kind.
var Kinds = []Kind{KindText, KindWords, KindPacked, KindFixed}

type textMatcher struct{ t *texttrie.Trie }

func (m textMatcher) Test(candidate string) bool { return m.t.StartsWith(candidate) }

type flatMatcher struct{ t *flattrie.FlatTrie }

func (m flatMatcher) Test(candidate string) bool { return m.t.StartsWith(candidate) }

type fixedMatcher struct{ t *flattrie.FixedTrie }

func (m fixedMatcher) Test(candidate string) bool { return m.t.StartsWith(candidate) }

// FromTextTrie adapts an authoring trie.
func FromTextTrie(t *texttrie.Trie) PrefixMatcher { return textMatcher{t: t} }

// FromFlatTrie adapts a compiled trie.
func FromFlatTrie(t *flattrie.FlatTrie) PrefixMatcher { return flatMatcher{t: t} }

// FromFixedTrie adapts a fixed-capacity trie.
func FromFixedTrie(t *flattrie.FixedTrie) PrefixMatcher { return fixedMatcher{t: t} }

// New builds a PrefixMatcher of the given kind over prefixes. opts are
// forwarded to the compiler or fixed-arena builder.
func New(kind Kind, prefixes []string, opts ...flattrie.Option) (PrefixMatcher, error) {
	switch kind {
	case KindText:
		return FromTextTrie(texttrie.FromStrings(prefixes...)), nil
	case KindWords, KindPacked:
		enc := flattrie.EncodingWords
		if kind == KindPacked {
			enc = flattrie.EncodingPacked
		}
		ft, err := flattrie.Compile(texttrie.FromStrings(prefixes...).Root(), enc, opts...)
		if err != nil {
			return nil, err
		}
		return FromFlatTrie(ft), nil
	case KindFixed:
		f, err := flattrie.BuildFixed(prefixes, flattrie.EstimateRecords(prefixes), opts...)
		if err != nil {
			return nil, err
		}
		return FromFixedTrie(f), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
}

// TestAll applies m to every candidate.
func TestAll(m PrefixMatcher, candidates []string) []bool {
	out := make([]bool, len(candidates))
	for i, c := range candidates {
		out[i] = m.Test(c)
	}
	return out
}
