package flattrie

import "github.com/forestrie/go-flattrie/texttrie"

// RecordSize returns the size, in arena elements, of a record with childCount
// transitions. It returns 0 for an unknown encoding.
func (e Encoding) RecordSize(childCount int) int {
	switch e {
	case EncodingWords:
		return WordRecordSize(childCount)
	case EncodingPacked:
		return PackedRecordSize(childCount)
	default:
		return 0
	}
}

// ElementBytes returns the byte width of one arena element.
func (e Encoding) ElementBytes() int {
	switch e {
	case EncodingWords:
		return 4
	case EncodingPacked:
		return 1
	default:
		return 0
	}
}

// ArenaSize returns the exact arena size, in elements, that compiling the
// graph reachable from root with encoding e requires. Each distinct node
// counts once however many parents reference it.
func ArenaSize(root *texttrie.Node, e Encoding) (uint64, error) {
	if !e.Valid() {
		return 0, ErrBadEncoding
	}
	l, err := computeLayout(root, e)
	if err != nil {
		return 0, err
	}
	return l.size, nil
}
