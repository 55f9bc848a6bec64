package flattrie

import (
	"testing"

	"github.com/forestrie/go-flattrie/texttrie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageRoundTrip(t *testing.T) {
	trie := texttrie.FromStrings("alpha", "beta", "be", "\U0001F600x")

	for _, enc := range encodings {
		t.Run(enc.String(), func(t *testing.T) {
			ft, err := Compile(trie.Root(), enc)
			require.NoError(t, err)

			data, err := ft.MarshalBinary()
			require.NoError(t, err)
			require.Equal(t, ft.ImageBytes(), uint64(len(data)))

			h, ok, err := DecodeImageHeaderV1(data)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, enc, h.Encoding)
			assert.Equal(t, uint32(ft.Stats().Records), h.Records)

			var got FlatTrie
			require.NoError(t, got.UnmarshalBinary(data))
			assert.Equal(t, ft.Words(), got.Words())
			assert.Equal(t, ft.Bytes(), got.Bytes())
			assert.Equal(t, ft.Stats(), got.Stats())

			for _, c := range []string{"alphabet", "bet", "b", "\U0001F600xy", "\U0001F600"} {
				assert.Equal(t, trie.StartsWith(c), got.StartsWith(c), c)
			}
		})
	}
}

func TestImageRejectsCorruption(t *testing.T) {
	ft, err := CompilePacked(texttrie.FromStrings("ab", "ac"))
	require.NoError(t, err)
	good, err := ft.MarshalBinary()
	require.NoError(t, err)

	corrupt := func(edit func(b []byte) []byte) []byte {
		return edit(append([]byte{}, good...))
	}

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{
			name: "short header",
			data: good[:ImageHeaderBytesV1-1],
			want: ErrBadSize,
		},
		{
			name: "zero header",
			data: make([]byte, ImageHeaderBytesV1+5),
			want: ErrBadMagic,
		},
		{
			name: "bad magic",
			data: corrupt(func(b []byte) []byte { b[0] = 'X'; return b }),
			want: ErrBadMagic,
		},
		{
			name: "bad version",
			data: corrupt(func(b []byte) []byte { b[4] = 2; return b }),
			want: ErrBadVersion,
		},
		{
			name: "bad encoding",
			data: corrupt(func(b []byte) []byte { b[5] = 7; return b }),
			want: ErrBadEncoding,
		},
		{
			name: "truncated arena",
			data: good[:len(good)-1],
			want: ErrBadSize,
		},
		{
			name: "record count",
			data: corrupt(func(b []byte) []byte { b[11]++; return b }),
			want: ErrBadRecordCount,
		},
		{
			name: "target not a record start",
			data: corrupt(func(b []byte) []byte {
				// root record: count(4) terminal(1) units(2*1) then target(4)
				b[ImageHeaderBytesV1+PackedHeaderBytes+PackedUnitBytes+3]++
				return b
			}),
			want: ErrBadTarget,
		},
		{
			name: "terminal flag not 0 or 1",
			data: corrupt(func(b []byte) []byte {
				b[ImageHeaderBytesV1+PackedCountBytes] = 2
				return b
			}),
			want: ErrBadRecord,
		},
		{
			name: "child count overruns arena",
			data: corrupt(func(b []byte) []byte {
				b[ImageHeaderBytesV1] = 0x7f
				return b
			}),
			want: ErrBadRecord,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got FlatTrie
			err := got.UnmarshalBinary(tt.data)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFromArenas(t *testing.T) {
	ft, err := CompileWords(texttrie.FromStrings("xy"))
	require.NoError(t, err)

	again, err := FromWords(ft.Words())
	require.NoError(t, err)
	assert.Equal(t, ft.Stats(), again.Stats())
	assert.True(t, again.StartsWith("xyz"))

	_, err = FromBytes(nil)
	require.ErrorIs(t, err, ErrBadSize)

	// A single packed header that claims one child with no room for it.
	_, err = FromBytes([]byte{0, 0, 0, 1, 0})
	require.ErrorIs(t, err, ErrBadRecord)

	// Trailing bytes too short for another record header.
	_, err = FromBytes([]byte{0, 0, 0, 0, 0, 0})
	require.ErrorIs(t, err, ErrBadRecord)

	// A word unit above 16 bits would otherwise truncate to 'a'.
	_, err = FromWords([]uint32{1, 0, 0x10061, 4, 0, 1})
	require.ErrorIs(t, err, ErrBadRecord)

	_, err = FromWords([]uint32{0, 2})
	require.ErrorIs(t, err, ErrBadRecord)
}

func TestImageRejectsWideWordUnit(t *testing.T) {
	ft, err := CompileWords(texttrie.FromStrings("xy"))
	require.NoError(t, err)
	data, err := ft.MarshalBinary()
	require.NoError(t, err)

	// Root record unit is word 2, stored u32 BE; set its high half.
	data[ImageHeaderBytesV1+4*WordHeaderWords+1] = 1

	var got FlatTrie
	require.ErrorIs(t, got.UnmarshalBinary(data), ErrBadRecord)
}

func TestFromArenasCopy(t *testing.T) {
	words := []uint32{1, 0, 'a', 4, 0, 1}
	wt, err := FromWords(words)
	require.NoError(t, err)

	packed, err := CompilePacked(texttrie.FromStrings("a"))
	require.NoError(t, err)
	arena := append([]byte{}, packed.Bytes()...)
	pt, err := FromBytes(arena)
	require.NoError(t, err)

	words[2] = 'b'
	arena[PackedHeaderBytes+1] = 'b'

	for _, ft := range []*FlatTrie{wt, pt} {
		assert.True(t, ft.StartsWith("a"), ft.Encoding().String())
		assert.False(t, ft.StartsWith("b"), ft.Encoding().String())
		require.NoError(t, ft.Validate())
	}
}

func TestZeroValueFlatTrie(t *testing.T) {
	var ft FlatTrie

	assert.False(t, ft.StartsWith("a"))
	assert.False(t, ft.StartsWith(""))
	assert.False(t, ft.ContainsExactly(""))
	assert.False(t, ft.ContainsExactly("a"))
	assert.Equal(t, 0, ft.Root().ChildCount())
	assert.False(t, ft.Root().Terminal())
	_, ok := ft.Root().Step('a')
	assert.False(t, ok)
	require.ErrorIs(t, ft.Validate(), ErrBadEncoding)
}
