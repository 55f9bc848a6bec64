package flattrie

import (
	"bytes"
	"fmt"
)

// Binary image layout, big-endian:
//
//	+----------------------+  16B header
//	| magic "FTR1"   [0:4] |
//	| version        [4]   |
//	| encoding       [5]   |
//	| reserved       [6:8] |
//	| records        [8:12]|
//	| arenaBytes    [12:16]|
//	+----------------------+
//	| arena                |  words are written as u32 BE
//	+----------------------+
const (
	ImageMagicV1       = "FTR1"
	ImageVersionV1     = 1
	ImageHeaderBytesV1 = 16
)

type ImageHeaderV1 struct {
	Encoding   Encoding
	Records    uint32
	ArenaBytes uint32
}

// EncodeImageHeaderV1 writes a V1 header into dst.
func EncodeImageHeaderV1(dst []byte, h ImageHeaderV1) error {
	if len(dst) < ImageHeaderBytesV1 {
		return ErrBadSize
	}
	if !h.Encoding.Valid() {
		return ErrBadEncoding
	}

	copy(dst[0:4], []byte(ImageMagicV1))
	dst[4] = ImageVersionV1
	dst[5] = byte(h.Encoding)
	dst[6] = 0
	dst[7] = 0
	writeU32BE(dst[8:12], h.Records)
	writeU32BE(dst[12:16], h.ArenaBytes)
	return nil
}

// DecodeImageHeaderV1 decodes a V1 header from src.
//
// ok=false indicates the header is zero-filled / uninitialized.
func DecodeImageHeaderV1(src []byte) (h ImageHeaderV1, ok bool, err error) {
	if len(src) < ImageHeaderBytesV1 {
		return ImageHeaderV1{}, false, ErrBadSize
	}
	if bytes.Equal(src[0:4], []byte{0, 0, 0, 0}) {
		return ImageHeaderV1{}, false, nil
	}
	if string(src[0:4]) != ImageMagicV1 {
		return ImageHeaderV1{}, false, ErrBadMagic
	}
	if src[4] != ImageVersionV1 {
		return ImageHeaderV1{}, false, ErrBadVersion
	}

	h.Encoding = Encoding(src[5])
	if !h.Encoding.Valid() {
		return ImageHeaderV1{}, false, ErrBadEncoding
	}
	h.Records = readU32BE(src[8:12])
	h.ArenaBytes = readU32BE(src[12:16])
	return h, true, nil
}

// ImageBytes returns the length of the binary image of t.
func (t *FlatTrie) ImageBytes() uint64 {
	return ImageHeaderBytesV1 + uint64(t.Size())*uint64(t.enc.ElementBytes())
}

// MarshalBinary encodes t as a V1 image.
func (t *FlatTrie) MarshalBinary() ([]byte, error) {
	arenaBytes := uint64(t.Size()) * uint64(t.enc.ElementBytes())
	if arenaBytes > MaxArenaSize || t.stats.Records > MaxArenaSize {
		return nil, ErrArenaTooLarge
	}

	out := make([]byte, ImageHeaderBytesV1+arenaBytes)
	err := EncodeImageHeaderV1(out, ImageHeaderV1{
		Encoding:   t.enc,
		Records:    uint32(t.stats.Records),
		ArenaBytes: uint32(arenaBytes),
	})
	if err != nil {
		return nil, err
	}

	body := out[ImageHeaderBytesV1:]
	switch t.enc {
	case EncodingWords:
		for i, w := range t.words {
			writeU32BE(body[4*i:4*i+4], w)
		}
	case EncodingPacked:
		copy(body, t.arena)
	}
	return out, nil
}

// UnmarshalBinary decodes a V1 image into t and validates the arena.
// The packed arena is copied, so data may be reused by the caller.
func (t *FlatTrie) UnmarshalBinary(data []byte) error {
	h, ok, err := DecodeImageHeaderV1(data)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: image header not initialized", ErrBadMagic)
	}

	body := data[ImageHeaderBytesV1:]
	if uint64(len(body)) != uint64(h.ArenaBytes) {
		return fmt.Errorf("%w: want=%d, got=%d", ErrBadSize, h.ArenaBytes, len(body))
	}

	decoded := FlatTrie{enc: h.Encoding}
	switch h.Encoding {
	case EncodingWords:
		if len(body)%4 != 0 {
			return fmt.Errorf("%w: %d bytes is not a whole number of words", ErrBadSize, len(body))
		}
		decoded.words = make([]uint32, len(body)/4)
		for i := range decoded.words {
			decoded.words[i] = readU32BE(body[4*i : 4*i+4])
		}
	case EncodingPacked:
		decoded.arena = bytes.Clone(body)
	}

	st, err := decoded.validate()
	if err != nil {
		return err
	}
	if st.Records != uint64(h.Records) {
		return fmt.Errorf("%w: header=%d, arena=%d", ErrBadRecordCount, h.Records, st.Records)
	}
	decoded.stats = st

	*t = decoded
	return nil
}
