// Package snapshot persists compiled tries as a CBOR envelope carrying an
// identity and the trie's binary image.
package snapshot

import (
	"errors"
	"fmt"

	dtcbor "github.com/datatrails/go-datatrails-common/cbor"
	"github.com/forestrie/go-flattrie/flattrie"
	"github.com/google/uuid"
)

// FormatV1 identifies an envelope whose Image is a flattrie V1 binary image.
const FormatV1 = 1

var (
	ErrBadFormat = errors.New("snapshot: format unsupported")
	ErrMissingID = errors.New("snapshot: id missing")
)

// Snapshot is the persisted form of a compiled trie.
type Snapshot struct {
	ID     uuid.UUID `cbor:"1,keyasint"`
	Format uint8     `cbor:"2,keyasint"`
	Image  []byte    `cbor:"3,keyasint"`
}

// New captures t under a fresh random id.
func New(t *flattrie.FlatTrie) (Snapshot, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return Snapshot{}, err
	}
	return NewWithID(id, t)
}

// NewWithID captures t under id.
func NewWithID(id uuid.UUID, t *flattrie.FlatTrie) (Snapshot, error) {
	if id == uuid.Nil {
		return Snapshot{}, ErrMissingID
	}
	image, err := t.MarshalBinary()
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{ID: id, Format: FormatV1, Image: image}, nil
}

// Trie decodes and validates the captured trie.
func (s Snapshot) Trie() (*flattrie.FlatTrie, error) {
	if s.Format != FormatV1 {
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, s.Format)
	}
	var t flattrie.FlatTrie
	if err := t.UnmarshalBinary(s.Image); err != nil {
		return nil, err
	}
	return &t, nil
}

// Codec encodes snapshots deterministically, so equal snapshots produce equal
// bytes.
type Codec struct {
	cborCodec dtcbor.CBORCodec
}

func NewCodec() (Codec, error) {
	codec, err := dtcbor.NewCBORCodec(
		dtcbor.NewDeterministicEncOpts(),
		dtcbor.NewDeterministicDecOpts(), // duplicate keys and tags rejected
	)
	if err != nil {
		return Codec{}, err
	}
	return Codec{cborCodec: codec}, nil
}

// Marshal encodes s.
func (c Codec) Marshal(s Snapshot) ([]byte, error) {
	if s.ID == uuid.Nil {
		return nil, ErrMissingID
	}
	return c.cborCodec.MarshalCBOR(s)
}

// Unmarshal decodes data and checks the envelope fields. The image itself is
// validated by Snapshot.Trie.
func (c Codec) Unmarshal(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := c.cborCodec.UnmarshalInto(data, &s); err != nil {
		return Snapshot{}, err
	}
	if s.ID == uuid.Nil {
		return Snapshot{}, ErrMissingID
	}
	if s.Format != FormatV1 {
		return Snapshot{}, fmt.Errorf("%w: %d", ErrBadFormat, s.Format)
	}
	return s, nil
}
