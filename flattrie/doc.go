package flattrie

/*

# Flat-arena prefix tries

This package compiles a pointer-based `texttrie` graph into a single
contiguous arena of records, then answers prefix queries over that arena
without materialising any node objects.

It follows the same "functional primitives" style as the record helpers it is
built from:

- explicit byte layouts (see `wordrecord.go`, `packedrecord.go`)
- address arithmetic instead of pointer chasing
- exact sizing ahead of allocation

## Compilation

`Compile` makes two passes over the node graph, both driven by an explicit
stack rather than recursion, so trie depth is bounded only by memory:

1. layout: every node reachable from the root is assigned the next free
   address the first time it is popped, and the free cursor advances by that
   node's record size. Nodes are tracked by identity, so a node shared by two
   parents (or reachable through a cycle) is laid out once.
2. serialize: with every address known, each record is written with its
   transition targets already resolved.

The arena is allocated once, between the passes, at exactly the computed size.

## Encodings

	words:   [childCount][terminal][unit0..unitN-1][target0..targetN-1]   uint32 each
	packed:  childCount u32 | terminal u8 | unit u16 * N | target u32 * N  big-endian

Addresses are element offsets: word index or byte offset. The root is at 0.

## Queries

A FlatTrie holds no cursor. `StartsWith` keeps its position in a local
variable; `Cursor` is a value type for callers that want to walk the arena
themselves. A compiled arena is therefore safe for any number of concurrent
readers.

`StartsWith` stops at the first terminal record reached. With {"a", "ab"}
stored, "abc" matches because of "a"; longer overlapping prefixes are never
distinguished.

## FixedTrie

`FixedTrie` is a comparison structure built in place inside a preallocated
arena of first-child / next-sibling records. It cannot size itself exactly, so
an insertion that does not fit fails with `ErrArenaFull`, and `BuildFixed`
retries the whole build at double the capacity.

*/
