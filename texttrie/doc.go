package texttrie

/*

# Authoring trie for prefix matchers

This package provides the conventional, pointer-based trie that prefix sets are
built in before being compiled into a flat arena (see `go-flattrie/flattrie`).

It favours ease of construction over query speed:

- one heap node per transition state
- a map per node from transition unit to child
- no parent pointers; the root owns the whole reachable graph

## Alphabet

Strings are walked as UTF-16 code units (`Unit`). Runes outside the basic
multilingual plane contribute two units. This keeps the authoring trie shape
identical to the packed arena encoding, whose transition field is 2 bytes wide.

See `Reader` for the allocation-free string to unit conversion.

## Prefix semantics

`StartsWith` answers "is any stored string a prefix of the candidate", and
stops at the first terminal node on the walk. `ContainsExactly` is plain set
membership.

*/
