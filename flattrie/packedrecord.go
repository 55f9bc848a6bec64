package flattrie

// Packed record layout, big-endian:
//
//	[0:4]              childCount u32
//	[4]                terminal (0 or 1)
//	[5 : 5+2n]         transition units, u16 each
//	[5+2n : 5+6n]      target addresses, u32 each
const (
	PackedCountBytes    = 4
	PackedTerminalBytes = 1
	PackedUnitBytes     = 2
	PackedAddrBytes     = 4

	PackedHeaderBytes = PackedCountBytes + PackedTerminalBytes
	PackedEdgeBytes   = PackedUnitBytes + PackedAddrBytes

	packedTerminalOff = PackedCountBytes
)

// PackedRecordSize returns the number of bytes a record with childCount
// transitions occupies.
func PackedRecordSize(childCount int) int {
	return PackedHeaderBytes + PackedEdgeBytes*childCount
}

// PackedChildCount returns the transition count of the record at at.
func PackedChildCount(arena []byte, at Addr) int {
	return int(readU32BE(arena[at : at+PackedCountBytes]))
}

// PackedTerminal returns the terminal flag of the record at at.
func PackedTerminal(arena []byte, at Addr) bool {
	return arena[int(at)+packedTerminalOff] != 0
}

// PackedChildUnit returns the label of transition i of the record at at.
func PackedChildUnit(arena []byte, at Addr, i int) Unit {
	off := int(at) + PackedHeaderBytes + PackedUnitBytes*i
	return readU16BE(arena[off : off+PackedUnitBytes])
}

// PackedChildTarget returns the target address of transition i of the record at at.
func PackedChildTarget(arena []byte, at Addr, i int) Addr {
	n := PackedChildCount(arena, at)
	off := int(at) + PackedHeaderBytes + PackedUnitBytes*n + PackedAddrBytes*i
	return Addr(readU32BE(arena[off : off+PackedAddrBytes]))
}

// PackedWriteRecord writes a record in-place. len(units) must equal len(targets).
func PackedWriteRecord(arena []byte, at Addr, terminal bool, units []Unit, targets []Addr) {
	n := len(units)
	rec := arena[int(at) : int(at)+PackedRecordSize(n)]
	writeU32BE(rec[0:PackedCountBytes], uint32(n))
	rec[packedTerminalOff] = boolByte(terminal)

	off := PackedHeaderBytes
	for _, u := range units {
		writeU16BE(rec[off:off+PackedUnitBytes], u)
		off += PackedUnitBytes
	}
	for _, a := range targets {
		writeU32BE(rec[off:off+PackedAddrBytes], uint32(a))
		off += PackedAddrBytes
	}
}
