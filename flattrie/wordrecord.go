package flattrie

// Word record layout, one uint32 per field:
//
//	words[at+0]          childCount
//	words[at+1]          terminal (0 or 1)
//	words[at+2 : +n]     transition units
//	words[at+2+n : +n]   target addresses
const (
	wordCountOff    = 0
	wordTerminalOff = 1
	WordHeaderWords = 2
	WordEdgeWords   = 2
)

// WordRecordSize returns the number of words a record with childCount
// transitions occupies.
func WordRecordSize(childCount int) int {
	return WordHeaderWords + WordEdgeWords*childCount
}

// WordChildCount returns the transition count of the record at at.
func WordChildCount(words []uint32, at Addr) int {
	return int(words[int(at)+wordCountOff])
}

// WordTerminal returns the terminal flag of the record at at.
func WordTerminal(words []uint32, at Addr) bool {
	return words[int(at)+wordTerminalOff] != 0
}

// WordChildUnit returns the label of transition i of the record at at.
func WordChildUnit(words []uint32, at Addr, i int) Unit {
	return Unit(words[int(at)+WordHeaderWords+i])
}

// WordChildTarget returns the target address of transition i of the record at at.
func WordChildTarget(words []uint32, at Addr, i int) Addr {
	n := WordChildCount(words, at)
	return Addr(words[int(at)+WordHeaderWords+n+i])
}

// WordWriteRecord writes a record in-place. len(units) must equal len(targets).
func WordWriteRecord(words []uint32, at Addr, terminal bool, units []Unit, targets []Addr) {
	n := len(units)
	rec := words[int(at) : int(at)+WordRecordSize(n)]
	rec[wordCountOff] = uint32(n)
	rec[wordTerminalOff] = boolWord(terminal)
	for i, u := range units {
		rec[WordHeaderWords+i] = uint32(u)
	}
	for i, a := range targets {
		rec[WordHeaderWords+n+i] = uint32(a)
	}
}
