package flattrie

import "encoding/binary"

func readU16BE(b []byte) uint16 { return binary.BigEndian.Uint16(b) }
func readU32BE(b []byte) uint32 { return binary.BigEndian.Uint32(b) }

func writeU16BE(dst []byte, v uint16) { binary.BigEndian.PutUint16(dst, v) }
func writeU32BE(dst []byte, v uint32) { binary.BigEndian.PutUint32(dst, v) }

func boolByte(v bool) byte {
	if v {
		return 1
	}
	return 0
}

func boolWord(v bool) uint32 {
	if v {
		return 1
	}
	return 0
}
