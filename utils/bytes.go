// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"bytes"
	"encoding/binary"
)

// ReadUint32 reads 4 bytes starting at off and composes them according to
// order. No bounds checking is performed; callers validate offsets first.
func ReadUint32(buf []byte, off int, order binary.ByteOrder) uint32 {
	return order.Uint32(buf[off : off+4])
}

// ReadInt16 reads 2 bytes starting at off and composes them according to
// order. No bounds checking is performed; callers validate offsets first.
func ReadInt16(buf []byte, off int, order binary.ByteOrder) int16 {
	return int16(order.Uint16(buf[off : off+2]))
}

// IndexOfTag returns the index of the first occurrence of tag in buf,
// or -1 if tag is not present.
func IndexOfTag(buf, tag []byte) int {
	return bytes.Index(buf, tag)
}

// AppendUint32 appends v to dst as 4 bytes in the given order.
func AppendUint32(dst []byte, v uint32, order binary.ByteOrder) []byte {
	var b [4]byte
	order.PutUint32(b[:], v)
	return append(dst, b[:]...)
}

// AppendUint16 appends v to dst as 2 bytes in the given order.
func AppendUint16(dst []byte, v uint16, order binary.ByteOrder) []byte {
	var b [2]byte
	order.PutUint16(b[:], v)
	return append(dst, b[:]...)
}
