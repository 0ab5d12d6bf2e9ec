// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestReadUint32(t *testing.T) {
	t.Parallel()

	buf := []byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55}

	if got := ReadUint32(buf, 1, binary.LittleEndian); got != 0x55443322 {
		t.Errorf("ReadUint32(LE) = %#x, want 0x55443322", got)
	}

	if got := ReadUint32(buf, 1, binary.BigEndian); got != 0x22334455 {
		t.Errorf("ReadUint32(BE) = %#x, want 0x22334455", got)
	}
}

func TestReadInt16(t *testing.T) {
	t.Parallel()

	buf := []byte{0xFF, 0x00, 0x40}

	if got := ReadInt16(buf, 1, binary.LittleEndian); got != 0x4000 {
		t.Errorf("ReadInt16(LE) = %#x, want 0x4000", got)
	}

	if got := ReadInt16(buf, 0, binary.BigEndian); got != -256 {
		t.Errorf("ReadInt16(BE) = %d, want -256", got)
	}

	// negative value in little-endian order
	neg := []byte{0x00, 0x80}
	if got := ReadInt16(neg, 0, binary.LittleEndian); got != -32768 {
		t.Errorf("ReadInt16(LE) = %d, want -32768", got)
	}
}

func TestIndexOfTag(t *testing.T) {
	t.Parallel()

	haystack := []byte("RIFF....WAVEfmt ....data....")

	if got := IndexOfTag(haystack, []byte("fmt ")); got != 12 {
		t.Errorf("IndexOfTag(fmt ) = %d, want 12", got)
	}

	if got := IndexOfTag(haystack, []byte("data")); got != 20 {
		t.Errorf("IndexOfTag(data) = %d, want 20", got)
	}

	if got := IndexOfTag(haystack, []byte("LIST")); got != -1 {
		t.Errorf("IndexOfTag(LIST) = %d, want -1", got)
	}
}

func TestIndexOfTag_FirstOccurrence(t *testing.T) {
	t.Parallel()

	haystack := []byte("xxdataxxdataxx")
	if got := IndexOfTag(haystack, []byte("data")); got != 2 {
		t.Errorf("IndexOfTag() = %d, want first occurrence at 2", got)
	}
}

func TestAppendUint32(t *testing.T) {
	t.Parallel()

	got := AppendUint32(nil, 0x11223344, binary.LittleEndian)
	if !bytes.Equal(got, []byte{0x44, 0x33, 0x22, 0x11}) {
		t.Errorf("AppendUint32(LE) = %v", got)
	}

	got = AppendUint32([]byte{0xAA}, 0x11223344, binary.BigEndian)
	if !bytes.Equal(got, []byte{0xAA, 0x11, 0x22, 0x33, 0x44}) {
		t.Errorf("AppendUint32(BE) = %v", got)
	}
}

func TestAppendUint16(t *testing.T) {
	t.Parallel()

	got := AppendUint16(nil, 0x1234, binary.LittleEndian)
	if !bytes.Equal(got, []byte{0x34, 0x12}) {
		t.Errorf("AppendUint16(LE) = %v", got)
	}

	got = AppendUint16(nil, 0x1234, binary.BigEndian)
	if !bytes.Equal(got, []byte{0x12, 0x34}) {
		t.Errorf("AppendUint16(BE) = %v", got)
	}
}

func TestAppendReadRoundTrip(t *testing.T) {
	t.Parallel()

	buf := AppendUint32(nil, 44100, binary.LittleEndian)
	buf = AppendUint16(buf, 16, binary.LittleEndian)

	if got := ReadUint32(buf, 0, binary.LittleEndian); got != 44100 {
		t.Errorf("round trip uint32 = %d, want 44100", got)
	}
	if got := ReadInt16(buf, 4, binary.LittleEndian); got != 16 {
		t.Errorf("round trip int16 = %d, want 16", got)
	}
}
