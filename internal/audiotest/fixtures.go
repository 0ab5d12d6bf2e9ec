// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides shared fixtures for the codec tests:
// hand-built WAV byte streams with controllable header fields, and an
// in-memory ByteStore implementation.
package audiotest

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
)

// WAVSpec describes a WAV byte stream to fabricate. ByteRate and
// BlockAlign are derived from the other fields when left zero, so
// tests can force inconsistent values explicitly.
type WAVSpec struct {
	AudioFormat   uint16
	Channels      uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	Payload       []byte
}

// Bytes lays the spec out as a complete little-endian WAV stream.
// It builds exactly what the header fields say, valid or not.
func (s WAVSpec) Bytes() []byte {
	byteRate := s.ByteRate
	if byteRate == 0 {
		byteRate = s.SampleRate * uint32(s.Channels) * uint32(s.BitsPerSample/8)
	}
	blockAlign := s.BlockAlign
	if blockAlign == 0 {
		blockAlign = s.Channels * (s.BitsPerSample / 8)
	}

	dataSize := uint32(len(s.Payload))
	buf := new(bytes.Buffer)

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, 36+dataSize)
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, s.AudioFormat)
	binary.Write(buf, binary.LittleEndian, s.Channels)
	binary.Write(buf, binary.LittleEndian, s.SampleRate)
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, s.BitsPerSample)

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, dataSize)
	buf.Write(s.Payload)

	return buf.Bytes()
}

// PCM16Payload packs samples as little-endian 16-bit PCM.
func PCM16Payload(samples []int16) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(s))
	}
	return out
}

// PCM16WAV builds a valid PCM WAV stream from 16-bit samples. samples
// are interleaved when channels is 2.
func PCM16WAV(sampleRate, channels int, samples []int16) []byte {
	return WAVSpec{
		AudioFormat:   1,
		Channels:      uint16(channels),
		SampleRate:    uint32(sampleRate),
		BitsPerSample: 16,
		Payload:       PCM16Payload(samples),
	}.Bytes()
}

// Sine generates n samples of a sine wave at freq Hz.
func Sine(sampleRate, n int, freq float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		t := float64(i) / float64(sampleRate)
		out[i] = math.Sin(2 * math.Pi * freq * t)
	}
	return out
}

// MemStore is an in-memory ByteStore for tests.
type MemStore struct {
	Files map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{Files: make(map[string][]byte)}
}

func (m *MemStore) ReadFile(path string) ([]byte, error) {
	data, ok := m.Files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *MemStore) WriteFile(path string, data []byte) error {
	out := make([]byte, len(data))
	copy(out, data)
	m.Files[path] = out
	return nil
}
