// SPDX-License-Identifier: EPL-2.0

// Package wav converts between WAV byte streams and normalized sample
// buffers.
//
// Only uncompressed PCM is handled: 8, 16 or 24 bits per sample, mono
// or stereo. Compressed formats (including IEEE-float WAV) and wider
// channel layouts are rejected with typed errors rather than decoded
// on a best-effort basis.
//
// # Decoding
//
//	buf, err := wav.Decode[float64](data)
//	if err != nil {
//	    // errors.Is against the package sentinels to classify
//	}
//
// The decoder validates the RIFF/WAVE container tags, locates the
// "fmt " and "data" chunks, cross-checks the header's byte rate and
// block align against the values derivable from the other fields, and
// converts the interleaved PCM payload into per-channel normalized
// samples. A failing decode never returns a partially filled buffer.
//
// # Encoding
//
//	data, err := wav.Encode(buf)
//
// The encoder emits the canonical 44-byte PCM header followed by the
// interleaved payload, then re-derives the size fields from the bytes
// actually written as a self-consistency check. Samples outside
// [-1.0, 1.0] are clamped silently.
//
// # Known limitation
//
// Chunks are located by searching the whole byte stream for the
// "fmt " and "data" tag literals instead of walking chunk sizes. This
// tolerates unusual chunk ordering and extra chunks between the header
// and the payload, but it can be fooled by a tag byte pattern that
// happens to occur inside another chunk's payload before the real
// chunk. This is a deliberate trade-off carried over from the design
// this package follows.
package wav
