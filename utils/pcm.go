// SPDX-License-Identifier: EPL-2.0

package utils

// Float constrains the in-memory sample type. Samples are normalized
// amplitudes in [-1.0, 1.0].
type Float interface {
	~float32 | ~float64
}

// Clamp limits v to the range [lo, hi].
func Clamp[F Float](v, lo, hi F) F {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// PCM16ToSample converts a signed 16-bit PCM value to a normalized sample.
func PCM16ToSample[F Float](v int16) F {
	return F(v) / F(32768.0)
}

// SampleToPCM16 converts a normalized sample to signed 16-bit PCM.
// Out-of-range samples are clamped, never rejected.
func SampleToPCM16[F Float](s F) int16 {
	s = Clamp(s, -1.0, 1.0)
	// 32767 for positive full scale to avoid overflow
	return int16(s * F(32767.0))
}

// PCM8ToSample converts an unsigned 8-bit PCM value to a normalized sample.
// 8-bit PCM is offset-binary; subtracting 128 centers it on zero.
func PCM8ToSample[F Float](v uint8) F {
	return F(int(v)-128) / F(128.0)
}

// SampleToPCM8 converts a normalized sample to unsigned 8-bit PCM.
// Out-of-range samples are clamped, never rejected.
func SampleToPCM8[F Float](s F) uint8 {
	s = Clamp(s, -1.0, 1.0)
	s = (s + 1.0) / 2.0
	return uint8(s * F(255.0))
}
