// SPDX-License-Identifier: EPL-2.0

package audio

import "github.com/ik5/wavebuf/utils"

// Resampled returns a new buffer converted to targetRate using cubic
// interpolation. Works for both upsampling and downsampling; channel
// count and bit depth are preserved. A non-positive targetRate or a
// rate equal to the current one returns a plain copy.
func (b *Buffer[F]) Resampled(targetRate int) *Buffer[F] {
	out := &Buffer[F]{
		sampleRate: b.sampleRate,
		bitDepth:   b.bitDepth,
	}

	srcLen := b.NumSamplesPerChannel()
	if targetRate <= 0 || targetRate == b.sampleRate || b.sampleRate <= 0 || srcLen == 0 {
		out.Samples = make([][]F, b.NumChannels())
		for ch := range b.Samples {
			out.Samples[ch] = make([]F, srcLen)
			copy(out.Samples[ch], b.Samples[ch])
		}
		if targetRate > 0 {
			out.sampleRate = targetRate
		}
		return out
	}

	// srcRate / dstRate: how many source samples advance per output sample
	ratio := float64(b.sampleRate) / float64(targetRate)
	dstLen := int(float64(srcLen) * float64(targetRate) / float64(b.sampleRate))
	if dstLen < 1 {
		dstLen = 1
	}

	out.sampleRate = targetRate
	out.Samples = make([][]F, b.NumChannels())

	for ch := range b.Samples {
		src := b.Samples[ch]
		dst := make([]F, dstLen)

		// clamp reads near the edges to the first/last sample
		at := func(i int) F {
			if i < 0 {
				i = 0
			}
			if i >= srcLen {
				i = srcLen - 1
			}
			return src[i]
		}

		for i := 0; i < dstLen; i++ {
			pos := float64(i) * ratio
			idx := int(pos)
			frac := F(pos - float64(idx))

			dst[i] = utils.CubicInterpolate(
				at(idx-1), at(idx), at(idx+1), at(idx+2), frac)
		}
		out.Samples[ch] = dst
	}

	return out
}
