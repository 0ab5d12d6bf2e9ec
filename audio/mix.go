// SPDX-License-Identifier: EPL-2.0

package audio

// MixedToMono returns a new single-channel buffer holding the average
// of all channels. A mono buffer is copied as-is. Format metadata is
// carried over.
func (b *Buffer[F]) MixedToMono() *Buffer[F] {
	out := &Buffer[F]{
		sampleRate: b.sampleRate,
		bitDepth:   b.bitDepth,
	}

	perChannel := b.NumSamplesPerChannel()
	mono := make([]F, perChannel)

	channels := b.NumChannels()
	switch channels {
	case 0:
		// nothing to mix
	case 1:
		copy(mono, b.Samples[0])
	default:
		inv := F(1.0) / F(channels)
		for i := 0; i < perChannel; i++ {
			var sum F
			for ch := 0; ch < channels; ch++ {
				sum += b.Samples[ch][i]
			}
			mono[i] = sum * inv
		}
	}

	out.Samples = [][]F{mono}
	return out
}
