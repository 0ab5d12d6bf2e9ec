// SPDX-License-Identifier: EPL-2.0

package audio

import (
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/wavebuf/utils"
)

// IntBuffer converts the buffer into a go-audio IntBuffer with
// interleaved PCM values at the buffer's bit depth, so decoded audio
// can be handed to the wider go-audio ecosystem. Returns an error for
// bit depths other than 8, 16 or 24.
func (b *Buffer[F]) IntBuffer() (*goaudio.IntBuffer, error) {
	if b.bitDepth != 8 && b.bitDepth != 16 && b.bitDepth != 24 {
		return nil, ErrUnsupportedBitDepth
	}

	channels := b.NumChannels()
	perChannel := b.NumSamplesPerChannel()

	ib := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  b.sampleRate,
		},
		SourceBitDepth: b.bitDepth,
		Data:           make([]int, perChannel*channels),
	}

	for i := 0; i < perChannel; i++ {
		for ch := 0; ch < channels; ch++ {
			s := b.Samples[ch][i]
			var v int
			switch b.bitDepth {
			case 8:
				v = int(utils.SampleToPCM8(s))
			case 16:
				v = int(utils.SampleToPCM16(s))
			case 24:
				v = int(utils.Clamp(s, -1.0, 1.0) * F(8388607.0))
			}
			ib.Data[i*channels+ch] = v
		}
	}

	return ib, nil
}

// FromIntBuffer builds a Buffer from a go-audio IntBuffer, normalizing
// the interleaved PCM values by the source bit depth. Only mono and
// stereo layouts at 8, 16 or 24 bits are accepted.
func FromIntBuffer[F Float](ib *goaudio.IntBuffer) (*Buffer[F], error) {
	if ib == nil || ib.Format == nil {
		return nil, ErrNilIntBuffer
	}

	channels := ib.Format.NumChannels
	if channels != 1 && channels != 2 {
		return nil, ErrUnsupportedChannels
	}

	depth := ib.SourceBitDepth
	if depth != 8 && depth != 16 && depth != 24 {
		return nil, ErrUnsupportedBitDepth
	}

	perChannel := len(ib.Data) / channels

	b := &Buffer[F]{
		sampleRate: ib.Format.SampleRate,
		bitDepth:   depth,
		Samples:    make([][]F, channels),
	}
	for ch := 0; ch < channels; ch++ {
		b.Samples[ch] = make([]F, perChannel)
	}

	for i := 0; i < perChannel; i++ {
		for ch := 0; ch < channels; ch++ {
			v := ib.Data[i*channels+ch]
			switch depth {
			case 8:
				b.Samples[ch][i] = utils.PCM8ToSample[F](uint8(v))
			case 16:
				b.Samples[ch][i] = utils.PCM16ToSample[F](int16(v))
			case 24:
				b.Samples[ch][i] = F(v) / F(8388608.0)
			}
		}
	}

	return b, nil
}
