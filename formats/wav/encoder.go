// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"

	"github.com/ik5/wavebuf/audio"
	"github.com/ik5/wavebuf/utils"
)

// Encode serializes the buffer into a complete WAV byte stream with
// internally consistent size fields. The buffer's bit depth must be 8,
// 16 or 24 and its channel count 1 or 2; both are checked before any
// bytes are produced. Out-of-range samples are clamped, not rejected.
// Encoding the same buffer twice yields byte-identical output.
func Encode[F audio.Float](b *audio.Buffer[F]) ([]byte, error) {
	bitDepth := b.BitDepth()
	if bitDepth != 8 && bitDepth != 16 && bitDepth != 24 {
		return nil, ErrUnsupportedBitDepth
	}

	channels := b.NumChannels()
	if channels != 1 && channels != 2 {
		return nil, ErrUnsupportedChannelLayout
	}

	perChannel := b.NumSamplesPerChannel()
	bytesPerSample := bitDepth / 8
	dataSize := perChannel * channels * bytesPerSample
	// 4 for "WAVE", 24 for the fmt chunk, 8 for the data chunk header
	fileSize := 4 + 24 + 8 + dataSize

	le := binary.LittleEndian
	out := make([]byte, 0, 8+fileSize)

	out = append(out, riffTag...)
	out = utils.AppendUint32(out, uint32(fileSize), le)
	out = append(out, waveTag...)

	out = append(out, fmtTag...)
	out = utils.AppendUint32(out, 16, le) // PCM fmt chunk size
	out = utils.AppendUint16(out, 1, le)  // PCM format
	out = utils.AppendUint16(out, uint16(channels), le)
	out = utils.AppendUint32(out, uint32(b.SampleRate()), le)
	out = utils.AppendUint32(out, uint32(channels*b.SampleRate()*bytesPerSample), le)
	out = utils.AppendUint16(out, uint16(channels*bytesPerSample), le)
	out = utils.AppendUint16(out, uint16(bitDepth), le)

	out = append(out, dataTag...)
	out = utils.AppendUint32(out, uint32(dataSize), le)

	for i := 0; i < perChannel; i++ {
		for ch := 0; ch < channels; ch++ {
			s := b.Samples[ch][i]

			switch bitDepth {
			case 8:
				out = append(out, utils.SampleToPCM8(s))
			case 16:
				out = utils.AppendUint16(out, uint16(utils.SampleToPCM16(s)), le)
			case 24:
				v := int32(utils.Clamp(s, -1.0, 1.0) * F(8388608.0))
				if v > 8388607 {
					// +1.0 full scale does not fit in 24 bits
					v = 8388607
				}
				out = append(out, byte(v), byte(v>>8), byte(v>>16))
			}
		}
	}

	// the size fields were written before the payload; re-derive both
	// from the actual byte count and refuse to hand back a stream that
	// disagrees with its own header
	if len(out)-8 != fileSize || len(out)-44 != dataSize {
		return nil, ErrSizeMismatch
	}

	return out, nil
}
