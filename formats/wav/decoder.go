package wav

import (
	"bytes"
	"encoding/binary"

	"github.com/ik5/wavebuf/audio"
	"github.com/ik5/wavebuf/utils"
)

var (
	riffTag = []byte("RIFF")
	waveTag = []byte("WAVE")
	fmtTag  = []byte("fmt ")
	dataTag = []byte("data")
)

// Decode parses a WAV byte stream into a freshly allocated buffer of
// normalized samples. Only uncompressed PCM at 8, 16 or 24 bits in
// mono or stereo is accepted; anything else fails with one of the
// sentinel errors in this package. On failure the returned buffer is
// nil: decoding is all-or-nothing.
func Decode[F audio.Float](data []byte) (*audio.Buffer[F], error) {
	if len(data) < 12 {
		return nil, ErrInvalidContainer
	}
	if !bytes.Equal(data[0:4], riffTag) || !bytes.Equal(data[8:12], waveTag) {
		return nil, ErrInvalidContainer
	}

	// chunks are not assumed to sit at fixed offsets past the RIFF
	// header; see the package doc for the tag-collision caveat
	f := utils.IndexOfTag(data, fmtTag)
	d := utils.IndexOfTag(data, dataTag)
	if f < 0 || d < 0 {
		return nil, ErrMissingChunk
	}
	if f+24 > len(data) || d+8 > len(data) {
		return nil, ErrInvalidContainer
	}

	le := binary.LittleEndian
	audioFormat := utils.ReadInt16(data, f+8, le)
	channels := int(utils.ReadInt16(data, f+10, le))
	sampleRate := int(utils.ReadUint32(data, f+12, le))
	byteRate := int(utils.ReadUint32(data, f+16, le))
	blockAlign := int(utils.ReadInt16(data, f+20, le))
	bitDepth := int(utils.ReadInt16(data, f+22, le))

	if audioFormat != 1 {
		return nil, ErrUnsupportedCompression
	}
	if channels < 1 || channels > 2 {
		return nil, ErrUnsupportedChannelLayout
	}
	if bitDepth != 8 && bitDepth != 16 && bitDepth != 24 {
		return nil, ErrUnsupportedBitDepth
	}

	bytesPerSample := bitDepth / 8
	if sampleRate <= 0 ||
		byteRate != channels*sampleRate*bytesPerSample ||
		blockAlign != channels*bytesPerSample {
		return nil, ErrInconsistentHeader
	}

	dataSize := int(utils.ReadUint32(data, d+4, le))
	bytesPerBlock := channels * bytesPerSample
	numSamples := dataSize / bytesPerBlock
	start := d + 8

	if dataSize < 0 || start+numSamples*bytesPerBlock > len(data) {
		return nil, ErrInvalidContainer
	}

	buf := audio.New[F]()
	buf.SetSampleRate(sampleRate)
	buf.SetBitDepth(bitDepth)
	buf.Clear()
	buf.SetSize(channels, numSamples)

	for i := 0; i < numSamples; i++ {
		for ch := 0; ch < channels; ch++ {
			off := start + i*bytesPerBlock + ch*bytesPerSample

			switch bitDepth {
			case 8:
				buf.Samples[ch][i] = utils.PCM8ToSample[F](data[off])
			case 16:
				buf.Samples[ch][i] = utils.PCM16ToSample[F](utils.ReadInt16(data, off, le))
			case 24:
				v := int32(data[off+2])<<16 | int32(data[off+1])<<8 | int32(data[off])
				if v&0x800000 != 0 {
					// 24-bit two's complement: extend the sign
					v |= ^int32(0xFFFFFF)
				}
				buf.Samples[ch][i] = F(v) / F(8388608.0)
			}
		}
	}

	return buf, nil
}
