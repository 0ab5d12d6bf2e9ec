// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	"github.com/ik5/wavebuf/utils"
)

// Float constrains the in-memory sample type; see utils.Float.
type Float = utils.Float

// Buffer holds decoded multichannel audio as normalized samples.
//
// Samples are stored channel-major: Samples[channel][index], each value
// a normalized amplitude in [-1.0, 1.0]. Every channel slice has the
// same length. Format metadata (sample rate, bit depth) travels with
// the samples so a buffer can be re-encoded without extra bookkeeping.
type Buffer[F Float] struct {
	// Samples holds the audio data, accessed as Samples[channel][index].
	Samples [][]F

	sampleRate int
	bitDepth   int
}

// New returns an empty buffer: one channel, zero samples,
// 44100 Hz, 16-bit.
func New[F Float]() *Buffer[F] {
	return &Buffer[F]{
		Samples:    make([][]F, 1),
		sampleRate: 44100,
		bitDepth:   16,
	}
}

// SampleRate returns the sample rate in Hz.
func (b *Buffer[F]) SampleRate() int { return b.sampleRate }

// SetSampleRate sets the sample rate used when the buffer is encoded.
func (b *Buffer[F]) SetSampleRate(rate int) { b.sampleRate = rate }

// BitDepth returns the PCM bit depth (8, 16 or 24).
func (b *Buffer[F]) BitDepth() int { return b.bitDepth }

// SetBitDepth sets the PCM bit depth used when the buffer is encoded.
// Validation happens at encode time.
func (b *Buffer[F]) SetBitDepth(bits int) { b.bitDepth = bits }

// NumChannels returns the number of channels in the buffer.
func (b *Buffer[F]) NumChannels() int { return len(b.Samples) }

// IsMono reports whether the buffer has exactly one channel.
func (b *Buffer[F]) IsMono() bool { return b.NumChannels() == 1 }

// IsStereo reports whether the buffer has exactly two channels.
func (b *Buffer[F]) IsStereo() bool { return b.NumChannels() == 2 }

// NumSamplesPerChannel returns the number of samples in each channel.
func (b *Buffer[F]) NumSamplesPerChannel() int {
	if len(b.Samples) == 0 {
		return 0
	}
	return len(b.Samples[0])
}

// Duration returns the buffer length in seconds.
func (b *Buffer[F]) Duration() float64 {
	if b.sampleRate <= 0 {
		return 0
	}
	return float64(b.NumSamplesPerChannel()) / float64(b.sampleRate)
}

// SetSize resizes the buffer to numChannels channels of
// samplesPerChannel samples each. Existing audio is preserved where it
// still fits; any newly added channel or sample slot is zero.
func (b *Buffer[F]) SetSize(numChannels, samplesPerChannel int) {
	b.SetNumChannels(numChannels)
	b.SetNumSamplesPerChannel(samplesPerChannel)
}

// SetNumChannels resizes the channel count. New channels get the same
// length as the existing ones, filled with zeros. Shrinking drops the
// trailing channels.
func (b *Buffer[F]) SetNumChannels(numChannels int) {
	if numChannels < 0 {
		numChannels = 0
	}
	perChannel := b.NumSamplesPerChannel()

	for len(b.Samples) < numChannels {
		b.Samples = append(b.Samples, make([]F, perChannel))
	}
	b.Samples = b.Samples[:numChannels]
}

// SetNumSamplesPerChannel resizes every channel to numSamples samples.
// Existing samples are preserved; slots added by growth are zero.
func (b *Buffer[F]) SetNumSamplesPerChannel(numSamples int) {
	if numSamples < 0 {
		numSamples = 0
	}
	for ch := range b.Samples {
		cur := len(b.Samples[ch])
		if numSamples <= cur {
			b.Samples[ch] = b.Samples[ch][:numSamples]
			continue
		}
		grown := make([]F, numSamples)
		copy(grown, b.Samples[ch])
		b.Samples[ch] = grown
	}
}

// SetSamples replaces the buffer contents with a copy of data.
// data must have at least one channel and all channels must be the
// same length.
func (b *Buffer[F]) SetSamples(data [][]F) error {
	if len(data) == 0 {
		return ErrNoChannels
	}
	perChannel := len(data[0])
	for _, ch := range data[1:] {
		if len(ch) != perChannel {
			return ErrChannelLengthMismatch
		}
	}

	b.Samples = make([][]F, len(data))
	for i, ch := range data {
		b.Samples[i] = make([]F, perChannel)
		copy(b.Samples[i], ch)
	}
	return nil
}

// Clear drops all channels and samples. Format metadata is kept.
func (b *Buffer[F]) Clear() {
	b.Samples = nil
}

// Summary emits a human-readable description of the buffer, one line
// per call to emit. A nil emit is a no-op; nothing here runs on the
// decode or encode path.
func (b *Buffer[F]) Summary(emit func(string)) {
	if emit == nil {
		return
	}
	emit("|======================================|")
	emit(fmt.Sprintf("Num Channels: %d", b.NumChannels()))
	emit(fmt.Sprintf("Num Samples Per Channel: %d", b.NumSamplesPerChannel()))
	emit(fmt.Sprintf("Sample Rate: %d", b.sampleRate))
	emit(fmt.Sprintf("Bit Depth: %d", b.bitDepth))
	emit(fmt.Sprintf("Length in Seconds: %g", b.Duration()))
	emit("|======================================|")
}
