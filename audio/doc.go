// SPDX-License-Identifier: EPL-2.0

// Package audio provides the in-memory audio data model.
//
// This package contains the core building blocks:
//   - Buffer, a multichannel container of normalized samples
//   - resize operations with zero-fill on growth
//   - mono downmix and cubic-interpolation resampling
//   - conversion to and from go-audio buffer types
//
// # Buffer
//
// Buffer is generic over the sample type (float32 or float64) and
// stores audio channel-major:
//
//	buf := audio.New[float64]()
//	buf.SetSize(2, 44100)
//	buf.Samples[0][0] = 0.5
//
// # Sample Format
//
// Audio samples are normalized floats in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// This normalized format makes it easy to process audio without
// worrying about bit depths. Bit depth and sample rate are carried as
// metadata and only matter when a buffer is encoded back to bytes.
//
// # Resizing
//
// SetNumChannels, SetNumSamplesPerChannel and SetSize preserve any
// existing audio and zero-fill newly added channels or sample slots:
//
//	buf.SetNumSamplesPerChannel(8000) // grown region is silence
//
// # go-audio Interop
//
// Buffers convert losslessly (up to quantization) to and from
// go-audio's IntBuffer, so they can be used with the go-audio family
// of encoders and processors:
//
//	ib, err := buf.IntBuffer()
//	back, err := audio.FromIntBuffer[float64](ib)
//
// # Concurrency
//
// Buffer has no internal locking. Each buffer should be owned by one
// goroutine at a time; independent buffers are safe to use
// concurrently since no package-level state exists.
package audio
