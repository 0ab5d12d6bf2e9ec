// SPDX-License-Identifier: EPL-2.0

// Package wavebuf reads and writes uncompressed PCM WAV audio,
// exposing it in memory as normalized floating-point samples.
//
// The module is organized like a small codec stack:
//   - audio holds the multichannel sample buffer and go-audio interop
//   - formats/wav is the chunk parser and writer
//   - utils carries the byte packing and PCM conversion primitives
//
// # Quick Start
//
// Loading a WAV file into a buffer and saving it back:
//
//	store := wavebuf.OSStore{}
//
//	buf, err := wavebuf.Load[float64](store, "input.wav")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	buf.Summary(func(line string) { fmt.Println(line) })
//
//	if err := wavebuf.Save(store, "output.wav", buf); err != nil {
//	    log.Fatal(err)
//	}
//
// File access goes through the ByteStore interface, so callers that
// keep audio in memory, object storage or an embedded filesystem can
// supply their own implementation; the codec never opens paths itself.
//
// # Working With Samples
//
// Samples are indexed by channel then position and are plain floats:
//
//	buf := audio.New[float64]()
//	buf.SetSize(1, 8000)
//	for i := range buf.Samples[0] {
//	    buf.Samples[0][i] = math.Sin(2 * math.Pi * 440 * float64(i) / 8000)
//	}
//	buf.SetSampleRate(8000)
//
// # Supported Input
//
// PCM WAV at 8, 16 or 24 bits, mono or stereo. Compressed WAV variants
// and AIFF are detected and rejected with typed errors; decoding them
// is out of scope for this module.
package wavebuf
