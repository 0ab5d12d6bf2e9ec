// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestSampleToPCM16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float64
		want  int16
	}{
		{
			name:  "zero",
			input: 0.0,
			want:  0,
		},
		{
			name:  "max positive",
			input: 1.0,
			want:  math.MaxInt16,
		},
		{
			name:  "max negative",
			input: -1.0,
			want:  -32767,
		},
		{
			name:  "half positive",
			input: 0.5,
			want:  16383,
		},
		{
			name:  "clamped above",
			input: 2.5,
			want:  math.MaxInt16,
		},
		{
			name:  "clamped below",
			input: -3.0,
			want:  -32767,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := SampleToPCM16(tt.input); got != tt.want {
				t.Errorf("SampleToPCM16(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestPCM16ToSample(t *testing.T) {
	t.Parallel()

	if got := PCM16ToSample[float64](0); got != 0 {
		t.Errorf("PCM16ToSample(0) = %v, want 0", got)
	}

	if got := PCM16ToSample[float64](16384); got != 0.5 {
		t.Errorf("PCM16ToSample(16384) = %v, want 0.5", got)
	}

	if got := PCM16ToSample[float64](-32768); got != -1.0 {
		t.Errorf("PCM16ToSample(-32768) = %v, want -1.0", got)
	}
}

func TestSampleToPCM8(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float64
		want  uint8
	}{
		{
			name:  "silence maps to midpoint",
			input: 0.0,
			want:  127,
		},
		{
			name:  "full negative",
			input: -1.0,
			want:  0,
		},
		{
			name:  "full positive",
			input: 1.0,
			want:  255,
		},
		{
			name:  "clamped above",
			input: 9.0,
			want:  255,
		},
		{
			name:  "clamped below",
			input: -9.0,
			want:  0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := SampleToPCM8(tt.input); got != tt.want {
				t.Errorf("SampleToPCM8(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestPCM8ToSample(t *testing.T) {
	t.Parallel()

	if got := PCM8ToSample[float64](128); got != 0 {
		t.Errorf("PCM8ToSample(128) = %v, want 0", got)
	}

	if got := PCM8ToSample[float64](0); got != -1.0 {
		t.Errorf("PCM8ToSample(0) = %v, want -1.0", got)
	}

	if got := PCM8ToSample[float64](255); math.Abs(got-0.9921875) > 1e-9 {
		t.Errorf("PCM8ToSample(255) = %v, want 0.9921875", got)
	}
}

func TestPCM16RoundTripWithinOneStep(t *testing.T) {
	t.Parallel()

	const step = 1.0 / 32768.0

	// values exactly representable at 16-bit depth
	for _, s := range []float64{-1.0, -0.75, -777.0 / 32768.0, 0, 0.25, 0.5, 12345.0 / 32768.0, 1.0} {
		back := PCM16ToSample[float64](SampleToPCM16(s))
		if math.Abs(back-s) > step {
			t.Errorf("round trip %v -> %v drifted more than one step", s, back)
		}
	}
}

func TestClamp(t *testing.T) {
	t.Parallel()

	if got := Clamp(1.5, -1.0, 1.0); got != 1.0 {
		t.Errorf("Clamp(1.5) = %v, want 1.0", got)
	}
	if got := Clamp(-1.5, -1.0, 1.0); got != -1.0 {
		t.Errorf("Clamp(-1.5) = %v, want -1.0", got)
	}
	if got := Clamp(0.25, -1.0, 1.0); got != 0.25 {
		t.Errorf("Clamp(0.25) = %v, want 0.25", got)
	}
}

func TestConversionsFloat32(t *testing.T) {
	t.Parallel()

	// the generic conversions must hold for float32 instantiation too
	if got := SampleToPCM16(float32(1.0)); got != math.MaxInt16 {
		t.Errorf("SampleToPCM16[float32](1.0) = %d, want %d", got, math.MaxInt16)
	}
	if got := PCM16ToSample[float32](16384); got != 0.5 {
		t.Errorf("PCM16ToSample[float32](16384) = %v, want 0.5", got)
	}
}
