// SPDX-License-Identifier: EPL-2.0

package wavebuf

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/ik5/wavebuf/audio"
	"github.com/ik5/wavebuf/formats/wav"
)

var (
	ErrUnknownFormat    = errors.New("unrecognized audio container")
	ErrAIFFNotSupported = errors.New("AIFF is not supported")
)

// Format identifies the container a byte stream appears to hold.
type Format int

const (
	FormatUnknown Format = iota
	FormatWave
	FormatAIFF
)

// DetectFormat inspects the leading container tag of data. It only
// looks at the first four bytes; a stream can still fail to decode.
func DetectFormat(data []byte) Format {
	if len(data) < 4 {
		return FormatUnknown
	}
	switch {
	case bytes.Equal(data[0:4], []byte("RIFF")):
		return FormatWave
	case bytes.Equal(data[0:4], []byte("FORM")):
		return FormatAIFF
	default:
		return FormatUnknown
	}
}

// ByteStore abstracts the byte source/sink this package loads from and
// saves to. The codec itself never touches the filesystem.
type ByteStore interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
}

// OSStore is the ByteStore backed by the local filesystem.
type OSStore struct{}

func (OSStore) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return data, nil
}

func (OSStore) WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// Load reads path through store, detects the container format and
// decodes WAV data into a buffer. AIFF streams are rejected with
// ErrAIFFNotSupported, anything unrecognized with ErrUnknownFormat.
func Load[F audio.Float](store ByteStore, path string) (*audio.Buffer[F], error) {
	data, err := store.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	switch DetectFormat(data) {
	case FormatWave:
		buf, err := wav.Decode[F](data)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		return buf, nil
	case FormatAIFF:
		return nil, ErrAIFFNotSupported
	default:
		return nil, ErrUnknownFormat
	}
}

// Save encodes the buffer as WAV and writes it to path through store.
func Save[F audio.Float](store ByteStore, path string, b *audio.Buffer[F]) error {
	data, err := wav.Encode(b)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := store.WriteFile(path, data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
